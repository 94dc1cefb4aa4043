package x86_64

// EncodeNopWithLength returns a multi-byte NOP of exactly length bytes,
// using Intel's recommended padding sequences. length must be in 1..=9;
// EncodeNopWithLength(1) is byte-identical to the plain single-byte NOP,
// just reached through a different call path.
func EncodeNopWithLength(length uint8) EncodedInstruction {
	switch length {
	case 1:
		return encodedInstructionFromBytes(0x90)
	case 2:
		return encodedInstructionFromBytes(0x66, 0x90)
	case 3:
		return encodedInstructionFromBytes(0x0F, 0x1F, 0x00)
	case 4:
		return encodedInstructionFromBytes(0x0F, 0x1F, 0x40, 0x00)
	case 5:
		return encodedInstructionFromBytes(0x0F, 0x1F, 0x44, 0x00, 0x00)
	case 6:
		return encodedInstructionFromBytes(0x66, 0x0F, 0x1F, 0x44, 0x00, 0x00)
	case 7:
		return encodedInstructionFromBytes(0x0F, 0x1F, 0x80, 0x00, 0x00, 0x00, 0x00)
	case 8:
		return encodedInstructionFromBytes(0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00)
	case 9:
		return encodedInstructionFromBytes(0x66, 0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00)
	default:
		panic("x86_64: EncodeNopWithLength requires length in 1..=9")
	}
}
