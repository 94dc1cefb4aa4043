package x86_64

// EncodeZO encodes a zero-operand instruction: the opcode bytes, verbatim.
func EncodeZO(opcode ...byte) EncodedInstruction {
	return encodedInstructionFromBytes(opcode...)
}
