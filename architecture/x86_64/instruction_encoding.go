package x86_64

// OperandEncoding identifies the operand-encoding class of an instruction
// variant: which operands (if any) feed the opcode's low bits, the ModR/M
// reg/rm fields, and the immediate trailer. Every encoding primitive in
// this package corresponds to exactly one of these classes.
type OperandEncoding uint8

const (
	// EncodingZO takes no operands; the opcode alone determines the bytes.
	EncodingZO OperandEncoding = iota + 1
	// EncodingI takes a single immediate operand.
	EncodingI
	// EncodingMI takes an r/m operand (ModR/M, possibly memory) and an
	// immediate, with the ModR/M reg field holding a fixed opcode extension.
	EncodingMI
	// EncodingMR takes an r/m operand as ModR/M rm and a register as
	// ModR/M reg.
	EncodingMR
	// EncodingRM takes a register as ModR/M reg and an r/m operand as
	// ModR/M rm — the mirror image of MR.
	EncodingRM
	// EncodingO takes a single register whose index is folded into the
	// low 3 bits of the opcode byte.
	EncodingO
	// EncodingOI takes a register folded into the opcode, plus an
	// immediate.
	EncodingOI
	// EncodingM takes a single r/m operand (ModR/M, possibly memory) with
	// a fixed opcode extension and no immediate.
	EncodingM
)

// String names the encoding class, matching the spelling used in the
// declarative variant table.
func (e OperandEncoding) String() string {
	switch e {
	case EncodingZO:
		return "ZO"
	case EncodingI:
		return "I"
	case EncodingMI:
		return "MI"
	case EncodingMR:
		return "MR"
	case EncodingRM:
		return "RM"
	case EncodingO:
		return "O"
	case EncodingOI:
		return "OI"
	case EncodingM:
		return "M"
	default:
		return "invalid"
	}
}
