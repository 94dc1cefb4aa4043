package x86_64

import "github.com/keurnel/x86encode/internal/fixedbuf"

// MaxInstructionSize is the maximum length, in bytes, of any legacy/REX
// encoded x86-64 instruction this package can produce.
const MaxInstructionSize = 15

// EncodedInstruction is the output of every encoding primitive and every
// generated entry point: the finished byte sequence for one instruction,
// stored inline with no heap allocation.
type EncodedInstruction struct {
	buf fixedbuf.Buf15
}

// newEncodedInstruction returns an empty instruction buffer.
func newEncodedInstruction() EncodedInstruction {
	return EncodedInstruction{}
}

// encodedInstructionFromBytes seeds the buffer with an initial byte run,
// typically the opcode.
func encodedInstructionFromBytes(b ...byte) EncodedInstruction {
	var e EncodedInstruction
	e.buf.PushSlice(b)
	return e
}

func (e *EncodedInstruction) pushByte(b byte) { e.buf.PushByte(b) }
func (e *EncodedInstruction) pushBytes(b ...byte) { e.buf.PushSlice(b) }
func (e *EncodedInstruction) pushSlice(s []byte) { e.buf.PushSlice(s) }

// Len returns the number of encoded bytes.
func (e EncodedInstruction) Len() int { return e.buf.Len() }

// AsSlice returns the encoded bytes. The returned slice refers to a copy of
// e's buffer, so later changes to e do not show through it.
func (e EncodedInstruction) AsSlice() []byte {
	b := e.buf
	return b.AsSlice()
}
