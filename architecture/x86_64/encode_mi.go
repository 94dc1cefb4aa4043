package x86_64

// Only the rm64 forms pass bit64RequiresRexW=true to EncodeMGPROrMemory, so
// REX.W is emitted for a 64-bit register or any memory operand of those
// forms and never for the rm8/rm16/rm32 forms. The rm16 forms pass
// bit16RequiresOSPrefix=false and prepend the 0x66 override byte
// themselves, ahead of any REX prefix.

// EncodeMIRm8Imm8 encodes an 8-bit r/m operand with an 8-bit immediate.
func EncodeMIRm8Imm8(opcode []byte, extendedOpcode byte, rm GPROrMemory, imm8 Immediate8) EncodedInstruction {
	e := EncodeMGPROrMemory(opcode, extendedOpcode, rm, false, false)
	e.pushSlice(imm8.Encode())
	return e
}

// EncodeMIRm16Imm16 encodes a 16-bit r/m operand with a 16-bit immediate,
// prefixed with the operand-size override.
func EncodeMIRm16Imm16(opcode []byte, extendedOpcode byte, rm GPROrMemory, imm16 Immediate16) EncodedInstruction {
	prefix := encodedInstructionFromBytes(PrefixOperandSizeOverride)
	body := EncodeMGPROrMemory(opcode, extendedOpcode, rm, false, false)
	prefix.pushSlice(body.AsSlice())
	prefix.pushSlice(imm16.Encode())
	return prefix
}

// EncodeMIRm16Imm8 encodes a 16-bit r/m operand with a sign-extended
// 8-bit immediate, prefixed with the operand-size override.
func EncodeMIRm16Imm8(opcode []byte, extendedOpcode byte, rm GPROrMemory, imm8 Immediate8) EncodedInstruction {
	prefix := encodedInstructionFromBytes(PrefixOperandSizeOverride)
	body := EncodeMGPROrMemory(opcode, extendedOpcode, rm, false, false)
	prefix.pushSlice(body.AsSlice())
	prefix.pushSlice(imm8.Encode())
	return prefix
}

// EncodeMIRm32Imm32 encodes a 32-bit r/m operand with a 32-bit immediate.
func EncodeMIRm32Imm32(opcode []byte, extendedOpcode byte, rm GPROrMemory, imm32 Immediate32) EncodedInstruction {
	e := EncodeMGPROrMemory(opcode, extendedOpcode, rm, false, false)
	e.pushSlice(imm32.Encode())
	return e
}

// EncodeMIRm32Imm8 encodes a 32-bit r/m operand with a sign-extended
// 8-bit immediate.
func EncodeMIRm32Imm8(opcode []byte, extendedOpcode byte, rm GPROrMemory, imm8 Immediate8) EncodedInstruction {
	e := EncodeMGPROrMemory(opcode, extendedOpcode, rm, false, false)
	e.pushSlice(imm8.Encode())
	return e
}

// EncodeMIRm64Imm32 encodes a 64-bit r/m operand with a sign-extended
// 32-bit immediate. REX.W is emitted for a 64-bit register and for any
// memory operand.
func EncodeMIRm64Imm32(opcode []byte, extendedOpcode byte, rm GPROrMemory, imm32 Immediate32) EncodedInstruction {
	e := EncodeMGPROrMemory(opcode, extendedOpcode, rm, true, false)
	e.pushSlice(imm32.Encode())
	return e
}

// EncodeMIRm64Imm8 encodes a 64-bit r/m operand with a sign-extended
// 8-bit immediate.
func EncodeMIRm64Imm8(opcode []byte, extendedOpcode byte, rm GPROrMemory, imm8 Immediate8) EncodedInstruction {
	e := EncodeMGPROrMemory(opcode, extendedOpcode, rm, true, false)
	e.pushSlice(imm8.Encode())
	return e
}
