package x86_64

// EncodeMGPROrMemory is the shared primitive behind the MI and M encoding
// classes: an opcode followed by a ModR/M byte whose reg field is a fixed
// opcode extension, addressing either a bare register or a memory operand.
//
// bit64RequiresRexW and bit16RequiresOSPrefix let each caller opt in to
// REX.W-on-64-bit and 0x66-on-16-bit behavior independently, matching how
// individual variants in the declarative table differ.
func EncodeMGPROrMemory(opcode []byte, extendedOpcode byte, operand GPROrMemory, bit64RequiresRexW, bit16RequiresOSPrefix bool) EncodedInstruction {
	var e EncodedInstruction

	if !operand.IsMemory() {
		g := operand.GPR()
		if bit16RequiresOSPrefix && g.Size().Equals(Bit16) {
			e.pushByte(PrefixOperandSizeOverride)
		}

		var rexByte byte
		haveRex := false
		if g.IndexMatchesBit8High() && g.Kind() == KindBit8 {
			rexByte = rex(0, 0, 0, 0)
			haveRex = true
		}
		if g.IsExtended() {
			rexByte = rexWithDefault(rexByte, haveRex) | rexB
			haveRex = true
		}
		if bit64RequiresRexW && g.Size().Equals(Bit64) {
			rexByte = rexWithDefault(rexByte, haveRex) | rexW
			haveRex = true
		}
		if haveRex {
			e.pushByte(rexByte)
		}

		e.pushSlice(opcode)
		e.pushByte(modRM(modRegister, extendedOpcode, g.LowerThreeBitsIndex()))
		return e
	}

	m := operand.Memory()
	if bit16RequiresOSPrefix {
		e.pushByte(PrefixOperandSizeOverride)
	}
	baseExt, indexExt := m.BaseIndexExtended()
	wBit := boolBit(bit64RequiresRexW)
	if baseExt || indexExt || wBit == 1 {
		e.pushByte(rex(wBit, 0, boolBit(indexExt), boolBit(baseExt)))
	}
	e.pushSlice(opcode)
	frag := encodeMemory(extendedOpcode, m)
	e.pushSlice(frag.AsSlice())
	return e
}

func rexWithDefault(current byte, have bool) byte {
	if have {
		return current
	}
	return rex(0, 0, 0, 0)
}

func boolBit(b bool) byte {
	if b {
		return 1
	}
	return 0
}
