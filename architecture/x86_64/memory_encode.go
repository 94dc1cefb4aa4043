package x86_64

import "github.com/keurnel/x86encode/internal/fixedbuf"

// encodeMemory writes the ModR/M (+ SIB + displacement) fragment that
// addresses m with reg_field occupying the ModR/M reg bits. It never
// writes a REX prefix or opcode — those are the caller's job.
func encodeMemory(regField byte, m Memory) fixedbuf.Buf7 {
	assertMemoryUsesBit64Registers(m)

	var buf fixedbuf.Buf7
	switch {
	case m.IsBased():
		encodeBasedMemory(&buf, regField, m.Base(), m.Displacement())
	case m.IsScaled():
		encodeScaledMemory(&buf, regField, m.Index(), m.ScaleFactor(), m.Displacement())
	case m.IsBasedScaled():
		encodeBasedScaledMemory(&buf, regField, m.Base(), m.Index(), m.ScaleFactor(), m.Displacement())
	case m.IsRelativeToRIP():
		buf.PushByte(modRM(modNoDisp, regField, rmRIPRelative))
		buf.PushSlice(m.Displacement().AsSignExtendedImm32().Encode())
	default:
		panic("x86_64: invalid Memory value")
	}
	return buf
}

func encodeBasedMemory(buf *fixedbuf.Buf7, regField byte, base GPR, offset Offset) {
	isSIBBase := base.Equals(RSP) || base.Equals(R12)
	isDisp8Forced := base.Equals(RBP) || base.Equals(R13)

	switch {
	case offset.IsNone():
		switch {
		case isSIBBase:
			buf.PushByte(modRM(modNoDisp, regField, rmSIBFollows))
			buf.PushByte(sib(0b00, 0b100, 0b100))
		case isDisp8Forced:
			buf.PushByte(modRM(modDisp8, regField, rmRIPRelative))
			buf.PushByte(0)
		default:
			buf.PushByte(modRM(modNoDisp, regField, base.LowerThreeBitsIndex()))
		}
	case offset.IsBit8():
		if isSIBBase {
			buf.PushByte(modRM(modDisp8, regField, rmSIBFollows))
			buf.PushByte(sib(0b00, 0b100, 0b100))
		} else {
			buf.PushByte(modRM(modDisp8, regField, base.LowerThreeBitsIndex()))
		}
		buf.PushSlice(offset.Bit8Value().Encode())
	case offset.IsBit32():
		if isSIBBase {
			buf.PushByte(modRM(modDisp32, regField, rmSIBFollows))
			buf.PushByte(sib(0b00, 0b100, 0b100))
		} else {
			buf.PushByte(modRM(modDisp32, regField, base.LowerThreeBitsIndex()))
		}
		buf.PushSlice(offset.Bit32Value().Encode())
	}
}

func encodeScaledMemory(buf *fixedbuf.Buf7, regField byte, index GPR, scale Scale, offset Offset) {
	if index.LowerThreeBitsIndex() == RSP.LowerThreeBitsIndex() && !index.IsExtended() {
		panic("x86_64: SIB index cannot be RSP")
	}

	buf.PushByte(modRM(modNoDisp, regField, rmSIBFollows))
	buf.PushByte(sib(scale.Index(), index.LowerThreeBitsIndex(), 0b101))
	buf.PushSlice(offset.AsSignExtendedImm32().Encode())
}

func encodeBasedScaledMemory(buf *fixedbuf.Buf7, regField byte, base, index GPR, scale Scale, offset Offset) {
	if index.LowerThreeBitsIndex() == RSP.LowerThreeBitsIndex() && !index.IsExtended() {
		panic("x86_64: SIB index cannot be RSP")
	}

	sibByte := sib(scale.Index(), index.LowerThreeBitsIndex(), base.LowerThreeBitsIndex())

	if offset.IsNone() && (base.Equals(RBP) || base.Equals(R13)) {
		buf.PushByte(modRM(modDisp8, regField, rmSIBFollows))
		buf.PushByte(sibByte)
		buf.PushByte(0)
		return
	}

	var mod byte
	switch {
	case offset.IsNone():
		mod = modNoDisp
	case offset.IsBit8():
		mod = modDisp8
	default:
		mod = modDisp32
	}

	buf.PushByte(modRM(mod, regField, rmSIBFollows))
	buf.PushByte(sibByte)

	switch {
	case offset.IsNone():
	case offset.IsBit8():
		buf.PushSlice(offset.Bit8Value().Encode())
	default:
		buf.PushSlice(offset.Bit32Value().Encode())
	}
}

// assertMemoryUsesBit64Registers panics if a base/index register in m is
// not a 64-bit GPR — the only width valid for addressing in this mode.
func assertMemoryUsesBit64Registers(m Memory) {
	switch {
	case m.IsBased():
		if !m.Base().Size().Equals(Bit64) {
			panic("x86_64: memory base register must be 64-bit")
		}
	case m.IsScaled():
		if !m.Index().Size().Equals(Bit64) {
			panic("x86_64: memory index register must be 64-bit")
		}
	case m.IsBasedScaled():
		if !m.Base().Size().Equals(Bit64) || !m.Index().Size().Equals(Bit64) {
			panic("x86_64: memory base/index registers must be 64-bit")
		}
	}
}
