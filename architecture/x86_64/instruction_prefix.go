package x86_64

// Legacy prefix bytes relevant to instructions this package can encode.
// LOCK and the segment overrides are retained from the broader prefix set
// for completeness; no generated entry point emits them (the lock mnemonic
// is a zero-operand F0 opcode in the variant table).
const (
	PrefixNone        byte = 0x00
	PrefixLock        byte = 0xF0
	PrefixRepNE       byte = 0xF2
	PrefixRep         byte = 0xF3
	PrefixCS          byte = 0x2E
	PrefixSS          byte = 0x36
	PrefixDS          byte = 0x3E
	PrefixES          byte = 0x26
	PrefixFS          byte = 0x64
	PrefixGS          byte = 0x65
	PrefixOperandSizeOverride byte = 0x66
	PrefixAddressSizeOverride byte = 0x67
)

// REX prefix bits. REX is always the nibble 0100 in bits 7-4; W/R/X/B
// occupy bits 3-2-1-0.
const (
	rexBase byte = 0x40
	rexW    byte = 0x08
	rexR    byte = 0x04
	rexX    byte = 0x02
	rexB    byte = 0x01
)

// rex builds a REX prefix byte from its four component bits. Each
// parameter must be 0 or 1.
func rex(w, r, x, b byte) byte {
	return rexBase | (w << 3) | (r << 2) | (x << 1) | b
}

// modRM packs the three ModR/M fields into one byte.
func modRM(mod, reg, rm byte) byte {
	return (mod << 6) | ((reg & 0b111) << 3) | (rm & 0b111)
}

// sib packs the three SIB fields into one byte.
func sib(scale, index, base byte) byte {
	return (scale << 6) | ((index & 0b111) << 3) | (base & 0b111)
}

const (
	modNoDisp   byte = 0b00
	modDisp8    byte = 0b01
	modDisp32   byte = 0b10
	modRegister byte = 0b11

	rmSIBFollows byte = 0b100
	rmRIPRelative byte = 0b101
)
