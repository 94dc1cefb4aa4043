package x86_64

import "encoding/binary"

// Immediate8 is an 8-bit immediate operand value.
type Immediate8 struct{ value uint8 }

// Immediate8FromUint8 wraps a raw byte.
func Immediate8FromUint8(v uint8) Immediate8 { return Immediate8{value: v} }

// Immediate8FromInt8 wraps a signed byte, reinterpreting its bits.
func Immediate8FromInt8(v int8) Immediate8 { return Immediate8{value: uint8(v)} }

// Value returns the raw byte.
func (i Immediate8) Value() uint8 { return i.value }

// AsInt8 reinterprets the raw byte as signed.
func (i Immediate8) AsInt8() int8 { return int8(i.value) }

// Encode returns the little-endian byte encoding (a single byte).
func (i Immediate8) Encode() []byte { return []byte{i.value} }

// Immediate16 is a 16-bit immediate operand value.
type Immediate16 struct{ value uint16 }

func Immediate16FromUint16(v uint16) Immediate16 { return Immediate16{value: v} }
func Immediate16FromInt16(v int16) Immediate16   { return Immediate16{value: uint16(v)} }

// Immediate16FromImm8ZeroExtended widens an 8-bit immediate by zero extension.
func Immediate16FromImm8ZeroExtended(v Immediate8) Immediate16 {
	return Immediate16{value: uint16(v.Value())}
}

// Immediate16FromImm8SignExtended widens an 8-bit immediate by sign extension.
func Immediate16FromImm8SignExtended(v Immediate8) Immediate16 {
	return Immediate16{value: uint16(v.AsInt8())}
}

func (i Immediate16) Value() uint16 { return i.value }
func (i Immediate16) AsInt16() int16 { return int16(i.value) }

// Encode returns the little-endian byte encoding.
func (i Immediate16) Encode() []byte {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], i.value)
	return buf[:]
}

// Immediate32 is a 32-bit immediate operand value.
type Immediate32 struct{ value uint32 }

func Immediate32FromUint32(v uint32) Immediate32 { return Immediate32{value: v} }
func Immediate32FromInt32(v int32) Immediate32   { return Immediate32{value: uint32(v)} }

// Immediate32FromImm8ZeroExtended widens an 8-bit immediate by zero extension.
func Immediate32FromImm8ZeroExtended(v Immediate8) Immediate32 {
	return Immediate32{value: uint32(v.Value())}
}

// Immediate32FromImm8SignExtended widens an 8-bit immediate by sign extension.
func Immediate32FromImm8SignExtended(v Immediate8) Immediate32 {
	return Immediate32{value: uint32(v.AsInt8())}
}

// Immediate32FromImm16ZeroExtended widens a 16-bit immediate by zero extension.
func Immediate32FromImm16ZeroExtended(v Immediate16) Immediate32 {
	return Immediate32{value: uint32(v.Value())}
}

// Immediate32FromImm16SignExtended widens a 16-bit immediate by sign extension.
func Immediate32FromImm16SignExtended(v Immediate16) Immediate32 {
	return Immediate32{value: uint32(v.AsInt16())}
}

func (i Immediate32) Value() uint32  { return i.value }
func (i Immediate32) AsInt32() int32 { return int32(i.value) }

// Encode returns the little-endian byte encoding.
func (i Immediate32) Encode() []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], i.value)
	return buf[:]
}

// Immediate64 is a 64-bit immediate operand value.
type Immediate64 struct{ value uint64 }

func Immediate64FromUint64(v uint64) Immediate64 { return Immediate64{value: v} }
func Immediate64FromInt64(v int64) Immediate64   { return Immediate64{value: uint64(v)} }

// Immediate64FromImm8ZeroExtended widens an 8-bit immediate by zero extension.
func Immediate64FromImm8ZeroExtended(v Immediate8) Immediate64 {
	return Immediate64{value: uint64(v.Value())}
}

// Immediate64FromImm8SignExtended widens an 8-bit immediate by sign extension.
func Immediate64FromImm8SignExtended(v Immediate8) Immediate64 {
	return Immediate64{value: uint64(v.AsInt8())}
}

// Immediate64FromImm16ZeroExtended widens a 16-bit immediate by zero extension.
func Immediate64FromImm16ZeroExtended(v Immediate16) Immediate64 {
	return Immediate64{value: uint64(v.Value())}
}

// Immediate64FromImm16SignExtended widens a 16-bit immediate by sign extension.
func Immediate64FromImm16SignExtended(v Immediate16) Immediate64 {
	return Immediate64{value: uint64(v.AsInt16())}
}

// Immediate64FromImm32ZeroExtended widens a 32-bit immediate by zero extension.
func Immediate64FromImm32ZeroExtended(v Immediate32) Immediate64 {
	return Immediate64{value: uint64(v.Value())}
}

// Immediate64FromImm32SignExtended widens a 32-bit immediate by sign extension.
func Immediate64FromImm32SignExtended(v Immediate32) Immediate64 {
	return Immediate64{value: uint64(v.AsInt32())}
}

func (i Immediate64) Value() uint64  { return i.value }
func (i Immediate64) AsInt64() int64 { return int64(i.value) }

// Encode returns the little-endian byte encoding.
func (i Immediate64) Encode() []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], i.value)
	return buf[:]
}
