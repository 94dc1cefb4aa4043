// Package fixedbuf provides stack-allocated, fixed-capacity byte buffers.
//
// Values are plain structs copied by value; nothing here allocates on the
// heap. Two concrete capacities are provided because Go generics cannot
// parameterize an array length by a constant value the way the reference
// implementation's const-generic buffer does — see DESIGN.md.
package fixedbuf

// Buf15 is a fixed-capacity container for up to 15 bytes, matching the
// maximum length of a legacy/REX-prefixed x86-64 instruction.
type Buf15 struct {
	data [15]byte
	len  uint8
}

// Cap reports the buffer's capacity.
func (b *Buf15) Cap() int { return len(b.data) }

// Len reports the number of bytes currently stored.
func (b *Buf15) Len() int { return int(b.len) }

// PushByte appends a single byte. It panics if the buffer is already full.
func (b *Buf15) PushByte(value byte) {
	if int(b.len) >= len(b.data) {
		panic("fixedbuf: Buf15 overflow")
	}
	b.data[b.len] = value
	b.len++
}

// PushSlice appends every byte of s in order. It panics if s does not fit.
func (b *Buf15) PushSlice(s []byte) {
	if int(b.len)+len(s) > len(b.data) {
		panic("fixedbuf: Buf15 overflow")
	}
	copy(b.data[b.len:], s)
	b.len += uint8(len(s))
}

// AsSlice returns the populated prefix of the backing array. The returned
// slice aliases the buffer and is only valid as long as the buffer is not
// mutated further.
func (b *Buf15) AsSlice() []byte {
	return b.data[:b.len]
}

// Buf7 is a fixed-capacity container for up to 7 bytes, matching the
// maximum length of a ModR/M + SIB + displacement memory-operand fragment.
type Buf7 struct {
	data [7]byte
	len  uint8
}

// Cap reports the buffer's capacity.
func (b *Buf7) Cap() int { return len(b.data) }

// Len reports the number of bytes currently stored.
func (b *Buf7) Len() int { return int(b.len) }

// PushByte appends a single byte. It panics if the buffer is already full.
func (b *Buf7) PushByte(value byte) {
	if int(b.len) >= len(b.data) {
		panic("fixedbuf: Buf7 overflow")
	}
	b.data[b.len] = value
	b.len++
}

// PushSlice appends every byte of s in order. It panics if s does not fit.
func (b *Buf7) PushSlice(s []byte) {
	if int(b.len)+len(s) > len(b.data) {
		panic("fixedbuf: Buf7 overflow")
	}
	copy(b.data[b.len:], s)
	b.len += uint8(len(s))
}

// AsSlice returns the populated prefix of the backing array.
func (b *Buf7) AsSlice() []byte {
	return b.data[:b.len]
}
