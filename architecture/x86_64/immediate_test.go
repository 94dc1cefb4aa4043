package x86_64_test

import (
	"bytes"
	"testing"

	"github.com/keurnel/x86encode/architecture/x86_64"
)

func TestImmediateEncodeIsLittleEndian(t *testing.T) {
	tests := []struct {
		name string
		got  []byte
		want []byte
	}{
		{"imm8", x86_64.Immediate8FromUint8(0xAB).Encode(), []byte{0xAB}},
		{"imm16", x86_64.Immediate16FromUint16(0x1234).Encode(), []byte{0x34, 0x12}},
		{"imm32", x86_64.Immediate32FromUint32(0x12345678).Encode(), []byte{0x78, 0x56, 0x34, 0x12}},
		{"imm64", x86_64.Immediate64FromUint64(0x0123456789ABCDEF).Encode(), []byte{0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01}},
	}
	for _, tc := range tests {
		if !bytes.Equal(tc.got, tc.want) {
			t.Errorf("%s: got % X, want % X", tc.name, tc.got, tc.want)
		}
	}
}

// Extension identities from the compile-time table: zero-extending and
// sign-extending -1i8 and sign-extending a larger negative value. These call
// the named from_immN_{zero,sign}_extended helpers directly, matching the
// compile-time assertions in the original's models/immediates_validate.rs.
func TestExtensionIdentities(t *testing.T) {
	negOne8 := x86_64.Immediate8FromInt8(-1)

	if got := x86_64.Immediate16FromImm8ZeroExtended(negOne8).Value(); got != 0x00FF {
		t.Errorf("zero-extend -1i8 to 16 = %#x, want 0x00FF", got)
	}
	if got := x86_64.Immediate32FromImm8ZeroExtended(negOne8).Value(); got != 0x000000FF {
		t.Errorf("zero-extend -1i8 to 32 = %#x, want 0x000000FF", got)
	}
	if got := x86_64.Immediate64FromImm8ZeroExtended(negOne8).Value(); got != 0x00000000000000FF {
		t.Errorf("zero-extend -1i8 to 64 = %#x, want 0xFF", got)
	}

	if got := x86_64.Immediate16FromImm8SignExtended(negOne8).Value(); got != 0xFFFF {
		t.Errorf("sign-extend -1i8 to 16 = %#x, want 0xFFFF", got)
	}
	if got := x86_64.Immediate32FromImm8SignExtended(negOne8).Value(); got != 0xFFFFFFFF {
		t.Errorf("sign-extend -1i8 to 32 = %#x, want 0xFFFFFFFF", got)
	}
	if got := x86_64.Immediate64FromImm8SignExtended(negOne8).Value(); got != 0xFFFFFFFFFFFFFFFF {
		t.Errorf("sign-extend -1i8 to 64 = %#x, want all-ones", got)
	}

	negTwoHundred16 := x86_64.Immediate16FromInt16(-200)
	if got := x86_64.Immediate32FromImm16ZeroExtended(negTwoHundred16).Value(); got != 65336 {
		t.Errorf("zero-extend -200i16 to 32 = %d, want 65336", got)
	}
	if got := x86_64.Immediate32FromImm16SignExtended(negTwoHundred16).Value(); got != 0xFFFFFF38 {
		t.Errorf("sign-extend -200i16 to 32 = %#x, want 0xFFFFFF38", got)
	}

	negOne16 := x86_64.Immediate16FromInt16(-1)
	if got := x86_64.Immediate64FromImm16SignExtended(negOne16).Value(); got != 0xFFFFFFFFFFFFFFFF {
		t.Errorf("sign-extend -1i16 to 64 = %#x, want all-ones", got)
	}
	if got := x86_64.Immediate64FromImm16ZeroExtended(x86_64.Immediate16FromInt16(1)).Value(); got != 1 {
		t.Errorf("zero-extend 1i16 to 64 = %#x, want 1", got)
	}

	negBig32 := x86_64.Immediate32FromInt32(-800000)
	if got := x86_64.Immediate64FromImm32SignExtended(negBig32).Value(); got != 0xFFFFFFFFFFF3CB00 {
		t.Errorf("sign-extend -800000i32 to 64 = %#x, want 0xFFFFFFFFFFF3CB00", got)
	}
	if got := x86_64.Immediate64FromImm32ZeroExtended(negBig32).Value(); got != 0xFFF3CB00 {
		t.Errorf("zero-extend -800000i32 to 64 = %#x, want 0xFFF3CB00", got)
	}
}

func TestOffsetSignExtension(t *testing.T) {
	o := x86_64.OffsetFromInt8(-1)
	got := o.AsSignExtendedImm32()
	if got.Value() != 0xFFFFFFFF {
		t.Errorf("OffsetFromInt8(-1).AsSignExtendedImm32() = %#x, want 0xFFFFFFFF", got.Value())
	}

	none := x86_64.OffsetNone
	if none.AsSignExtendedImm32().Value() != 0 {
		t.Errorf("OffsetNone.AsSignExtendedImm32() = %#x, want 0", none.AsSignExtendedImm32().Value())
	}

	full := x86_64.OffsetFromInt32(-2000)
	if full.AsSignExtendedImm32().Value() != 0xFFFFF830 {
		t.Errorf("OffsetFromInt32(-2000).AsSignExtendedImm32() = %#x, want 0xFFFFF830", full.AsSignExtendedImm32().Value())
	}
}
