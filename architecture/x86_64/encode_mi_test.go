package x86_64_test

import (
	"bytes"
	"testing"

	"github.com/keurnel/x86encode/architecture/x86_64"
)

// For a register operand the 64-bit MI forms emit REX.W only when the
// register reports Bit64; a memory operand carries no size, so there REX.W
// comes from the primitive alone.
func TestEncodeMIRm64EmitsRexWOnlyForBit64Operand(t *testing.T) {
	got := x86_64.EncodeMIRm64Imm32([]byte{0x81}, 0, x86_64.GPROperand(x86_64.RAX), x86_64.Immediate32FromInt32(1))
	want := []byte{0x48, 0x81, 0xC0, 0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(got.AsSlice(), want) {
		t.Fatalf("got % X, want % X", got.AsSlice(), want)
	}
}

func TestEncodeMIRm8ImmAHOmitsRex(t *testing.T) {
	got := x86_64.EncodeMIRm8Imm8([]byte{0x80}, 0, x86_64.GPROperand(x86_64.AH), x86_64.Immediate8FromInt8(0))
	if got.AsSlice()[0] == 0x40 {
		t.Fatalf("AH must not be disambiguated with a REX prefix, got % X", got.AsSlice())
	}
}

func TestEncodeMIRm8ImmSPLRequiresBareRex(t *testing.T) {
	got := x86_64.EncodeMIRm8Imm8([]byte{0x80}, 0, x86_64.GPROperand(x86_64.SPL), x86_64.Immediate8FromInt8(0))
	if got.AsSlice()[0] != 0x40 {
		t.Fatalf("SPL must be disambiguated with a bare REX prefix, got % X", got.AsSlice())
	}
}

func TestScaledMemoryRejectsRSPIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for RSP used as a SIB index")
		}
	}()
	m := x86_64.NewMemoryScaled(x86_64.RSP, x86_64.Scale1, x86_64.OffsetNone)
	x86_64.EncodeMIRm32Imm8([]byte{0x83}, 0, x86_64.MemoryOperand(m), x86_64.Immediate8FromInt8(0))
}
