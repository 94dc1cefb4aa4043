package x86_64_test

import (
	"bytes"
	"testing"

	"github.com/keurnel/x86encode/architecture/x86_64"
)

// REX.W on the MI/M-class memory path must come from bit64RequiresRexW
// directly: a memory operand carries no register-size field to gate on,
// unlike the register branch. Missing this means every 64-bit memory r/m
// form (NEG, NOT, INC, DEC, ADD rm64+imm, ...) silently encodes as its
// 32-bit form.
func TestEncodeMGPROrMemoryEmitsRexWForMemoryOperand(t *testing.T) {
	rm := x86_64.MemoryOperand(x86_64.NewMemoryBased(x86_64.RAX, x86_64.OffsetNone))
	got := x86_64.EncodeMGPROrMemory([]byte{0xf7}, 0x03, rm, true, false)
	want := []byte{0x48, 0xf7, 0x18}
	if !bytes.Equal(got.AsSlice(), want) {
		t.Fatalf("got % X, want % X", got.AsSlice(), want)
	}
}

func TestEncodeMGPROrMemoryOmitsRexWFor32BitMemoryOperand(t *testing.T) {
	rm := x86_64.MemoryOperand(x86_64.NewMemoryBased(x86_64.RAX, x86_64.OffsetNone))
	got := x86_64.EncodeMGPROrMemory([]byte{0xf7}, 0x03, rm, false, false)
	want := []byte{0xf7, 0x18}
	if !bytes.Equal(got.AsSlice(), want) {
		t.Fatalf("got % X, want % X", got.AsSlice(), want)
	}
}

func TestEncodeMGPROrMemoryCombinesRexWWithExtendedBase(t *testing.T) {
	rm := x86_64.MemoryOperand(x86_64.NewMemoryBased(x86_64.R12, x86_64.OffsetNone))
	got := x86_64.EncodeMGPROrMemory([]byte{0xf7}, 0x03, rm, true, false)
	want := []byte{0x49, 0xf7, 0x1c, 0x24}
	if !bytes.Equal(got.AsSlice(), want) {
		t.Fatalf("got % X, want % X", got.AsSlice(), want)
	}
}
