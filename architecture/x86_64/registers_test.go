package x86_64_test

import (
	"testing"

	"github.com/keurnel/x86encode/architecture/x86_64"
)

func TestNewGPRChecked(t *testing.T) {
	if _, err := x86_64.NewGPR(x86_64.KindBit8High, 3); err != x86_64.ErrInvalidBit8HighIndex {
		t.Errorf("NewGPR(Bit8High, 3) err = %v, want ErrInvalidBit8HighIndex", err)
	}
	if _, err := x86_64.NewGPR(x86_64.KindBit64, 32); err != x86_64.ErrIndexOutOfRange {
		t.Errorf("NewGPR(Bit64, 32) err = %v, want ErrIndexOutOfRange", err)
	}
	g, err := x86_64.NewGPR(x86_64.KindBit8High, 4)
	if err != nil {
		t.Fatalf("NewGPR(Bit8High, 4): %v", err)
	}
	if !g.Equals(x86_64.AH) {
		t.Errorf("NewGPR(Bit8High, 4) = %v, want AH", g)
	}
}

func TestAHVsSPLAmbiguity(t *testing.T) {
	if !x86_64.AH.IndexMatchesBit8High() {
		t.Error("AH.IndexMatchesBit8High() = false, want true")
	}
	if !x86_64.SPL.IndexMatchesBit8High() {
		t.Error("SPL.IndexMatchesBit8High() = false, want true")
	}
	if x86_64.AH.Kind() == x86_64.SPL.Kind() {
		t.Error("AH and SPL must have distinct kinds despite sharing an index")
	}
	if x86_64.AH.Index() != x86_64.SPL.Index() {
		t.Errorf("AH.Index() = %d, SPL.Index() = %d, want equal", x86_64.AH.Index(), x86_64.SPL.Index())
	}
}

func TestIsExtended(t *testing.T) {
	if x86_64.RAX.IsExtended() {
		t.Error("RAX.IsExtended() = true, want false")
	}
	if !x86_64.R8.IsExtended() {
		t.Error("R8.IsExtended() = false, want true")
	}
}

func TestGPRSize(t *testing.T) {
	tests := []struct {
		gpr  x86_64.GPR
		want x86_64.Size
	}{
		{x86_64.AL, x86_64.Bit8},
		{x86_64.AH, x86_64.Bit8},
		{x86_64.AX, x86_64.Bit16},
		{x86_64.EAX, x86_64.Bit32},
		{x86_64.RAX, x86_64.Bit64},
	}
	for _, tc := range tests {
		if got := tc.gpr.Size(); got != tc.want {
			t.Errorf("Size() = %v, want %v", got, tc.want)
		}
	}
}

func TestLowerThreeBitsIndex(t *testing.T) {
	if x86_64.R15.LowerThreeBitsIndex() != x86_64.RDI.LowerThreeBitsIndex() {
		t.Error("R15 and RDI must share the same low-3-bit ModR/M index")
	}
}
