package x86_64_test

import (
	"testing"

	"github.com/keurnel/x86encode/architecture/x86_64"
)

func TestScaleIndex(t *testing.T) {
	tests := []struct {
		scale x86_64.Scale
		want  uint8
	}{
		{x86_64.Scale1, 0b00},
		{x86_64.Scale2, 0b01},
		{x86_64.Scale4, 0b10},
		{x86_64.Scale8, 0b11},
	}
	for _, tc := range tests {
		if got := tc.scale.Index(); got != tc.want {
			t.Errorf("Scale.Index() = %#b, want %#b", got, tc.want)
		}
	}
}

func TestMemoryBaseIndexExtended(t *testing.T) {
	based := x86_64.NewMemoryBased(x86_64.R12, x86_64.OffsetNone)
	if baseExt, indexExt := based.BaseIndexExtended(); !baseExt || indexExt {
		t.Errorf("Based(R12).BaseIndexExtended() = (%v, %v), want (true, false)", baseExt, indexExt)
	}

	scaled := x86_64.NewMemoryScaled(x86_64.R13, x86_64.Scale4, x86_64.OffsetNone)
	if baseExt, indexExt := scaled.BaseIndexExtended(); baseExt || !indexExt {
		t.Errorf("Scaled(R13).BaseIndexExtended() = (%v, %v), want (false, true)", baseExt, indexExt)
	}

	rip := x86_64.NewMemoryRelativeToRIP(x86_64.OffsetNone)
	if baseExt, indexExt := rip.BaseIndexExtended(); baseExt || indexExt {
		t.Errorf("RelativeToRIP.BaseIndexExtended() = (%v, %v), want (false, false)", baseExt, indexExt)
	}
}

func TestGPROrMemoryRoundTrip(t *testing.T) {
	reg := x86_64.GPROperand(x86_64.RCX)
	if reg.IsMemory() {
		t.Error("GPROperand must not report IsMemory")
	}
	if !reg.GPR().Equals(x86_64.RCX) {
		t.Error("GPROperand(RCX).GPR() != RCX")
	}

	m := x86_64.NewMemoryBased(x86_64.RBX, x86_64.OffsetNone)
	mem := x86_64.MemoryOperand(m)
	if !mem.IsMemory() {
		t.Error("MemoryOperand must report IsMemory")
	}
	if mem.Memory().Base() != m.Base() {
		t.Error("MemoryOperand(m).Memory() did not round-trip the base register")
	}
}
