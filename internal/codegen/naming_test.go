package codegen_test

import (
	"testing"

	"github.com/keurnel/x86encode/internal/codegen"
	"github.com/keurnel/x86encode/internal/varianttable"
)

func TestEntryPointName(t *testing.T) {
	tests := []struct {
		mnemonic string
		variant  string
		want     string
	}{
		{"ret", "", "EncodeRet"},
		{"add", "rm8_imm8", "EncodeAddRm8Imm8"},
		{"add", "AL_imm8", "EncodeAddAlImm8"},
		{"jcc", "GE_imm32", "EncodeJccGeImm32"},
		{"lea", "reg64_m", "EncodeLeaReg64M"},
	}
	for _, tc := range tests {
		got := codegen.EntryPointName(tc.mnemonic, varianttable.Variant{Name: tc.variant})
		if got != tc.want {
			t.Errorf("EntryPointName(%q, %q) = %q, want %q", tc.mnemonic, tc.variant, got, tc.want)
		}
	}
}

func TestMnemonicConstName(t *testing.T) {
	if got := codegen.MnemonicConstName("add"); got != "MnemonicADD" {
		t.Errorf("MnemonicConstName(add) = %q, want MnemonicADD", got)
	}
}
