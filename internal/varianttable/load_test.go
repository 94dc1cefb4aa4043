package varianttable_test

import (
	"testing"

	"github.com/keurnel/x86encode/internal/debugcontext"
	"github.com/keurnel/x86encode/internal/varianttable"
)

func TestLoadValidTable(t *testing.T) {
	doc := []byte(`
instructions:
  - mnemonic: ret
    variants:
      - opcode: "C3"
        encoding: ZO
  - mnemonic: add
    variants:
      - name: "rm8_imm8"
        opcode: "80"
        extended_opcode: 0
        operands: [rm8, imm8]
        encoding: MI
`)
	dbg := debugcontext.NewDebugContext("table.yaml")
	set, err := varianttable.Load(doc, dbg)
	if err != nil {
		t.Fatalf("Load: %v, diagnostics: %v", err, dbg.Errors())
	}
	if len(set.Instructions) != 2 {
		t.Fatalf("len(Instructions) = %d, want 2", len(set.Instructions))
	}
}

func TestLoadRejectsDuplicateMnemonic(t *testing.T) {
	doc := []byte(`
instructions:
  - mnemonic: ret
    variants:
      - opcode: "C3"
        encoding: ZO
  - mnemonic: RET
    variants:
      - opcode: "C3"
        encoding: ZO
`)
	dbg := debugcontext.NewDebugContext("table.yaml")
	_, err := varianttable.Load(doc, dbg)
	if err == nil {
		t.Fatal("expected error for duplicate mnemonic (case-insensitive)")
	}
}

func TestLoadRejectsUnknownOperand(t *testing.T) {
	doc := []byte(`
instructions:
  - mnemonic: foo
    variants:
      - opcode: "90"
        operands: [zmm0]
        encoding: I
`)
	dbg := debugcontext.NewDebugContext("table.yaml")
	_, err := varianttable.Load(doc, dbg)
	if err == nil {
		t.Fatal("expected error for unknown operand kind")
	}
}

func TestLoadRejectsUnknownEncoding(t *testing.T) {
	doc := []byte(`
instructions:
  - mnemonic: foo
    variants:
      - opcode: "90"
        encoding: VEX
`)
	dbg := debugcontext.NewDebugContext("table.yaml")
	_, err := varianttable.Load(doc, dbg)
	if err == nil {
		t.Fatal("expected error for unknown encoding class")
	}
}

func TestLoadRequiresExtendedOpcodeForMI(t *testing.T) {
	doc := []byte(`
instructions:
  - mnemonic: foo
    variants:
      - opcode: "80"
        operands: [rm8, imm8]
        encoding: MI
`)
	dbg := debugcontext.NewDebugContext("table.yaml")
	_, err := varianttable.Load(doc, dbg)
	if err == nil {
		t.Fatal("expected error for MI variant missing extended_opcode")
	}
}

func TestParseOpcode(t *testing.T) {
	tests := []struct {
		token   string
		want    []byte
		wantErr bool
	}{
		{"C3", []byte{0xC3}, false},
		{"0F1F", []byte{0x0F, 0x1F}, false},
		{"B8+r", []byte{0xB8}, false},
		{"", nil, true},
		{"ABC", nil, true},
		{"GG", nil, true},
		{"0102030405", nil, true},
	}
	for _, tc := range tests {
		got, err := varianttable.ParseOpcode(tc.token)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseOpcode(%q): expected error, got %v", tc.token, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOpcode(%q): unexpected error: %v", tc.token, err)
			continue
		}
		if len(got) != len(tc.want) {
			t.Errorf("ParseOpcode(%q) = % X, want % X", tc.token, got, tc.want)
		}
	}
}
