package codegen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keurnel/x86encode/internal/codegen"
	"github.com/keurnel/x86encode/internal/varianttable"
)

func extOpcode(v uint8) *uint8 { return &v }

func TestGenerateWritesBothFiles(t *testing.T) {
	set := &varianttable.InstructionSet{
		Instructions: []varianttable.Instruction{
			{
				Mnemonic: "ret",
				Variants: []varianttable.Variant{
					{Opcode: "C3", Encoding: "ZO"},
				},
			},
			{
				Mnemonic: "add",
				Variants: []varianttable.Variant{
					{
						Name:           "rm8_imm8",
						Opcode:         "80",
						ExtendedOpcode: extOpcode(0),
						Operands:       []string{"rm8", "imm8"},
						Encoding:       "MI",
					},
				},
			},
		},
	}

	dir := t.TempDir()
	if err := codegen.Generate(set, codegen.Options{PackageName: "x86enc", OutDir: dir}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	mnemonicSrc, err := os.ReadFile(filepath.Join(dir, "mnemonic_gen.go"))
	if err != nil {
		t.Fatalf("reading mnemonic_gen.go: %v", err)
	}
	if !strings.Contains(string(mnemonicSrc), "type Mnemonic uint8") {
		t.Error("mnemonic_gen.go must declare Mnemonic as uint8")
	}
	if !strings.Contains(string(mnemonicSrc), "MnemonicADD") || !strings.Contains(string(mnemonicSrc), "MnemonicRET") {
		t.Error("mnemonic_gen.go missing expected constants")
	}

	encodersSrc, err := os.ReadFile(filepath.Join(dir, "encoders_gen.go"))
	if err != nil {
		t.Fatalf("reading encoders_gen.go: %v", err)
	}
	if !strings.Contains(string(encodersSrc), "func EncodeRet() x86_64.EncodedInstruction") {
		t.Error("encoders_gen.go missing EncodeRet")
	}
	if !strings.Contains(string(encodersSrc), "func EncodeAddRm8Imm8(rm x86_64.GPROrMemory, imm x86_64.Immediate8)") {
		t.Error("encoders_gen.go missing EncodeAddRm8Imm8")
	}
	if !strings.HasPrefix(string(encodersSrc), "// Code generated by cmd/x86gen from the variant table. DO NOT EDIT.") {
		t.Error("encoders_gen.go missing generated-file header")
	}
}

func TestGenerateRejectsMissingExtendedOpcode(t *testing.T) {
	set := &varianttable.InstructionSet{
		Instructions: []varianttable.Instruction{
			{
				Mnemonic: "add",
				Variants: []varianttable.Variant{
					{Name: "rm8_imm8", Opcode: "80", Operands: []string{"rm8", "imm8"}, Encoding: "MI"},
				},
			},
		},
	}
	if err := codegen.Generate(set, codegen.Options{PackageName: "x86enc", OutDir: t.TempDir()}); err == nil {
		t.Fatal("expected error for MI variant missing extended_opcode")
	}
}
