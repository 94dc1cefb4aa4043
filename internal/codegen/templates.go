package codegen

import (
	"fmt"
	"strings"

	"github.com/keurnel/x86encode/internal/varianttable"
)

// renderVariantFunc emits one exported Go function implementing variant,
// dispatching on its encoding class the way the original per-class
// generator files (encode_funcs in the source table) do.
func renderVariantFunc(mnemonic string, v varianttable.Variant) (string, error) {
	name := EntryPointName(mnemonic, v)
	opcodeBytes, err := varianttable.ParseOpcode(v.Opcode)
	if err != nil {
		return "", fmt.Errorf("variant %s: %w", v.Name, err)
	}
	opcodeLiteral := byteSliceLiteral(opcodeBytes)
	hasProperty := func(name string) bool {
		for _, p := range v.Properties {
			if p == name {
				return true
			}
		}
		return false
	}
	rexW := hasProperty("rex.w")
	oso := hasProperty("oso")

	switch v.Encoding {
	case "ZO":
		return renderZO(name, opcodeBytes), nil

	case "I":
		return renderI(name, v, opcodeLiteral, rexW, oso)

	case "MI":
		return renderMI(name, v, opcodeLiteral)

	case "MR":
		return renderMR(name, v, opcodeLiteral)

	case "RM":
		return renderRM(name, v, opcodeLiteral)

	case "O":
		return renderO(name, v, opcodeBytes)

	case "OI":
		return renderOI(name, v, opcodeBytes)

	case "M":
		return renderM(name, v, opcodeLiteral, v.ExtendedOpcode, rexW, oso)

	default:
		return "", fmt.Errorf("variant %s: unsupported encoding class %q", v.Name, v.Encoding)
	}
}

func byteSliceLiteral(b []byte) string {
	parts := make([]string, len(b))
	for i, x := range b {
		parts[i] = fmt.Sprintf("0x%02x", x)
	}
	return "[]byte{" + strings.Join(parts, ", ") + "}"
}

func docComment(name, mnemonic string) string {
	return fmt.Sprintf("// %s encodes the %s instruction.\n", name, mnemonic)
}

func renderZO(name string, opcode []byte) string {
	parts := make([]string, len(opcode))
	for i, b := range opcode {
		parts[i] = fmt.Sprintf("0x%02x", b)
	}
	return fmt.Sprintf(
		"func %s() x86_64.EncodedInstruction {\n\treturn x86_64.EncodeZO(%s)\n}\n",
		name, strings.Join(parts, ", "),
	)
}

func immWidth(operand string) (string, bool) {
	switch varianttable.Operand(operand) {
	case varianttable.OperandImm8:
		return "8", true
	case varianttable.OperandImm16:
		return "16", true
	case varianttable.OperandImm32:
		return "32", true
	case varianttable.OperandImm64:
		return "64", true
	default:
		return "", false
	}
}

func rmWidth(operand string) (string, bool) {
	switch varianttable.Operand(operand) {
	case varianttable.OperandRM8:
		return "8", true
	case varianttable.OperandRM16:
		return "16", true
	case varianttable.OperandRM32:
		return "32", true
	case varianttable.OperandRM64:
		return "64", true
	default:
		return "", false
	}
}

func regWidth(operand string) (string, bool) {
	switch varianttable.Operand(operand) {
	case varianttable.OperandReg8:
		return "8", true
	case varianttable.OperandReg16:
		return "16", true
	case varianttable.OperandReg32:
		return "32", true
	case varianttable.OperandReg64:
		return "64", true
	default:
		return "", false
	}
}

func renderI(name string, v varianttable.Variant, opcodeLiteral string, rexW, oso bool) (string, error) {
	if len(v.Operands) != 1 {
		return "", fmt.Errorf("I-class variant %s must have exactly one operand", v.Name)
	}
	width, ok := immWidth(v.Operands[0])
	if !ok {
		return "", fmt.Errorf("I-class variant %s has non-immediate operand %q", v.Name, v.Operands[0])
	}

	var primitive string
	switch {
	case width == "8":
		primitive = "EncodeIImm8"
	case width == "16" && oso:
		primitive = "EncodeIImm16OperandSizeOverride"
	case width == "16":
		primitive = "EncodeIImm16"
	case width == "32" && rexW:
		primitive = "EncodeIImm32PrefixRexW"
	case width == "32":
		primitive = "EncodeIImm32"
	default:
		return "", fmt.Errorf("I-class variant %s has unsupported immediate width %s", v.Name, width)
	}

	return fmt.Sprintf(
		"%sfunc %s(imm x86_64.Immediate%s) x86_64.EncodedInstruction {\n\treturn x86_64.%s(%s, imm)\n}\n",
		docComment(name, v.Name), name, width, primitive, opcodeLiteral,
	), nil
}

func renderMI(name string, v varianttable.Variant, opcodeLiteral string) (string, error) {
	if len(v.Operands) != 2 {
		return "", fmt.Errorf("MI-class variant %s must have exactly two operands", v.Name)
	}
	rmW, ok := rmWidth(v.Operands[0])
	if !ok {
		return "", fmt.Errorf("MI-class variant %s first operand must be r/m, got %q", v.Name, v.Operands[0])
	}
	immW, ok := immWidth(v.Operands[1])
	if !ok {
		return "", fmt.Errorf("MI-class variant %s second operand must be immediate, got %q", v.Name, v.Operands[1])
	}
	if v.ExtendedOpcode == nil {
		return "", fmt.Errorf("MI-class variant %s requires an extended opcode", v.Name)
	}

	primitive := fmt.Sprintf("EncodeMIRm%sImm%s", rmW, immW)
	return fmt.Sprintf(
		"%sfunc %s(rm x86_64.GPROrMemory, imm x86_64.Immediate%s) x86_64.EncodedInstruction {\n\treturn x86_64.%s(%s, 0x%02x, rm, imm)\n}\n",
		docComment(name, v.Name), name, immW, primitive, opcodeLiteral, *v.ExtendedOpcode,
	), nil
}

func renderMR(name string, v varianttable.Variant, opcodeLiteral string) (string, error) {
	if len(v.Operands) != 2 {
		return "", fmt.Errorf("MR-class variant %s must have exactly two operands", v.Name)
	}
	if _, ok := rmWidth(v.Operands[0]); !ok {
		return "", fmt.Errorf("MR-class variant %s first operand must be r/m, got %q", v.Name, v.Operands[0])
	}
	if _, ok := regWidth(v.Operands[1]); !ok {
		return "", fmt.Errorf("MR-class variant %s second operand must be a register, got %q", v.Name, v.Operands[1])
	}
	return fmt.Sprintf(
		"%sfunc %s(rm x86_64.GPROrMemory, reg x86_64.GPR) x86_64.EncodedInstruction {\n\treturn x86_64.EncodeMR(%s, rm, reg)\n}\n",
		docComment(name, v.Name), name, opcodeLiteral,
	), nil
}

// renderRM shares the MR primitive: the ModR/M byte layout (reg field holds
// the register operand, rm field holds the r/m operand) is identical, only
// the asm-level operand order differs, so the generated call site simply
// names the destination register first.
func renderRM(name string, v varianttable.Variant, opcodeLiteral string) (string, error) {
	if len(v.Operands) != 2 {
		return "", fmt.Errorf("RM-class variant %s must have exactly two operands", v.Name)
	}
	if _, ok := regWidth(v.Operands[0]); !ok {
		return "", fmt.Errorf("RM-class variant %s first operand must be a register, got %q", v.Name, v.Operands[0])
	}

	// A second operand of "m" marks a memory-only r/m, e.g. LEA, where a
	// bare-register r/m would be meaningless. The entry point then takes a
	// typed Memory instead of the general GPROrMemory.
	if varianttable.Operand(v.Operands[1]) == varianttable.OperandM {
		return fmt.Sprintf(
			"%sfunc %s(reg x86_64.GPR, m x86_64.Memory) x86_64.EncodedInstruction {\n\treturn x86_64.EncodeMRMemoryOnly(%s, m, reg)\n}\n",
			docComment(name, v.Name), name, opcodeLiteral,
		), nil
	}

	if _, ok := rmWidth(v.Operands[1]); !ok {
		return "", fmt.Errorf("RM-class variant %s second operand must be r/m or m, got %q", v.Name, v.Operands[1])
	}
	return fmt.Sprintf(
		"%sfunc %s(reg x86_64.GPR, rm x86_64.GPROrMemory) x86_64.EncodedInstruction {\n\treturn x86_64.EncodeMR(%s, rm, reg)\n}\n",
		docComment(name, v.Name), name, opcodeLiteral,
	), nil
}

func renderO(name string, v varianttable.Variant, opcode []byte) (string, error) {
	if len(v.Operands) != 1 {
		return "", fmt.Errorf("O-class variant %s must have exactly one operand", v.Name)
	}
	if _, ok := regWidth(v.Operands[0]); !ok {
		return "", fmt.Errorf("O-class variant %s operand must be a register, got %q", v.Name, v.Operands[0])
	}
	if len(opcode) != 1 {
		return "", fmt.Errorf("O-class variant %s opcode must be a single byte", v.Name)
	}
	return fmt.Sprintf(
		"%sfunc %s(reg x86_64.GPR) x86_64.EncodedInstruction {\n\treturn x86_64.EncodeO(0x%02x, reg)\n}\n",
		docComment(name, v.Name), name, opcode[0],
	), nil
}

func renderOI(name string, v varianttable.Variant, opcode []byte) (string, error) {
	if len(v.Operands) != 2 {
		return "", fmt.Errorf("OI-class variant %s must have exactly two operands", v.Name)
	}
	regW, ok := regWidth(v.Operands[0])
	if !ok {
		return "", fmt.Errorf("OI-class variant %s first operand must be a register, got %q", v.Name, v.Operands[0])
	}
	immW, ok := immWidth(v.Operands[1])
	if !ok {
		return "", fmt.Errorf("OI-class variant %s second operand must be immediate, got %q", v.Name, v.Operands[1])
	}
	if regW != immW {
		return "", fmt.Errorf("OI-class variant %s register width %s must match immediate width %s", v.Name, regW, immW)
	}
	if len(opcode) != 1 {
		return "", fmt.Errorf("OI-class variant %s opcode must be a single byte", v.Name)
	}
	primitive := fmt.Sprintf("EncodeOIR%sImm%s", regW, immW)
	return fmt.Sprintf(
		"%sfunc %s(reg x86_64.GPR, imm x86_64.Immediate%s) x86_64.EncodedInstruction {\n\treturn x86_64.%s(0x%02x, reg, imm)\n}\n",
		docComment(name, v.Name), name, immW, primitive, opcode[0],
	), nil
}

func renderM(name string, v varianttable.Variant, opcodeLiteral string, extendedOpcode *uint8, rexW, oso bool) (string, error) {
	if len(v.Operands) != 1 {
		return "", fmt.Errorf("M-class variant %s must have exactly one operand", v.Name)
	}
	var ext uint8
	if extendedOpcode != nil {
		ext = *extendedOpcode
	}

	switch varianttable.Operand(v.Operands[0]) {
	case varianttable.OperandM:
		return fmt.Sprintf(
			"%sfunc %s(m x86_64.Memory) x86_64.EncodedInstruction {\n\treturn x86_64.EncodeMGPROrMemory(%s, 0x%02x, x86_64.MemoryOperand(m), %t, %t)\n}\n",
			docComment(name, v.Name), name, opcodeLiteral, ext, rexW, oso,
		), nil
	default:
		if _, ok := rmWidth(v.Operands[0]); !ok {
			return "", fmt.Errorf("M-class variant %s operand must be r/m or memory, got %q", v.Name, v.Operands[0])
		}
		return fmt.Sprintf(
			"%sfunc %s(rm x86_64.GPROrMemory) x86_64.EncodedInstruction {\n\treturn x86_64.EncodeMGPROrMemory(%s, 0x%02x, rm, %t, %t)\n}\n",
			docComment(name, v.Name), name, opcodeLiteral, ext, rexW, oso,
		), nil
	}
}
