// Package varianttable holds the declarative description of every
// supported instruction: mnemonic, variants, opcode bytes, operand-encoding
// class, optional ModR/M opcode extension, and prefix flags. The code
// generator (internal/codegen) is the only consumer; nothing at runtime
// reads a variant table — by the time a binary runs, the table has already
// been turned into the generated entry points under gen/x86enc.
package varianttable

// InstructionSet is the root of a variant table document: every supported
// mnemonic and its variants.
type InstructionSet struct {
	Instructions []Instruction `yaml:"instructions"`
}

// Instruction groups every variant sharing one mnemonic.
type Instruction struct {
	Mnemonic string    `yaml:"mnemonic"`
	Variants []Variant `yaml:"variants"`
}

// Variant is one opcode/operand-shape combination within a mnemonic.
type Variant struct {
	// Name disambiguates multiple variants that would otherwise collide
	// once rendered into an entry-point name, e.g. "rm8_imm8" vs
	// "AL_imm8" for ADD. At most one variant of a mnemonic may leave it
	// empty.
	Name string `yaml:"name,omitempty"`

	// Opcode is the literal opcode byte sequence in hex, e.g. "0F1F" for
	// a two-byte opcode, or "B8+r" when the low 3 bits are folded in by
	// the O/OI encoding classes.
	Opcode string `yaml:"opcode"`

	// ExtendedOpcode is the ModR/M reg-field opcode extension (0-7) for
	// the MI and M encoding classes. Nil when the class doesn't use one.
	ExtendedOpcode *uint8 `yaml:"extended_opcode,omitempty"`

	// Operands lists the operand kinds in left-to-right assembly-syntax
	// order, e.g. ["rm8", "imm8"]. See Operand for the recognized set.
	Operands []string `yaml:"operands,omitempty"`

	// Encoding names the operand-encoding class: ZO, I, MI, MR, RM, O,
	// OI, or M.
	Encoding string `yaml:"encoding"`

	// Properties lists additional prefix behavior for the I and M classes.
	// "rex.w" selects the REX.W imm32 primitive for I-class variants and
	// sets bit64RequiresRexW for M-class variants; "oso" selects the 0x66
	// imm16 primitive for I-class variants and sets bit16RequiresOSPrefix
	// for M-class variants. The MI, MR/RM, O and OI classes ignore both and
	// take their prefixes from the operand widths.
	Properties []string `yaml:"properties,omitempty"`

	Description string `yaml:"description,omitempty"`
}

// Operand is a recognized operand-kind token used in Variant.Operands.
type Operand string

const (
	OperandImm8  Operand = "imm8"
	OperandImm16 Operand = "imm16"
	OperandImm32 Operand = "imm32"
	OperandImm64 Operand = "imm64"
	OperandReg8  Operand = "reg8"
	OperandReg16 Operand = "reg16"
	OperandReg32 Operand = "reg32"
	OperandReg64 Operand = "reg64"
	OperandRM8   Operand = "rm8"
	OperandRM16  Operand = "rm16"
	OperandRM32  Operand = "rm32"
	OperandRM64  Operand = "rm64"
	OperandM     Operand = "m"
)

// validOperands is used by validateVariant to reject unknown operand tokens.
var validOperands = map[Operand]bool{
	OperandImm8: true, OperandImm16: true, OperandImm32: true, OperandImm64: true,
	OperandReg8: true, OperandReg16: true, OperandReg32: true, OperandReg64: true,
	OperandRM8: true, OperandRM16: true, OperandRM32: true, OperandRM64: true,
	OperandM: true,
}

var validEncodings = map[string]bool{
	"ZO": true, "I": true, "MI": true, "MR": true, "RM": true, "O": true, "OI": true, "M": true,
}

var validProperties = map[string]bool{
	"rex.w": true, "oso": true,
}
