package varianttable

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/keurnel/x86encode/internal/debugcontext"
	"go.yaml.in/yaml/v3"
)

// LoadFile reads and validates a variant table document from path.
// Diagnostics about malformed entries are accumulated into dbg rather than
// failing on the first problem, so a table author sees every mistake in
// one pass; LoadFile still returns a non-nil error if dbg ends up holding
// any error-severity entry.
func LoadFile(path string, dbg *debugcontext.DebugContext) (*InstructionSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("varianttable: reading %s: %w", path, err)
	}
	return Load(raw, dbg)
}

// Load parses and validates a variant table document already in memory.
func Load(raw []byte, dbg *debugcontext.DebugContext) (*InstructionSet, error) {
	var set InstructionSet
	if err := yaml.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("varianttable: parsing document: %w", err)
	}

	validate(&set, dbg)
	if dbg.HasErrors() {
		return nil, fmt.Errorf("varianttable: %d validation error(s), see diagnostics", len(dbg.Errors()))
	}
	return &set, nil
}

func validate(set *InstructionSet, dbg *debugcontext.DebugContext) {
	dbg.SetPhase("validate")
	seenMnemonic := make(map[string]bool)

	for i, instr := range set.Instructions {
		loc := dbg.Loc(i+1, 0)

		if !isMnemonic(instr.Mnemonic) {
			dbg.Error(loc, fmt.Sprintf("mnemonic %q must start with a letter and be alphanumeric", instr.Mnemonic))
			continue
		}
		lower := strings.ToLower(instr.Mnemonic)
		if seenMnemonic[lower] {
			dbg.Error(loc, fmt.Sprintf("duplicate mnemonic %q", instr.Mnemonic))
		}
		seenMnemonic[lower] = true

		seenVariantName := make(map[string]bool)
		for j, v := range instr.Variants {
			vloc := dbg.Loc(i+1, j+1)
			validateVariant(instr.Mnemonic, v, vloc, dbg)

			name := strings.ToLower(v.Name)
			if seenVariantName[name] {
				dbg.Error(vloc, fmt.Sprintf("%s: duplicate variant name %q", instr.Mnemonic, v.Name))
			}
			seenVariantName[name] = true
		}

		if len(instr.Variants) == 0 {
			dbg.Error(loc, fmt.Sprintf("%s: must declare at least one variant", instr.Mnemonic))
		}
	}
}

func validateVariant(mnemonic string, v Variant, loc debugcontext.Location, dbg *debugcontext.DebugContext) {
	if v.Name != "" && !isAlphaNumericUnderscore(v.Name) {
		dbg.Error(loc, fmt.Sprintf("%s: variant name %q must be alphanumeric/underscore", mnemonic, v.Name))
	}

	if _, err := ParseOpcode(v.Opcode); err != nil {
		dbg.Error(loc, fmt.Sprintf("%s: opcode %q: %v", mnemonic, v.Opcode, err))
	}

	if !validEncodings[v.Encoding] {
		dbg.Error(loc, fmt.Sprintf("%s: unknown encoding class %q", mnemonic, v.Encoding))
	}

	for _, op := range v.Operands {
		if !validOperands[Operand(op)] {
			dbg.Error(loc, fmt.Sprintf("%s: unknown operand kind %q", mnemonic, op))
		}
	}

	for _, p := range v.Properties {
		if !validProperties[p] {
			dbg.Error(loc, fmt.Sprintf("%s: unknown property %q", mnemonic, p))
		}
	}

	needsExtOpcode := v.Encoding == "MI" || v.Encoding == "M"
	if needsExtOpcode && v.ExtendedOpcode == nil {
		dbg.Error(loc, fmt.Sprintf("%s: encoding %s requires extended_opcode", mnemonic, v.Encoding))
	}
	if v.ExtendedOpcode != nil && *v.ExtendedOpcode > 7 {
		dbg.Error(loc, fmt.Sprintf("%s: extended_opcode must be 0-7", mnemonic))
	}
}

// ParseOpcode normalizes a table opcode token into its raw bytes, stripping
// a trailing "+r" marker (documentation only — the O/OI encoding classes
// already imply that the low 3 bits of the last byte are register-folded).
func ParseOpcode(token string) ([]byte, error) {
	trimmed := strings.TrimSuffix(token, "+r")
	if trimmed == "" {
		return nil, fmt.Errorf("empty opcode")
	}
	if len(trimmed)%2 != 0 {
		return nil, fmt.Errorf("odd-length hex opcode %q", trimmed)
	}
	if len(trimmed) > 8 {
		return nil, fmt.Errorf("opcode %q longer than 4 bytes", trimmed)
	}
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid hex opcode %q: %w", trimmed, err)
	}
	return b, nil
}

func isMnemonic(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

func isAlphaNumericUnderscore(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
