package codegen

import (
	"strings"
	"unicode"

	"github.com/keurnel/x86encode/internal/varianttable"
)

// EntryPointName derives the exported Go function name for a variant:
// Encode<Mnemonic>[<Name>]. Rust's generator lower-cases everything and
// joins with underscores (encode_add_rm8_imm8); Go identifiers read better
// in MixedCaps, so the segments are title-cased and concatenated instead,
// with no separators — EncodeAddRm8Imm8.
func EntryPointName(mnemonic string, variant varianttable.Variant) string {
	var b strings.Builder
	b.WriteString("Encode")
	b.WriteString(pascalSegment(mnemonic))
	if variant.Name != "" {
		for _, part := range strings.FieldsFunc(variant.Name, func(r rune) bool { return r == '_' }) {
			b.WriteString(pascalWord(part))
		}
	}
	return b.String()
}

// pascalSegment title-cases a whole token, preserving any embedded digits
// (so "rm8" becomes "Rm8", not "RM8" — readability over acronym-casing,
// matching how the rest of this package spells out register widths).
func pascalSegment(s string) string {
	return pascalWord(s)
}

func pascalWord(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// MnemonicConstName derives the Mnemonic enum constant name for m, e.g.
// "add" -> "MnemonicADD".
func MnemonicConstName(mnemonic string) string {
	return "Mnemonic" + strings.ToUpper(mnemonic)
}
