// Package codegen turns a validated variant table into Go source: a
// Mnemonic enumeration and one exported entry-point function per variant,
// each a thin delegation to an architecture/x86_64 encoding primitive.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/keurnel/x86encode/internal/varianttable"
)

// Options controls where and how generated source is written.
type Options struct {
	// PackageName is the package clause of both generated files.
	PackageName string
	// OutDir is the directory generated files are written into.
	OutDir string
}

// Generate reads set and writes mnemonic_gen.go and encoders_gen.go into
// opts.OutDir. Both files carry a "Code generated ... DO NOT EDIT" header.
func Generate(set *varianttable.InstructionSet, opts Options) error {
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("codegen: creating %s: %w", opts.OutDir, err)
	}

	mnemonicSrc, err := renderMnemonics(set, opts.PackageName)
	if err != nil {
		return fmt.Errorf("codegen: rendering mnemonic enum: %w", err)
	}
	if err := writeFormatted(filepath.Join(opts.OutDir, "mnemonic_gen.go"), mnemonicSrc); err != nil {
		return err
	}

	encodersSrc, err := renderEncoders(set, opts.PackageName)
	if err != nil {
		return fmt.Errorf("codegen: rendering encoders: %w", err)
	}
	if err := writeFormatted(filepath.Join(opts.OutDir, "encoders_gen.go"), encodersSrc); err != nil {
		return err
	}

	return nil
}

func writeFormatted(path string, src []byte) error {
	formatted, err := format.Source(src)
	if err != nil {
		// Write the unformatted source anyway so the caller can inspect
		// what went wrong instead of losing the output entirely.
		_ = os.WriteFile(path, src, 0o644)
		return fmt.Errorf("codegen: formatting %s: %w", path, err)
	}
	return os.WriteFile(path, formatted, 0o644)
}

const fileHeader = `// Code generated by cmd/x86gen from the variant table. DO NOT EDIT.

package {{.Package}}
`

var headerTemplate = template.Must(template.New("header").Parse(fileHeader))

func renderMnemonics(set *varianttable.InstructionSet, pkg string) ([]byte, error) {
	names := make([]string, len(set.Instructions))
	for i, instr := range set.Instructions {
		names[i] = instr.Mnemonic
	}
	sort.Strings(names)

	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, struct{ Package string }{pkg}); err != nil {
		return nil, err
	}
	buf.WriteString(mnemonicBody(names))
	return buf.Bytes(), nil
}

func mnemonicBody(sortedNames []string) string {
	var buf bytes.Buffer
	buf.WriteString("\n// Mnemonic enumerates every instruction family this package can encode.\n")
	buf.WriteString("type Mnemonic uint8\n\nconst (\n")
	for i, name := range sortedNames {
		constName := MnemonicConstName(name)
		if i == 0 {
			fmt.Fprintf(&buf, "\t%s Mnemonic = iota + 1\n", constName)
		} else {
			fmt.Fprintf(&buf, "\t%s\n", constName)
		}
	}
	buf.WriteString(")\n\n")

	buf.WriteString("// String returns the lower-case mnemonic text.\n")
	buf.WriteString("func (m Mnemonic) String() string {\n\tswitch m {\n")
	for _, name := range sortedNames {
		fmt.Fprintf(&buf, "\tcase %s:\n\t\treturn %q\n", MnemonicConstName(name), name)
	}
	buf.WriteString("\tdefault:\n\t\treturn \"\"\n\t}\n}\n\n")

	buf.WriteString("// ErrUnknownMnemonic is returned by ParseMnemonic for unrecognized text.\n")
	buf.WriteString("var ErrUnknownMnemonic = errUnknownMnemonic{}\n\n")
	buf.WriteString("type errUnknownMnemonic struct{}\n\n")
	buf.WriteString("func (errUnknownMnemonic) Error() string { return \"x86encode: unknown mnemonic\" }\n\n")

	buf.WriteString("// ParseMnemonic parses lower-case mnemonic text back into a Mnemonic.\n")
	buf.WriteString("func ParseMnemonic(s string) (Mnemonic, error) {\n\tswitch s {\n")
	for _, name := range sortedNames {
		fmt.Fprintf(&buf, "\tcase %q:\n\t\treturn %s, nil\n", name, MnemonicConstName(name))
	}
	buf.WriteString("\tdefault:\n\t\treturn 0, ErrUnknownMnemonic\n\t}\n}\n")

	return buf.String()
}

func renderEncoders(set *varianttable.InstructionSet, pkg string) ([]byte, error) {
	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, struct{ Package string }{pkg}); err != nil {
		return nil, err
	}
	buf.WriteString("\nimport \"github.com/keurnel/x86encode/architecture/x86_64\"\n\n")

	for _, instr := range set.Instructions {
		for _, v := range instr.Variants {
			fn, err := renderVariantFunc(instr.Mnemonic, v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", instr.Mnemonic, err)
			}
			buf.WriteString(fn)
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}
