// Package cmd implements the x86gen command-line surface: a single command
// that turns a variant table document into the generated x86encode/gen/x86enc
// package.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keurnel/x86encode/internal/codegen"
	"github.com/keurnel/x86encode/internal/debugcontext"
	"github.com/keurnel/x86encode/internal/varianttable"
)

// defaultInputPath and defaultOutputDir are the built-in locations used
// when the caller omits --input/--output.
const (
	defaultInputPath = "instructions.yaml"
	defaultOutputDir = "gen/x86enc"
	generatedPackage = "x86enc"
)

var (
	inputPath string
	outputDir string
)

var rootCmd = &cobra.Command{
	Use:   "x86gen",
	Short: "Generate the x86encode public encoder surface from a variant table",
	Long: `x86gen reads a declarative instruction variant table and writes the
generated Mnemonic enumeration and encoder entry points that make up the
module's public surface. It performs no encoding itself — every entry point
it emits delegates to architecture/x86_64.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.Flags().StringVar(&inputPath, "input", defaultInputPath, "path to the instruction variant table")
	rootCmd.Flags().StringVar(&outputDir, "output", defaultOutputDir, "directory generated sources are written into")
}

// Execute runs the root command, exiting non-zero on failure as required by
// the generator's command-line contract: a missing output directory or a
// malformed input table must not be swallowed.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(outputDir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("x86gen: output directory %s does not exist", outputDir)
		}
		return fmt.Errorf("x86gen: stat %s: %w", outputDir, err)
	}

	dbg := debugcontext.NewDebugContext(inputPath)
	set, err := varianttable.LoadFile(inputPath, dbg)
	if err != nil {
		for _, e := range dbg.Errors() {
			fmt.Fprintln(cmd.ErrOrStderr(), e.String())
		}
		return err
	}

	if err := codegen.Generate(set, codegen.Options{PackageName: generatedPackage, OutDir: outputDir}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "x86gen: wrote %d instruction(s) to %s\n", len(set.Instructions), outputDir)
	return nil
}
