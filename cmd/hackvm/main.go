// Command hackvm translates a VM file into Hack assembly.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/hackasm/vm"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var rootCmd = &cobra.Command{
	Use:   "hackvm source.vm",
	Short: "Translate VM code into Hack assembly",
	Long: `hackvm translates one VM file into Hack assembly written next to the
source with the extension replaced by .asm. The program starts by pointing
SP at 256 and ends in an infinite loop at label END.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return translateFile(args[0])
	},
}

func translateFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %q for reading: %w", path, err)
	}
	defer in.Close()

	var out bytes.Buffer
	if err := vm.Translate(in, &out, vm.ModuleName(path)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	outputPath := vm.OutputPath(path)
	if err := os.WriteFile(outputPath, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not write %q: %w", outputPath, err)
	}

	slog.Info("Translated", "Source", path, "Output", outputPath)

	return nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Translation failed", "Error", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
