// Command hackasm assembles a Hack assembly file into a .hack file of 16-digit
// binary words next to the source.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/hackasm/asm"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var rootCmd = &cobra.Command{
	Use:   "hackasm source.asm",
	Short: "Assemble Hack assembly into binary machine code",
	Long: `hackasm translates one Hack assembly file into machine code. The output
is written next to the source with the extension replaced by .hack, one
16-character binary word per line. Translation is all-or-nothing: on the
first error nothing is written and the offending line is reported.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return assembleFile(args[0])
	},
}

func assembleFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %q for reading: %w", path, err)
	}
	defer in.Close()

	var out bytes.Buffer
	if err := asm.New().Assemble(in, &out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	outputPath := asm.OutputPath(path)
	if err := os.WriteFile(outputPath, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not write %q: %w", outputPath, err)
	}

	slog.Info("Assembled", "Source", path, "Output", outputPath)

	return nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Assembly failed", "Error", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
