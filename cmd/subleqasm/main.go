// Command subleqasm assembles a subleq source file into a bit-packed ROM
// image (spec.md §6.2, §6.4).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subleq/asm"
)

var command = &cobra.Command{
	Use:           "subleqasm input-file output-file",
	Short:         "Assemble a subleq source file into a ROM image",
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return assemble(args[0], args[1])
	},
}

func assemble(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("cannot open input file: %w", err)
	}
	defer in.Close()

	a, asmErr := asm.Assemble(inputPath, in)
	if asmErr != nil {
		return asmErr
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("cannot open output file: %w", err)
	}
	defer out.Close()

	return asm.Emit(a.Words(), a.Symbols(), out)
}

func main() {
	if err := command.Execute(); err != nil {
		if asmErr, ok := err.(asm.ErrAsm); ok {
			fmt.Fprintln(os.Stderr, asmErr.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}
