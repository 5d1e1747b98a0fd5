package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"kickstart/internal/parser"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten FILE",
	Short: "Parse a kickstart file and print its canonical form",
	Long: `Parse a kickstart file and print the re-rendered document to stdout:
directives first, then the %packages section, then the scripts.`,
	Args: cobra.ExactArgs(1),
	RunE: runFlatten,
}

func runFlatten(cmd *cobra.Command, args []string) error {
	h, err := newHandler()
	if err != nil {
		return err
	}
	if err := parser.New(h).ParseFile(args[0]); err != nil {
		return err
	}
	fmt.Print(h.String())
	return nil
}
