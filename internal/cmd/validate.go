package cmd

import (
	"github.com/spf13/cobra"

	"kickstart/internal/parser"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a kickstart file for syntax and schema errors",
	Long: `Parse a kickstart file and report the first error found, with the
line number it originated from. Exits non-zero when the file is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	h, err := newHandler()
	if err != nil {
		return err
	}
	return parser.New(h).ParseFile(args[0])
}
