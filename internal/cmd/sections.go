package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"kickstart/internal/parser"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections FILE",
	Short: "List the sections a kickstart file uses",
	Long: `Parse a kickstart file and print each section tag that appears in
it, with the number of occurrences.`,
	Args: cobra.ExactArgs(1),
	RunE: runSections,
}

func runSections(cmd *cobra.Command, args []string) error {
	h, err := newHandler()
	if err != nil {
		return err
	}
	if err := parser.New(h).ParseFile(args[0]); err != nil {
		return err
	}
	for _, tag := range h.SectionTags() {
		sec, _ := h.Section(tag)
		if sec.Seen() {
			fmt.Printf("%s\t%d\n", tag, sec.TimesSeen())
		}
	}
	return nil
}
