// Package cmd provides the CLI commands for kscheck.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"kickstart/internal/config"
	"kickstart/internal/handler"
	"kickstart/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "kscheck",
	Short: "Validate and rewrite kickstart files",
	Long: `kscheck parses kickstart installation files against a chosen syntax
version. It reports schema violations with their line numbers, can flatten a
parsed file back to canonical text, and lists the sections a file uses.`,
	SilenceUsage: true,
}

var (
	versionName string
	configFile  string
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&versionName, "version", "v", "", "kickstart syntax version (e.g. FC6, F24; default: newest)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a kscheck.toml configuration file")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(flattenCmd)
	rootCmd.AddCommand(sectionsCmd)
}

// newHandler builds a handler from the persistent flags: the config file
// supplies defaults, an explicit --version overrides it, and deprecation
// warnings are logged.
func newHandler() (*handler.Handler, error) {
	v := version.Devel
	var cfg *config.Config

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		resolved, err := cfg.ResolveVersion()
		if err != nil {
			return nil, err
		}
		v = resolved
	}
	if versionName != "" {
		parsed, err := version.Parse(versionName)
		if err != nil {
			return nil, err
		}
		v = parsed
	}

	h := handler.New(v)
	h.Warnf = func(lineno int, format string, args ...any) {
		log.Warn(fmt.Sprintf(format, args...), "line", lineno)
	}
	if cfg != nil {
		cfg.Apply(h)
	}
	return h, nil
}
