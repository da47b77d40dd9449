package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iw2rmb/taginput"
	"github.com/iw2rmb/taginput/internal/config"
)

var errNoTerminal = errors.New("taginput-demo needs an interactive terminal")

type rootFlags struct {
	configPath string
	catalog    []string
	format     string
	logFile    string
	maxRows    int
	popupWidth int
}

func newRootCmd() *cobra.Command {
	root, _ := buildRootCmd()
	return root
}

func buildRootCmd() (*cobra.Command, *rootFlags) {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "taginput-demo",
		Short: "Tag input editor with catalog suggestions",
		Long: `taginput-demo runs a single-line tag input over a catalog.
Type to see suggestions, tab or click to add a tag, backspace to remove one.
ctrl+s prints the submission and exits; ctrl+c exits without output.`,
		Version:       taginput.Version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", config.Path(), "config file")
	pf.StringSliceVar(&flags.catalog, "catalog", nil, "catalog files (.yaml, .toml, .json); repeatable")
	root.Flags().StringVar(&flags.format, "format", "", "submission format (form|json|yaml|msgpack)")
	root.Flags().StringVar(&flags.logFile, "log", "", "write debug logs to this file")
	root.Flags().IntVar(&flags.maxRows, "max-rows", 0, "maximum visible suggestion rows")
	root.Flags().IntVar(&flags.popupWidth, "popup-width", 0, "suggestion popup width in cells")

	root.AddCommand(newMatchCmd(flags))
	root.AddCommand(newVersionCmd())
	return root, flags
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		_, _ = os.Stderr.WriteString("taginput-demo: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
