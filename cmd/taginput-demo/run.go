package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/taginput/form"
)

func runEditor(cmd *cobra.Command, flags *rootFlags) error {
	opts, err := resolveOptions(cmd, flags)
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdin) || !isTerminal(os.Stderr) {
		return errNoTerminal
	}

	log, err := newLogger(opts.logFile)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cat, err := loadCatalog(cmd.Context(), opts.catalog)
	if err != nil {
		return err
	}
	log.Debug("catalog loaded", zap.Int("entries", cat.Len()), zap.Strings("files", opts.catalog))

	// The UI draws on stderr so the submission can be piped from stdout.
	p := tea.NewProgram(
		newApp(cat, opts, log),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stderr),
		tea.WithContext(cmd.Context()),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	a, ok := final.(app)
	if !ok {
		return nil
	}
	data, submitted, err := a.Submission()
	if err != nil {
		return err
	}
	if !submitted {
		return nil
	}
	return writeSubmission(cmd.OutOrStdout(), a.format, data)
}

// writeSubmission terminates text encodings with a newline. Msgpack is
// written as is.
func writeSubmission(out io.Writer, format form.Format, data []byte) error {
	if format != form.FormatMsgpack && len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write submission: %w", err)
	}
	return nil
}
