package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/taginput/catalog"
	"github.com/iw2rmb/taginput/editor"
	"github.com/iw2rmb/taginput/form"
	"github.com/iw2rmb/taginput/internal/config"
)

// options is the effective configuration: the config file overridden by
// flags the user set.
type options struct {
	catalog    []string
	format     form.Format
	logFile    string
	maxRows    int
	popupWidth int
	minX       int
}

func resolveOptions(cmd *cobra.Command, flags *rootFlags) (options, error) {
	cfg, err := config.LoadFrom(flags.configPath)
	if err != nil {
		return options{}, err
	}

	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("catalog") {
		cfg.Catalog = flags.catalog
	}
	if changed("format") {
		cfg.Format = flags.format
	}
	if changed("log") {
		cfg.LogFile = flags.logFile
	}
	if changed("max-rows") {
		cfg.MaxVisibleRows = flags.maxRows
	}
	if changed("popup-width") {
		cfg.PopupWidth = flags.popupWidth
	}
	if err := cfg.Validate(); err != nil {
		return options{}, err
	}

	format, err := form.ParseFormat(cfg.Format)
	if err != nil {
		return options{}, err
	}
	return options{
		catalog:    cfg.Catalog,
		format:     format,
		logFile:    cfg.LogFile,
		maxRows:    cfg.MaxVisibleRows,
		popupWidth: cfg.PopupWidth,
		minX:       cfg.MinX,
	}, nil
}

// placement converts the popup options to cells. Zero fields keep the
// editor's terminal defaults.
func (o options) placement() editor.Placement {
	return editor.Placement{PopupWidth: o.popupWidth, LineHeight: 1, MinX: o.minX}
}

// loadCatalog reads the configured files, or returns the built-in catalog
// when none are configured.
func loadCatalog(ctx context.Context, paths []string) (*catalog.Catalog, error) {
	if len(paths) == 0 {
		return builtinCatalog(), nil
	}
	c, err := catalog.LoadFiles(ctx, paths...)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

func builtinCatalog() *catalog.Catalog {
	return catalog.MustNew(
		catalog.Entry{ID: "react", Label: "React.js"},
		catalog.Entry{ID: "node", Label: "Node.js"},
		catalog.Entry{ID: "vue", Label: "Vue.js"},
		catalog.Entry{ID: "angular", Label: "AngularJS"},
		catalog.Entry{ID: "ember", Label: "Ember.js"},
		catalog.Entry{ID: "go", Label: "Go"},
		catalog.Entry{ID: "rust", Label: "Rust"},
		catalog.Entry{ID: "ruby", Label: "Ruby"},
		catalog.Entry{ID: "rails", Label: "Ruby on Rails"},
		catalog.Entry{ID: "python", Label: "Python"},
		catalog.Entry{ID: "postgres", Label: "PostgreSQL"},
		catalog.Entry{ID: "redis", Label: "Redis"},
	)
}

// newLogger writes development logs to path. Without a path logging is
// discarded: the terminal belongs to the editor.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}
