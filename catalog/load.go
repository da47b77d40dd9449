package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("catalog: unknown file format")

// file is the on-disk shape shared by every supported format:
//
//	entries:
//	  - id: "1"
//	    label: React.js
//
// TOML spells the list as [[entries]] tables.
type file struct {
	Entries []Entry `json:"entries" yaml:"entries" toml:"entries"`
}

// Load reads a catalog file. The format is chosen by extension: .yaml/.yml,
// .toml or .json.
func Load(path string) (*Catalog, error) {
	entries, err := readEntries(path)
	if err != nil {
		return nil, err
	}
	c, err := New(entries...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadFiles reads several catalog files concurrently and concatenates their
// entries in argument order. IDs must be unique across all files.
func LoadFiles(ctx context.Context, paths ...string) (*Catalog, error) {
	parts := make([][]Entry, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries, err := readEntries(p)
			if err != nil {
				return err
			}
			parts[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Entry
	for _, part := range parts {
		all = append(all, part...)
	}
	return New(all...)
}

// Decode parses catalog data in the named format ("yaml", "toml" or "json").
func Decode(format string, data []byte) ([]Entry, error) {
	var f file
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	return f.Entries, nil
}

func readEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	entries, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}
