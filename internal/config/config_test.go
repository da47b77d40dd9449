package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/taginput/form"
)

func setHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}

func TestPathUnderHome(t *testing.T) {
	dir := setHome(t)
	assert.Equal(t, filepath.Join(dir, ".taginput", "config.yaml"), Path())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	setHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveCreatesDirectoriesWith0600(t *testing.T) {
	setHome(t)

	cfg := Config{Catalog: []string{"langs.yaml"}, Format: "json"}
	require.NoError(t, cfg.Save())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSaveLoadRoundtrip(t *testing.T) {
	setHome(t)

	original := Config{
		Catalog:        []string{"a.yaml", "b.toml"},
		Format:         "msgpack",
		MaxVisibleRows: 5,
		PopupWidth:     24,
		MinX:           2,
		LogFile:        "/tmp/taginput.log",
	}
	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &original, loaded)
}

func TestLoadFillsOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: [tags.json]\n"), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"tags.json"}, cfg.Catalog)
	assert.Equal(t, string(form.FormatForm), cfg.Format)
	assert.Equal(t, DefaultMaxVisibleRows, cfg.MaxVisibleRows)
	assert.Equal(t, DefaultPopupWidth, cfg.PopupWidth)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content:"), 0600))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"format: xml\n":          "format",
		"max_visible_rows: -1\n": "max_visible_rows",
		"popup_width: -3\n":      "popup_width",
		"min_x: -1\n":            "min_x",
	}
	for body, field := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0600))

		_, err := LoadFrom(path)
		require.Error(t, err, body)
		assert.Contains(t, err.Error(), field, body)
	}
}

func TestLoadFormatError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: csv\n"), 0600))

	_, err := LoadFrom(path)
	assert.ErrorIs(t, err, form.ErrUnknownFormat)
}
