package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMatcher(t *testing.T) {
	m, err := newFileMatcher("*.{json,yaml}", []string{"*.schema.json", "_*"})
	require.NoError(t, err)

	tests := []struct {
		name string
		want bool
	}{
		{"en.json", true},
		{"fr.yaml", true},
		{"de.toml", false},
		{"messages.schema.json", false},
		{"_template.json", false},
		{"en.json.bak", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, m.Match(tc.name))
		})
	}
}

func TestScanTranslationFilesOrder(t *testing.T) {
	dir := writeTranslations(t, map[string]string{
		"zh.json": "{}",
		"en.json": "{}",
		"ar.json": "{}",
		"ko.txt":  "",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))

	m, err := newFileMatcher("*.json", nil)
	require.NoError(t, err)
	names, err := scanTranslationFiles(dir, m)
	require.NoError(t, err)
	assert.Equal(t, []string{"ar.json", "en.json", "zh.json"}, names)
}
