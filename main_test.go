package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runApp runs the CLI with args and returns what it wrote to stdout.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"i18n-keycheck"}, args...))
	return out.String(), err
}

func TestAppConsistent(t *testing.T) {
	dir := writeTranslations(t, map[string]string{
		"en.json": jsonKeys("a", "b"),
		"fr.json": jsonKeys("b", "a"),
	})

	out, err := runApp(t, "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, exitOK, exitCode(err))
	assert.Equal(t, "All translation files have consistent keys!\n", out)

	out, err = runApp(t, "check", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "All translation files have consistent keys!\n", out)
}

func TestAppMismatch(t *testing.T) {
	dir := writeTranslations(t, map[string]string{
		"a.json": jsonKeys("k"),
		"b.json": jsonKeys("k", "x"),
		"c.json": jsonKeys("k", "y"),
	})

	out, err := runApp(t, "--dir", dir, "--color", "never")
	require.Error(t, err)
	assert.Equal(t, exitMismatch, exitCode(err))
	assert.Contains(t, out, "Keys mismatch between a.json and b.json. Difference: x\n")
	assert.Contains(t, out, "  + x (only in b.json)\n")
	assert.Contains(t, out, "Keys mismatch between a.json and c.json. Difference: y\n")
	assert.Contains(t, out, "2 of 2 files differ from a.json.\n")

	// Same input, same outcome.
	again, err2 := runApp(t, "--dir", dir, "--color", "never")
	assert.Equal(t, out, again)
	assert.Equal(t, exitCode(err), exitCode(err2))
}

func TestAppMismatchJSON(t *testing.T) {
	dir := writeTranslations(t, map[string]string{
		"a.json": jsonKeys("k", "gone"),
		"b.json": jsonKeys("k", "new"),
	})

	out, err := runApp(t, "check", "--dir", dir, "--format", "json")
	assert.Equal(t, exitMismatch, exitCode(err))

	var got resultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "mismatched", got.Status)
	assert.Equal(t, "a.json", got.Baseline)
	require.Len(t, got.Mismatches, 1)
	assert.Equal(t, []string{"new"}, got.Mismatches[0].Added)
	assert.Equal(t, []string{"gone"}, got.Mismatches[0].Removed)
}

func TestAppErrors(t *testing.T) {
	malformed := writeTranslations(t, map[string]string{
		"a.json": jsonKeys("k"),
		"b.json": `{"k": `,
	})

	out, err := runApp(t, "--dir", malformed)
	require.Error(t, err)
	assert.Equal(t, exitError, exitCode(err))
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Empty(t, out, "no report is printed when a file fails to parse")

	out, err = runApp(t, "--dir", filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, exitError, exitCode(err))
	var cerr *ConfigurationError
	assert.True(t, errors.As(err, &cerr))
	assert.Empty(t, out)

	_, err = runApp(t, "--dir", malformed, "--format", "xml")
	assert.True(t, errors.As(err, &cerr))
}

func TestAppFailFast(t *testing.T) {
	dir := writeTranslations(t, map[string]string{
		"a.json": jsonKeys("k"),
		"b.json": jsonKeys("k", "x"),
		"c.json": jsonKeys("k", "y"),
	})

	out, err := runApp(t, "check", "--dir", dir, "--fail-fast")
	assert.Equal(t, exitMismatch, exitCode(err))
	assert.Contains(t, out, "b.json")
	assert.NotContains(t, out, "c.json")
	assert.Contains(t, out, "1 of 1 files differ from a.json.\n")
	assert.Contains(t, out, "Stopped at the first mismatch; 1 files not compared.\n")
}

func TestAppMissingAndStale(t *testing.T) {
	dir := writeTranslations(t, map[string]string{
		"en.json": jsonKeys("a", "b", "c"),
		"fr.json": jsonKeys("a", "b", "old"),
	})

	out, err := runApp(t, "missing", "--dir", dir, "--baseline", "en", "--locale", "fr")
	require.NoError(t, err)
	assert.Equal(t, "Found 1 keys missing from fr.json:\n  c\n", out)

	out, err = runApp(t, "--dir", dir, "--baseline", "en", "stale", "--locale", "fr")
	require.NoError(t, err)
	assert.Equal(t, "Found 1 stale keys in fr.json:\n  old\n", out)

	out, err = runApp(t, "stale", "--dir", dir, "--locale", "en", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestAppKeys(t *testing.T) {
	dir := writeTranslations(t, map[string]string{
		"active.fr.toml": "hello = \"Bonjour\"\nbye = \"Au revoir\"\n",
	})

	out, err := runApp(t, "keys", filepath.Join(dir, "active.fr.toml"))
	require.NoError(t, err)
	assert.Equal(t, "active.fr.toml (fr) [toml]\nFound 2 keys in active.fr.toml:\n  bye\n  hello\n", out)

	_, err = runApp(t, "keys")
	assert.Equal(t, exitError, exitCode(err))
}

func TestAppConfigSources(t *testing.T) {
	root := t.TempDir()
	translations := filepath.Join(root, "locales")
	require.NoError(t, os.Mkdir(translations, 0o755))
	for name, content := range map[string]string{
		"en.yaml": "a: A\nb: B\n",
		"fr.yaml": "a: A\n",
		"de.json": jsonKeys("a"),
	} {
		require.NoError(t, os.WriteFile(filepath.Join(translations, name), []byte(content), 0o644))
	}
	configPath := filepath.Join(root, "keycheck.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("dir: locales\npattern: \"*.yaml\"\nbaseline: en\n"), 0o644))

	// Config file alone: en.yaml is the baseline, fr.yaml lacks b.
	out, err := runApp(t, "--config", configPath, "--color", "never")
	assert.Equal(t, exitMismatch, exitCode(err))
	assert.Contains(t, out, "Keys mismatch between en.yaml and fr.yaml. Difference: b\n")

	// Flags win over the config file.
	out, err = runApp(t, "--config", configPath, "--pattern", "*.json", "--baseline", "de")
	require.NoError(t, err)
	assert.Contains(t, out, "consistent")

	// Environment wins over the config file.
	t.Setenv("I18N_KEYCHECK_BASELINE", "fr")
	out, err = runApp(t, "--config", configPath, "--color", "never")
	assert.Equal(t, exitMismatch, exitCode(err))
	assert.Contains(t, out, "Keys mismatch between fr.yaml and en.yaml. Difference: b\n")

	_, err = runApp(t, "--config", filepath.Join(root, "missing.yaml"))
	var cerr *ConfigurationError
	assert.True(t, errors.As(err, &cerr))
}

func TestAppFlagsBeatEnvironment(t *testing.T) {
	bad := writeTranslations(t, map[string]string{
		"a.json": jsonKeys("k"),
		"b.json": jsonKeys("k", "x"),
	})
	good := writeTranslations(t, map[string]string{
		"a.json": jsonKeys("k"),
		"b.json": jsonKeys("k"),
	})
	t.Setenv("I18N_KEYCHECK_DIR", bad)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"app flag before command", []string{"--dir", good, "check"}, exitOK},
		{"command flag", []string{"check", "--dir", good}, exitOK},
		{"app flag without command", []string{"--dir", good}, exitOK},
		{"app flag before missing", []string{"--dir", good, "missing", "--locale", "b.json"}, exitOK},
		{"environment only", []string{"check", "--color", "never"}, exitMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runApp(t, tc.args...)
			assert.Equal(t, tc.want, exitCode(err), "err: %v", err)
		})
	}
}
