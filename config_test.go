package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	fc, err := loadConfigFile(filepath.Join(dir, defaultConfigFile), false)
	require.NoError(t, err)
	assert.Nil(t, fc, "an absent default config file is not an error")

	_, err = loadConfigFile(filepath.Join(dir, "other.yaml"), true)
	var cerr *ConfigurationError
	assert.True(t, errors.As(err, &cerr))

	path := filepath.Join(dir, "keycheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dir: i18n
pattern: "*.toml"
exclude: [draft-*]
file_format: goi18n
fail_fast: true
output: json
`), 0o644))
	fc, err = loadConfigFile(path, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "i18n"), fc.Dir)

	cfg := defaultConfig()
	cfg.applyFile(fc)
	assert.Equal(t, "*.toml", cfg.Check.Pattern)
	assert.Equal(t, []string{"draft-*"}, cfg.Check.Exclude)
	assert.Equal(t, formatGoI18n, cfg.Check.Format)
	assert.True(t, cfg.Check.FailFast)
	assert.Equal(t, outputJSON, cfg.Output)
	assert.Equal(t, colorAuto, cfg.Color, "unset fields keep their defaults")
	assert.NoError(t, cfg.validate())

	require.NoError(t, os.WriteFile(path, []byte("dir: [unterminated\n"), 0o644))
	_, err = loadConfigFile(path, true)
	assert.True(t, errors.As(err, &cerr))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, loadDotEnv(filepath.Join(dir, ".env")), "a missing .env is not an error")

	good := filepath.Join(dir, "good.env")
	require.NoError(t, os.WriteFile(good, []byte("I18N_KEYCHECK_TEST_VALUE=loaded\n"), 0o644))
	t.Setenv("I18N_KEYCHECK_TEST_VALUE", "")
	os.Unsetenv("I18N_KEYCHECK_TEST_VALUE")
	require.NoError(t, loadDotEnv(good))
	assert.Equal(t, "loaded", os.Getenv("I18N_KEYCHECK_TEST_VALUE"))

	bad := filepath.Join(dir, "bad.env")
	require.NoError(t, os.WriteFile(bad, []byte("I18N_KEYCHECK_OTHER=\"unterminated\n"), 0o644))
	assert.Error(t, loadDotEnv(bad))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config)
	}{
		{"file format", func(c *config) { c.Check.Format = "xml" }},
		{"output", func(c *config) { c.Output = "csv" }},
		{"color", func(c *config) { c.Color = "sometimes" }},
		{"pattern", func(c *config) { c.Check.Pattern = "" }},
	}

	require.NoError(t, func() error { c := defaultConfig(); return c.validate() }())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := defaultConfig()
			tc.modify(&c)
			var cerr *ConfigurationError
			assert.True(t, errors.As(c.validate(), &cerr))
		})
	}
}
