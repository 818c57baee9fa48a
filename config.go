package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".i18n-keycheck.yaml"

// config is the effective configuration of one run. Sources are applied in
// order: defaults, config file, environment (including .env), flags.
type config struct {
	Dir      string
	Check    checkOptions
	Output   string
	Color    string
	LogLevel string
}

// fileConfig mirrors the YAML config file. Pointer fields distinguish an
// absent setting from a zero value.
type fileConfig struct {
	Dir        string   `yaml:"dir"`
	Pattern    string   `yaml:"pattern"`
	Exclude    []string `yaml:"exclude"`
	FileFormat string   `yaml:"file_format"`
	Baseline   string   `yaml:"baseline"`
	FailFast   *bool    `yaml:"fail_fast"`
	Output     string   `yaml:"output"`
	Color      string   `yaml:"color"`
	LogLevel   string   `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		Check:    defaultCheckOptions(),
		Output:   outputText,
		Color:    colorAuto,
		LogLevel: "warn",
	}
}

// loadDotEnv loads .env (or the given files) into the environment. A missing
// file is not an error; CI usually provides the variables directly.
func loadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// loadConfigFile reads the YAML config file at path. A missing file is only
// an error when the path was given explicitly.
func loadConfigFile(path string, explicit bool) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil, nil
		}
		return nil, &ConfigurationError{Msg: "reading config file " + path, Err: err}
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, &ConfigurationError{Msg: "parsing config file " + path, Err: err}
	}
	if fc.Dir != "" && !filepath.IsAbs(fc.Dir) {
		fc.Dir = filepath.Join(filepath.Dir(path), fc.Dir)
	}
	return &fc, nil
}

func (c *config) applyFile(fc *fileConfig) {
	if fc == nil {
		return
	}
	setString(&c.Dir, fc.Dir)
	setString(&c.Check.Pattern, fc.Pattern)
	if len(fc.Exclude) > 0 {
		c.Check.Exclude = fc.Exclude
	}
	setString(&c.Check.Format, fc.FileFormat)
	setString(&c.Check.Baseline, fc.Baseline)
	if fc.FailFast != nil {
		c.Check.FailFast = *fc.FailFast
	}
	setString(&c.Output, fc.Output)
	setString(&c.Color, fc.Color)
	setString(&c.LogLevel, fc.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// flagContext returns the context in the lineage where name was set. Flags
// are declared on the app and on every command, so the nearest context is not
// necessarily the one set. Only the app-level declarations read the
// environment, so a command-line value at any level is found before it.
func flagContext(c *cli.Context, name string) *cli.Context {
	for _, ctx := range c.Lineage() {
		if ctx.IsSet(name) {
			return ctx
		}
	}
	return nil
}

func (c *config) applyFlags(ctx *cli.Context) {
	str := func(dst *string, name string) {
		if fc := flagContext(ctx, name); fc != nil {
			*dst = fc.String(name)
		}
	}
	str(&c.Dir, "dir")
	str(&c.Check.Pattern, "pattern")
	str(&c.Check.Format, "file-format")
	str(&c.Check.Baseline, "baseline")
	str(&c.Output, "format")
	str(&c.Color, "color")
	str(&c.LogLevel, "log-level")
	if fc := flagContext(ctx, "exclude"); fc != nil {
		c.Check.Exclude = fc.StringSlice("exclude")
	}
	if fc := flagContext(ctx, "fail-fast"); fc != nil {
		c.Check.FailFast = fc.Bool("fail-fast")
	}
}

func (c *config) validate() error {
	if !validFileFormat(c.Check.Format) {
		return configErrorf("invalid file format %q", c.Check.Format)
	}
	if c.Output != outputText && c.Output != outputJSON {
		return configErrorf("invalid output format %q (must be text or json)", c.Output)
	}
	switch c.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return configErrorf("invalid color mode %q (must be auto, always or never)", c.Color)
	}
	if c.Check.Pattern == "" {
		return configErrorf("pattern must not be empty")
	}
	return nil
}

// loadConfig builds the run configuration for a command and installs the logger.
func loadConfig(ctx *cli.Context) (config, error) {
	cfg := defaultConfig()

	path := defaultConfigFile
	fcCtx := flagContext(ctx, "config")
	if fcCtx != nil {
		path = fcCtx.String("config")
	}
	fc, err := loadConfigFile(path, fcCtx != nil)
	if err != nil {
		return config{}, err
	}
	cfg.applyFile(fc)
	cfg.applyFlags(ctx)

	initLogger(ctx.App.ErrWriter, cfg.LogLevel)
	if fc != nil {
		slog.Debug("loaded config file", "path", path)
	}

	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}
