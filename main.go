// i18n-keycheck verifies that translation files share the same set of keys.
//
// Usage:
//
//	i18n-keycheck [flags] [command] [args]
//
// With no command it runs "check" against the translations directory.
// Exit status is 0 when all files agree, 1 when keys differ and 2 when the
// input could not be read or parsed.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := loadDotEnv(); err != nil {
		slog.Warn("ignoring malformed .env", "err", err)
	}
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		if exitCode(err) != exitMismatch {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

func newApp() *cli.App {
	commands := []*cli.Command{
		checkCommand(),
		missingCommand(),
		staleCommand(),
		keysCommand(),
	}
	for _, c := range commands {
		c.Flags = withoutEnvVars(slices.Concat(commonFlags(), c.Flags))
	}
	return &cli.App{
		Name:            "i18n-keycheck",
		Usage:           "Check that translation files share an identical set of keys",
		Flags:           slices.Concat(commonFlags(), checkFlags()),
		Action:          runCheck,
		Commands:        commands,
		HideHelpCommand: true,
	}
}

// withoutEnvVars drops the environment bindings of command-level copies of
// the app flags. The environment is read by the app-level declarations only,
// so a flag given on the command line at either level always wins over it.
func withoutEnvVars(flags []cli.Flag) []cli.Flag {
	for _, f := range flags {
		switch f := f.(type) {
		case *cli.StringFlag:
			f.EnvVars = nil
		case *cli.StringSliceFlag:
			f.EnvVars = nil
		case *cli.BoolFlag:
			f.EnvVars = nil
		}
	}
	return flags
}

// commonFlags are accepted by the app and by every command, so that
// "i18n-keycheck --dir x missing" and "i18n-keycheck missing --dir x" agree.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "translations directory (default: " + defaultTranslationsDir + ", searched upward)",
			EnvVars: []string{"I18N_KEYCHECK_DIR"},
		},
		&cli.StringFlag{
			Name:    "pattern",
			Usage:   "glob selecting translation files by name",
			Value:   defaultCheckOptions().Pattern,
			EnvVars: []string{"I18N_KEYCHECK_PATTERN"},
		},
		&cli.StringSliceFlag{
			Name:    "exclude",
			Usage:   "glob of file names to skip (repeatable)",
			EnvVars: []string{"I18N_KEYCHECK_EXCLUDE"},
		},
		&cli.StringFlag{
			Name:    "file-format",
			Usage:   "translation file format: auto, json, yaml, toml, ini, goi18n",
			Value:   formatAuto,
			EnvVars: []string{"I18N_KEYCHECK_FILE_FORMAT"},
		},
		&cli.StringFlag{
			Name:    "baseline",
			Aliases: []string{"b"},
			Usage:   "baseline file name or locale (default: first file)",
			EnvVars: []string{"I18N_KEYCHECK_BASELINE"},
		},
		&cli.StringFlag{
			Name:    "format",
			Usage:   "output format: text, json",
			Value:   outputText,
			EnvVars: []string{"I18N_KEYCHECK_OUTPUT"},
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML config file",
			Value:   defaultConfigFile,
			EnvVars: []string{"I18N_KEYCHECK_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "diagnostic log level: debug, info, warn, error",
			Value:   "warn",
			EnvVars: []string{"I18N_KEYCHECK_LOG_LEVEL"},
		},
	}
}
