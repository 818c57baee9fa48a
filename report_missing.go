package main

import (
	"io"

	"github.com/urfave/cli/v2"
)

func localeFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "locale",
		Aliases:  []string{"l"},
		Usage:    "target locale or file name (required)",
		Required: true,
	}
}

func missingCommand() *cli.Command {
	return &cli.Command{
		Name:   "missing",
		Usage:  "Keys in the baseline absent from a target locale",
		Flags:  []cli.Flag{localeFlag()},
		Action: runMissing,
	}
}

func runMissing(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	dir, err := resolveTranslationsDir(cfg.Dir)
	if err != nil {
		return err
	}
	return reportMissing(ctx.App.Writer, dir, ctx.String("locale"), cfg)
}

func reportMissing(w io.Writer, dir, locale string, cfg config) error {
	base, target, err := loadBaselineAndTarget(dir, locale, cfg.Check)
	if err != nil {
		return err
	}
	missing := base.Keys.Minus(target.Keys)
	return outputStrings(w, missing, cfg.Output, "keys missing from "+target.Name)
}

// loadBaselineAndTarget loads the translations directory and returns the
// baseline file together with the file selected by locale.
func loadBaselineAndTarget(dir, locale string, opts checkOptions) (base, target *translationFile, err error) {
	files, err := loadTranslationFiles(dir, opts)
	if err != nil {
		return nil, nil, err
	}
	base, _, err = selectBaseline(files, opts.Baseline)
	if err != nil {
		return nil, nil, err
	}
	target, err = findFile(files, locale)
	if err != nil {
		return nil, nil, err
	}
	return base, target, nil
}
