package main

import (
	"io"

	"github.com/urfave/cli/v2"
)

func staleCommand() *cli.Command {
	return &cli.Command{
		Name:   "stale",
		Usage:  "Keys in a target locale absent from the baseline",
		Flags:  []cli.Flag{localeFlag()},
		Action: runStale,
	}
}

func runStale(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	dir, err := resolveTranslationsDir(cfg.Dir)
	if err != nil {
		return err
	}
	return reportStale(ctx.App.Writer, dir, ctx.String("locale"), cfg)
}

func reportStale(w io.Writer, dir, locale string, cfg config) error {
	base, target, err := loadBaselineAndTarget(dir, locale, cfg.Check)
	if err != nil {
		return err
	}
	stale := target.Keys.Minus(base.Keys)
	return outputStrings(w, stale, cfg.Output, "stale keys in "+target.Name)
}
