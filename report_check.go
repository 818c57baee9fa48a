package main

import (
	"io"

	"github.com/urfave/cli/v2"
)

func checkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "fail-fast",
			Usage:   "stop at the first mismatched file",
			EnvVars: []string{"I18N_KEYCHECK_FAIL_FAST"},
		},
		&cli.StringFlag{
			Name:    "color",
			Usage:   "colorize text output: auto, always, never",
			Value:   colorAuto,
			EnvVars: []string{"I18N_KEYCHECK_COLOR"},
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "Compare the keys of every translation file against the baseline",
		Flags:  checkFlags(),
		Action: runCheck,
	}
}

func runCheck(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	dir, err := resolveTranslationsDir(cfg.Dir)
	if err != nil {
		return err
	}
	return reportCheck(ctx.App.Writer, dir, cfg)
}

// reportCheck runs the check and prints the result. A mismatch is reported
// as errMismatch once the whole report has been written.
func reportCheck(w io.Writer, dir string, cfg config) error {
	result, err := Check(dir, cfg.Check)
	if err != nil {
		return err
	}
	if err := outputResult(w, result, cfg.Output, newPalette(cfg.Color, w)); err != nil {
		return err
	}
	if result.Status() == StatusMismatched {
		return errMismatch
	}
	return nil
}
