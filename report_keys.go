package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/urfave/cli/v2"
)

func keysCommand() *cli.Command {
	return &cli.Command{
		Name:      "keys",
		Usage:     "List the top-level keys of one translation file",
		ArgsUsage: "FILE",
		Action:    runKeys,
	}
}

func runKeys(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return configErrorf("keys takes exactly one file argument")
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	return reportKeys(ctx.App.Writer, ctx.Args().First(), cfg)
}

// reportKeys prints the key set of a single file, which is handy when a
// parser disagrees with what a translator expects.
func reportKeys(w io.Writer, path string, cfg config) error {
	f, err := loadTranslationFile(path, cfg.Check.Format)
	if err != nil {
		return err
	}
	if cfg.Output == outputText {
		fmt.Fprintf(w, "%s [%s]\n", f, f.Format)
	}
	return outputStrings(w, f.Keys.Sorted(), cfg.Output, "keys in "+filepath.Base(path))
}
