package main

import (
	"os"
	"path/filepath"
)

const defaultTranslationsDir = "assets/translations"

// findTranslationsDir walks up from start looking for the conventional
// translations directory, so the tool can run from anywhere inside a project.
func findTranslationsDir(start string) (string, error) {
	dir := start
	for {
		candidate := filepath.Join(dir, defaultTranslationsDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", configErrorf("could not find %s in %s or any parent directory; set --dir", defaultTranslationsDir, start)
		}
		dir = parent
	}
}

// resolveTranslationsDir returns dir when it was given explicitly and
// otherwise searches upward from the working directory.
func resolveTranslationsDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", &ConfigurationError{Msg: "cannot determine working directory", Err: err}
	}
	return findTranslationsDir(wd)
}
