package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/gobwas/glob"
)

// fileMatcher selects eligible translation files by base name.
type fileMatcher struct {
	include glob.Glob
	exclude []glob.Glob
}

func newFileMatcher(pattern string, excludes []string) (*fileMatcher, error) {
	include, err := glob.Compile(pattern)
	if err != nil {
		return nil, &ConfigurationError{Msg: "invalid pattern " + pattern, Err: err}
	}
	m := &fileMatcher{include: include}
	for _, e := range excludes {
		g, err := glob.Compile(e)
		if err != nil {
			return nil, &ConfigurationError{Msg: "invalid exclude pattern " + e, Err: err}
		}
		m.exclude = append(m.exclude, g)
	}
	return m, nil
}

func (m *fileMatcher) Match(name string) bool {
	if !m.include.Match(name) {
		return false
	}
	for _, g := range m.exclude {
		if g.Match(name) {
			return false
		}
	}
	return true
}

// scanTranslationFiles lists the eligible regular files directly inside dir,
// in directory listing order.
func scanTranslationFiles(dir string, m *fileMatcher) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, configErrorf("translations directory %s does not exist", dir)
		}
		return nil, &ConfigurationError{Msg: "cannot access " + dir, Err: err}
	}
	if !info.IsDir() {
		return nil, configErrorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ConfigurationError{Msg: "cannot read " + dir, Err: err}
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		if !m.Match(name) {
			slog.Debug("skipping file", "file", name)
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
