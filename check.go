package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
)

// translationFile is one parsed locale file. Values are dropped after parsing.
type translationFile struct {
	Name      string
	Path      string
	Format    string
	Locale    language.Tag
	HasLocale bool
	Keys      KeySet
}

// checkOptions controls which files are checked and how.
type checkOptions struct {
	Pattern  string
	Exclude  []string
	Format   string
	Baseline string // file name or locale; empty selects the first file
	FailFast bool
}

func defaultCheckOptions() checkOptions {
	return checkOptions{Pattern: "*.json", Format: formatAuto}
}

// Status tells a consistent result apart from a mismatched one.
type Status int

const (
	StatusConsistent Status = iota
	StatusMismatched
)

func (s Status) String() string {
	if s == StatusMismatched {
		return "mismatched"
	}
	return "consistent"
}

// Mismatch records one file whose key set differs from the baseline's.
type Mismatch struct {
	Baseline string   `json:"baseline"`
	File     string   `json:"file"`
	Added    []string `json:"added"`   // keys only in File
	Removed  []string `json:"removed"` // keys only in Baseline
}

// Difference is the symmetric difference between the two key sets, sorted.
func (m Mismatch) Difference() []string {
	return newKeySet(m.Added...).SymmetricDifference(newKeySet(m.Removed...))
}

// Result is the outcome of a completed check.
type Result struct {
	Baseline   string     `json:"baseline"`
	Files      []string   `json:"files"`
	Compared   int        `json:"compared"` // files compared against the baseline
	Mismatches []Mismatch `json:"mismatches"`
}

// Skipped is the number of files left uncompared after a fail-fast stop.
func (r *Result) Skipped() int {
	if len(r.Files) == 0 {
		return 0
	}
	return len(r.Files) - 1 - r.Compared
}

func (r *Result) Status() Status {
	if len(r.Mismatches) > 0 {
		return StatusMismatched
	}
	return StatusConsistent
}

// loadTranslationFiles enumerates and parses every eligible file in dir. The
// first parse failure aborts the load.
func loadTranslationFiles(dir string, opts checkOptions) ([]*translationFile, error) {
	matcher, err := newFileMatcher(opts.Pattern, opts.Exclude)
	if err != nil {
		return nil, err
	}
	names, err := scanTranslationFiles(dir, matcher)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, configErrorf("no files matching %q found in %s", opts.Pattern, dir)
	}

	files := make([]*translationFile, 0, len(names))
	for _, name := range names {
		f, err := loadTranslationFile(filepath.Join(dir, name), opts.Format)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func loadTranslationFile(path, format string) (*translationFile, error) {
	name := filepath.Base(path)
	concrete, err := resolveFormat(format, name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Msg: "cannot read " + path, Err: err}
	}
	keys, err := parseKeys(concrete, name, data)
	if err != nil {
		return nil, err
	}
	tag, ok := localeFromFilename(name)
	slog.Debug("loaded translation file", "file", name, "format", concrete, "locale", tag.String(), "keys", len(keys))
	return &translationFile{
		Name:      name,
		Path:      path,
		Format:    concrete,
		Locale:    tag,
		HasLocale: ok,
		Keys:      keys,
	}, nil
}

// selectBaseline splits files into the baseline and the rest, keeping the
// listing order of the rest.
func selectBaseline(files []*translationFile, baseline string) (*translationFile, []*translationFile, error) {
	if baseline == "" {
		return files[0], files[1:], nil
	}
	for i, f := range files {
		if matchesBaseline(f, baseline) {
			rest := make([]*translationFile, 0, len(files)-1)
			rest = append(rest, files[:i]...)
			rest = append(rest, files[i+1:]...)
			return f, rest, nil
		}
	}
	return nil, nil, configErrorf("baseline %q matches no translation file", baseline)
}

// compareKeySets compares every file against the baseline and returns the
// mismatches with the number of files compared. All mismatches are collected
// unless failFast is set.
func compareKeySets(base *translationFile, others []*translationFile, failFast bool) ([]Mismatch, int) {
	var mismatches []Mismatch
	compared := 0
	for _, f := range others {
		compared++
		if f.Keys.Equal(base.Keys) {
			continue
		}
		mismatches = append(mismatches, Mismatch{
			Baseline: base.Name,
			File:     f.Name,
			Added:    f.Keys.Minus(base.Keys),
			Removed:  base.Keys.Minus(f.Keys),
		})
		if failFast {
			break
		}
	}
	return mismatches, compared
}

// Check verifies that every translation file in dir has the same set of
// top-level keys as the baseline file.
func Check(dir string, opts checkOptions) (*Result, error) {
	files, err := loadTranslationFiles(dir, opts)
	if err != nil {
		return nil, err
	}
	base, others, err := selectBaseline(files, opts.Baseline)
	if err != nil {
		return nil, err
	}
	slog.Debug("comparing key sets", "baseline", base.Name, "files", len(files))

	mismatches, compared := compareKeySets(base, others, opts.FailFast)
	result := &Result{
		Baseline:   base.Name,
		Compared:   compared,
		Mismatches: mismatches,
	}
	for _, f := range files {
		result.Files = append(result.Files, f.Name)
	}
	return result, nil
}

// findFile returns the loaded file selected by a file name or locale.
func findFile(files []*translationFile, which string) (*translationFile, error) {
	for _, f := range files {
		if matchesBaseline(f, which) {
			return f, nil
		}
	}
	return nil, configErrorf("no translation file matches %q", which)
}

func (f *translationFile) String() string {
	if f.HasLocale {
		return fmt.Sprintf("%s (%s)", f.Name, f.Locale)
	}
	return f.Name
}
