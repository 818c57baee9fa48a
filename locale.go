package main

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// localeFromFilename derives a language tag from a translation file name:
// "en-us.json" is en-US, "active.fr.toml" is fr and "locale_de-DE.ini" is
// de-DE. ok is false when no part of the name parses as a tag.
func localeFromFilename(name string) (tag language.Tag, ok bool) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	candidates := []string{stem}
	if i := strings.LastIndex(stem, "."); i >= 0 {
		candidates = append(candidates, stem[i+1:])
	}
	if i := strings.LastIndex(stem, "_"); i >= 0 {
		candidates = append(candidates, stem[i+1:])
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if t, err := language.Parse(c); err == nil {
			return t, true
		}
	}
	return language.Und, false
}

// matchesBaseline reports whether file f is the one selected by the
// --baseline value, given either as a file name or as a locale.
func matchesBaseline(f *translationFile, baseline string) bool {
	if f.Name == baseline {
		return true
	}
	want, err := language.Parse(baseline)
	if err != nil {
		return false
	}
	return f.HasLocale && f.Locale == want
}
