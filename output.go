package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	outputText = "text"
	outputJSON = "json"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// palette wraps report fragments in SGR escapes when enabled.
type palette struct {
	enabled bool
}

func newPalette(mode string, w io.Writer) palette {
	switch mode {
	case colorAlways:
		return palette{enabled: true}
	case colorNever:
		return palette{}
	}
	f, ok := w.(*os.File)
	if !ok {
		return palette{}
	}
	return palette{enabled: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}
}

func (p palette) wrap(code, s string) string {
	if !p.enabled {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func (p palette) red(s string) string   { return p.wrap("31", s) }
func (p palette) green(s string) string { return p.wrap("32", s) }
func (p palette) bold(s string) string  { return p.wrap("1", s) }

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputStrings prints a list of strings in text or JSON format.
func outputStrings(w io.Writer, items []string, format, label string) error {
	if format == outputJSON {
		if items == nil {
			items = []string{}
		}
		return writeJSON(w, items)
	}

	if len(items) == 0 {
		fmt.Fprintf(w, "No %s found.\n", label)
		return nil
	}

	fmt.Fprintf(w, "Found %d %s:\n", len(items), label)
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
	return nil
}

type resultJSON struct {
	Status     string     `json:"status"`
	Baseline   string     `json:"baseline"`
	Files      []string   `json:"files"`
	Compared   int        `json:"compared"`
	Skipped    int        `json:"skipped"`
	Mismatches []Mismatch `json:"mismatches"`
}

// outputResult prints a check result. Every mismatch is printed, each naming
// the baseline, the divergent file and the differing keys.
func outputResult(w io.Writer, r *Result, format string, p palette) error {
	if format == outputJSON {
		mismatches := r.Mismatches
		if mismatches == nil {
			mismatches = []Mismatch{}
		}
		return writeJSON(w, resultJSON{
			Status:     r.Status().String(),
			Baseline:   r.Baseline,
			Files:      r.Files,
			Compared:   r.Compared,
			Skipped:    r.Skipped(),
			Mismatches: mismatches,
		})
	}

	if r.Status() == StatusConsistent {
		fmt.Fprintln(w, p.green("All translation files have consistent keys!"))
		return nil
	}

	for _, m := range r.Mismatches {
		fmt.Fprintf(w, "%s between %s and %s. Difference: %s\n",
			p.red("Keys mismatch"), p.bold(m.Baseline), p.bold(m.File), strings.Join(m.Difference(), ", "))
		for _, k := range m.Added {
			fmt.Fprintf(w, "  + %s (only in %s)\n", k, m.File)
		}
		for _, k := range m.Removed {
			fmt.Fprintf(w, "  - %s (missing from %s)\n", k, m.File)
		}
	}
	fmt.Fprintf(w, "%d of %d files differ from %s.\n", len(r.Mismatches), r.Compared, r.Baseline)
	if skipped := r.Skipped(); skipped > 0 {
		fmt.Fprintf(w, "Stopped at the first mismatch; %d files not compared.\n", skipped)
	}
	return nil
}
