package main

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a problem with the run's inputs rather than
// with the translation data: a missing directory, no eligible files, a bad
// glob, and so on.
type ConfigurationError struct {
	Msg string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration: %s: %v", e.Msg, e.Err)
	}
	return "configuration: " + e.Msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ParseError reports a translation file whose content is not a key-value mapping.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

// errMismatch is returned by commands after the report has been printed, so
// that main can exit with the mismatch status without printing anything else.
var errMismatch = errors.New("translation keys mismatch")

const (
	exitOK       = 0
	exitMismatch = 1
	exitError    = 2
)

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, errMismatch) {
		return exitMismatch
	}
	return exitError
}
