package main

// This is the front end for the TINY programming language written in Go.

import (
	"errors"
	"fmt"
	"os"

	"github.com/ltungv/tiny/gtiny/internal/tiny"
)

const (
	statusFailure = 1
	statusUsage   = 64
	statusDataErr = 65
)

// exitError carries the status the process ends with. Errors that already
// went to the diagnostic sink are not printed again.
type exitError struct {
	err      error
	status   int
	reported bool
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// reported marks err as written to the diagnostic sink.
func reported(err error) error {
	return &exitError{err, exitStatus(err), true}
}

func exitStatus(err error) int {
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.status
	}
	var parseErr *tiny.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Status()
	}
	return statusFailure
}

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	var exitErr *exitError
	if !errors.As(err, &exitErr) || !exitErr.reported {
		fmt.Fprintf(os.Stderr, "gtiny: %v\n", err)
	}
	os.Exit(exitStatus(err))
}
