package main

import (
	"io"
	"os"
)

func nopClose() error { return nil }

// openInput opens path for reading, "-" is standard input.
func openInput(path string) (io.Reader, func() error, error) {
	if path == "-" {
		return os.Stdin, nopClose, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &exitError{err: err, status: statusDataErr}
	}
	return f, f.Close, nil
}

// openOutput creates path for writing, "-" or an empty path is std.
func openOutput(path string, std io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return std, nopClose, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
