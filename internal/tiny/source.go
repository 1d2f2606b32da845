package tiny

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultMaxLineLength is the longest source line a Source accepts.
const DefaultMaxLineLength = 10000

// Source hands out the input one line at a time. The scanner only ever looks
// at the text between the cursor and the end of the buffered line.
type Source struct {
	lines *bufio.Scanner
	buf   string
	cur   int
	line  int
	done  bool
	err   error
}

// NewSource creates a line reader over r. Lines longer than maxLineLength
// bytes stop the reader with an error.
func NewSource(r io.Reader, maxLineLength int) *Source {
	if maxLineLength <= 0 {
		maxLineLength = DefaultMaxLineLength
	}
	lines := bufio.NewScanner(r)
	// one extra byte for the line terminator, the initial capacity must not
	// exceed the limit or it raises the limit
	limit := maxLineLength + 1
	lines.Buffer(make([]byte, 0, min(4096, limit)), limit)
	return &Source{lines: lines}
}

// NextTokenStart skips whitespace, reading new lines as needed, and returns
// the rest of the current line. It returns false once the input is exhausted.
func (src *Source) NextTokenStart() (string, bool) {
	src.skipSpaces()
	for src.cur >= len(src.buf) {
		if !src.nextLine() {
			return "", false
		}
		src.skipSpaces()
	}
	return src.buf[src.cur:], true
}

// Advance moves the cursor n bytes forward within the current line.
func (src *Source) Advance(n int) {
	src.cur += n
	if src.cur > len(src.buf) {
		src.cur = len(src.buf)
	}
}

// SkipUpto moves the cursor past the next occurrence of s, crossing line
// boundaries. It returns false if the input ends first.
func (src *Source) SkipUpto(s string) bool {
	for {
		rest, ok := src.NextTokenStart()
		if !ok {
			return false
		}
		if strings.HasPrefix(rest, s) {
			src.cur += len(s)
			return true
		}
		src.cur++
	}
}

// Line returns the 1-based number of the line under the cursor.
func (src *Source) Line() int {
	if src.line == 0 {
		return 1
	}
	return src.line
}

// Err returns the error that stopped the reader, if it was not a clean end of
// input.
func (src *Source) Err() error {
	return src.err
}

func (src *Source) skipSpaces() {
	for src.cur < len(src.buf) && isSpace(src.buf[src.cur]) {
		src.cur++
	}
}

func (src *Source) nextLine() bool {
	if src.done {
		return false
	}
	if !src.lines.Scan() {
		src.done = true
		if err := src.lines.Err(); err != nil {
			src.err = fmt.Errorf("reading line %d: %w", src.line+1, err)
		}
		return false
	}
	src.buf = src.lines.Text()
	src.cur = 0
	src.line++
	return true
}
