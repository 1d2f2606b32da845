package tiny

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard)

	assert.False(r.HadError())
}

func TestSimpleReporterSendAnyError(t *testing.T) {
	assert := assert.New(t)
	err := errors.New("Test error")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.True(r.HadError())
}

func TestSimpleReporterSendParseError(t *testing.T) {
	assert := assert.New(t)
	err := NewUnexpectedTokenError(3, SEMICOLON, NUMBER)

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal("Error in line 3 ==> Expected : SemiColon ==> Found : Num\n", out.String())
	assert.True(r.HadError())
}

func TestSimpleReporterReset(t *testing.T) {
	assert := assert.New(t)
	err1 := errors.New("Test error")
	err2 := NewParseError(TrailingInput, 1, END)

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)
	assert.Equal(fmt.Sprintf("%v\n%v\n", err1, err2), out.String())

	r.Reset()
	assert.False(r.HadError())
}
