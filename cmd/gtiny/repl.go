package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/ltungv/tiny/gtiny/internal/tiny"
)

const (
	historyFile = ".gtiny_history"
	promptMain  = "tiny> "
	promptCont  = "  ... "
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	treeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse TINY programs interactively",
	Long: `Read TINY programs from the terminal and print their syntax tree.
An entry that stops at the end of input, such as a trailing ";" or an open
comment, continues on the next line. Ctrl+C drops the entry, Ctrl+D or :quit
exits.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	out := cmd.OutOrStdout()
	printer := new(tiny.AstPrinter)
	for {
		src, ok := readEntry(ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		if src == ":quit" {
			return nil
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		var diagnostics strings.Builder
		program, err := parseProgram(strings.NewReader(src), tiny.NewSimpleReporter(&diagnostics), cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(strings.TrimRight(diagnostics.String(), "\n")))
			continue
		}
		fmt.Fprintln(out, treeStyle.Render(strings.TrimRight(printer.Print(program), "\n")))
	}
}

// readEntry prompts until the collected lines no longer stop at the end of
// input. It returns false when the user closes the prompt.
func readEntry(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" || strings.HasPrefix(src, ":") || !incomplete(src) {
			return src, true
		}
	}
}

// incomplete reports whether parsing src ran out of input before it failed.
func incomplete(src string) bool {
	_, err := parseProgram(strings.NewReader(src), tiny.NewSimpleReporter(io.Discard), cfg)
	var parseErr *tiny.ParseError
	return errors.As(err, &parseErr) && parseErr.Found == tiny.EOF
}
