package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ltungv/tiny/gtiny/internal/tiny"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream of a TINY program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := cfg.Files.Input
	if len(args) == 1 {
		path = args[0]
	}
	in, closeIn, err := openInput(path)
	if err != nil {
		return err
	}
	defer closeIn()

	scanner := tiny.NewScanner(tiny.NewSource(in, cfg.Parser.MaxLineLength))
	out := cmd.OutOrStdout()
	for _, tok := range scanner.Scan() {
		fmt.Fprintf(out, "%d\t%s\t%s\n", tok.Line, tok.Typ, tok.Lexeme)
	}
	return scanner.Err()
}
