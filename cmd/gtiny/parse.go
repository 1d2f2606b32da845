package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ltungv/tiny/gtiny/internal/config"
	"github.com/ltungv/tiny/gtiny/internal/tiny"
)

var (
	parseOutput   string
	parseDebug    string
	parseLegacy   bool
	parseMaxDepth int
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a TINY program and report its status",
	Long: `Parse a TINY program. The first syntax error is written to the output
file and the command exits with a non-zero status. On success the syntax tree
is dumped to the debug file, if one is configured.

Without a file argument the input named in the configuration is parsed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", `diagnostics file, "-" for stderr`)
	parseCmd.Flags().StringVarP(&parseDebug, "debug", "d", "", `syntax tree dump file, "-" for stdout`)
	parseCmd.Flags().BoolVar(&parseLegacy, "legacy-operands", false, "parse later operands of + - < = with factor, as the first TINY front end did")
	parseCmd.Flags().IntVar(&parseMaxDepth, "max-depth", tiny.DefaultMaxDepth, "maximum nesting depth, 0 for unbounded")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	files := cfg.Files
	if len(args) == 1 {
		files.Input = args[0]
	}
	if cmd.Flags().Changed("output") {
		files.Output = parseOutput
	}
	if cmd.Flags().Changed("debug") {
		files.Debug = parseDebug
	}
	if cmd.Flags().Changed("legacy-operands") {
		cfg.Parser.LegacyOperands = parseLegacy
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.Parser.MaxDepth = parseMaxDepth
	}

	in, closeIn, err := openInput(files.Input)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(files.Output, os.Stderr)
	if err != nil {
		return err
	}
	defer closeOut()

	logger.Debug("parsing",
		"input", files.Input,
		"output", files.Output,
		"legacy_operands", cfg.Parser.LegacyOperands,
		"max_depth", cfg.Parser.MaxDepth,
	)
	program, err := parseProgram(in, tiny.NewSimpleReporter(out), cfg)
	if err != nil {
		logger.Debug("parse failed", "input", files.Input, "error", err)
		return reported(err)
	}
	logger.Info("parse succeeded", "input", files.Input, "statements", len(tiny.Statements(program)))

	if files.Debug == "" {
		return nil
	}
	debug, closeDebug, err := openOutput(files.Debug, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeDebug()
	printer := new(tiny.AstPrinter)
	_, err = fmt.Fprint(debug, printer.Print(program))
	return err
}

// parseProgram runs the scanner and parser over r with the given settings.
func parseProgram(r io.Reader, reporter tiny.Reporter, cfg *config.Config) (tiny.Stmt, error) {
	src := tiny.NewSource(r, cfg.Parser.MaxLineLength)
	parser := tiny.NewParser(tiny.NewScanner(src), reporter, cfg.ParserOptions()...)
	return parser.Parse()
}
