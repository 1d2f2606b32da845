package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ltungv/tiny/gtiny/internal/config"
)

var (
	cfgFile string
	verbose bool

	cfg    = config.Default()
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gtiny",
	Short: "Front end for the TINY language",
	Long: `gtiny scans and parses programs written in TINY, a minimal imperative
language with integer variables, if/then/else/end, repeat/until, read and
write. It reports the first syntax error or dumps the syntax tree.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads the configuration and the logger before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return &exitError{err: err, status: statusUsage}
		}
		cfg = loaded
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return &exitError{err: err, status: statusUsage}
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration loaded", "config", cfgFile, "input", cfg.Files.Input)
	return nil
}
