package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/braid"
	"github.com/aretw0/braid/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "braid",
	Short: "Braid parses Guided Reasoning Diagrams and derives execution plans",
	Long: `Braid extracts Mermaid flowcharts from free text, validates them as
Guided Reasoning Diagrams, and derives deterministic step-by-step plans.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("json-path", "", "Treat input as JSON and extract the text at this gjson path")
}

// newParser builds the parser shared by the commands, honoring --verbose.
func newParser(cmd *cobra.Command) *braid.Parser {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return braid.New(braid.WithLogger(logging.New(level)))
}

// inputArg resolves the optional [file] positional argument, "-" for stdin.
func inputArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "-"
}
