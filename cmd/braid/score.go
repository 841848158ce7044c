package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/braid/internal/cli"
	"github.com/aretw0/braid/pkg/metrics"
)

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Score the quality of a diagram",
	Long:  `Evaluates validity, completeness, and execution traceability of the diagram, producing scores in [0, 1] usable by optimizer loops.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jsonPath, _ := cmd.Flags().GetString("json-path")

		text, err := cli.ReadInput(inputArg(args), jsonPath)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		report := metrics.Evaluate(text)
		fmt.Printf("validity:     %.2f\n", report.Validity)
		fmt.Printf("completeness: %.2f\n", report.Completeness)
		fmt.Printf("traceability: %.2f\n", report.Traceability)
		fmt.Printf("overall:      %.2f\n", report.Overall)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
