package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/braid/pkg/prompt"
)

var promptCmd = &cobra.Command{
	Use:   "prompt <problem>",
	Short: "Render the GRD planning prompt for a problem",
	Long:  `Prints the prompt that asks a model to produce a Guided Reasoning Diagram for the given problem. The diagram producer itself is outside braid; this only renders the text.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, err := prompt.Planning(prompt.PlanRequest{Problem: args[0]})
		if err != nil {
			fmt.Printf("Render failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
}
