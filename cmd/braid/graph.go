package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/braid/internal/cli"
	"github.com/aretw0/braid/internal/presentation/graph"
)

// graphCmd re-renders a parsed diagram as canonical Mermaid source, which
// normalizes arrow styles and drops comments.
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Re-render a diagram as canonical Mermaid source",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jsonPath, _ := cmd.Flags().GetString("json-path")

		text, err := cli.ReadInput(inputArg(args), jsonPath)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		structure, err := newParser(cmd).Parse(text)
		if err != nil {
			fmt.Printf("Parse failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.Render(structure))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
