package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/braid/internal/cli"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a diagram and print its structure",
	Long:  `Extracts the Mermaid flowchart from the input and prints the parsed nodes and edges as JSON. Reads stdin when no file is given.`,
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

		out := map[string]any{
			"direction": structure.Direction(),
			"nodes":     structure.Nodes(),
			"edges":     structure.Edges(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Printf("Encode failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
