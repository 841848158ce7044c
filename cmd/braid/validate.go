package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/braid/internal/cli"
	"github.com/aretw0/braid/internal/presentation/tui"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a diagram for structural problems",
	Long:  `Parses the diagram and checks that it is a well-formed GRD: non-empty, acyclic, with a usable start node. Unreachable nodes are reported as notes.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jsonPath, _ := cmd.Flags().GetString("json-path")

		text, err := cli.ReadInput(inputArg(args), jsonPath)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		parser := newParser(cmd)
		valid, message := parser.Validate(text)
		if !valid {
			fmt.Printf("Validation failed: %s\n", message)
			os.Exit(1)
		}

		if structure, err := parser.Parse(text); err == nil {
			fmt.Print(tui.FormatNotes(parser.Notes(structure)))
		}
		fmt.Println("Diagram is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
