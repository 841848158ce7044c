package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/braid/internal/cli"
	"github.com/aretw0/braid/internal/presentation/tui"
)

var planCmd = &cobra.Command{
	Use:   "plan [file]",
	Short: "Derive the execution plan for a diagram",
	Long:  `Parses and validates the diagram, then prints the deterministic execution order. Each step lists the steps it depends on.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jsonPath, _ := cmd.Flags().GetString("json-path")
		format, _ := cmd.Flags().GetString("format")

		text, err := cli.ReadInput(inputArg(args), jsonPath)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		steps, err := newParser(cmd).Plan(text)
		if err != nil {
			fmt.Printf("Planning failed: %v\n", err)
			os.Exit(1)
		}

		switch format {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(steps); err != nil {
				fmt.Printf("Encode failed: %v\n", err)
				os.Exit(1)
			}
		case "yaml":
			if err := yaml.NewEncoder(os.Stdout).Encode(steps); err != nil {
				fmt.Printf("Encode failed: %v\n", err)
				os.Exit(1)
			}
		case "markdown":
			render := tui.NewRenderer()
			out, err := render(tui.PlanMarkdown(steps))
			if err != nil {
				fmt.Printf("Render failed: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(out)
		default:
			fmt.Print(tui.FormatSteps(steps))
		}
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().StringP("format", "f", "text", "Output format: text, json, yaml, markdown")
}
