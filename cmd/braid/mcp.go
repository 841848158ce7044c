package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/braid/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long:  `Exposes parse_grd, validate_grd, and plan_grd as MCP tools over stdin/stdout, for agent hosts that want to check diagrams they generate.`,
	Run: func(cmd *cobra.Command, args []string) {
		server := mcp.NewServer(newParser(cmd))
		if err := server.ServeStdio(); err != nil {
			fmt.Printf("MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
