package cmd

import (
	"fmt"

	"terravox/internal/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// mcpCmd serves the intent and generation tools over MCP stdio so agent
// front-ends (editors, chat clients) can call them.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve intent detection and Terraform generation as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser, err := buildParser()
		if err != nil {
			return err
		}

		s := server.NewMCPServer("terravox", version,
			server.WithToolCapabilities(true),
		)
		if err := mcp.NewToolManager(parser).RegisterTools(s); err != nil {
			return fmt.Errorf("registering tools: %w", err)
		}

		return server.ServeStdio(s)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
