package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/mcp"
)

var (
	mcpPort int
	mcpHost string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol integration",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve site content to MCP clients",
	Long: `Expose the renderer, FAQ, legal pages and mod changelogs over the Model
Context Protocol.

Tools:     render, changelog, faq_lookup
Resources: collab://legal, collab://legal/{name}, collab://faq, collab://faq/{anchor}

Without --port the server speaks JSON-RPC on stdin/stdout, which is what
desktop assistants expect when they launch collab themselves:

  {"mcpServers": {"collab": {"command": "collab", "args": ["mcp", "serve"]}}}

With --port it serves streamable HTTP instead, e.g. for MCP Inspector:

  collab mcp serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "serve HTTP on this port instead of stdio")
	mcpServeCmd.Flags().StringVar(&mcpHost, "host", "localhost", "interface to bind when --port is set")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if mcpPort < 0 || mcpPort > 65535 {
		return fmt.Errorf("--port %d out of range", mcpPort)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Render:    renderService,
		Content:   contentService,
		Changelog: changelogService,
	})
	if err != nil {
		return err
	}

	if mcpPort == 0 {
		return server.Run(cmd.Context())
	}
	addr := net.JoinHostPort(mcpHost, strconv.Itoa(mcpPort))
	fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}
