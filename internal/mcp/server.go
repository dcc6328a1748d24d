package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/catalogview/internal/app"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes catalog search tools.
type Server struct {
	holder *app.CatalogHolder
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server reading from holder.
func NewServer(holder *app.CatalogHolder) *Server {
	s := &Server{holder: holder}

	s.mcp = server.NewMCPServer(
		"catalogview",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchCatalogTool, s.handleSearchCatalog)
	s.mcp.AddTool(catalogSummaryTool, s.handleCatalogSummary)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
