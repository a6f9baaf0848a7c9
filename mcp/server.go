package mcp

import (
	"github.com/lukman83/latino-market/internal/storefront"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "latino-market"
	serverVersion = "1.0.0"
)

// NewServer builds the MCP server with all storefront tools bound to sess.
func NewServer(sess *storefront.Session) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	registerTools(s, &handlers{sess: sess})

	return s
}

// Serve starts the MCP stdio server for a single storefront session.
func Serve(sess *storefront.Session) error {
	return server.ServeStdio(NewServer(sess))
}
