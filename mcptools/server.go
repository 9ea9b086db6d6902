/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package mcptools exposes the risk scorer as Model Context Protocol tools
// over stdio.
package mcptools

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/humaidq/glucorisk/intake"
	"github.com/humaidq/glucorisk/metrics"
)

// Server wraps the MCP server instance.
type Server struct {
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server with the risk tools registered. rec may
// be nil.
func NewServer(version string, rec *metrics.Recorder) *Server {
	s := server.NewMCPServer("glucorisk", version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
	)

	registerTools(s, &handlers{rec: rec})

	return &Server{mcpServer: s}
}

// Serve runs the server on the given streams until ctx is done or in is
// closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s.mcpServer).Listen(ctx, in, out)
}

func registerTools(s *server.MCPServer, h *handlers) {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Estimate type 2 diabetes risk from health measurements with a transparent point-based heuristic. " +
			"Returns the risk percentage (0-95), the risk level, recommendations and the points each factor contributed. " +
			"This is a screening aid, not a diagnosis."),
	}

	for _, f := range intake.Fields() {
		propOpts := []mcp.PropertyOption{
			mcp.Description(fieldDescription(f)),
			mcp.Min(f.Min),
		}

		if f.Enforced {
			propOpts = append(propOpts, mcp.Required(), mcp.Max(f.Max))
		} else {
			propOpts = append(propOpts, mcp.DefaultNumber(f.Default))
		}

		opts = append(opts, mcp.WithNumber(f.Key, propOpts...))
	}

	s.AddTool(mcp.NewTool(toolAssess, opts...), h.assess)

	s.AddTool(mcp.NewTool(toolListLevels,
		mcp.WithDescription("List the risk levels with their percentage intervals, explanation and recommendations."),
	), h.listLevels)
}

func fieldDescription(f intake.Field) string {
	desc := f.Label + ". " + f.Description
	if f.Unit != "" {
		desc += " (" + f.Unit + ")"
	}

	if f.Enforced {
		return desc + ". Must be between " + f.Format(f.Min) + " and " + f.Format(f.Max) + "."
	}

	return desc + ". Defaults to " + f.Format(f.Default) + "."
}
