/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/glucorisk/logging"
	"github.com/humaidq/glucorisk/mcptools"
	"github.com/humaidq/glucorisk/metrics"
)

var CmdMCP = &cli.Command{
	Name:   "mcp",
	Usage:  "Serve the risk tools over MCP on stdio",
	Action: serveMCP,
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	// stdout carries the protocol stream.
	logging.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := mcptools.NewServer(cmd.Root().Version, metrics.New())

	mcpLogger.Info("Starting MCP server on stdio")

	err := srv.Serve(ctx, os.Stdin, os.Stdout)
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}

	return errors.Join(errMCPServerStopped, err)
}
