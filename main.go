/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/glucorisk/cmd"
)

var version = "dev"

func main() {
	app := &cli.Command{
		Name:    "glucorisk",
		Usage:   "Glucorisk - Diabetes Risk Predictor",
		Version: version,
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdScore,
			cmd.CmdMCP,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
