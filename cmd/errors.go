/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errInvalidMetrics   = errors.New("health metrics failed validation")
	errMCPServerStopped = errors.New("mcp server stopped unexpectedly")
)
