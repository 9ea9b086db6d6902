/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "github.com/humaidq/glucorisk/logging"

var appLogger = logging.Logger(logging.SourceApp)
var mcpLogger = logging.Logger(logging.SourceMCP)
var requestStdLogger = logging.StdLogger(logging.SourceWebRequest)
