/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errEmptyRequestBody = errors.New("request body is empty")
	errTrailingJSON     = errors.New("request body must contain a single JSON object")
)
