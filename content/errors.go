/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package content

import "errors"

// ErrPageNotFound is returned for slugs without an embedded page.
var ErrPageNotFound = errors.New("page not found")
