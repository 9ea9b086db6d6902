/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package intake

import "errors"

var (
	errMissingValue   = errors.New("Please enter a value")
	errNotANumber     = errors.New("Please enter a number")
	errNotWholeNumber = errors.New("Please enter a whole number")
	errNegativeCount  = errors.New("Please enter a value of 0 or more")
)
