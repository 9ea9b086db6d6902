/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import "errors"

var (
	errSiteTitleRequired  = errors.New("site_title must not be empty")
	errNegativeDelay      = errors.New("analysis_delay must not be negative")
	errBaselineOutOfRange = errors.New("population_baseline must be between 0 and 100")
	errInvalidBaseURL     = errors.New("base_url must be an absolute http or https URL without query or fragment")
	errAgeGroupRange      = errors.New("age_group_min, age_group_spread and age_group_cap must describe a range within 0 and 100")
)
