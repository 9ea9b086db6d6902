/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"math"
	"math/rand/v2"

	"github.com/flamego/session"

	"github.com/humaidq/glucorisk/config"
)

const ageGroupSessionKey = "age_group_risk"

var randFloat = rand.Float64

// ageGroupRisk returns the illustrative age group value for the comparison
// chart. It is drawn once per session and is unrelated to the score.
func ageGroupRisk(s session.Session, cfg *config.Config) float64 {
	if v, ok := s.Get(ageGroupSessionKey).(float64); ok {
		return v
	}

	v := math.Min(cfg.AgeGroupMin+randFloat()*cfg.AgeGroupSpread, cfg.AgeGroupCap)
	v = math.Round(v*10) / 10

	s.Set(ageGroupSessionKey, v)

	return v
}
