/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package risk implements the diabetes risk heuristic: additive points
// from fixed per-factor thresholds, clamped and bucketed into a level.
package risk

// MaxPercentage is the ceiling applied to the summed score.
const MaxPercentage = 95

// HealthMetrics holds the eight inputs of an assessment.
type HealthMetrics struct {
	Pregnancies      int     `json:"pregnancies"`
	Glucose          float64 `json:"glucose"`
	BloodPressure    float64 `json:"bloodPressure"`
	SkinThickness    float64 `json:"skinThickness"`
	Insulin          float64 `json:"insulin"`
	BMI              float64 `json:"bmi"`
	DiabetesPedigree float64 `json:"diabetesPedigree"`
	Age              float64 `json:"age"`
}

// RiskAssessment is the result of scoring a HealthMetrics value.
type RiskAssessment struct {
	RiskPercentage  int      `json:"riskPercentage"`
	RiskLevel       Level    `json:"riskLevel"`
	Recommendations []string `json:"recommendations"`
}

// Contribution is the number of points a single factor added to the score.
type Contribution struct {
	Factor Factor `json:"factor"`
	Points int    `json:"points"`
}

// Score computes the assessment for m. It never fails: out of range values
// simply fall into whichever tier they match.
func Score(m HealthMetrics) RiskAssessment {
	raw := 0
	for _, r := range rules {
		raw += r.points(m)
	}

	pct := clamp(raw)
	level := LevelFor(pct)

	return RiskAssessment{
		RiskPercentage:  pct,
		RiskLevel:       level,
		Recommendations: Recommendations(level),
	}
}

// Breakdown lists the points each factor contributed, in rule order.
// Factors that matched no tier are included with zero points.
func Breakdown(m HealthMetrics) []Contribution {
	out := make([]Contribution, 0, len(rules))
	for _, r := range rules {
		out = append(out, Contribution{Factor: r.factor, Points: r.points(m)})
	}

	return out
}

// RawScore is the unclamped sum of all contributions.
func RawScore(m HealthMetrics) int {
	raw := 0
	for _, c := range Breakdown(m) {
		raw += c.Points
	}

	return raw
}

func clamp(raw int) int {
	if raw < 0 {
		return 0
	}

	if raw > MaxPercentage {
		return MaxPercentage
	}

	return raw
}
