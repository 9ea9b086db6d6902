/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

// Factor names one input that takes part in scoring.
type Factor string

const (
	FactorAge              Factor = "age"
	FactorBMI              Factor = "bmi"
	FactorGlucose          Factor = "glucose"
	FactorBloodPressure    Factor = "bloodPressure"
	FactorDiabetesPedigree Factor = "diabetesPedigree"
	FactorPregnancies      Factor = "pregnancies"
	FactorInsulin          Factor = "insulin"
	FactorSkinThickness    Factor = "skinThickness"
)

// Label returns a human readable name for the factor.
func (f Factor) Label() string {
	switch f {
	case FactorAge:
		return "Age"
	case FactorBMI:
		return "Body Mass Index"
	case FactorGlucose:
		return "Glucose"
	case FactorBloodPressure:
		return "Blood Pressure"
	case FactorDiabetesPedigree:
		return "Family History"
	case FactorPregnancies:
		return "Pregnancies"
	case FactorInsulin:
		return "Insulin"
	case FactorSkinThickness:
		return "Skin Thickness"
	default:
		return string(f)
	}
}

// tier awards points when the factor value is strictly above threshold.
type tier struct {
	above  float64
	points int
}

// rule holds the tiers of one factor, highest threshold first. The first
// matching tier wins so a value never collects points from two tiers.
type rule struct {
	factor Factor
	value  func(HealthMetrics) float64
	tiers  []tier
}

func (r rule) points(m HealthMetrics) int {
	v := r.value(m)
	for _, t := range r.tiers {
		if v > t.above {
			return t.points
		}
	}

	return 0
}

var rules = []rule{
	{
		factor: FactorAge,
		value:  func(m HealthMetrics) float64 { return m.Age },
		tiers:  []tier{{above: 45, points: 20}, {above: 35, points: 10}},
	},
	{
		factor: FactorBMI,
		value:  func(m HealthMetrics) float64 { return m.BMI },
		tiers:  []tier{{above: 30, points: 25}, {above: 25, points: 15}},
	},
	{
		factor: FactorGlucose,
		value:  func(m HealthMetrics) float64 { return m.Glucose },
		tiers:  []tier{{above: 140, points: 30}, {above: 100, points: 20}},
	},
	{
		factor: FactorBloodPressure,
		value:  func(m HealthMetrics) float64 { return m.BloodPressure },
		tiers:  []tier{{above: 90, points: 15}, {above: 80, points: 8}},
	},
	{
		factor: FactorDiabetesPedigree,
		value:  func(m HealthMetrics) float64 { return m.DiabetesPedigree },
		tiers:  []tier{{above: 0.5, points: 15}, {above: 0.3, points: 8}},
	},
	{
		factor: FactorPregnancies,
		value:  func(m HealthMetrics) float64 { return float64(m.Pregnancies) },
		tiers:  []tier{{above: 5, points: 10}, {above: 2, points: 5}},
	},
	{
		factor: FactorInsulin,
		value:  func(m HealthMetrics) float64 { return m.Insulin },
		tiers:  []tier{{above: 200, points: 10}, {above: 150, points: 5}},
	},
	{
		factor: FactorSkinThickness,
		value:  func(m HealthMetrics) float64 { return m.SkinThickness },
		tiers:  []tier{{above: 35, points: 5}},
	},
}
