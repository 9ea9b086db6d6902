/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package intake describes the assessment form fields and turns submitted
// values into validated risk.HealthMetrics.
package intake

import (
	"strconv"

	"github.com/humaidq/glucorisk/risk"
)

// Field keys, shared by HTML forms, query strings, CLI flags and tool args.
const (
	KeyPregnancies      = "pregnancies"
	KeyGlucose          = "glucose"
	KeyBloodPressure    = "bloodPressure"
	KeySkinThickness    = "skinThickness"
	KeyInsulin          = "insulin"
	KeyBMI              = "bmi"
	KeyDiabetesPedigree = "diabetesPedigree"
	KeyAge              = "age"
)

// Field describes one input of the assessment form.
type Field struct {
	Key         string
	Label       string
	Icon        string
	Unit        string
	Description string
	Min         float64
	Max         float64
	Step        float64
	Default     float64
	// Enforced fields reject values outside [Min, Max]. Other fields only
	// use the bounds as input hints.
	Enforced bool
	Integer  bool

	get func(risk.HealthMetrics) float64
}

// Value reads the field from m.
func (f Field) Value(m risk.HealthMetrics) float64 {
	return f.get(m)
}

// Format renders v using the field's step precision.
func (f Field) Format(v float64) string {
	if f.Integer {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

var fields = []Field{
	{
		Key:         KeyPregnancies,
		Label:       "Number of Pregnancies",
		Icon:        "ri-parent-line",
		Unit:        "times",
		Description: "Total number of pregnancies (0 if male or never pregnant)",
		Min:         0, Max: 15, Step: 1, Default: 0,
		Integer: true,
		get:     func(m risk.HealthMetrics) float64 { return float64(m.Pregnancies) },
	},
	{
		Key:         KeyGlucose,
		Label:       "Glucose Level",
		Icon:        "ri-drop-line",
		Unit:        "mg/dL",
		Description: "Plasma glucose concentration (fasting blood sugar level)",
		Min:         50, Max: 300, Step: 1, Default: 100,
		Enforced: true,
		get:      func(m risk.HealthMetrics) float64 { return m.Glucose },
	},
	{
		Key:         KeyBloodPressure,
		Label:       "Blood Pressure",
		Icon:        "ri-heart-pulse-line",
		Unit:        "mmHg",
		Description: "Diastolic blood pressure (bottom number)",
		Min:         40, Max: 200, Step: 1, Default: 80,
		Enforced: true,
		get:      func(m risk.HealthMetrics) float64 { return m.BloodPressure },
	},
	{
		Key:         KeySkinThickness,
		Label:       "Skin Thickness",
		Icon:        "ri-ruler-line",
		Unit:        "mm",
		Description: "Triceps skin fold thickness",
		Min:         5, Max: 50, Step: 1, Default: 20,
		get: func(m risk.HealthMetrics) float64 { return m.SkinThickness },
	},
	{
		Key:         KeyInsulin,
		Label:       "Insulin Level",
		Icon:        "ri-syringe-line",
		Unit:        "μU/mL",
		Description: "2-Hour serum insulin level",
		Min:         0, Max: 400, Step: 1, Default: 80,
		get: func(m risk.HealthMetrics) float64 { return m.Insulin },
	},
	{
		Key:         KeyBMI,
		Label:       "Body Mass Index (BMI)",
		Icon:        "ri-scales-3-line",
		Unit:        "kg/m²",
		Description: "Weight in kg divided by height in meters squared",
		Min:         10, Max: 50, Step: 0.1, Default: 25,
		Enforced: true,
		get:      func(m risk.HealthMetrics) float64 { return m.BMI },
	},
	{
		Key:         KeyDiabetesPedigree,
		Label:       "Diabetes Pedigree Function",
		Icon:        "ri-dna-line",
		Description: "Genetic predisposition based on family history (0.0 - 2.0)",
		Min:         0, Max: 2, Step: 0.01, Default: 0.3,
		get: func(m risk.HealthMetrics) float64 { return m.DiabetesPedigree },
	},
	{
		Key:         KeyAge,
		Label:       "Age",
		Icon:        "ri-calendar-line",
		Unit:        "years",
		Description: "Age in years",
		Min:         1, Max: 120, Step: 1, Default: 30,
		Enforced: true,
		get:      func(m risk.HealthMetrics) float64 { return m.Age },
	},
}

// Fields returns the form fields in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)

	return out
}

// Lookup returns the field with the given key.
func Lookup(key string) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}

	return Field{}, false
}

// Defaults returns the metrics the form is prefilled with.
func Defaults() risk.HealthMetrics {
	var m risk.HealthMetrics
	for _, f := range fields {
		set(&m, f.Key, f.Default)
	}

	return m
}

// Values renders m as strings keyed by field key, suitable for prefilling a
// form or building a query string.
func Values(m risk.HealthMetrics) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Format(f.Value(m))
	}

	return out
}

func set(m *risk.HealthMetrics, key string, v float64) {
	switch key {
	case KeyPregnancies:
		m.Pregnancies = int(v)
	case KeyGlucose:
		m.Glucose = v
	case KeyBloodPressure:
		m.BloodPressure = v
	case KeySkinThickness:
		m.SkinThickness = v
	case KeyInsulin:
		m.Insulin = v
	case KeyBMI:
		m.BMI = v
	case KeyDiabetesPedigree:
		m.DiabetesPedigree = v
	case KeyAge:
		m.Age = v
	}
}
