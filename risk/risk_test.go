// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalMetrics() HealthMetrics {
	return HealthMetrics{
		Pregnancies:      0,
		Glucose:          50,
		BloodPressure:    40,
		SkinThickness:    5,
		Insulin:          0,
		BMI:              10,
		DiabetesPedigree: 0,
		Age:              1,
	}
}

func maximalMetrics() HealthMetrics {
	return HealthMetrics{
		Pregnancies:      20,
		Glucose:          500,
		BloodPressure:    300,
		SkinThickness:    100,
		Insulin:          500,
		BMI:              100,
		DiabetesPedigree: 5,
		Age:              200,
	}
}

func contributionFor(t *testing.T, m HealthMetrics, f Factor) int {
	t.Helper()

	for _, c := range Breakdown(m) {
		if c.Factor == f {
			return c.Points
		}
	}

	t.Fatalf("factor %q missing from breakdown", f)

	return 0
}

func TestScoreMinimalInputIsLow(t *testing.T) {
	t.Parallel()

	got := Score(minimalMetrics())

	assert.Equal(t, 0, got.RiskPercentage)
	assert.Equal(t, Low, got.RiskLevel)
	assert.Equal(t, []string{
		"Maintain a healthy diet with balanced nutrition",
		"Continue regular physical activity",
		"Monitor your health annually",
		"Keep a healthy weight",
	}, got.Recommendations)
}

func TestScoreClampsMaximalInput(t *testing.T) {
	t.Parallel()

	m := maximalMetrics()

	assert.Equal(t, 130, RawScore(m))

	got := Score(m)
	assert.Equal(t, MaxPercentage, got.RiskPercentage)
	assert.Equal(t, VeryHigh, got.RiskLevel)
}

func TestScoreStaysWithinBounds(t *testing.T) {
	t.Parallel()

	inputs := []HealthMetrics{
		{},
		minimalMetrics(),
		maximalMetrics(),
		{Glucose: -100, BMI: -5, Age: -1, Pregnancies: -3},
		{Glucose: 141, BMI: 31, Age: 46},
		{Glucose: 101, BloodPressure: 81, DiabetesPedigree: 0.31},
	}

	for _, m := range inputs {
		got := Score(m)
		assert.GreaterOrEqual(t, got.RiskPercentage, 0)
		assert.LessOrEqual(t, got.RiskPercentage, MaxPercentage)
		assert.Equal(t, LevelFor(got.RiskPercentage), got.RiskLevel)
		assert.Len(t, got.Recommendations, 4)
	}
}

func TestTiersAreMutuallyExclusive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*HealthMetrics)
		factor Factor
		want   int
	}{
		{name: "age at tier one boundary", mutate: func(m *HealthMetrics) { m.Age = 35 }, factor: FactorAge, want: 0},
		{name: "age above tier one", mutate: func(m *HealthMetrics) { m.Age = 36 }, factor: FactorAge, want: 10},
		{name: "age at tier two boundary", mutate: func(m *HealthMetrics) { m.Age = 45 }, factor: FactorAge, want: 10},
		{name: "age above tier two", mutate: func(m *HealthMetrics) { m.Age = 46 }, factor: FactorAge, want: 20},
		{name: "bmi tier one", mutate: func(m *HealthMetrics) { m.BMI = 25.1 }, factor: FactorBMI, want: 15},
		{name: "bmi tier two", mutate: func(m *HealthMetrics) { m.BMI = 30.1 }, factor: FactorBMI, want: 25},
		{name: "glucose tier one", mutate: func(m *HealthMetrics) { m.Glucose = 101 }, factor: FactorGlucose, want: 20},
		{name: "glucose at tier two boundary", mutate: func(m *HealthMetrics) { m.Glucose = 140 }, factor: FactorGlucose, want: 20},
		{name: "glucose tier two", mutate: func(m *HealthMetrics) { m.Glucose = 141 }, factor: FactorGlucose, want: 30},
		{name: "blood pressure tier one", mutate: func(m *HealthMetrics) { m.BloodPressure = 81 }, factor: FactorBloodPressure, want: 8},
		{name: "blood pressure tier two", mutate: func(m *HealthMetrics) { m.BloodPressure = 91 }, factor: FactorBloodPressure, want: 15},
		{name: "pedigree tier one", mutate: func(m *HealthMetrics) { m.DiabetesPedigree = 0.31 }, factor: FactorDiabetesPedigree, want: 8},
		{name: "pedigree tier two", mutate: func(m *HealthMetrics) { m.DiabetesPedigree = 0.51 }, factor: FactorDiabetesPedigree, want: 15},
		{name: "pregnancies tier one", mutate: func(m *HealthMetrics) { m.Pregnancies = 3 }, factor: FactorPregnancies, want: 5},
		{name: "pregnancies tier two", mutate: func(m *HealthMetrics) { m.Pregnancies = 6 }, factor: FactorPregnancies, want: 10},
		{name: "insulin tier one", mutate: func(m *HealthMetrics) { m.Insulin = 151 }, factor: FactorInsulin, want: 5},
		{name: "insulin tier two", mutate: func(m *HealthMetrics) { m.Insulin = 201 }, factor: FactorInsulin, want: 10},
		{name: "skin thickness at boundary", mutate: func(m *HealthMetrics) { m.SkinThickness = 35 }, factor: FactorSkinThickness, want: 0},
		{name: "skin thickness single tier", mutate: func(m *HealthMetrics) { m.SkinThickness = 36 }, factor: FactorSkinThickness, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := minimalMetrics()
			tt.mutate(&m)

			assert.Equal(t, tt.want, contributionFor(t, m, tt.factor))
			assert.Equal(t, tt.want, Score(m).RiskPercentage)
		})
	}
}

func TestBreakdownSumsToScore(t *testing.T) {
	t.Parallel()

	m := HealthMetrics{
		Pregnancies:      3,
		Glucose:          120,
		BloodPressure:    85,
		SkinThickness:    20,
		Insulin:          80,
		BMI:              27,
		DiabetesPedigree: 0.4,
		Age:              40,
	}

	breakdown := Breakdown(m)
	require.Len(t, breakdown, 8)
	assert.Equal(t, FactorAge, breakdown[0].Factor)
	assert.Equal(t, FactorSkinThickness, breakdown[7].Factor)

	// 10 + 15 + 20 + 8 + 8 + 5 + 0 + 0
	assert.Equal(t, 66, RawScore(m))

	got := Score(m)
	assert.Equal(t, 66, got.RiskPercentage)
	assert.Equal(t, High, got.RiskLevel)
}

func TestScoreIsDeterministic(t *testing.T) {
	t.Parallel()

	m := HealthMetrics{Glucose: 150, BMI: 32, Age: 50, BloodPressure: 95}

	first := Score(m)
	second := Score(m)

	assert.Equal(t, first, second)
}

func TestRecommendationsAreCopies(t *testing.T) {
	t.Parallel()

	got := Score(minimalMetrics())
	got.Recommendations[0] = "tampered"

	again := Score(minimalMetrics())
	assert.Equal(t, "Maintain a healthy diet with balanced nutrition", again.Recommendations[0])
}
