/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

// Level is the categorical bucket derived from a risk percentage.
type Level string

const (
	Low      Level = "Low"
	Moderate Level = "Moderate"
	High     Level = "High"
	VeryHigh Level = "Very High"
)

// Band is the half-open percentage interval [Min, Max) covered by a level.
// The last band is closed at MaxPercentage.
type Band struct {
	Level Level `json:"level"`
	Min   int   `json:"min"`
	Max   int   `json:"max"`
}

var bands = []Band{
	{Level: Low, Min: 0, Max: 25},
	{Level: Moderate, Min: 25, Max: 50},
	{Level: High, Min: 50, Max: 75},
	{Level: VeryHigh, Min: 75, Max: MaxPercentage},
}

// Levels returns all levels in ascending order.
func Levels() []Level {
	return []Level{Low, Moderate, High, VeryHigh}
}

// Bands returns the percentage interval of every level in ascending order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)

	return out
}

// LevelFor maps a percentage to its level.
func LevelFor(pct int) Level {
	switch {
	case pct < 25:
		return Low
	case pct < 50:
		return Moderate
	case pct < 75:
		return High
	default:
		return VeryHigh
	}
}

var recommendations = map[Level][]string{
	Low: {
		"Maintain a healthy diet with balanced nutrition",
		"Continue regular physical activity",
		"Monitor your health annually",
		"Keep a healthy weight",
	},
	Moderate: {
		"Adopt a low-sugar, high-fiber diet",
		"Increase physical activity to 150 minutes per week",
		"Check blood sugar levels every 6 months",
		"Consider weight management if overweight",
	},
	High: {
		"Consult with a healthcare provider immediately",
		"Follow a strict diabetic-friendly diet",
		"Exercise regularly under medical supervision",
		"Monitor blood glucose levels weekly",
	},
	VeryHigh: {
		"Seek immediate medical attention",
		"Follow prescribed medication regimen",
		"Strictly monitor blood sugar daily",
		"Work with a diabetes specialist",
	},
}

// Recommendations returns a copy of the advice list for l. Unknown levels
// get no advice.
func Recommendations(l Level) []string {
	src := recommendations[l]
	out := make([]string, len(src))
	copy(out, src)

	return out
}

// Explanation returns a short paragraph describing what the level means.
func (l Level) Explanation() string {
	switch l {
	case Low:
		return "Your current health metrics suggest a low risk of developing diabetes. " +
			"Continue maintaining your healthy lifestyle habits."
	case Moderate:
		return "Your health metrics indicate a moderate risk. This is a good time to focus on " +
			"preventive measures and lifestyle improvements to reduce your risk."
	case High:
		return "Your health metrics suggest an elevated risk of diabetes. It's important to " +
			"take proactive steps and consult with healthcare professionals."
	case VeryHigh:
		return "Your health metrics indicate a very high risk. Immediate medical consultation " +
			"and intervention are strongly recommended."
	default:
		return ""
	}
}

// Color is the display colour used for the level in charts and badges.
func (l Level) Color() string {
	switch l {
	case Low:
		return "#059669"
	case Moderate:
		return "#d97706"
	case High:
		return "#ea580c"
	case VeryHigh:
		return "#dc2626"
	default:
		return "#6b7280"
	}
}

// Slug is a CSS and metric label friendly form of the level.
func (l Level) Slug() string {
	switch l {
	case Low:
		return "low"
	case Moderate:
		return "moderate"
	case High:
		return "high"
	case VeryHigh:
		return "very-high"
	default:
		return "unknown"
	}
}
