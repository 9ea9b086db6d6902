// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pct  int
		want Level
	}{
		{pct: -5, want: Low},
		{pct: 0, want: Low},
		{pct: 24, want: Low},
		{pct: 25, want: Moderate},
		{pct: 49, want: Moderate},
		{pct: 50, want: High},
		{pct: 74, want: High},
		{pct: 75, want: VeryHigh},
		{pct: 95, want: VeryHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.pct), "pct=%d", tt.pct)
	}
}

func TestEveryLevelHasFourRecommendations(t *testing.T) {
	t.Parallel()

	for _, l := range Levels() {
		recs := Recommendations(l)
		assert.Len(t, recs, 4, "level %s", l)
		assert.Equal(t, recs, Recommendations(l), "level %s", l)
		assert.NotEmpty(t, l.Explanation(), "level %s", l)
	}
}

func TestRecommendationsUnknownLevel(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Recommendations(Level("Unknown")))
	assert.Equal(t, "#6b7280", Level("Unknown").Color())
}

func TestBandsCoverLevels(t *testing.T) {
	t.Parallel()

	got := Bands()
	assert.Len(t, got, len(Levels()))

	for i, b := range got {
		assert.Equal(t, Levels()[i], b.Level)
		assert.Equal(t, b.Level, LevelFor(b.Min))
	}

	got[0].Max = 99
	assert.Equal(t, 25, Bands()[0].Max)
}

func TestLevelSlugs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "very-high", VeryHigh.Slug())
	assert.Equal(t, "low", Low.Slug())
}
