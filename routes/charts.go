/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/glucorisk/risk"
)

const chartHeight = "320px"

// ComparisonPoint is one bar of the risk comparison chart.
type ComparisonPoint struct {
	Category string
	Risk     float64
}

func comparisonPoints(baseline, ageGroup float64, a risk.RiskAssessment) []ComparisonPoint {
	return []ComparisonPoint{
		{Category: "General Population", Risk: baseline},
		{Category: "Your Age Group", Risk: ageGroup},
		{Category: "Your Assessment", Risk: float64(a.RiskPercentage)},
	}
}

// generateGaugeChart renders the risk percentage as a gauge coloured by level.
func generateGaugeChart(a risk.RiskAssessment) (string, error) {
	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Your Diabetes Risk Level",
			Left:  "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(false),
		}),
	)

	gauge.AddSeries("Risk", []opts.GaugeData{
		{Name: string(a.RiskLevel), Value: a.RiskPercentage},
	}).SetSeriesOptions(
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: a.RiskLevel.Color(),
		}),
	)

	var buf bytes.Buffer
	if err := gauge.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// generateComparisonChart renders the assessment next to the reference values.
func generateComparisonChart(points []ComparisonPoint, level risk.Level) (string, error) {
	xAxis := make([]string, 0, len(points))
	yData := make([]opts.BarData, 0, len(points))

	for i, p := range points {
		xAxis = append(xAxis, p.Category)

		item := opts.BarData{Value: p.Risk}
		// The assessment itself is the last bar and takes the level colour.
		if i == len(points)-1 {
			item.ItemStyle = &opts.ItemStyle{Color: level.Color()}
		}

		yData = append(yData, item)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Risk Comparison",
			Left:  "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Risk (%)",
			Min:  0,
			Max:  100,
		}),
	)

	bar.SetXAxis(xAxis).
		AddSeries("Risk", yData).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "#3b82f6",
			}),
		)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
