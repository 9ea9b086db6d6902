/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	htmltemplate "html/template"
	"net/http"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/glucorisk/config"
	"github.com/humaidq/glucorisk/intake"
	"github.com/humaidq/glucorisk/metrics"
	"github.com/humaidq/glucorisk/risk"
)

// Surfaces label metrics by where an assessment was requested.
const (
	surfaceWeb = "web"
	surfaceAPI = "api"
)

// MetricRow is one submitted value as shown on the result page.
type MetricRow struct {
	Label string
	Value string
	Unit  string
}

// BreakdownRow is the points one factor contributed.
type BreakdownRow struct {
	Label  string
	Points int
}

// BandView is one segment of the risk scale.
type BandView struct {
	risk.Band
	Color  string
	Active bool
}

// ResultView is everything the result page renders.
type ResultView struct {
	Assessment     risk.RiskAssessment
	Explanation    string
	Metrics        []MetricRow
	Breakdown      []BreakdownRow
	RawScore       int
	Bands          []BandView
	Comparison     []ComparisonPoint
	GaugeHTML      htmltemplate.HTML
	ComparisonHTML htmltemplate.HTML
	ShareURL       string
	ShareQR        string
	ReportURL      string
	AdjustURL      string
}

// Assess handles a submitted assessment form. Invalid submissions are sent
// back with per-field messages and never reach the scorer.
func Assess(
	c flamego.Context,
	s session.Session,
	t template.Template,
	data template.Data,
	cfg *config.Config,
	rec *metrics.Recorder,
) {
	if err := c.Request().ParseForm(); err != nil {
		logger.Error("Error parsing assessment form", "error", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/", http.StatusSeeOther)

		return
	}

	form := c.Request().PostForm

	m, errs := intake.Parse(form)
	if len(errs) > 0 {
		rec.Rejected(surfaceWeb, errs)
		logger.Info("assessment rejected", "event", "validation_failed", "fields", len(errs))
		renderFormErrors(t, data, form, errs)

		return
	}

	// Fixed wait so the result does not appear to be instantaneous.
	if cfg.AnalysisDelay > 0 {
		time.Sleep(cfg.AnalysisDelay)
	}

	renderResult(c, s, t, data, cfg, rec, m)
}

// Result renders the assessment encoded in a share link.
func Result(
	c flamego.Context,
	s session.Session,
	t template.Template,
	data template.Data,
	cfg *config.Config,
	rec *metrics.Recorder,
) {
	query := c.Request().URL.Query()

	m, errs := intake.Parse(query)
	if len(errs) > 0 {
		rec.Rejected(surfaceWeb, errs)
		renderFormErrors(t, data, query, errs)

		return
	}

	renderResult(c, s, t, data, cfg, rec, m)
}

func renderResult(
	c flamego.Context,
	s session.Session,
	t template.Template,
	data template.Data,
	cfg *config.Config,
	rec *metrics.Recorder,
	m risk.HealthMetrics,
) {
	a := risk.Score(m)
	rec.Assessment(surfaceWeb, a.RiskLevel)
	logger.Info("assessment computed", "event", "assessment", "level", a.RiskLevel, "risk_percentage", a.RiskPercentage)

	view := buildResultView(m, a)
	view.Comparison = comparisonPoints(cfg.PopulationBaseline, ageGroupRisk(s, cfg), a)
	view.ShareURL = requestBaseURL(c, cfg) + resultPath(m)

	if gauge, err := generateGaugeChart(a); err != nil {
		logger.Error("Error generating gauge chart", "error", err)
	} else {
		//nolint:gosec // Chart markup is produced by go-echarts from numeric data.
		view.GaugeHTML = htmltemplate.HTML(gauge)
	}

	if comparison, err := generateComparisonChart(view.Comparison, a.RiskLevel); err != nil {
		logger.Error("Error generating comparison chart", "error", err)
	} else {
		//nolint:gosec // Chart markup is produced by go-echarts from numeric data.
		view.ComparisonHTML = htmltemplate.HTML(comparison)
	}

	if qr, err := generateQRCodeBase64(view.ShareURL); err != nil {
		logger.Error("Error generating share QR code", "error", err)
	} else {
		view.ShareQR = qr
	}

	data["IsHome"] = true
	data["Result"] = view
	setPageTitle(data, string(a.RiskLevel)+" Risk")

	t.HTML(http.StatusOK, "result")
}

func buildResultView(m risk.HealthMetrics, a risk.RiskAssessment) ResultView {
	view := ResultView{
		Assessment:  a,
		Explanation: a.RiskLevel.Explanation(),
		RawScore:    risk.RawScore(m),
		ReportURL:   reportPath(m),
		AdjustURL:   adjustPath(m),
	}

	for _, f := range intake.Fields() {
		view.Metrics = append(view.Metrics, MetricRow{
			Label: f.Label,
			Value: f.Format(f.Value(m)),
			Unit:  f.Unit,
		})
	}

	for _, contribution := range risk.Breakdown(m) {
		view.Breakdown = append(view.Breakdown, BreakdownRow{
			Label:  contribution.Factor.Label(),
			Points: contribution.Points,
		})
	}

	for _, b := range risk.Bands() {
		view.Bands = append(view.Bands, BandView{
			Band:   b,
			Color:  b.Level.Color(),
			Active: b.Level == a.RiskLevel,
		})
	}

	return view
}
