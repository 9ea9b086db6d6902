/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"net/http"
	"strconv"
	texttemplate "text/template"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/google/uuid"

	"github.com/humaidq/glucorisk/config"
	"github.com/humaidq/glucorisk/intake"
	"github.com/humaidq/glucorisk/risk"
)

var reportTemplate = texttemplate.Must(texttemplate.New("report").Funcs(texttemplate.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`{{.Title}}
Diabetes Risk Assessment Report
Report ID: {{.ID}}
Generated: {{.Generated}}

RESULT
  Risk: {{.View.Assessment.RiskPercentage}}% ({{.View.Assessment.RiskLevel}} Risk)

  {{.View.Explanation}}

MEASUREMENTS
{{- range .View.Metrics}}
  {{printf "%-28s" .Label}} {{.Value}}{{if .Unit}} {{.Unit}}{{end}}
{{- end}}

SCORE BREAKDOWN
{{- range .View.Breakdown}}
  {{printf "%-28s" .Label}} {{.Points}} pts
{{- end}}
  {{printf "%-28s" "Total before cap"}} {{.View.RawScore}} pts

RECOMMENDATIONS
{{- range $i, $r := .View.Assessment.Recommendations}}
  {{inc $i}}. {{$r}}
{{- end}}

This report is a heuristic screening aid and not a diagnosis. Always
consult a healthcare provider for medical advice.
`))

type reportData struct {
	Title     string
	ID        string
	Generated string
	View      ResultView
}

// DownloadReport serves the assessment for the query values as a text file.
func DownloadReport(c flamego.Context, s session.Session, cfg *config.Config) {
	m, errs := intake.Parse(c.Request().URL.Query())
	if len(errs) > 0 {
		SetWarningFlash(s, "The report link is incomplete or out of range. Please check your values.")
		c.Redirect("/?"+c.Request().URL.RawQuery, http.StatusSeeOther)

		return
	}

	id := uuid.New()

	body, err := renderReport(cfg.SiteTitle, id, time.Now().UTC(), m)
	if err != nil {
		logger.Error("Error rendering report", "error", err)
		c.ResponseWriter().WriteHeader(http.StatusInternalServerError)

		return
	}

	headers := c.ResponseWriter().Header()
	headers.Set("Content-Type", "text/plain; charset=utf-8")
	headers.Set("Content-Disposition", "attachment; filename=\"diabetes-risk-"+id.String()+".txt\"")
	headers.Set("Content-Length", strconv.Itoa(len(body)))
	headers.Set("X-Content-Type-Options", "nosniff")

	c.ResponseWriter().WriteHeader(http.StatusOK)

	if _, err := c.ResponseWriter().Write(body); err != nil {
		logger.Error("Error writing report response", "error", err)
	}
}

func renderReport(title string, id uuid.UUID, generated time.Time, m risk.HealthMetrics) ([]byte, error) {
	a := risk.Score(m)

	var buf bytes.Buffer
	err := reportTemplate.Execute(&buf, reportData{
		Title:     title,
		ID:        id.String(),
		Generated: generated.Format(time.RFC1123),
		View:      buildResultView(m, a),
	})
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
