/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/flamego/flamego"

	"github.com/humaidq/glucorisk/intake"
	"github.com/humaidq/glucorisk/metrics"
	"github.com/humaidq/glucorisk/risk"
)

const maxAPIBodyBytes = 16 << 10

// APIAssessment is the JSON response of the assessment endpoint.
type APIAssessment struct {
	Metrics    risk.HealthMetrics  `json:"metrics"`
	Assessment risk.RiskAssessment `json:"assessment"`
	Breakdown  []risk.Contribution `json:"breakdown"`
}

// APIAssess scores a JSON object of health metrics. Omitted fields take the
// form defaults; invalid values are reported per field with status 422.
func APIAssess(c flamego.Context, rec *metrics.Recorder) {
	values, err := decodeMetricsJSON(io.LimitReader(c.Request().Body().ReadCloser(), maxAPIBodyBytes))
	if err != nil {
		writeJSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	errs := intake.FieldErrors{}
	for key := range values {
		if _, ok := intake.Lookup(key); !ok {
			errs[key] = "unknown field"
		}
	}

	m, fieldErrs := intake.Build(values)
	for key, msg := range fieldErrs {
		errs[key] = msg
	}

	if len(errs) > 0 {
		rec.Rejected(surfaceAPI, errs)
		writeJSONStatus(c, http.StatusUnprocessableEntity, map[string]any{"errors": errs})

		return
	}

	a := risk.Score(m)
	rec.Assessment(surfaceAPI, a.RiskLevel)

	writeJSONStatus(c, http.StatusOK, APIAssessment{
		Metrics:    m,
		Assessment: a,
		Breakdown:  risk.Breakdown(m),
	})
}

// APILevels lists the risk levels with their intervals and advice.
func APILevels(c flamego.Context) {
	type level struct {
		risk.Band
		Explanation     string   `json:"explanation"`
		Recommendations []string `json:"recommendations"`
	}

	bands := risk.Bands()
	out := make([]level, 0, len(bands))

	for _, b := range bands {
		out = append(out, level{
			Band:            b,
			Explanation:     b.Level.Explanation(),
			Recommendations: risk.Recommendations(b.Level),
		})
	}

	writeJSONStatus(c, http.StatusOK, out)
}

func decodeMetricsJSON(r io.Reader) (map[string]float64, error) {
	dec := json.NewDecoder(r)

	var values map[string]float64
	if err := dec.Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyRequestBody
		}

		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}

	if dec.More() {
		return nil, errTrailingJSON
	}

	if values == nil {
		values = map[string]float64{}
	}

	return values, nil
}

func writeJSONStatus(c flamego.Context, status int, payload any) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(status)

	if err := json.NewEncoder(c.ResponseWriter()).Encode(payload); err != nil {
		logger.Error("Error encoding JSON response", "error", err)
	}
}

func writeJSONError(c flamego.Context, status int, message string) {
	writeJSONStatus(c, status, map[string]string{"error": message})
}

// Metrics serves the Prometheus exposition.
func Metrics(c flamego.Context, rec *metrics.Recorder) {
	rec.Handler().ServeHTTP(c.ResponseWriter(), c.Request().Request)
}
