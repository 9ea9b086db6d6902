/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package metrics exposes Prometheus counters for assessments served.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/humaidq/glucorisk/intake"
	"github.com/humaidq/glucorisk/risk"
)

// unknownField labels rejected keys that are not form fields.
const unknownField = "unknown"

// Recorder counts assessments and rejected submissions. Only the level and
// the failing field name are recorded, never the submitted values.
type Recorder struct {
	registry    *prometheus.Registry
	assessments *prometheus.CounterVec
	rejections  *prometheus.CounterVec
}

// New creates a Recorder backed by its own registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()

	r := &Recorder{
		registry: reg,
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "glucorisk",
			Name:      "assessments_total",
			Help:      "Risk assessments computed, by risk level and surface.",
		}, []string{"level", "surface"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "glucorisk",
			Name:      "validation_failures_total",
			Help:      "Submitted fields rejected before scoring, by field.",
		}, []string{"field", "surface"}),
	}

	reg.MustRegister(
		r.assessments,
		r.rejections,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Assessment records a computed assessment.
func (r *Recorder) Assessment(surface string, level risk.Level) {
	r.assessments.WithLabelValues(level.Slug(), surface).Inc()
}

// Rejected records every field that failed validation. Keys outside the
// form catalogue share the unknownField label.
func (r *Recorder) Rejected(surface string, fields map[string]string) {
	for field := range fields {
		if _, known := intake.Lookup(field); !known {
			field = unknownField
		}

		r.rejections.WithLabelValues(field, surface).Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
