/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package intake

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/humaidq/glucorisk/risk"
)

// FieldErrors maps a field key to the message shown next to that field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range fields {
		if msg, ok := e[f.Key]; ok {
			parts = append(parts, f.Key+": "+msg)
		}
	}

	for key, msg := range e {
		if _, known := Lookup(key); !known {
			parts = append(parts, key+": "+msg)
		}
	}

	return "invalid health metrics: " + strings.Join(parts, "; ")
}

// Err returns e as an error, or nil when there are no field errors.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}

	return e
}

// RangeMessage is the message used when a value falls outside a field's
// accepted range.
func RangeMessage(f Field) string {
	return fmt.Sprintf("Please enter a valid value between %s and %s", f.Format(f.Min), f.Format(f.Max))
}

// Validate checks m against the enforced field ranges. The scorer accepts
// any value; this is the gate callers put in front of it.
func Validate(m risk.HealthMetrics) FieldErrors {
	errs := FieldErrors{}

	for _, f := range fields {
		v := f.Value(m)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs[f.Key] = errNotANumber.Error()
			continue
		}

		if f.Integer && v < 0 {
			errs[f.Key] = errNegativeCount.Error()
			continue
		}

		if f.Enforced && (v < f.Min || v > f.Max) {
			errs[f.Key] = RangeMessage(f)
		}
	}

	return errs
}

// Parse reads every field from values and validates the result. Missing or
// non-numeric values are reported per field alongside range violations.
func Parse(values url.Values) (risk.HealthMetrics, FieldErrors) {
	var m risk.HealthMetrics
	errs := FieldErrors{}

	for _, f := range fields {
		raw := strings.TrimSpace(values.Get(f.Key))
		if raw == "" {
			errs[f.Key] = errMissingValue.Error()
			continue
		}

		v, err := parseValue(f, raw)
		if err != nil {
			errs[f.Key] = err.Error()
			continue
		}

		set(&m, f.Key, v)
	}

	for key, msg := range Validate(m) {
		if _, exists := errs[key]; !exists {
			errs[key] = msg
		}
	}

	return m, errs
}

// Build assembles metrics from numeric values keyed by field key. Missing
// keys take the field default.
func Build(values map[string]float64) (risk.HealthMetrics, FieldErrors) {
	m := Defaults()
	errs := FieldErrors{}

	for _, f := range fields {
		v, ok := values[f.Key]
		if !ok {
			continue
		}

		if f.Integer && v != math.Trunc(v) {
			errs[f.Key] = errNotWholeNumber.Error()
			continue
		}

		set(&m, f.Key, v)
	}

	for key, msg := range Validate(m) {
		if _, exists := errs[key]; !exists {
			errs[key] = msg
		}
	}

	return m, errs
}

// Query encodes m as URL query values.
func Query(m risk.HealthMetrics) url.Values {
	q := url.Values{}
	for key, v := range Values(m) {
		q.Set(key, v)
	}

	return q
}

func parseValue(f Field, raw string) (float64, error) {
	if f.Integer {
		n, err := strconv.Atoi(raw)
		if err != nil {
			if _, ferr := strconv.ParseFloat(raw, 64); ferr == nil {
				return 0, errNotWholeNumber
			}

			return 0, errNotANumber
		}

		return float64(n), nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotANumber
	}

	return v, nil
}
