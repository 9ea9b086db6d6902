/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/humaidq/glucorisk/intake"
)

// FormField is an assessment form input together with its current value and
// validation message.
type FormField struct {
	intake.Field
	Value string
	Error string
}

// Home renders the assessment form. Field values present in the query string
// prefill the form so a result can be adjusted and resubmitted.
func Home(c flamego.Context, t template.Template, data template.Data) {
	data["IsHome"] = true
	data["Fields"] = formFields(c.Request().URL.Query(), nil)

	t.HTML(http.StatusOK, "home")
}

func renderFormErrors(t template.Template, data template.Data, values url.Values, errs intake.FieldErrors) {
	data["IsHome"] = true
	data["Fields"] = formFields(values, errs)
	data["Error"] = "Please correct the highlighted fields and try again."

	t.HTML(http.StatusUnprocessableEntity, "home")
}

func formFields(values url.Values, errs intake.FieldErrors) []FormField {
	defaults := intake.Values(intake.Defaults())

	fields := intake.Fields()
	out := make([]FormField, 0, len(fields))

	for _, f := range fields {
		value := defaults[f.Key]
		if values != nil {
			if _, present := values[f.Key]; present {
				value = strings.TrimSpace(values.Get(f.Key))
			}
		}

		out = append(out, FormField{
			Field: f,
			Value: value,
			Error: errs[f.Key],
		})
	}

	return out
}
