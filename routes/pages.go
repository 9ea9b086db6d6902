/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/humaidq/glucorisk/content"
)

// ContentPage returns a handler rendering one of the org-mode
// informational pages.
func ContentPage(slug string) flamego.Handler {
	return func(c flamego.Context, t template.Template, data template.Data) {
		page, err := content.Get(slug)
		if err != nil {
			if errors.Is(err, content.ErrPageNotFound) {
				c.ResponseWriter().WriteHeader(http.StatusNotFound)
				return
			}

			logger.Error("Error rendering content page", "page", slug, "error", err)
			data["Error"] = "Failed to load page"
			t.HTML(http.StatusInternalServerError, "page")

			return
		}

		data["Page"] = page
		setPageTitle(data, page.Title)

		t.HTML(http.StatusOK, "page")
	}
}

// Healthz reports liveness.
func Healthz(c flamego.Context) {
	c.ResponseWriter().Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.ResponseWriter().WriteHeader(http.StatusOK)

	if _, err := c.ResponseWriter().Write([]byte("ok")); err != nil {
		logger.Error("Error writing health response", "error", err)
	}
}
