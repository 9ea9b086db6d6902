// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"net/http"
	"testing"

	"github.com/humaidq/glucorisk/content"
)

func TestContentPageRendersOrgPage(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	app.get(t, "/about")

	if app.tpl.status != http.StatusOK || app.tpl.name != "page" {
		t.Fatalf("expected page template with status 200, got %q with %d", app.tpl.name, app.tpl.status)
	}

	page, ok := app.data["Page"].(content.Page)
	if !ok {
		t.Fatalf("expected content page in template data, got %T", app.data["Page"])
	}

	if page.Title != "About" || page.HTML == "" {
		t.Fatalf("unexpected page: %+v", page)
	}

	if title, _ := app.data["PageTitle"].(string); title != "About - "+defaultSiteTitle {
		t.Fatalf("unexpected page title %q", title)
	}
}

func TestContentPageUnknownSlugIsNotFound(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	rec := app.get(t, "/missing")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	if app.tpl.name != "" {
		t.Fatalf("expected no template render, got %q", app.tpl.name)
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	rec := app.get(t, "/healthz")

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", rec.Code, rec.Body.String())
	}
}
