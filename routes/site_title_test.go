// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"testing"

	"github.com/flamego/template"

	"github.com/humaidq/glucorisk/config"
)

func TestSetSiteTitleUsesConfigValue(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.SiteTitle = "  Community Screening  "

	data := template.Data{}
	setSiteTitle(data, cfg)

	if title, _ := data["SiteTitle"].(string); title != "Community Screening" {
		t.Fatalf("expected trimmed site title, got %q", title)
	}

	if title, _ := data["PageTitle"].(string); title != "Community Screening" {
		t.Fatalf("expected page title to default to site title, got %q", title)
	}
}

func TestSetSiteTitleFallsBackToDefault(t *testing.T) {
	t.Parallel()

	data := template.Data{}
	setSiteTitle(data, nil)

	if title, _ := data["SiteTitle"].(string); title != defaultSiteTitle {
		t.Fatalf("expected default site title %q, got %q", defaultSiteTitle, title)
	}
}

func TestSetSiteTitleKeepsExistingPageTitle(t *testing.T) {
	t.Parallel()

	data := template.Data{"PageTitle": "Resources - Screening"}
	setSiteTitle(data, config.Default())

	if title, _ := data["PageTitle"].(string); title != "Resources - Screening" {
		t.Fatalf("expected page title to be kept, got %q", title)
	}
}

func TestSetPageTitle(t *testing.T) {
	t.Parallel()

	data := template.Data{"SiteTitle": "Screening"}
	setPageTitle(data, "High Risk")

	if title, _ := data["PageTitle"].(string); title != "High Risk - Screening" {
		t.Fatalf("unexpected page title %q", title)
	}
}
