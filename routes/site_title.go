/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"strings"

	"github.com/flamego/template"

	"github.com/humaidq/glucorisk/config"
)

const defaultSiteTitle = "Diabetes Risk Predictor"

func setSiteTitle(data template.Data, cfg *config.Config) {
	title := ""
	if cfg != nil {
		title = strings.TrimSpace(cfg.SiteTitle)
	}

	if title == "" {
		title = defaultSiteTitle
	}

	data["SiteTitle"] = title
	if _, ok := data["PageTitle"]; !ok {
		data["PageTitle"] = title
	}
}

func setPageTitle(data template.Data, page string) {
	site, _ := data["SiteTitle"].(string)
	if site == "" {
		site = defaultSiteTitle
	}

	data["PageTitle"] = page + " - " + site
}
