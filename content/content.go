/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package content serves the static informational pages, written in
// org-mode and rendered to HTML on first use.
package content

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"sync"

	"github.com/humaidq/glucorisk/utils"
)

//go:embed *.org
var pages embed.FS

// Page is a rendered informational page.
type Page struct {
	Slug  string
	Title string
	HTML  template.HTML
}

var (
	cacheMu sync.Mutex
	cache   = map[string]Page{}
)

// Slugs lists the available pages in navigation order.
func Slugs() []string {
	return []string{"about", "resources", "contact"}
}

// Get renders the page with the given slug. Rendered pages are cached.
func Get(slug string) (Page, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if p, ok := cache[slug]; ok {
		return p, nil
	}

	raw, err := fs.ReadFile(pages, slug+".org")
	if err != nil {
		return Page{}, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
	}

	rendered, err := utils.ParseOrgToHTML(string(raw))
	if err != nil {
		return Page{}, fmt.Errorf("failed to render page %s: %w", slug, err)
	}

	p := Page{
		Slug:  slug,
		Title: utils.ExtractTitle(string(raw)),
		//nolint:gosec // Rendered from embedded org files only.
		HTML: template.HTML(rendered),
	}
	cache[slug] = p

	return p, nil
}
