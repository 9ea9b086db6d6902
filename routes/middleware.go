/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/glucorisk/config"
	"github.com/humaidq/glucorisk/content"
)

// NavItem is a link in the header navigation.
type NavItem struct {
	Name     string
	URL      string
	IsActive bool
}

// CSRFInjector automatically injects CSRF token into template data for all routes
func CSRFInjector() flamego.Handler {
	return func(x csrf.CSRF, data template.Data) {
		data["csrf_token"] = x.Token()
	}
}

// NoCacheHeaders disables caching for page responses. Assessment results
// contain health data and must not be stored by shared caches.
func NoCacheHeaders() flamego.Handler {
	return func(c flamego.Context) {
		header := c.ResponseWriter().Header()
		header.Set("X-Robots-Tag", "noindex, nofollow, noarchive, nosnippet")

		if c.Request().Method == http.MethodGet || c.Request().Method == http.MethodHead {
			header.Set("Cache-Control", "no-store, max-age=0")
			header.Set("Pragma", "no-cache")
			header.Set("Expires", "0")
		}

		c.Next()
	}
}

// SiteChrome fills the template data shared by the header and footer.
func SiteChrome() flamego.Handler {
	return func(c flamego.Context, cfg *config.Config, flash session.Flash, data template.Data) {
		setSiteTitle(data, cfg)
		data["Nav"] = navItems(c.Request().URL.Path)
		data["Year"] = time.Now().Year()

		if msg, ok := flash.(FlashMessage); ok {
			data["Flash"] = msg
		}
	}
}

func navItems(path string) []NavItem {
	items := []NavItem{{Name: "Home", URL: "/", IsActive: path == "/" || path == "/assess" || path == "/result"}}

	for _, slug := range content.Slugs() {
		name := slug
		if p, err := content.Get(slug); err == nil {
			name = p.Title
		}

		items = append(items, NavItem{Name: name, URL: "/" + slug, IsActive: path == "/"+slug})
	}

	return items
}
