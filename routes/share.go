/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/flamego/flamego"
	"github.com/skip2/go-qrcode"

	"github.com/humaidq/glucorisk/config"
	"github.com/humaidq/glucorisk/intake"
	"github.com/humaidq/glucorisk/risk"
)

// requestBaseURL is the configured public origin, or else the scheme and
// host as seen by the client.
func requestBaseURL(c flamego.Context, cfg *config.Config) string {
	if cfg != nil && cfg.BaseURL != "" {
		return cfg.BaseURL
	}

	r := c.Request()

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto == "https" || proto == "http" {
		scheme = proto
	}

	return scheme + "://" + r.Host
}

// resultPath is the deterministic link to a result. Nothing is stored: the
// inputs travel in the query string.
func resultPath(m risk.HealthMetrics) string {
	return "/result?" + intake.Query(m).Encode()
}

func reportPath(m risk.HealthMetrics) string {
	return "/report?" + intake.Query(m).Encode()
}

func adjustPath(m risk.HealthMetrics) string {
	return "/?" + intake.Query(m).Encode()
}

func generateQRCodeBase64(value string) (string, error) {
	png, err := qrcode.Encode(value, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to generate qr code: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
