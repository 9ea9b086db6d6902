/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config holds the presentation settings of the web surface.
package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const siteTitleEnvVar = "PUBLIC_SITE_TITLE"

// Config is loaded from an optional YAML file. Every field has a default.
type Config struct {
	SiteTitle string `yaml:"site_title"`
	// AnalysisDelay is the fixed wait before a submitted form's result is
	// rendered. It has no effect on the score.
	AnalysisDelay time.Duration `yaml:"analysis_delay"`
	// PopulationBaseline is the general population risk shown on the
	// comparison chart.
	PopulationBaseline float64 `yaml:"population_baseline"`
	AgeGroupMin        float64 `yaml:"age_group_min"`
	AgeGroupSpread     float64 `yaml:"age_group_spread"`
	AgeGroupCap        float64 `yaml:"age_group_cap"`
	CSRFSecret         string  `yaml:"csrf_secret"`
	// BaseURL is the public origin used for share links and QR codes.
	// When empty it is derived from the request.
	BaseURL string `yaml:"base_url"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		SiteTitle:          "Diabetes Risk Predictor",
		AnalysisDelay:      2 * time.Second,
		PopulationBaseline: 11.3,
		AgeGroupMin:        15,
		AgeGroupSpread:     10,
		AgeGroupCap:        35,
	}
}

// Load reads path on top of the defaults. An empty path yields the
// defaults. The site title environment override is applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config: %w", err)
		}
		defer f.Close()

		if err := decode(f, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	if title := strings.TrimSpace(os.Getenv(siteTitleEnvVar)); title != "" {
		cfg.SiteTitle = title
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		return err
	}

	return nil
}

// Validate rejects settings the web surface cannot render sensibly.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SiteTitle) == "" {
		return errSiteTitleRequired
	}

	if c.AnalysisDelay < 0 {
		return errNegativeDelay
	}

	if c.PopulationBaseline < 0 || c.PopulationBaseline > 100 {
		return errBaselineOutOfRange
	}

	if c.AgeGroupMin < 0 || c.AgeGroupSpread < 0 || c.AgeGroupCap < c.AgeGroupMin || c.AgeGroupCap > 100 {
		return errAgeGroupRange
	}

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || u.RawQuery != "" || u.Fragment != "" {
			return errInvalidBaseURL
		}
	}

	return nil
}
