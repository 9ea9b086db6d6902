// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/glucorisk/routes"
)

func runScore(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := &cli.Command{
		Name:     "glucorisk",
		Writer:   &out,
		Commands: []*cli.Command{newScoreCommand()},
	}

	err := root.Run(context.Background(), append([]string{"glucorisk", "score"}, args...))

	return out.String(), err
}

func TestScoreDefaultsAreLowRisk(t *testing.T) {
	t.Parallel()

	out, err := runScore(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "0% (Low Risk)") {
		t.Fatalf("expected low risk summary, got %q", out)
	}

	if !strings.Contains(out, "1.") || !strings.Contains(out, "4.") {
		t.Fatalf("expected numbered recommendations, got %q", out)
	}
}

func TestScoreJSONOutput(t *testing.T) {
	t.Parallel()

	out, err := runScore(t, "--glucose", "150", "--bloodPressure", "95", "--bmi", "32", "--age", "50", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload routes.APIAssessment
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", out, err)
	}

	if payload.Assessment.RiskPercentage != 90 {
		t.Fatalf("expected 90%%, got %d", payload.Assessment.RiskPercentage)
	}

	if len(payload.Breakdown) != 8 {
		t.Fatalf("expected 8 breakdown entries, got %d", len(payload.Breakdown))
	}
}

func TestScoreRejectsOutOfRangeInput(t *testing.T) {
	t.Parallel()

	out, err := runScore(t, "--glucose", "301")
	if err == nil {
		t.Fatalf("expected validation error, got output %q", out)
	}

	if !errors.Is(err, errInvalidMetrics) {
		t.Fatalf("expected errInvalidMetrics, got %v", err)
	}

	if !strings.Contains(err.Error(), "glucose: Please enter a valid value between 50 and 300") {
		t.Fatalf("expected per-field message, got %q", err.Error())
	}

	if out != "" {
		t.Fatalf("expected no assessment output, got %q", out)
	}
}
