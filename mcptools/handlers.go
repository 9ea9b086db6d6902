/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/humaidq/glucorisk/intake"
	"github.com/humaidq/glucorisk/logging"
	"github.com/humaidq/glucorisk/metrics"
	"github.com/humaidq/glucorisk/risk"
)

const (
	toolAssess     = "assess_diabetes_risk"
	toolListLevels = "list_risk_levels"

	surfaceMCP = "mcp"
)

var logger = logging.Logger(logging.SourceMCP)

type handlers struct {
	rec *metrics.Recorder
}

type assessment struct {
	Metrics     risk.HealthMetrics  `json:"metrics"`
	Assessment  risk.RiskAssessment `json:"assessment"`
	Breakdown   []risk.Contribution `json:"breakdown"`
	Explanation string              `json:"explanation"`
}

type levelInfo struct {
	risk.Band
	Explanation     string   `json:"explanation"`
	Recommendations []string `json:"recommendations"`
}

// assess validates the arguments and scores them.
func (h *handlers) assess(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := getArgs(request)

	values, errs := numericArgs(args)

	m, fieldErrs := intake.Build(values)
	for key, msg := range fieldErrs {
		if _, exists := errs[key]; !exists {
			errs[key] = msg
		}
	}

	if len(errs) > 0 {
		if h.rec != nil {
			h.rec.Rejected(surfaceMCP, errs)
		}

		return errResult(errs.Error()), nil
	}

	a := risk.Score(m)
	if h.rec != nil {
		h.rec.Assessment(surfaceMCP, a.RiskLevel)
	}

	logger.Info("assessment computed", "event", "assessment", "level", a.RiskLevel, "risk_percentage", a.RiskPercentage)

	return jsonResult(assessment{
		Metrics:     m,
		Assessment:  a,
		Breakdown:   risk.Breakdown(m),
		Explanation: a.RiskLevel.Explanation(),
	})
}

func (h *handlers) listLevels(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bands := risk.Bands()
	out := make([]levelInfo, 0, len(bands))

	for _, b := range bands {
		out = append(out, levelInfo{
			Band:            b,
			Explanation:     b.Level.Explanation(),
			Recommendations: risk.Recommendations(b.Level),
		})
	}

	return jsonResult(out)
}

// numericArgs collects the known fields from args. Enforced fields must be
// present; the rest fall back to their defaults in intake.Build.
func numericArgs(args map[string]interface{}) (map[string]float64, intake.FieldErrors) {
	values := make(map[string]float64, len(args))
	errs := intake.FieldErrors{}

	for _, f := range intake.Fields() {
		raw, ok := args[f.Key]
		if !ok || raw == nil {
			if f.Enforced {
				errs[f.Key] = "is required"
			}

			continue
		}

		v, ok := numberArg(raw)
		if !ok {
			errs[f.Key] = "must be a number"
			continue
		}

		values[f.Key] = v
	}

	for key := range args {
		if _, known := intake.Lookup(key); !known {
			errs[key] = "unknown field"
		}
	}

	return values, errs
}

// numberArg accepts JSON numbers and numeric strings.
func numberArg(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// getArgs safely extracts the arguments map from a CallToolRequest.
func getArgs(request mcp.CallToolRequest) map[string]interface{} {
	if request.Params.Arguments == nil {
		return map[string]interface{}{}
	}

	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}

	return args
}

func jsonResult(payload interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errResult(fmt.Sprintf("json marshal failed: %v", err)), nil
	}

	return newTextResult(string(data)), nil
}

func newTextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}

// errResult is a tool-level error, not a transport-level JSON-RPC error.
func errResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: msg,
			},
		},
	}
}
