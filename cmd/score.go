/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/glucorisk/intake"
	"github.com/humaidq/glucorisk/risk"
	"github.com/humaidq/glucorisk/routes"
)

var CmdScore = newScoreCommand()

func newScoreCommand() *cli.Command {
	return &cli.Command{
		Name:   "score",
		Usage:  "Assess health metrics from the command line",
		Flags:  scoreFlags(),
		Action: score,
	}
}

func scoreFlags() []cli.Flag {
	flags := make([]cli.Flag, 0, len(intake.Fields())+1)

	for _, f := range intake.Fields() {
		usage := f.Description
		if f.Unit != "" {
			usage += " (" + f.Unit + ")"
		}

		flags = append(flags, &cli.FloatFlag{
			Name:  f.Key,
			Value: f.Default,
			Usage: usage,
		})
	}

	return append(flags, &cli.BoolFlag{
		Name:  "json",
		Usage: "print the assessment as JSON",
	})
}

func score(_ context.Context, cmd *cli.Command) error {
	values := make(map[string]float64, len(intake.Fields()))
	for _, f := range intake.Fields() {
		values[f.Key] = cmd.Float(f.Key)
	}

	m, errs := intake.Build(values)
	if err := errs.Err(); err != nil {
		return fmt.Errorf("%w: %w", errInvalidMetrics, err)
	}

	out := cmd.Root().Writer
	if cmd.Bool("json") {
		return writeScoreJSON(out, m)
	}

	return writeScoreText(out, m)
}

func writeScoreJSON(w io.Writer, m risk.HealthMetrics) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(routes.APIAssessment{
		Metrics:    m,
		Assessment: risk.Score(m),
		Breakdown:  risk.Breakdown(m),
	})
}

func writeScoreText(w io.Writer, m risk.HealthMetrics) error {
	a := risk.Score(m)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Risk:\t%d%% (%s Risk)\n", a.RiskPercentage, a.RiskLevel)
	fmt.Fprintf(tw, "\t%s\n\n", a.RiskLevel.Explanation())

	for _, c := range risk.Breakdown(m) {
		fmt.Fprintf(tw, "%s\t%d pts\n", c.Factor.Label(), c.Points)
	}

	fmt.Fprintln(tw)

	for i, r := range a.Recommendations {
		fmt.Fprintf(tw, "%d.\t%s\n", i+1, r)
	}

	return tw.Flush()
}
