package cmd

import (
	"fmt"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/aggregation"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/coupling"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/output"
	"github.com/urfave/cli/v2"
)

// SummaryCmd returns the summary command.
func SummaryCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.BoolFlag{
			Name:  "no-coupling",
			Usage: "Skip the changed-together path analysis",
		},
	)

	return &cli.Command{
		Name:    "summary",
		Aliases: []string{"s"},
		Usage:   "Summarize tf history output per server path and user",
		Flags:   flags,
		Action:  summaryAction,
	}
}

func summaryAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	if !ctx.HasChangeSets() {
		fmt.Fprintln(c.App.Writer, "No changesets found in the specified range.")
		return nil
	}

	aggregator := aggregation.NewPathAggregator()
	aggregator.Process(ctx.ChangeSets)

	report := &output.SummaryReport{
		Source:          ctx.Source,
		Since:           ctx.Since,
		Until:           ctx.Until,
		GeneratedAt:     time.Now(),
		TotalChangeSets: len(ctx.ChangeSets),
		Paths:           aggregator.Ranked(),
		Users:           aggregation.AggregateUsers(ctx.ChangeSets),
		Fixes:           ctx.Fixes,
	}
	if !c.Bool("no-coupling") {
		result := coupling.NewAnalyzer(ctx.Config.Coupling).Analyze(ctx.ChangeSets)
		report.CoChanges = &result
	}
	return writeSummaryReport(c, ctx, report)
}
