package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/output"
)

func writeHistoryReport(c *cli.Context, ctx *CommandContext, report *output.HistoryReport) error {
	opts := ctx.OutputOptions(c)
	writer := output.NewHistoryWriter(opts.Format)
	return writer.Write(report, opts)
}

func writeSummaryReport(c *cli.Context, ctx *CommandContext, report *output.SummaryReport) error {
	opts := ctx.OutputOptions(c)
	writer := output.NewSummaryWriter(opts.Format)
	return writer.Write(report, opts)
}
