package cmd

import (
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/output"
	"github.com/urfave/cli/v2"
)

// HistoryCmd returns the history command.
func HistoryCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.BoolFlag{
			Name:  "show-items",
			Usage: "List the items of every changeset",
		},
	)

	return &cli.Command{
		Name:    "history",
		Aliases: []string{"h"},
		Usage:   "Parse tf history output into a changeset report",
		Flags:   flags,
		Action:  historyAction,
	}
}

func historyAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	report := &output.HistoryReport{
		Source:      ctx.Source,
		Since:       ctx.Since,
		Until:       ctx.Until,
		GeneratedAt: time.Now(),
		ChangeSets:  ctx.ChangeSets,
		Fixes:       ctx.Fixes,
	}
	return writeHistoryReport(c, ctx, report)
}
