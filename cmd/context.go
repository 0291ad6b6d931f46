package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/config"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/bugfix"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/command"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/dateutil"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/output"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across report commands.
type CommandContext struct {
	Config     *config.Config
	Source     string
	Since      *time.Time
	Until      time.Time
	ChangeSets []tfs.ChangeSet
	// Fixes is nil when fix detection is disabled.
	Fixes *bugfix.Result
}

// NewCommandContext creates a context from CLI flags.
// It performs configuration loading, date parsing, input parsing, path
// filtering and fix detection.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	dates, err := dateutil.NewParser(cfg.Parsing.Locale, cfg.Parsing.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid parsing options: %w", err)
	}

	since, err := parseDateFlag(c.String("since"), dates.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid since date: %w", err)
	}
	until, err := parseDateFlag(c.String("until"), dates.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid until date: %w", err)
	}

	untilTime := time.Now()
	if until != nil {
		// The whole until day is included.
		untilTime = until.AddDate(0, 0, 1).Add(-time.Second)
	}

	filter, err := tfs.NewPathFilter(cfg.Filters.Include, cfg.Filters.Exclude)
	if err != nil {
		return nil, err
	}

	source, in, closeInput, err := openInput(c.String("input"))
	if err != nil {
		return nil, err
	}
	defer closeInput()

	var from time.Time
	if since != nil {
		from = *since
	}
	log := logrus.WithField("source", source)

	var changeSets []tfs.ChangeSet
	if c.Bool("brief") {
		changeSets, err = parseOutput[[]tfs.ChangeSet](&command.BriefHistoryCommand{
			Server:      command.ServerConfig{URL: cfg.Server.URL},
			ProjectPath: c.String("path"),
			From:        from,
			To:          untilTime,
			Dates:       dates,
			Log:         log,
		}, in, log)
	} else {
		changeSets, err = parseOutput[[]tfs.ChangeSet](&command.DetailedHistoryCommand{
			Server:        command.ServerConfig{URL: cfg.Server.URL},
			ProjectPath:   c.String("path"),
			From:          from,
			To:            untilTime,
			SkipDateCheck: cfg.Parsing.SkipDateCheck,
			Separator:     cfg.Parsing.Separator,
			Dates:         dates,
			Log:           log,
		}, in, log)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}

	if until != nil {
		changeSets = keepUntil(changeSets, untilTime)
	}
	changeSets = filter.FilterChangeSets(changeSets)

	var fixes *bugfix.Result
	if !c.Bool("no-fixes") {
		fixes, err = detectFixes(changeSets, resolveBugPatterns(c, cfg))
		if err != nil {
			return nil, err
		}
	}

	return &CommandContext{
		Config:     cfg,
		Source:     source,
		Since:      since,
		Until:      untilTime,
		ChangeSets: changeSets,
		Fixes:      fixes,
	}, nil
}

// parseOutput runs the parse half of a tf command against captured output.
func parseOutput[T any](cmd command.ParseableCommand[T], r io.Reader, log logrus.FieldLogger) (T, error) {
	log.WithField("args", cmd.Arguments().String()).Debug("parsing output of tf command")
	return cmd.Parse(r)
}

// openInput opens path, or stdin when path is empty or "-".
func openInput(path string) (source string, r io.Reader, closeFn func(), err error) {
	if path == "" || path == "-" {
		return "stdin", os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return "", nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return path, f, func() { f.Close() }, nil
}

func keepUntil(changeSets []tfs.ChangeSet, until time.Time) []tfs.ChangeSet {
	kept := changeSets[:0:0]
	for _, cs := range changeSets {
		if !cs.Date.After(until) {
			kept = append(kept, cs)
		}
	}
	return kept
}

// HasChangeSets returns true if change sets were found in the specified range.
func (ctx *CommandContext) HasChangeSets() bool {
	return len(ctx.ChangeSets) > 0
}

// OutputOptions creates OutputOptions from CLI flags and configuration.
func (ctx *CommandContext) OutputOptions(c *cli.Context) output.OutputOptions {
	opts := output.OutputOptions{
		Format:     getOutputFormat(ctx.Config.Output.Format),
		Top:        ctx.Config.Output.Top,
		OutputPath: c.String("output"),
		ShowItems:  c.Bool("show-items"),
	}
	if opts.OutputPath == "" {
		opts.Out = c.App.Writer
	}
	return opts
}
