package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/config"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "tfhistory",
		Usage:   "Parse and report on TFVC `tf history` output",
		Version: "1.0.0",
		Commands: []*cli.Command{
			HistoryCmd(),
			SummaryCmd(),
			WorkspacesCmd(),
			LatestCmd(),
			ArgsCmd(),
			InitCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (.json, .toml, .yaml)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log parsing decisions to stderr",
			},
		},
		Before: configureLogging,
	}
}

func configureLogging(c *cli.Context) error {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if c.Bool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
	return nil
}

// Common flags shared across report commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "File holding tf history output (default: stdin)",
		},
		&cli.StringFlag{
			Name:  "path",
			Usage: "Server path the history was requested for",
			Value: "$/",
		},
		&cli.BoolFlag{
			Name:  "brief",
			Usage: "Input was produced with -format:brief",
		},
		&cli.StringFlag{
			Name:  "since",
			Usage: "Only keep changesets after this date (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:  "until",
			Usage: "Only keep changesets up to this date (YYYY-MM-DD)",
		},
		&cli.BoolFlag{
			Name:  "skip-date-check",
			Usage: "Keep changesets dated at or before --since",
		},
		&cli.StringFlag{
			Name:  "locale",
			Usage: "Locale of the tf client that produced the output (e.g. en-US, de-DE)",
		},
		&cli.StringFlag{
			Name:  "timezone",
			Usage: "IANA time zone of the dates in the output",
		},
		&cli.StringFlag{
			Name:  "separator",
			Usage: "Changeset separator line prefix of detailed output",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Server path globs to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Server path globs to exclude (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "bug-patterns",
			Usage: "Regex patterns marking fix changesets (can be specified multiple times)",
		},
		&cli.BoolFlag{
			Name:  "no-fixes",
			Usage: "Disable fix changeset detection",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown, ci)",
		},
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"n"},
			Usage:   "Number of results to show (0 shows all)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	}
}

// parseDateFlag parses a date string flag in loc.
func parseDateFlag(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return &t, nil
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch strings.ToLower(s) {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	case "ci", "ndjson":
		return output.FormatCI
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
	if locale := c.String("locale"); locale != "" {
		cfg.Parsing.Locale = locale
	}
	if tz := c.String("timezone"); tz != "" {
		cfg.Parsing.TimeZone = tz
	}
	if sep := c.String("separator"); sep != "" {
		cfg.Parsing.Separator = sep
	}
	if c.Bool("skip-date-check") {
		cfg.Parsing.SkipDateCheck = true
	}
	if format := c.String("format"); format != "" {
		cfg.Output.Format = format
	}
	if c.IsSet("top") {
		cfg.Output.Top = c.Int("top")
	}

	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
