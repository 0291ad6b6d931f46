package output

import (
	"io"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/aggregation"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/bugfix"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/coupling"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
)

// Compile-time interface conformance checks.
var (
	_ HistoryReportWriter = (*ConsoleHistoryWriter)(nil)
	_ HistoryReportWriter = (*JSONHistoryWriter)(nil)
	_ HistoryReportWriter = (*CSVHistoryWriter)(nil)
	_ HistoryReportWriter = (*MarkdownHistoryWriter)(nil)
	_ HistoryReportWriter = (*CIHistoryWriter)(nil)

	_ SummaryReportWriter = (*ConsoleSummaryWriter)(nil)
	_ SummaryReportWriter = (*JSONSummaryWriter)(nil)
	_ SummaryReportWriter = (*CSVSummaryWriter)(nil)
	_ SummaryReportWriter = (*MarkdownSummaryWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format OutputFormat
	// Top limits history reports to the newest Top change sets and summary
	// reports to the Top first rows. Zero means no limit.
	Top        int
	OutputPath string
	// ShowItems lists the items of every change set.
	ShowItems bool
	// Out overrides OutputPath when set.
	Out io.Writer
}

// HistoryReport holds parsed change sets, oldest first.
type HistoryReport struct {
	Source      string
	Since       *time.Time
	Until       time.Time
	GeneratedAt time.Time
	ChangeSets  []tfs.ChangeSet
	// Fixes is nil when fix detection is disabled.
	Fixes *bugfix.Result
}

// SummaryReport holds per-path and per-user statistics of a history.
type SummaryReport struct {
	Source          string
	Since           *time.Time
	Until           time.Time
	GeneratedAt     time.Time
	TotalChangeSets int
	Paths           []*aggregation.PathStats
	Users           []*aggregation.UserStats
	Fixes           *bugfix.Result
	// CoChanges is nil when co-change analysis was not run.
	CoChanges *coupling.Result
}

// HistoryReportWriter writes history reports.
type HistoryReportWriter interface {
	Write(report *HistoryReport, options OutputOptions) error
}

// SummaryReportWriter writes summary reports.
type SummaryReportWriter interface {
	Write(report *SummaryReport, options OutputOptions) error
}

// NewHistoryWriter creates a history report writer for the specified format.
func NewHistoryWriter(format OutputFormat) HistoryReportWriter {
	switch format {
	case FormatJSON:
		return &JSONHistoryWriter{}
	case FormatCSV:
		return &CSVHistoryWriter{}
	case FormatMarkdown:
		return &MarkdownHistoryWriter{}
	case FormatCI:
		return &CIHistoryWriter{}
	default:
		return &ConsoleHistoryWriter{}
	}
}

// NewSummaryWriter creates a summary report writer for the specified format.
// The CI format has no summary variant and falls back to JSON.
func NewSummaryWriter(format OutputFormat) SummaryReportWriter {
	switch format {
	case FormatJSON, FormatCI:
		return &JSONSummaryWriter{}
	case FormatCSV:
		return &CSVSummaryWriter{}
	case FormatMarkdown:
		return &MarkdownSummaryWriter{}
	default:
		return &ConsoleSummaryWriter{}
	}
}
