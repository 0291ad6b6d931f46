package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
)

// ConsoleHistoryWriter writes history reports to the console.
type ConsoleHistoryWriter struct{}

// Write outputs the history report to the console.
func (w *ConsoleHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	changeSets := limitNewest(report.ChangeSets, options.Top)

	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	color.New(color.FgGreen).Fprintln(out, "TFVC History")
	fmt.Fprintf(out, "Source: %s\n", report.Source)
	label, value := dateRangeLabelAndValue(report.Since, report.Until)
	fmt.Fprintf(out, "%s: %s\n", label, value)
	fmt.Fprintf(out, "Total changesets: %d\n\n", len(report.ChangeSets))

	if len(changeSets) == 0 {
		fmt.Fprintln(out, "No changesets found.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tChangeset\tDate\tUser\tItems\tComment")

	for i, cs := range changeSets {
		version := cs.Version
		if report.Fixes.IsFix(cs.Version) {
			version = color.YellowString("%s*", cs.Version)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
			i+1,
			version,
			cs.Date.Format("2006-01-02 15:04"),
			cs.QualifiedUser(),
			len(cs.Items),
			truncateMessage(firstLine(cs.Comment), 50),
		)
		if options.ShowItems {
			for _, item := range cs.Items {
				fmt.Fprintf(tw, "\t\t\t\t%s\t%s\n", kindColor(item.Kind())("%s", item.Action), item.Path)
			}
		}
	}

	tw.Flush()

	if report.Fixes != nil {
		fmt.Fprintf(out, "\n* fix changeset (%d total)\n", report.Fixes.Total)
	}

	return nil
}

// ConsoleSummaryWriter writes summary reports to the console.
type ConsoleSummaryWriter struct{}

// Write outputs the summary report to the console.
func (w *ConsoleSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	color.New(color.FgGreen).Fprintln(out, "TFVC History Summary")
	fmt.Fprintf(out, "Source: %s\n", report.Source)
	label, value := dateRangeLabelAndValue(report.Since, report.Until)
	fmt.Fprintf(out, "%s: %s\n", label, value)
	fmt.Fprintf(out, "Total changesets: %d, Total paths: %d, Total users: %d\n\n",
		report.TotalChangeSets, len(report.Paths), len(report.Users))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPath\tChanges\tAdd\tEdit\tDelete\tUsers\tOwnership\tFixes\tLast")
	for i, p := range limitTop(report.Paths, options.Top) {
		fixes := 0
		if report.Fixes != nil {
			fixes = report.Fixes.PathCounts[p.Path]
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%.2f\t%d\t%s\n",
			i+1,
			p.Path,
			p.ChangeCount,
			p.Added,
			p.Edited,
			p.Deleted,
			p.UserCount(),
			p.OwnershipRatio(),
			fixes,
			p.LastVersion,
		)
	}
	tw.Flush()

	fmt.Fprintln(out)
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tUser\tChangesets\tItems\tFirst\tLast")
	for i, u := range limitTop(report.Users, options.Top) {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\t%s\n",
			i+1,
			u.User,
			u.ChangeSetCount,
			u.ItemCount,
			u.FirstAt.Format(reportDateLayout),
			u.LastAt.Format(reportDateLayout),
		)
	}
	tw.Flush()

	if report.CoChanges != nil && len(report.CoChanges.Pairs) > 0 {
		fmt.Fprintln(out)
		color.New(color.FgGreen).Fprintln(out, "Changed Together")
		tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tPath A\tPath B\tTogether\tJaccard\tConfidence")
		for i, p := range report.CoChanges.Pairs {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%.2f\t%.2f\n", i+1, p.PathA, p.PathB, p.Together, p.Jaccard, p.Confidence)
		}
		tw.Flush()
	}

	return nil
}

func kindColor(kind tfs.ChangeKind) func(string, ...interface{}) string {
	switch kind {
	case tfs.ChangeKindAdded:
		return color.GreenString
	case tfs.ChangeKindDeleted:
		return color.RedString
	default:
		return color.YellowString
	}
}
