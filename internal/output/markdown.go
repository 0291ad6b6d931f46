package output

import (
	"fmt"
	"strings"
)

// MarkdownHistoryWriter writes history reports as Markdown.
type MarkdownHistoryWriter struct{}

// Write outputs the history report as Markdown.
func (w *MarkdownHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	changeSets := limitNewest(report.ChangeSets, options.Top)

	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# TFVC History")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Source:** %s\n\n", report.Source)
	label, value := dateRangeLabelAndValue(report.Since, report.Until)
	fmt.Fprintf(out, "**%s:** %s\n\n", label, value)
	fmt.Fprintf(out, "**Total Changesets:** %d\n\n", len(report.ChangeSets))

	fmt.Fprintln(out, "| # | Changeset | Date | User | Items | Comment |")
	fmt.Fprintln(out, "|---|-----------|------|------|-------|---------|")
	for i, cs := range changeSets {
		version := cs.Version
		if report.Fixes.IsFix(cs.Version) {
			version = fixEmoji + " " + version
		}
		fmt.Fprintf(out, "| %d | %s | %s | %s | %d | %s |\n",
			i+1, version, cs.Date.Format("2006-01-02 15:04"), escapeMarkdown(cs.QualifiedUser()),
			len(cs.Items), escapeMarkdown(firstLine(cs.Comment)))
	}

	if options.ShowItems {
		for _, cs := range changeSets {
			if len(cs.Items) == 0 {
				continue
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "## Changeset %s\n\n", cs.Version)
			for _, item := range cs.Items {
				fmt.Fprintf(out, "- %s `%s`\n", item.Action, item.Path)
			}
		}
	}

	return nil
}

// MarkdownSummaryWriter writes summary reports as Markdown.
type MarkdownSummaryWriter struct{}

// Write outputs the summary report as Markdown.
func (w *MarkdownSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# TFVC History Summary")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Source:** %s\n\n", report.Source)
	label, value := dateRangeLabelAndValue(report.Since, report.Until)
	fmt.Fprintf(out, "**%s:** %s\n\n", label, value)
	fmt.Fprintf(out, "**Total Changesets:** %d\n\n", report.TotalChangeSets)

	fmt.Fprintln(out, "## Most Changed Paths")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "| # | Path | Changes | Add | Edit | Delete | Users | Ownership | Fixes |")
	fmt.Fprintln(out, "|---|------|---------|-----|------|--------|-------|-----------|-------|")
	for i, p := range limitTop(report.Paths, options.Top) {
		fixes := 0
		if report.Fixes != nil {
			fixes = report.Fixes.PathCounts[p.Path]
		}
		fmt.Fprintf(out, "| %d | `%s` | %d | %d | %d | %d | %d | %.2f | %d |\n",
			i+1, p.Path, p.ChangeCount, p.Added, p.Edited, p.Deleted, p.UserCount(), p.OwnershipRatio(), fixes)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "## Users")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "| # | User | Changesets | Items | First | Last |")
	fmt.Fprintln(out, "|---|------|------------|-------|-------|------|")
	for i, u := range limitTop(report.Users, options.Top) {
		fmt.Fprintf(out, "| %d | %s | %d | %d | %s | %s |\n",
			i+1, escapeMarkdown(u.User), u.ChangeSetCount, u.ItemCount,
			u.FirstAt.Format(reportDateLayout), u.LastAt.Format(reportDateLayout))
	}

	if report.CoChanges != nil && len(report.CoChanges.Pairs) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "## Changed Together")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "| # | Path A | Path B | Together | Jaccard | Confidence |")
		fmt.Fprintln(out, "|---|--------|--------|----------|---------|------------|")
		for i, p := range report.CoChanges.Pairs {
			fmt.Fprintf(out, "| %d | `%s` | `%s` | %d | %.2f | %.2f |\n", i+1, p.PathA, p.PathB, p.Together, p.Jaccard, p.Confidence)
		}
	}

	return nil
}

const fixEmoji = "🐞"

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
