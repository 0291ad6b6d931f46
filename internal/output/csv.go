package output

import (
	"encoding/csv"
	"fmt"
	"strconv"
)

// CSVHistoryWriter writes history reports as CSV, one row per item.
// Change sets without items (brief history) get a single row with empty
// item columns.
type CSVHistoryWriter struct{}

// Write outputs the history report as CSV.
func (w *CSVHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	changeSets := limitNewest(report.ChangeSets, options.Top)

	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	writer := csv.NewWriter(out)

	headers := []string{"Changeset", "Date", "User", "CheckedInBy", "Fix", "Action", "Kind", "Path", "Comment"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, cs := range changeSets {
		base := []string{
			cs.Version,
			cs.Date.Format(reportDateTimeLayout),
			cs.QualifiedUser(),
			cs.CheckedInBy,
			strconv.FormatBool(report.Fixes.IsFix(cs.Version)),
		}
		if len(cs.Items) == 0 {
			if err := writer.Write(append(base, "", "", "", cs.Comment)); err != nil {
				return err
			}
			continue
		}
		for _, item := range cs.Items {
			row := append(append([]string{}, base...), item.Action, item.Kind().String(), item.Path, cs.Comment)
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// CSVSummaryWriter writes the per-path part of summary reports as CSV.
type CSVSummaryWriter struct{}

// Write outputs the summary report as CSV.
func (w *CSVSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	writer := csv.NewWriter(out)

	headers := []string{"Path", "Changes", "Added", "Edited", "Deleted", "Users", "OwnershipRatio", "Fixes", "LastVersion", "LastChanged"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, p := range limitTop(report.Paths, options.Top) {
		fixes := 0
		if report.Fixes != nil {
			fixes = report.Fixes.PathCounts[p.Path]
		}
		row := []string{
			p.Path,
			fmt.Sprintf("%d", p.ChangeCount),
			fmt.Sprintf("%d", p.Added),
			fmt.Sprintf("%d", p.Edited),
			fmt.Sprintf("%d", p.Deleted),
			fmt.Sprintf("%d", p.UserCount()),
			fmt.Sprintf("%.6f", p.OwnershipRatio()),
			fmt.Sprintf("%d", fixes),
			p.LastVersion,
			p.LastChangedAt.Format(reportDateTimeLayout),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
