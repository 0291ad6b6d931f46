package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
)

// JSONHistoryWriter writes history reports as JSON.
type JSONHistoryWriter struct{}

// JSONHistoryReport is the JSON output structure for a history.
type JSONHistoryReport struct {
	Source          string          `json:"source"`
	Since           *string         `json:"since,omitempty"`
	Until           string          `json:"until"`
	GeneratedAt     string          `json:"generatedAt"`
	TotalChangeSets int             `json:"totalChangeSets"`
	ChangeSets      []JSONChangeSet `json:"changeSets"`
}

// JSONChangeSet is the JSON output structure for a single changeset.
type JSONChangeSet struct {
	Version     string     `json:"version"`
	User        string     `json:"user"`
	Domain      string     `json:"domain,omitempty"`
	Date        string     `json:"date"`
	Comment     string     `json:"comment"`
	CheckedInBy string     `json:"checkedInBy,omitempty"`
	Fix         bool       `json:"fix,omitempty"`
	Items       []JSONItem `json:"items"`
}

// JSONItem is the JSON output structure for a changeset item.
type JSONItem struct {
	Path   string `json:"path"`
	Action string `json:"action"`
	Kind   string `json:"kind"`
}

// Write outputs the history report as JSON.
func (w *JSONHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	changeSets := limitNewest(report.ChangeSets, options.Top)

	jsonChangeSets := make([]JSONChangeSet, len(changeSets))
	for i, cs := range changeSets {
		jsonChangeSets[i] = toJSONChangeSet(cs, report.Fixes.IsFix(cs.Version))
	}

	jsonReport := JSONHistoryReport{
		Source:          report.Source,
		Since:           formatSinceDate(report.Since),
		Until:           report.Until.Format(reportDateLayout),
		GeneratedAt:     report.GeneratedAt.Format(time.RFC3339),
		TotalChangeSets: len(report.ChangeSets),
		ChangeSets:      jsonChangeSets,
	}

	return writeJSON(jsonReport, options)
}

func toJSONChangeSet(cs tfs.ChangeSet, fix bool) JSONChangeSet {
	items := make([]JSONItem, len(cs.Items))
	for j, item := range cs.Items {
		items[j] = JSONItem{Path: item.Path, Action: item.Action, Kind: item.Kind().String()}
	}
	return JSONChangeSet{
		Version:     cs.Version,
		User:        cs.User,
		Domain:      cs.Domain,
		Date:        cs.Date.Format(time.RFC3339),
		Comment:     cs.Comment,
		CheckedInBy: cs.CheckedInBy,
		Fix:         fix,
		Items:       items,
	}
}

// JSONSummaryWriter writes summary reports as JSON.
type JSONSummaryWriter struct{}

// JSONSummaryReport is the JSON output structure for a summary.
type JSONSummaryReport struct {
	Source          string            `json:"source"`
	Since           *string           `json:"since,omitempty"`
	Until           string            `json:"until"`
	GeneratedAt     string            `json:"generatedAt"`
	TotalChangeSets int               `json:"totalChangeSets"`
	TotalPaths      int               `json:"totalPaths"`
	Paths           []JSONPathSummary `json:"paths"`
	Users           []JSONUserSummary `json:"users"`
	CoChanges       []JSONCoChange    `json:"coChanges,omitempty"`
}

// JSONPathSummary is the JSON output structure for one path.
type JSONPathSummary struct {
	Path           string  `json:"path"`
	Changes        int     `json:"changes"`
	Added          int     `json:"added"`
	Edited         int     `json:"edited"`
	Deleted        int     `json:"deleted"`
	Users          int     `json:"users"`
	OwnershipRatio float64 `json:"ownershipRatio"`
	Fixes          int     `json:"fixes"`
	LastVersion    string  `json:"lastVersion"`
	LastChanged    string  `json:"lastChanged"`
}

// JSONUserSummary is the JSON output structure for one user.
type JSONUserSummary struct {
	User       string `json:"user"`
	ChangeSets int    `json:"changeSets"`
	Items      int    `json:"items"`
	First      string `json:"first"`
	Last       string `json:"last"`
}

// JSONCoChange is the JSON output structure for two paths changed together.
type JSONCoChange struct {
	PathA      string  `json:"pathA"`
	PathB      string  `json:"pathB"`
	Together   int     `json:"together"`
	Jaccard    float64 `json:"jaccard"`
	Confidence float64 `json:"confidence"`
}

// Write outputs the summary report as JSON.
func (w *JSONSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	paths := limitTop(report.Paths, options.Top)
	jsonPaths := make([]JSONPathSummary, len(paths))
	for i, p := range paths {
		fixes := 0
		if report.Fixes != nil {
			fixes = report.Fixes.PathCounts[p.Path]
		}
		jsonPaths[i] = JSONPathSummary{
			Path:           p.Path,
			Changes:        p.ChangeCount,
			Added:          p.Added,
			Edited:         p.Edited,
			Deleted:        p.Deleted,
			Users:          p.UserCount(),
			OwnershipRatio: p.OwnershipRatio(),
			Fixes:          fixes,
			LastVersion:    p.LastVersion,
			LastChanged:    p.LastChangedAt.Format(time.RFC3339),
		}
	}

	users := limitTop(report.Users, options.Top)
	jsonUsers := make([]JSONUserSummary, len(users))
	for i, u := range users {
		jsonUsers[i] = JSONUserSummary{
			User:       u.User,
			ChangeSets: u.ChangeSetCount,
			Items:      u.ItemCount,
			First:      u.FirstAt.Format(time.RFC3339),
			Last:       u.LastAt.Format(time.RFC3339),
		}
	}

	var coChanges []JSONCoChange
	if report.CoChanges != nil {
		for _, p := range report.CoChanges.Pairs {
			coChanges = append(coChanges, JSONCoChange{
				PathA:      p.PathA,
				PathB:      p.PathB,
				Together:   p.Together,
				Jaccard:    p.Jaccard,
				Confidence: p.Confidence,
			})
		}
	}

	return writeJSON(JSONSummaryReport{
		Source:          report.Source,
		Since:           formatSinceDate(report.Since),
		Until:           report.Until.Format(reportDateLayout),
		GeneratedAt:     report.GeneratedAt.Format(time.RFC3339),
		TotalChangeSets: report.TotalChangeSets,
		TotalPaths:      len(report.Paths),
		Paths:           jsonPaths,
		Users:           jsonUsers,
		CoChanges:       coChanges,
	}, options)
}

func writeJSON(data interface{}, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return encodeJSON(out, data)
}

func encodeJSON(out io.Writer, data interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
