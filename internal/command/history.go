package command

import (
	"fmt"
	"io"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/dateutil"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/history"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/texttable"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
	"github.com/sirupsen/logrus"
)

// BriefHistoryCommand lists the changesets of a project path between two
// dates without their items.
type BriefHistoryCommand struct {
	Server      ServerConfig
	ProjectPath string
	// From is exclusive, To inclusive.
	From  time.Time
	To    time.Time
	Dates *dateutil.Parser
	Log   logrus.FieldLogger
}

// Arguments implements Command.
func (c *BriefHistoryCommand) Arguments() *Arguments {
	args := NewArguments().Add(
		"history",
		c.ProjectPath,
		"-noprompt",
		"-version:"+dateRange(c.From, c.To),
		"-recursive",
		"-format:brief",
	)
	c.Server.addServer(args)
	c.Server.addLogin(args)
	return args
}

// Parse implements ParseableCommand.
func (c *BriefHistoryCommand) Parse(r io.Reader) ([]tfs.ChangeSet, error) {
	return history.ParseBrief(r, history.BriefOptions{
		From:  c.From,
		Dates: c.Dates,
		Log:   c.Log,
	})
}

// DetailedHistoryCommand lists the changesets of a project path between
// two dates including comments and items.
type DetailedHistoryCommand struct {
	Server      ServerConfig
	ProjectPath string
	From        time.Time
	To          time.Time
	// SkipDateCheck keeps changesets dated at or before From.
	SkipDateCheck bool
	Separator     string
	Languages     []history.Language
	Dates         *dateutil.Parser
	Log           logrus.FieldLogger
}

// Arguments implements Command.
func (c *DetailedHistoryCommand) Arguments() *Arguments {
	args := NewArguments().Add(
		"history",
		c.ProjectPath,
		"-noprompt",
		"-version:"+dateRange(c.From, c.To),
		"-recursive",
		"-format:detailed",
	)
	c.Server.addServer(args)
	c.Server.addLogin(args)
	return args
}

// Parse implements ParseableCommand.
func (c *DetailedHistoryCommand) Parse(r io.Reader) ([]tfs.ChangeSet, error) {
	return history.ParseDetailed(r, history.DetailedOptions{
		From:          c.From,
		SkipDateCheck: c.SkipDateCheck,
		Separator:     c.Separator,
		Dates:         c.Dates,
		Languages:     c.Languages,
		Log:           c.Log,
	})
}

// ChangesetVersionCommand finds the latest changeset of a path at a
// version spec.
type ChangesetVersionCommand struct {
	Server      ServerConfig
	Path        string
	VersionSpec string
}

// Arguments implements Command.
func (c *ChangesetVersionCommand) Arguments() *Arguments {
	args := NewArguments().Add(
		"history",
		c.Path,
		"-recursive",
		"-noprompt",
		"-stopafter:1",
		"-version:"+c.VersionSpec,
		"-format:brief",
	)
	c.Server.addServer(args)
	c.Server.addLogin(args)
	return args
}

// Parse returns the changeset number of the first row, or "" when the
// history is empty.
func (c *ChangesetVersionCommand) Parse(r io.Reader) (string, error) {
	table := texttable.New(r, 1)
	if !table.Next() {
		if err := table.Err(); err != nil {
			return "", fmt.Errorf("read changeset version: %w", err)
		}
		return "", nil
	}
	version, _ := table.Column(0)
	return version, nil
}

// Compile-time interface conformance checks.
var (
	_ ParseableCommand[[]tfs.ChangeSet] = (*BriefHistoryCommand)(nil)
	_ ParseableCommand[[]tfs.ChangeSet] = (*DetailedHistoryCommand)(nil)
	_ ParseableCommand[string]          = (*ChangesetVersionCommand)(nil)
)
