package command

import (
	"fmt"
	"io"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/texttable"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
)

// Columns of the `tf workspaces -format:brief` table.
const (
	workspaceColumnName = iota
	workspaceColumnOwner
	workspaceColumnComputer
	workspaceColumnComment
)

// ListWorkspacesCommand lists the workspaces of the server, optionally
// restricted to one computer.
type ListWorkspacesCommand struct {
	Server   ServerConfig
	Computer string
}

// Arguments implements Command.
func (c *ListWorkspacesCommand) Arguments() *Arguments {
	args := NewArguments().Add("workspaces", "-format:brief")
	if c.Computer != "" {
		args.Add("-computer:" + c.Computer)
	}
	c.Server.addServer(args)
	c.Server.addLogin(args)
	return args
}

// Parse implements ParseableCommand. The comment column is optional.
func (c *ListWorkspacesCommand) Parse(r io.Reader) ([]tfs.Workspace, error) {
	workspaces := make([]tfs.Workspace, 0)
	table := texttable.New(r, 1)
	for table.Next() {
		var ws tfs.Workspace
		ws.Name, _ = table.Column(workspaceColumnName)
		ws.Owner, _ = table.Column(workspaceColumnOwner)
		ws.Computer, _ = table.Column(workspaceColumnComputer)
		ws.Comment, _ = table.Column(workspaceColumnComment)
		workspaces = append(workspaces, ws)
	}
	if err := table.Err(); err != nil {
		return nil, fmt.Errorf("read workspaces: %w", err)
	}
	return workspaces, nil
}

// NewWorkspaceCommand creates a workspace.
type NewWorkspaceCommand struct {
	Server    ServerConfig
	Workspace string
}

// Arguments implements Command.
func (c *NewWorkspaceCommand) Arguments() *Arguments {
	args := NewArguments().Add("workspace", "-new", c.Workspace, "-noprompt")
	c.Server.addServer(args)
	c.Server.addLogin(args)
	return args
}

// DeleteWorkspaceCommand deletes a workspace.
type DeleteWorkspaceCommand struct {
	Server    ServerConfig
	Workspace string
}

// Arguments implements Command.
func (c *DeleteWorkspaceCommand) Arguments() *Arguments {
	args := NewArguments().Add("workspace", "-delete", c.Workspace, "-noprompt")
	c.Server.addServer(args)
	c.Server.addLogin(args)
	return args
}

// WorkfoldCommand maps a server path to a local folder in a workspace.
type WorkfoldCommand struct {
	Server      ServerConfig
	ProjectPath string
	LocalFolder string
	Workspace   string
}

// Arguments implements Command.
func (c *WorkfoldCommand) Arguments() *Arguments {
	args := NewArguments().Add("workfold", c.ProjectPath, c.LocalFolder, "-workspace:"+c.Workspace)
	c.Server.addServer(args)
	c.Server.addLogin(args)
	return args
}

// UnmapWorkfoldCommand removes the mapping of a local folder.
type UnmapWorkfoldCommand struct {
	Server      ServerConfig
	LocalFolder string
	Workspace   string
}

// Arguments implements Command.
func (c *UnmapWorkfoldCommand) Arguments() *Arguments {
	args := NewArguments().Add("workfold", "-unmap", c.LocalFolder, "-workspace:"+c.Workspace)
	c.Server.addServer(args)
	c.Server.addLogin(args)
	return args
}

// GetFilesToWorkFolderCommand fetches the files of a mapped folder. The
// server comes from the workspace mapping, so no -server token is added.
type GetFilesToWorkFolderCommand struct {
	Server      ServerConfig
	LocalFolder string
	// VersionSpec is optional; empty means latest.
	VersionSpec string
}

// Arguments implements Command.
func (c *GetFilesToWorkFolderCommand) Arguments() *Arguments {
	args := NewArguments().Add("get", c.LocalFolder, "-recursive", "-noprompt")
	if c.VersionSpec != "" {
		args.Add("-version:" + c.VersionSpec)
	}
	c.Server.addLogin(args)
	return args
}

// LabelCommand labels a path at the version a workspace has.
type LabelCommand struct {
	Server      ServerConfig
	Label       string
	ProjectPath string
	Workspace   string
	Comment     string
}

// Arguments implements Command.
func (c *LabelCommand) Arguments() *Arguments {
	args := NewArguments().Add(
		"label",
		c.Label,
		c.ProjectPath,
		"-version:"+WorkspaceVersionSpec(c.Workspace),
	)
	if c.Comment != "" {
		args.Add("-comment:" + c.Comment)
	}
	args.Add("-noprompt", "-recursive")
	c.Server.addServer(args)
	c.Server.addLogin(args)
	return args
}

// Compile-time interface conformance checks.
var (
	_ ParseableCommand[[]tfs.Workspace] = (*ListWorkspacesCommand)(nil)
	_ Command                           = (*NewWorkspaceCommand)(nil)
	_ Command                           = (*DeleteWorkspaceCommand)(nil)
	_ Command                           = (*WorkfoldCommand)(nil)
	_ Command                           = (*UnmapWorkfoldCommand)(nil)
	_ Command                           = (*GetFilesToWorkFolderCommand)(nil)
	_ Command                           = (*LabelCommand)(nil)
)
