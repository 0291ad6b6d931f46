package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/command"
	"github.com/urfave/cli/v2"
)

// ArgsCmd returns the args command, which prints the tf argument vector of
// a command with credentials masked.
func ArgsCmd() *cli.Command {
	return &cli.Command{
		Name:      "args",
		Usage:     "Print the tf arguments of a command with credentials masked",
		ArgsUsage: "<" + strings.Join(commandKinds(), "|") + ">",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server", Usage: "Team project collection URL"},
			&cli.StringFlag{Name: "user", Usage: "User name for -login"},
			&cli.StringFlag{
				Name:    "password",
				Usage:   "Password for -login",
				EnvVars: []string{"TFHISTORY_PASSWORD"},
			},
			&cli.StringFlag{Name: "path", Usage: "Server path", Value: "$/"},
			&cli.StringFlag{Name: "workspace", Usage: "Workspace name"},
			&cli.StringFlag{Name: "local", Usage: "Local folder"},
			&cli.StringFlag{Name: "computer", Usage: "Computer name for workspaces"},
			&cli.StringFlag{Name: "label", Usage: "Label name"},
			&cli.StringFlag{Name: "comment", Usage: "Label comment"},
			&cli.StringFlag{Name: "version-spec", Usage: "Version spec, e.g. C123 or LRelease"},
			&cli.StringFlag{Name: "since", Usage: "History lower bound (YYYY-MM-DD, exclusive)"},
			&cli.StringFlag{Name: "until", Usage: "History upper bound (YYYY-MM-DD)"},
		},
		Action: argsAction,
	}
}

type commandBuilder func(c *cli.Context, server command.ServerConfig) (command.Command, error)

var commandBuilders = map[string]commandBuilder{
	"brief-history": func(c *cli.Context, server command.ServerConfig) (command.Command, error) {
		from, to, err := historyRange(c)
		if err != nil {
			return nil, err
		}
		return &command.BriefHistoryCommand{Server: server, ProjectPath: c.String("path"), From: from, To: to}, nil
	},
	"detailed-history": func(c *cli.Context, server command.ServerConfig) (command.Command, error) {
		from, to, err := historyRange(c)
		if err != nil {
			return nil, err
		}
		return &command.DetailedHistoryCommand{Server: server, ProjectPath: c.String("path"), From: from, To: to}, nil
	},
	"changeset-version": func(c *cli.Context, server command.ServerConfig) (command.Command, error) {
		return &command.ChangesetVersionCommand{Server: server, Path: c.String("path"), VersionSpec: c.String("version-spec")}, nil
	},
	"workspaces": func(c *cli.Context, server command.ServerConfig) (command.Command, error) {
		return &command.ListWorkspacesCommand{Server: server, Computer: c.String("computer")}, nil
	},
	"new-workspace": func(c *cli.Context, server command.ServerConfig) (command.Command, error) {
		return &command.NewWorkspaceCommand{Server: server, Workspace: c.String("workspace")}, nil
	},
	"delete-workspace": func(c *cli.Context, server command.ServerConfig) (command.Command, error) {
		return &command.DeleteWorkspaceCommand{Server: server, Workspace: c.String("workspace")}, nil
	},
	"workfold": func(c *cli.Context, server command.ServerConfig) (command.Command, error) {
		return &command.WorkfoldCommand{Server: server, ProjectPath: c.String("path"), LocalFolder: c.String("local"), Workspace: c.String("workspace")}, nil
	},
	"unmap": func(c *cli.Context, server command.ServerConfig) (command.Command, error) {
		return &command.UnmapWorkfoldCommand{Server: server, LocalFolder: c.String("local"), Workspace: c.String("workspace")}, nil
	},
	"get": func(c *cli.Context, server command.ServerConfig) (command.Command, error) {
		return &command.GetFilesToWorkFolderCommand{Server: server, LocalFolder: c.String("local"), VersionSpec: c.String("version-spec")}, nil
	},
	"label": func(c *cli.Context, server command.ServerConfig) (command.Command, error) {
		return &command.LabelCommand{Server: server, Label: c.String("label"), ProjectPath: c.String("path"), Workspace: c.String("workspace"), Comment: c.String("comment")}, nil
	},
}

func commandKinds() []string {
	kinds := make([]string, 0, len(commandBuilders))
	for kind := range commandBuilders {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func historyRange(c *cli.Context) (from, to time.Time, err error) {
	since, err := parseDateFlag(c.String("since"), time.Local)
	if err != nil {
		return from, to, err
	}
	until, err := parseDateFlag(c.String("until"), time.Local)
	if err != nil {
		return from, to, err
	}
	if since != nil {
		from = *since
	}
	to = time.Now()
	if until != nil {
		to = *until
	}
	return from, to, nil
}

func buildCommand(c *cli.Context, kind string) (command.Command, error) {
	build, ok := commandBuilders[kind]
	if !ok {
		return nil, fmt.Errorf("unknown command %q (expected one of %s)", kind, strings.Join(commandKinds(), ", "))
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	server := command.ServerConfig{
		URL:      cfg.Server.URL,
		UserName: cfg.Server.UserName,
		Password: c.String("password"),
	}
	if url := c.String("server"); url != "" {
		server.URL = url
	}
	if user := c.String("user"); user != "" {
		server.UserName = user
	}
	return build(c, server)
}

func argsAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one command kind (one of %s)", strings.Join(commandKinds(), ", "))
	}

	cmd, err := buildCommand(c, c.Args().First())
	if err != nil {
		return err
	}

	args := cmd.Arguments()
	fmt.Fprintf(c.App.Writer, "tf %s\n", args)

	masked := 0
	for _, m := range args.Mask() {
		if m {
			masked++
		}
	}
	if masked > 0 {
		color.New(color.FgYellow).Fprintf(c.App.Writer, "%d of %d arguments masked\n", masked, args.Len())
	}
	return nil
}
