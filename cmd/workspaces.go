package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/command"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// WorkspacesCmd returns the workspaces command, which parses
// `tf workspaces -format:brief` output.
func WorkspacesCmd() *cli.Command {
	return &cli.Command{
		Name:  "workspaces",
		Usage: "Parse tf workspaces output",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "File holding tf workspaces output (default: stdin)",
			},
			&cli.StringFlag{Name: "computer", Usage: "Only list workspaces of this computer"},
		},
		Action: workspacesAction,
	}
}

func workspacesAction(c *cli.Context) error {
	source, in, closeInput, err := openInput(c.String("input"))
	if err != nil {
		return err
	}
	defer closeInput()

	log := logrus.WithField("source", source)
	workspaces, err := parseOutput[[]tfs.Workspace](&command.ListWorkspacesCommand{Computer: c.String("computer")}, in, log)
	if err != nil {
		return err
	}

	if len(workspaces) == 0 {
		fmt.Fprintln(c.App.Writer, "No workspaces found.")
		return nil
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Workspace\tOwner\tComputer\tComment")
	for _, ws := range workspaces {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ws.Name, ws.Owner, ws.Computer, ws.Comment)
	}
	return tw.Flush()
}

// LatestCmd returns the latest command, which reads the changeset number
// from `tf history -stopafter:1 -format:brief` output.
func LatestCmd() *cli.Command {
	return &cli.Command{
		Name:  "latest",
		Usage: "Print the changeset number of tf history -stopafter:1 output",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "File holding tf history output (default: stdin)",
			},
		},
		Action: latestAction,
	}
}

func latestAction(c *cli.Context) error {
	source, in, closeInput, err := openInput(c.String("input"))
	if err != nil {
		return err
	}
	defer closeInput()

	log := logrus.WithField("source", source)
	version, err := parseOutput[string](&command.ChangesetVersionCommand{Path: "$/"}, in, log)
	if err != nil {
		return err
	}
	if version == "" {
		return fmt.Errorf("no changeset found in %s", source)
	}
	fmt.Fprintln(c.App.Writer, version)
	return nil
}
