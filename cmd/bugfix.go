package cmd

import (
	"fmt"

	"github.com/jenkinsci/tfs-plugin-sub001/config"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/bugfix"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
	"github.com/urfave/cli/v2"
)

func resolveBugPatterns(c *cli.Context, cfg *config.Config) []string {
	patterns := c.StringSlice("bug-patterns")
	if len(patterns) > 0 {
		return patterns
	}
	return cfg.Bugfix.Patterns
}

func detectFixes(changeSets []tfs.ChangeSet, patterns []string) (*bugfix.Result, error) {
	detector, err := bugfix.NewDetector(patterns)
	if err != nil {
		return nil, fmt.Errorf("invalid bug pattern: %w", err)
	}
	return detector.Detect(changeSets), nil
}
