// Package cli wires the gitty command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abrady0/gitty/internal/config"
	"github.com/abrady0/gitty/internal/git"
	"github.com/abrady0/gitty/internal/output"
)

var (
	debugFlag bool
	quietFlag bool
)

// splog is the shared CLI output writer
var splog = output.NewSplog()

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gitty",
		Short:   "gitty is a typed interface to the git command line",
		Long:    `gitty runs git commands and turns their output into structured results.`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			splog.SetQuiet(quietFlag)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write debug logs to .git/gitty.log")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress informational output")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newTagCmd())
	rootCmd.AddCommand(newRemoteCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newPullCmd())

	return rootCmd
}

// openRepo opens the repository containing the current directory and sets up
// debug logging when enabled via the --debug flag or the repo config
func openRepo() (*git.Repo, error) {
	repo, err := git.Open(".")
	if err != nil {
		return nil, err
	}
	debug := debugFlag
	if !debug {
		if configured, err := config.GetDebug(repo.Root()); err == nil {
			debug = configured
		}
	}
	if debug {
		if err := output.InitDebugLog(repo.Root()); err != nil {
			splog.Warn("failed to initialize debug log: %v", err)
		}
	}
	return repo, nil
}
