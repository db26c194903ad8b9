package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abrady0/gitty/internal/config"
	"github.com/abrady0/gitty/internal/git"
	"github.com/abrady0/gitty/internal/output"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	return newSyncCmd("push", "Push a branch to a remote", (*git.Repo).Push)
}

// newPullCmd creates the pull command
func newPullCmd() *cobra.Command {
	return newSyncCmd("pull", "Pull a branch from a remote", (*git.Repo).Pull)
}

func newSyncCmd(verb, short string, run func(*git.Repo, context.Context, string, string) (*git.SyncResult, error)) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " [remote] [branch]",
		Short: short,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}

			remote := ""
			if len(args) > 0 {
				remote = args[0]
			} else {
				remote, err = config.GetDefaultRemote(repo.Root())
				if err != nil {
					return err
				}
			}

			branch := ""
			if len(args) > 1 {
				branch = args[1]
			} else if current, berr := repo.CurrentBranch(); berr == nil {
				branch = current
			}

			result, err := run(repo, cmd.Context(), remote, branch)
			if result != nil && result.Failed() {
				for _, line := range result.Errors {
					splog.Warn("%s", line)
				}
			}
			if err != nil {
				return err
			}

			output.Debug().Debug(verb+" finished", "remote", remote, "branch", branch)
			splog.Page(result.Output)
			return nil
		},
	}
}
