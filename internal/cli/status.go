package cli

import (
	"github.com/spf13/cobra"

	"github.com/abrady0/gitty/internal/output"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show staged, unstaged and untracked files",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}

			status, err := repo.Status(cmd.Context())
			if err != nil {
				return err
			}
			output.Debug().Debug("status parsed",
				"staged", len(status.Staged),
				"unstaged", len(status.Unstaged),
				"untracked", len(status.Untracked))

			if len(status.Staged) == 0 && len(status.Unstaged) == 0 && len(status.Untracked) == 0 {
				splog.Info("working tree clean")
				return nil
			}

			for _, entry := range status.Staged {
				splog.Info("%s", output.ColorStaged(entry.Code+" "+entry.File))
			}
			for _, entry := range status.Unstaged {
				splog.Info("%s", output.ColorUnstaged(entry.Code+" "+entry.File))
			}
			for _, entry := range status.Untracked {
				splog.Info("%s", output.ColorUntracked(entry.Code+" "+entry.File))
			}
			return nil
		},
	}
}
