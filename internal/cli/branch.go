package cli

import (
	"github.com/spf13/cobra"

	"github.com/abrady0/gitty/internal/output"
	"github.com/abrady0/gitty/internal/utils"
)

// newBranchCmd creates the branch command and its subcommands
func newBranchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "List, create or delete branches",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}

			branches, err := repo.Branches(cmd.Context())
			if err != nil {
				return err
			}

			if branches.Current != "" {
				splog.Info("%s", output.ColorBranchName(branches.Current, true))
			}
			for _, name := range branches.Others {
				splog.Info("%s", output.ColorBranchName(name, false))
			}
			return nil
		},
	}

	cmd.AddCommand(newBranchCreateCmd())
	cmd.AddCommand(newBranchDeleteCmd())

	return cmd
}

func newBranchCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a branch at HEAD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}

			name := utils.SanitizeBranchName(args[0])
			if name != args[0] {
				splog.Warn("branch name sanitized to %s", name)
			}
			return repo.CreateBranch(cmd.Context(), name)
		},
	}
}

func newBranchDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			return repo.DeleteBranch(cmd.Context(), args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete even if unmerged")

	return cmd
}
