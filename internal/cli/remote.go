package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/abrady0/gitty/internal/output"
)

// newRemoteCmd creates the remote command and its subcommands
func newRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "List, add or remove remotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}

			remotes, err := repo.Remotes(cmd.Context())
			if err != nil {
				return err
			}

			names := make([]string, 0, len(remotes))
			for name := range remotes {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				splog.Info("%s\t%s", name, output.ColorDim(remotes[name]))
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <url>",
		Short: "Add a remote",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			return repo.AddRemote(cmd.Context(), args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a remote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			return repo.RemoveRemote(cmd.Context(), args[0])
		},
	})

	return cmd
}
