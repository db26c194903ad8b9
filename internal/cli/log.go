package cli

import (
	"github.com/spf13/cobra"

	"github.com/abrady0/gitty/internal/config"
	"github.com/abrady0/gitty/internal/output"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show commit history as structured entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}

			if limit == 0 {
				limit, err = config.GetLogLimit(repo.Root())
				if err != nil {
					return err
				}
			}

			entries, err := repo.Log(cmd.Context(), limit)
			if err != nil {
				return err
			}

			for _, entry := range entries {
				splog.Info("%s %s", output.ColorHash(entry["commit"]), entry["message"])
				splog.Info("%s", output.ColorDim(entry["author"]+" <"+entry["email"]+"> "+entry["date"]))
				splog.Newline()
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of entries (0 uses the configured limit)")

	return cmd
}
