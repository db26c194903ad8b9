package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/abrady0/gitty/internal/output"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var (
		message string
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record staged changes. Prompts for a message when -m is not given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}

			if all {
				if err := repo.StageAll(cmd.Context()); err != nil {
					return err
				}
			}

			if message == "" {
				prompt := &survey.Input{
					Message: "Commit message",
				}
				if err := survey.AskOne(prompt, &message, survey.WithValidator(survey.Required)); err != nil {
					return fmt.Errorf("canceled")
				}
			}

			result, err := repo.Commit(cmd.Context(), message)
			if err != nil {
				return err
			}

			if result.Rejected() {
				splog.Info("%s", result.Error)
				return nil
			}

			output.Debug().Debug("commit created", "branch", result.Branch, "commit", result.Commit)
			splog.Info("[%s %s]", result.Branch, output.ColorHash(result.Commit))
			for _, op := range result.Operations {
				splog.Info("%s", output.ColorDim(op))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "stage all changes before committing")

	return cmd
}
