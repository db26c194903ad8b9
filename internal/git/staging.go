package git

import (
	"context"
	"fmt"
)

// StageAll stages all changes including untracked files
func (r *Repo) StageAll(ctx context.Context) error {
	if _, err := r.runner.Run(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// StageFiles stages the given paths
func (r *Repo) StageFiles(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	if _, err := r.runner.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}
	return nil
}

// UnstageAll removes all paths from the index, keeping working tree changes
func (r *Repo) UnstageAll(ctx context.Context) error {
	if _, err := r.runner.Run(ctx, "reset"); err != nil {
		return fmt.Errorf("failed to unstage changes: %w", err)
	}
	return nil
}
