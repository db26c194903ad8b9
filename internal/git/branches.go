package git

import (
	"context"
	"fmt"
	"strings"
)

// BranchList represents `git branch` output: the current branch (empty when
// detached) and the remaining branch names in input order.
type BranchList struct {
	Current string
	Others  []string
}

// ParseBranches transforms `git branch` output into a BranchList. The current
// branch is the line carrying the `*` marker; all other non-empty lines are
// trimmed and appended in order.
func ParseBranches(text string) (*BranchList, error) {
	result := &BranchList{Others: []string{}}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.Contains(line, "*") {
			result.Current = strings.TrimSpace(strings.TrimPrefix(trimmed, "*"))
			continue
		}
		result.Others = append(result.Others, trimmed)
	}

	return result, nil
}

// Branches lists local branches
func (r *Repo) Branches(ctx context.Context) (*BranchList, error) {
	output, err := r.runner.RunRaw(ctx, "branch")
	if err != nil {
		return nil, err
	}
	return ParseBranches(output)
}

// CreateBranch creates a new branch at HEAD without checking it out
func (r *Repo) CreateBranch(ctx context.Context, name string) error {
	if _, err := r.runner.Run(ctx, "branch", name); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

// Checkout switches the working tree to the given branch
func (r *Repo) Checkout(ctx context.Context, name string) error {
	if _, err := r.runner.Run(ctx, "checkout", name); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", name, err)
	}
	return nil
}

// DeleteBranch deletes a local branch. When force is true the branch is
// deleted even if unmerged.
func (r *Repo) DeleteBranch(ctx context.Context, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if _, err := r.runner.Run(ctx, "branch", flag, name); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", name, err)
	}
	return nil
}
