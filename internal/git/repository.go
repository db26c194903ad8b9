package git

import (
	"context"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	gittyerrors "github.com/abrady0/gitty/internal/errors"
)

// Repo wraps a git repository: go-git for reference inspection, a
// CommandRunner for everything that goes through the git binary.
type Repo struct {
	*gogit.Repository
	path   string
	runner *CommandRunner
}

// Open opens the git repository containing path
func Open(path string) (*Repo, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", gittyerrors.ErrNotARepository, absPath)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	root := worktree.Filesystem.Root()

	return &Repo{
		Repository: repo,
		path:       root,
		runner:     NewCommandRunner(root),
	}, nil
}

// IsRepo reports whether path is inside a git repository
func IsRepo(path string) bool {
	_, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	return err == nil
}

// Root returns the repository root directory
func (r *Repo) Root() string {
	return r.path
}

// CurrentBranch returns the current branch name
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}
	return head.Name().Short(), nil
}

// HeadSHA returns the full SHA of HEAD
func (r *Repo) HeadSHA() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// Fetch fetches refs from a remote
func (r *Repo) Fetch(ctx context.Context, remote string) error {
	if _, err := r.runner.Run(ctx, "fetch", remote); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", remote, err)
	}
	return nil
}
