package git

import (
	"context"
	"strings"
)

// SyncResult represents the outcome of a push or pull. On success Output
// carries the raw captured text unchanged; on failure Errors carries the
// non-empty lines of the failure output.
type SyncResult struct {
	Output string
	Errors []string
}

// Failed reports whether the sync operation produced error output
func (s *SyncResult) Failed() bool {
	return len(s.Errors) > 0
}

// ParseSyncError transforms push/pull failure output into its non-empty
// lines, preserving order.
func ParseSyncError(text string) ([]string, error) {
	lines := []string{}
	for _, line := range strings.Split(text, "\r\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// ParseSyncSuccess is the identity transform for successful push/pull output
func ParseSyncSuccess(text string) (string, error) {
	return text, nil
}

// Push pushes a branch to a remote. Git reports sync progress on stderr, so
// output is captured combined; on failure the parsed error lines are returned
// in the result alongside the command error.
func (r *Repo) Push(ctx context.Context, remote, branch string) (*SyncResult, error) {
	return r.sync(ctx, "push", remote, branch)
}

// Pull pulls a branch from a remote
func (r *Repo) Pull(ctx context.Context, remote, branch string) (*SyncResult, error) {
	return r.sync(ctx, "pull", remote, branch)
}

func (r *Repo) sync(ctx context.Context, verb, remote, branch string) (*SyncResult, error) {
	args := []string{verb}
	if remote != "" {
		args = append(args, remote)
	}
	if branch != "" {
		args = append(args, branch)
	}

	output, err := r.runner.RunCombined(ctx, args...)
	if err != nil {
		lines, perr := ParseSyncError(output)
		if perr != nil {
			return nil, perr
		}
		return &SyncResult{Errors: lines}, err
	}

	text, perr := ParseSyncSuccess(output)
	if perr != nil {
		return nil, perr
	}
	return &SyncResult{Output: text}, nil
}
