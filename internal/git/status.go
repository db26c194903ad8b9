package git

import (
	"context"
	"strings"
)

// StatusEntry represents one file in porcelain status output.
// Code is the verbatim two-column change code; File is the verbatim path.
type StatusEntry struct {
	File string
	Code string
}

// StatusResult groups status entries into the three porcelain buckets.
// Order within each bucket follows input order but carries no meaning.
type StatusResult struct {
	Staged    []StatusEntry
	Unstaged  []StatusEntry
	Untracked []StatusEntry
}

// ParseStatus transforms `git status --porcelain` output into a StatusResult.
// Each line's first two characters are the index/tree code; the path starts at
// offset 3. Routing is a deliberate three-way split, not a full status-code
// decoder: `??` lines are untracked, codes starting with `A` are staged,
// everything else is unstaged.
func ParseStatus(text string) (*StatusResult, error) {
	result := &StatusResult{
		Staged:    []StatusEntry{},
		Unstaged:  []StatusEntry{},
		Untracked: []StatusEntry{},
	}

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}

		code := line
		if len(line) > 2 {
			code = line[:2]
		}
		file := ""
		if len(line) > 3 {
			file = line[3:]
		}

		entry := StatusEntry{File: file, Code: code}
		switch {
		case strings.HasPrefix(code, "??"):
			result.Untracked = append(result.Untracked, entry)
		case strings.HasPrefix(code, "A"):
			result.Staged = append(result.Staged, entry)
		default:
			result.Unstaged = append(result.Unstaged, entry)
		}
	}

	return result, nil
}

// Status returns the working tree status
func (r *Repo) Status(ctx context.Context) (*StatusResult, error) {
	output, err := r.runner.RunRaw(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return ParseStatus(output)
}

// IsClean reports whether the working tree has no staged, unstaged or
// untracked changes
func (r *Repo) IsClean(ctx context.Context) (bool, error) {
	status, err := r.Status(ctx)
	if err != nil {
		return false, err
	}
	return len(status.Staged) == 0 && len(status.Unstaged) == 0 && len(status.Untracked) == 0, nil
}
