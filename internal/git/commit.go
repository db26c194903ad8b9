package git

import (
	"context"
	"strings"

	gittyerrors "github.com/abrady0/gitty/internal/errors"
)

// CommitResult represents the outcome of a commit invocation.
//
// A rejected commit ("nothing to commit") is an expected outcome, not a
// failure: it sets Error and leaves the other fields zero. A successful commit
// fills Branch, Commit, Changed and Operations.
type CommitResult struct {
	Branch     string
	Commit     string
	Changed    string
	Operations []string
	Error      string
}

// Rejected reports whether the commit was rejected because there was nothing
// to commit
func (c *CommitResult) Rejected() bool {
	return c.Error != ""
}

// ParseCommit transforms `git commit` output into a CommitResult.
//
// Rejection is detected by the "nothing to commit" / "no changes added to
// commit" phrases; the first line without a '#' character becomes the Error
// value. On success, line 0 must carry a bracketed "[branch hash]" token,
// line 1's first field is the changed-file count (kept as a string), and the
// summary lines from line 1 onward are returned verbatim as Operations.
func ParseCommit(text string) (*CommitResult, error) {
	if strings.Contains(text, "nothing to commit") || strings.Contains(text, "no changes added to commit") {
		result := &CommitResult{}
		for _, line := range strings.Split(text, "\n") {
			if !strings.Contains(line, "#") {
				result.Error = line
				break
			}
		}
		return result, nil
	}

	lines := strings.Split(text, "\n")

	open := strings.Index(lines[0], "[")
	closing := strings.Index(lines[0], "]")
	if open == -1 || closing == -1 || closing < open {
		return nil, gittyerrors.NewParseError("commit", "no bracketed branch/hash token on first line")
	}

	// First token is the branch, second token is the hash. Root commits
	// carry an extra "(root-commit)" token that lands in the hash slot.
	bracket := lines[0][open+1 : closing]
	branch := bracket
	commit := bracket
	if fields := strings.Fields(bracket); len(fields) > 1 {
		branch = fields[0]
		commit = fields[1]
	} else if len(fields) == 1 {
		branch = fields[0]
		commit = fields[0]
	}

	changed := ""
	var operations []string
	if len(lines) > 1 {
		if fields := strings.Fields(lines[1]); len(fields) > 0 {
			changed = fields[0]
		}
		operations = append(operations, lines[1:]...)
	}

	return &CommitResult{
		Branch:     branch,
		Commit:     commit,
		Changed:    changed,
		Operations: operations,
	}, nil
}

// Commit records staged changes with the given message
func (r *Repo) Commit(ctx context.Context, message string) (*CommitResult, error) {
	output, err := r.runner.RunCombined(ctx, "commit", "-m", message)
	text := strings.TrimRight(output, "\n")
	if err != nil {
		// A rejected commit exits non-zero; the output still tells us why
		if result, perr := ParseCommit(text); perr == nil && result.Rejected() {
			return result, nil
		}
		return nil, err
	}
	return ParseCommit(text)
}
