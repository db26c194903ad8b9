package git

import (
	"context"
	"fmt"
	"strings"
)

// ParseTags transforms `git tag` output into an ordered list of tag names.
// Output is split on CRLF or LF; empty entries are dropped.
func ParseTags(text string) ([]string, error) {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")

	tags := []string{}
	for _, line := range strings.Split(normalized, "\n") {
		if line == "" {
			continue
		}
		tags = append(tags, line)
	}

	return tags, nil
}

// Tags lists tags in the repository
func (r *Repo) Tags(ctx context.Context) ([]string, error) {
	output, err := r.runner.RunRaw(ctx, "tag")
	if err != nil {
		return nil, err
	}
	return ParseTags(output)
}

// CreateTag creates a lightweight tag at HEAD
func (r *Repo) CreateTag(ctx context.Context, name string) error {
	if _, err := r.runner.Run(ctx, "tag", name); err != nil {
		return fmt.Errorf("failed to create tag %s: %w", name, err)
	}
	return nil
}

// DeleteTag deletes a tag
func (r *Repo) DeleteTag(ctx context.Context, name string) error {
	if _, err := r.runner.Run(ctx, "tag", "-d", name); err != nil {
		return fmt.Errorf("failed to delete tag %s: %w", name, err)
	}
	return nil
}
