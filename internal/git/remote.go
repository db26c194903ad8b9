package git

import (
	"context"
	"fmt"
	"strings"
)

// ParseRemotes transforms `git remote -v` output into a name-to-URL map.
// Each line is tab-separated as `name<TAB>url (fetch|push)`; the URL is the
// first whitespace-delimited token of the second field. Later duplicate names
// overwrite earlier ones.
func ParseRemotes(text string) (map[string]string, error) {
	remotes := map[string]string{}

	for _, line := range strings.Split(text, "\n") {
		fields := strings.Split(line, "\t")
		if fields[0] == "" {
			continue
		}
		url := ""
		if len(fields) > 1 {
			if tokens := strings.Fields(fields[1]); len(tokens) > 0 {
				url = tokens[0]
			}
		}
		remotes[fields[0]] = url
	}

	return remotes, nil
}

// Remotes lists configured remotes and their URLs
func (r *Repo) Remotes(ctx context.Context) (map[string]string, error) {
	output, err := r.runner.RunRaw(ctx, "remote", "-v")
	if err != nil {
		return nil, err
	}
	return ParseRemotes(output)
}

// AddRemote adds a remote with the given name and URL
func (r *Repo) AddRemote(ctx context.Context, name, url string) error {
	if _, err := r.runner.Run(ctx, "remote", "add", name, url); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// RemoveRemote removes a remote
func (r *Repo) RemoveRemote(ctx context.Context, name string) error {
	if _, err := r.runner.Run(ctx, "remote", "remove", name); err != nil {
		return fmt.Errorf("failed to remove remote %s: %w", name, err)
	}
	return nil
}
