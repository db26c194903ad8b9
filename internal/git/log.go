package git

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	gittyerrors "github.com/abrady0/gitty/internal/errors"
)

// LogEntry is one decoded log record. Field names follow the pretty format
// used by Log (commit, author, email, date, message).
type LogEntry map[string]string

// logFormat emits each commit as a JSON object followed by a comma, so the
// captured output becomes an array literal once the trailing comma is dropped
// and brackets are added.
const logFormat = `{"commit": "%H", "author": "%an", "email": "%ae", "date": "%ad", "message": "%s"},`

// logValuePattern matches a quoted key/value pair terminated by `,` or `}`.
// The non-greedy value group extends past embedded quotes until a quote
// followed by a terminator is found, which is what lets the repair pass see
// the full value of a message containing literal quotes.
var logValuePattern = regexp.MustCompile(`"(\w+)":\s*"(.*?)"\s*[,}]`)

// ParseLog transforms pretty-format log output into a sequence of LogEntry.
//
// The captured text is a stream of JSON-object-like records, each followed by
// a trailing comma. The transform drops the final comma, wraps the rest in
// array brackets, then repairs unescaped double quotes inside quoted values
// before decoding. Commit messages may contain literal quotes; escaping only
// the quotes that sit inside already-quoted values leaves the structural
// quotes untouched. Substitutions run in reverse match order so earlier
// replacements do not shift the indices of later ones.
func ParseLog(text string) ([]LogEntry, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, gittyerrors.NewParseError("log", "no records")
	}

	candidate := "[" + trimmed[:len(trimmed)-1] + "]"

	matches := logValuePattern.FindAllStringSubmatchIndex(candidate, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		start, end := matches[i][4], matches[i][5]
		value := candidate[start:end]
		if !strings.Contains(value, `"`) {
			continue
		}
		escaped := strings.ReplaceAll(value, `"`, `\"`)
		candidate = candidate[:start] + escaped + candidate[end:]
	}

	var entries []LogEntry
	if err := json.Unmarshal([]byte(candidate), &entries); err != nil {
		return nil, gittyerrors.WrapParseError("log", "invalid JSON after quote repair", err)
	}

	return entries, nil
}

// Log returns the commit history as structured entries. A limit of zero or
// less returns the full history.
func (r *Repo) Log(ctx context.Context, limit int) ([]LogEntry, error) {
	args := []string{"log", "--pretty=format:" + logFormat}
	if limit > 0 {
		args = append(args, "-n", strconv.Itoa(limit))
	}
	output, err := r.runner.RunRaw(ctx, args...)
	if err != nil {
		return nil, err
	}
	return ParseLog(output)
}
