package git

import (
	"fmt"

	gittyerrors "github.com/abrady0/gitty/internal/errors"
)

// ParseFunc is a pure transform from captured command output to a structured
// result. Every transform allocates a fresh value per call and holds no state.
type ParseFunc func(text string) (any, error)

// parsers maps a logical command name to its transform. Callers that know the
// command statically should prefer the typed functions (ParseStatus,
// ParseCommit, ...); this table serves callers that select the transform at
// runtime from the command that was run.
var parsers = map[string]ParseFunc{
	"status": func(text string) (any, error) { return ParseStatus(text) },
	"commit": func(text string) (any, error) { return ParseCommit(text) },
	"branch": func(text string) (any, error) { return ParseBranches(text) },
	"tag":    func(text string) (any, error) { return ParseTags(text) },
	"remote": func(text string) (any, error) { return ParseRemotes(text) },
	"log":    func(text string) (any, error) { return ParseLog(text) },
	"sync-error": func(text string) (any, error) {
		return ParseSyncError(text)
	},
	"sync-success": func(text string) (any, error) {
		return ParseSyncSuccess(text)
	},
}

// Parse applies the transform registered for command to text.
// It returns ErrUnknownCommand when no transform is registered.
func Parse(command, text string) (any, error) {
	parser, ok := parsers[command]
	if !ok {
		return nil, fmt.Errorf("%w: %s", gittyerrors.ErrUnknownCommand, command)
	}
	return parser(text)
}
