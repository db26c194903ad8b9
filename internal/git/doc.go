// Package git provides low-level Git operations.
//
// It wraps git command execution and translates captured output into typed
// results:
//   - Status, commit, branch, tag and remote queries
//   - Structured log reading
//   - Remote sync operations (push, pull)
//
// The parsing layer is a set of pure transforms, one per command family; each
// takes the captured output text of a finished invocation and returns a fresh
// structured value. Transforms hold no state and are safe for concurrent use.
//
// This package should be the only place where direct git commands are executed.
package git
