package gitservice

import (
	"errors"
)

// ErrNotAGitRepo is returned when a path has no .git entry.
var ErrNotAGitRepo = errors.New("path is not a git repository")

// ErrGitNotInstalled is returned when the git binary cannot be found.
var ErrGitNotInstalled = errors.New("git is not installed or not found in PATH")
