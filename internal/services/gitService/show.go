package gitservice

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// ShowSSHCommand reads dir's current repository-scoped core.sshCommand.
// Returns "" when the option is unset. Read-only: uses go-git instead of
// shelling out, nothing in the repository is modified.
func ShowSSHCommand(dir string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%w: %s", ErrNotAGitRepo, dir)
		}
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	cfg, err := repo.Config()
	if err != nil {
		return "", fmt.Errorf("failed to read repository config: %w", err)
	}

	return cfg.Raw.Section("core").Option("sshCommand"), nil
}
