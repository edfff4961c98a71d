package gitservice

import (
	"fmt"
	"os"
	"path/filepath"

	keyringservice "github.com/entrpixx/esk/internal/services/keyringService"
	"github.com/entrpixx/esk/internal/utils/execx"
)

// Swapped out in tests.
var commandAvailable = execx.IsAvailable

// IsRepoDir reports whether dir contains a .git entry. This is a literal
// check, not a recursive repository-root search: configuring a key from a
// subdirectory of a repository is refused on purpose.
func IsRepoDir(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// SSHCommandFor builds the core.sshCommand value that pins authentication to
// a single private key. IdentitiesOnly keeps the client from falling back to
// agent-held identities.
func SSHCommandFor(privateKeyPath string) string {
	return fmt.Sprintf("ssh -i %s -o IdentitiesOnly=yes", privateKeyPath)
}

// ConfigureKey sets core.sshCommand in dir's repository-scoped config so
// every git operation in that repository authenticates with the named key.
// The user's global configuration is never touched.
func ConfigureKey(ring keyringservice.Keyring, runner execx.Runner, name, dir string) error {
	key, err := ring.Key(name)
	if err != nil {
		return err
	}

	if _, err := os.Stat(key.PrivateKeyPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", keyringservice.ErrKeyNotFound, key.PrivateKeyPath)
		}
		return fmt.Errorf("failed to check key file: %w", err)
	}

	if !IsRepoDir(dir) {
		return fmt.Errorf("%w: %s", ErrNotAGitRepo, dir)
	}

	if !commandAvailable("git") {
		return ErrGitNotInstalled
	}

	res := runner.Interactive("git", "-C", dir, "config", "core.sshCommand", SSHCommandFor(key.PrivateKeyPath))
	if res.Err != nil {
		return fmt.Errorf("git config failed: %w", res.Err)
	}

	return nil
}
