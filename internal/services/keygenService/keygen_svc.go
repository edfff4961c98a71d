package keygenservice

import (
	"errors"
	"fmt"
	"os"

	keyringservice "github.com/entrpixx/esk/internal/services/keyringService"
	"github.com/entrpixx/esk/internal/utils/execx"
)

var ErrKeygenNotInstalled = errors.New("ssh-keygen is not installed or not found in PATH")

// Swapped out in tests.
var commandAvailable = execx.IsAvailable

// Options control a single key generation.
type Options struct {
	// Name of the key identity (required).
	Name string
	// Email is embedded as the key comment. Defaults to Name.
	Email string
}

// GenerateKey creates a new Ed25519 key pair for opts.Name inside ring.
// The actual key cryptography is delegated to the external ssh-keygen
// utility, which runs attached to the terminal so it can prompt for a
// passphrase. Returns the private key path on success.
//
// Refuses to touch an existing key: if the private key file is already
// present, nothing is overwritten.
func GenerateKey(ring keyringservice.Keyring, runner execx.Runner, opts Options) (string, error) {
	key, err := ring.Key(opts.Name)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(key.PrivateKeyPath); err == nil {
		return "", fmt.Errorf("%w: %s", keyringservice.ErrKeyExists, key.PrivateKeyPath)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to check key file: %w", err)
	}

	if !commandAvailable("ssh-keygen") {
		return "", ErrKeygenNotInstalled
	}

	if err := ring.Ensure(); err != nil {
		return "", err
	}

	comment := opts.Email
	if comment == "" {
		comment = opts.Name
	}

	res := runner.Interactive("ssh-keygen", "-t", "ed25519", "-f", key.PrivateKeyPath, "-C", comment)
	if res.Err != nil {
		return "", fmt.Errorf("ssh-keygen failed: %w", res.Err)
	}

	return key.PrivateKeyPath, nil
}
