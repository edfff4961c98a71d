package sshservice

import (
	"fmt"
	"os"

	keyringservice "github.com/entrpixx/esk/internal/services/keyringService"
	"github.com/entrpixx/esk/internal/utils/execx"
)

// DefaultPort is handed to the ssh client verbatim when no port is given.
// No numeric validation happens here; ssh rejects malformed ports itself.
const DefaultPort = "22"

// ConnectOptions describe one interactive SSH session.
type ConnectOptions struct {
	// Name of the key identity to authenticate with (required).
	Name string
	// Host is the destination, as user@host (required).
	Host string
	// Port is passed through to ssh -p. Empty means DefaultPort.
	Port string
}

// Connect spawns the external ssh client authenticated with exactly the
// named key. The session is interactive: esk's terminal is handed to ssh
// for the whole session, and the client's error (carrying its exit code)
// is returned unmodified so the caller can propagate it.
func Connect(ring keyringservice.Keyring, runner execx.Runner, opts ConnectOptions) error {
	key, err := ring.Key(opts.Name)
	if err != nil {
		return err
	}

	if _, err := os.Stat(key.PrivateKeyPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", keyringservice.ErrKeyNotFound, key.PrivateKeyPath)
		}
		return fmt.Errorf("failed to check key file: %w", err)
	}

	port := opts.Port
	if port == "" {
		port = DefaultPort
	}

	res := runner.Interactive("ssh", "-i", key.PrivateKeyPath, "-p", port, opts.Host)

	return res.Err
}
