package keyringservice

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	pathutil "github.com/entrpixx/esk/internal/utils/path"
)

const (
	// KeyPrefix is the filename prefix every managed private key carries.
	// The public half is the same name plus PubExt.
	KeyPrefix = "id_ed25519_"
	// PubExt is the extension of the public half of a key pair.
	PubExt = ".pub"
)

var (
	ErrEmptyName   = errors.New("key name cannot be empty")
	ErrInvalidName = errors.New("key name cannot contain path separators")
	ErrKeyExists   = errors.New("key already exists")
	ErrKeyNotFound = errors.New("key not found")
)

// Key is one named identity: a private/public file pair derived from the
// id_ed25519_<name> naming convention.
type Key struct {
	Name           string
	PrivateKeyPath string
	PublicKeyPath  string
	// ModTime of the public key file, filled in by List.
	ModTime time.Time
}

// Keyring derives key paths inside a single base directory. The directory is
// the only state: nothing is cached between invocations, every operation
// re-reads the filesystem.
type Keyring struct {
	Dir string
}

// DefaultDir returns the user's SSH configuration directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".ssh"), nil
}

// New builds a Keyring rooted at dir. An empty dir falls back to ~/.ssh,
// and a leading ~ is expanded.
func New(dir string) (Keyring, error) {
	if dir == "" {
		def, err := DefaultDir()
		if err != nil {
			return Keyring{}, err
		}
		return Keyring{Dir: def}, nil
	}

	expanded, err := pathutil.ExpandPath(dir)
	if err != nil {
		return Keyring{}, fmt.Errorf("failed to resolve key directory: %w", err)
	}

	return Keyring{Dir: expanded}, nil
}

// ValidateName rejects empty names and names that would escape the keyring
// directory.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Key derives the file pair for name. It does not check the filesystem.
func (r Keyring) Key(name string) (Key, error) {
	if err := ValidateName(name); err != nil {
		return Key{}, err
	}

	priv := filepath.Join(r.Dir, KeyPrefix+name)

	return Key{
		Name:           name,
		PrivateKeyPath: priv,
		PublicKeyPath:  priv + PubExt,
	}, nil
}

// Exists reports whether the keyring directory is present.
func (r Keyring) Exists() bool {
	info, err := os.Stat(r.Dir)
	return err == nil && info.IsDir()
}

// Ensure creates the keyring directory (owner-only permissions) if missing.
func (r Keyring) Ensure() error {
	if err := os.MkdirAll(r.Dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", r.Dir, err)
	}
	return nil
}

// List returns every managed key in the keyring, sorted by name. Only files
// matching id_ed25519_*.pub at the top level are recognized; a missing
// directory yields an empty list.
func (r Keyring) List() ([]Key, error) {
	matches, err := filepath.Glob(filepath.Join(r.Dir, KeyPrefix+"*"+PubExt))
	if err != nil {
		return nil, fmt.Errorf("failed to list keys in %s: %w", r.Dir, err)
	}

	var keys []Key
	for _, pub := range matches {
		name := strings.TrimSuffix(filepath.Base(pub), PubExt)
		name = strings.TrimPrefix(name, KeyPrefix)
		if name == "" {
			continue
		}

		key, err := r.Key(name)
		if err != nil {
			continue
		}
		if info, err := os.Stat(pub); err == nil {
			key.ModTime = info.ModTime()
		}
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].Name < keys[j].Name })

	return keys, nil
}

// ReadPublicKey returns the raw contents of name's public key file.
func (r Keyring) ReadPublicKey(name string) ([]byte, error) {
	key, err := r.Key(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(key.PublicKeyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key.PublicKeyPath)
		}
		return nil, fmt.Errorf("failed to read public key: %w", err)
	}

	return data, nil
}

// Remove deletes name's key pair. The private key must exist; removal of the
// public half is best-effort.
func (r Keyring) Remove(name string) error {
	key, err := r.Key(name)
	if err != nil {
		return err
	}

	if _, err := os.Stat(key.PrivateKeyPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrKeyNotFound, key.PrivateKeyPath)
		}
		return fmt.Errorf("failed to check key file: %w", err)
	}

	if err := os.Remove(key.PrivateKeyPath); err != nil {
		return fmt.Errorf("failed to remove private key: %w", err)
	}

	// Public half may already be gone; that's fine.
	_ = os.Remove(key.PublicKeyPath)

	return nil
}
