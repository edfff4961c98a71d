package keyringservice

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

// writeRealKeyPair puts a genuine ed25519 authorized-key line on disk.
func writeRealKeyPair(t *testing.T, dir, name, comment string) {
	t.Helper()

	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	sshPub, err := ssh.NewPublicKey(pub)
	require.NoError(t, err)

	line := string(ssh.MarshalAuthorizedKey(sshPub))
	if comment != "" {
		line = line[:len(line)-1] + " " + comment + "\n"
	}

	priv := filepath.Join(dir, KeyPrefix+name)
	require.NoError(t, os.WriteFile(priv, []byte("private"), 0600))
	require.NoError(t, os.WriteFile(priv+PubExt, []byte(line), 0644))
}

func TestReadFingerprint(t *testing.T) {
	dir := t.TempDir()
	ring := Keyring{Dir: dir}
	writeRealKeyPair(t, dir, "alice", "alice@example.com")

	fp, err := ring.ReadFingerprint("alice")
	require.NoError(t, err)

	assert.Equal(t, "ssh-ed25519", fp.Type)
	assert.True(t, strings.HasPrefix(fp.SHA256, "SHA256:"), "got %q", fp.SHA256)
	assert.Equal(t, "alice@example.com", fp.Comment)
}

func TestReadFingerprintMissingKey(t *testing.T) {
	ring := Keyring{Dir: t.TempDir()}

	_, err := ring.ReadFingerprint("ghost")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestReadFingerprintGarbage(t *testing.T) {
	dir := t.TempDir()
	ring := Keyring{Dir: dir}

	priv := filepath.Join(dir, KeyPrefix+"junk")
	require.NoError(t, os.WriteFile(priv, []byte("private"), 0600))
	require.NoError(t, os.WriteFile(priv+PubExt, []byte("not a key\n"), 0644))

	_, err := ring.ReadFingerprint("junk")
	assert.Error(t, err)
}
