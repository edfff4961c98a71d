package keygenservice

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	keyringservice "github.com/entrpixx/esk/internal/services/keyringService"
	"github.com/entrpixx/esk/internal/utils/execx"
)

func stubAvailable(t *testing.T, ok bool) {
	t.Helper()

	orig := commandAvailable
	commandAvailable = func(string) bool { return ok }
	t.Cleanup(func() { commandAvailable = orig })
}

// fakeKeygen behaves like ssh-keygen: it writes both halves of the pair at
// the -f path.
func fakeKeygen(t *testing.T) *execx.Recorder {
	t.Helper()

	rec := &execx.Recorder{}
	rec.OnRun = func(c execx.Call) execx.Result {
		for i, arg := range c.Args {
			if arg == "-f" && i+1 < len(c.Args) {
				path := c.Args[i+1]
				require.NoError(t, os.WriteFile(path, []byte("private"), 0600))
				require.NoError(t, os.WriteFile(path+".pub", []byte("public\n"), 0644))
			}
		}
		return execx.Result{}
	}
	return rec
}

func TestGenerateKey(t *testing.T) {
	stubAvailable(t, true)

	dir := filepath.Join(t.TempDir(), ".ssh")
	ring := keyringservice.Keyring{Dir: dir}
	rec := fakeKeygen(t)

	privPath, err := GenerateKey(ring, rec, Options{Name: "alice"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "id_ed25519_alice"), privPath)

	require.Len(t, rec.Calls, 1)
	assert.Equal(t, "ssh-keygen", rec.Calls[0].Name)
	assert.Equal(t, []string{"-t", "ed25519", "-f", privPath, "-C", "alice"}, rec.Calls[0].Args)

	// the keyring directory was created owner-only
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())

	// gen followed by ls lists exactly that name
	keys, err := ring.List()
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "alice", keys[0].Name)
}

func TestGenerateKeyEmailBecomesComment(t *testing.T) {
	stubAvailable(t, true)

	ring := keyringservice.Keyring{Dir: t.TempDir()}
	rec := fakeKeygen(t)

	_, err := GenerateKey(ring, rec, Options{Name: "work", Email: "me@example.com"})
	require.NoError(t, err)

	require.Len(t, rec.Calls, 1)
	assert.Equal(t, "me@example.com", rec.Calls[0].Args[len(rec.Calls[0].Args)-1])
}

func TestGenerateKeyRefusesOverwrite(t *testing.T) {
	stubAvailable(t, true)

	dir := t.TempDir()
	ring := keyringservice.Keyring{Dir: dir}

	priv := filepath.Join(dir, "id_ed25519_alice")
	require.NoError(t, os.WriteFile(priv, []byte("original private"), 0600))
	require.NoError(t, os.WriteFile(priv+".pub", []byte("original public"), 0644))

	rec := &execx.Recorder{}
	_, err := GenerateKey(ring, rec, Options{Name: "alice"})

	assert.ErrorIs(t, err, keyringservice.ErrKeyExists)
	assert.Contains(t, err.Error(), priv)
	assert.Empty(t, rec.Calls, "ssh-keygen must not be spawned")

	// both files byte-for-byte untouched
	data, err := os.ReadFile(priv)
	require.NoError(t, err)
	assert.Equal(t, "original private", string(data))
	data, err = os.ReadFile(priv + ".pub")
	require.NoError(t, err)
	assert.Equal(t, "original public", string(data))
}

func TestGenerateKeyValidatesName(t *testing.T) {
	stubAvailable(t, true)

	ring := keyringservice.Keyring{Dir: t.TempDir()}
	rec := &execx.Recorder{}

	_, err := GenerateKey(ring, rec, Options{Name: ""})
	assert.ErrorIs(t, err, keyringservice.ErrEmptyName)

	_, err = GenerateKey(ring, rec, Options{Name: "../evil"})
	assert.ErrorIs(t, err, keyringservice.ErrInvalidName)

	assert.Empty(t, rec.Calls)
}

func TestGenerateKeyNeedsSSHKeygen(t *testing.T) {
	stubAvailable(t, false)

	ring := keyringservice.Keyring{Dir: t.TempDir()}
	rec := &execx.Recorder{}

	_, err := GenerateKey(ring, rec, Options{Name: "alice"})
	assert.ErrorIs(t, err, ErrKeygenNotInstalled)
	assert.Empty(t, rec.Calls)
}

func TestGenerateKeyPropagatesFailure(t *testing.T) {
	stubAvailable(t, true)

	ring := keyringservice.Keyring{Dir: t.TempDir()}
	rec := &execx.Recorder{Result: execx.Result{Code: 1, Err: assert.AnError}}

	_, err := GenerateKey(ring, rec, Options{Name: "alice"})
	assert.ErrorIs(t, err, assert.AnError)
}
