package gitservice

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
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

func ringWithKey(t *testing.T, name string) keyringservice.Keyring {
	t.Helper()

	dir := t.TempDir()
	priv := filepath.Join(dir, keyringservice.KeyPrefix+name)
	require.NoError(t, os.WriteFile(priv, []byte("private"), 0600))
	require.NoError(t, os.WriteFile(priv+keyringservice.PubExt, []byte("public\n"), 0644))

	return keyringservice.Keyring{Dir: dir}
}

func TestSSHCommandFor(t *testing.T) {
	got := SSHCommandFor("/home/u/.ssh/id_ed25519_alice")
	assert.Equal(t, "ssh -i /home/u/.ssh/id_ed25519_alice -o IdentitiesOnly=yes", got)
}

func TestIsRepoDir(t *testing.T) {
	repo := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(repo, ".git"), 0755))
	assert.True(t, IsRepoDir(repo))

	assert.False(t, IsRepoDir(t.TempDir()))

	// a subdirectory of a repository does not count
	sub := filepath.Join(repo, "src")
	require.NoError(t, os.Mkdir(sub, 0755))
	assert.False(t, IsRepoDir(sub))
}

func TestConfigureKey(t *testing.T) {
	stubAvailable(t, true)

	ring := ringWithKey(t, "alice")
	repo := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(repo, ".git"), 0755))

	rec := &execx.Recorder{}
	require.NoError(t, ConfigureKey(ring, rec, "alice", repo))

	require.Len(t, rec.Calls, 1)
	assert.Equal(t, "git", rec.Calls[0].Name)
	assert.Equal(t, []string{
		"-C", repo,
		"config", "core.sshCommand",
		"ssh -i " + filepath.Join(ring.Dir, "id_ed25519_alice") + " -o IdentitiesOnly=yes",
	}, rec.Calls[0].Args)
}

func TestConfigureKeyMissingKey(t *testing.T) {
	stubAvailable(t, true)

	ring := keyringservice.Keyring{Dir: t.TempDir()}
	repo := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(repo, ".git"), 0755))

	rec := &execx.Recorder{}
	err := ConfigureKey(ring, rec, "ghost", repo)

	assert.ErrorIs(t, err, keyringservice.ErrKeyNotFound)
	assert.Empty(t, rec.Calls)
}

func TestConfigureKeyOutsideRepo(t *testing.T) {
	stubAvailable(t, true)

	ring := ringWithKey(t, "alice")
	plain := t.TempDir()

	rec := &execx.Recorder{}
	err := ConfigureKey(ring, rec, "alice", plain)

	assert.ErrorIs(t, err, ErrNotAGitRepo)
	assert.Contains(t, err.Error(), plain)
	assert.Empty(t, rec.Calls)
}

func TestConfigureKeyNeedsGit(t *testing.T) {
	stubAvailable(t, false)

	ring := ringWithKey(t, "alice")
	repo := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(repo, ".git"), 0755))

	rec := &execx.Recorder{}
	err := ConfigureKey(ring, rec, "alice", repo)

	assert.ErrorIs(t, err, ErrGitNotInstalled)
	assert.Empty(t, rec.Calls)
}

func TestShowSSHCommand(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	cfg, err := repo.Config()
	require.NoError(t, err)
	cfg.Raw.Section("core").SetOption("sshCommand", "ssh -i /k -o IdentitiesOnly=yes")
	require.NoError(t, repo.SetConfig(cfg))

	got, err := ShowSSHCommand(dir)
	require.NoError(t, err)
	assert.Equal(t, "ssh -i /k -o IdentitiesOnly=yes", got)
}

func TestShowSSHCommandUnset(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	got, err := ShowSSHCommand(dir)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestShowSSHCommandOutsideRepo(t *testing.T) {
	_, err := ShowSSHCommand(t.TempDir())
	assert.ErrorIs(t, err, ErrNotAGitRepo)
}
