package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// initRepo creates a repository with one commit on main
func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com")
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}
	run("init", "-b", "main")
	run("config", "user.name", "test")
	run("config", "user.email", "test@example.com")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0o644))
	run("add", ".")
	run("commit", "-m", "init")
	return dir
}

func TestFeatureBranch(t *testing.T) {
	assert.Equal(t, "feature/42", FeatureBranch(42))
}

func TestIsRepo(t *testing.T) {
	requireGit(t)

	assert.True(t, IsRepo(initRepo(t)))
	assert.False(t, IsRepo(t.TempDir()))
}

func TestHasUncommittedChanges(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)
	s := New(dir)

	assert.False(t, s.HasUncommittedChanges())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("y"), 0o644))
	assert.True(t, s.HasUncommittedChanges())
}

func TestBranchExistsMatchesExactNamesOnly(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)
	s := New(dir)

	ok, out := s.run("branch", "feature/42")
	require.True(t, ok, out)

	assert.True(t, s.BranchExists("feature/42"))
	assert.False(t, s.BranchExists("feature/4"))
	assert.False(t, s.BranchExists("feature/421"))
}

func TestSwitchAndDeleteBranch(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)
	s := New(dir)

	ok, out := s.run("branch", "feature/7")
	require.True(t, ok, out)

	require.NoError(t, s.SwitchBranch("feature/7"))
	require.NoError(t, s.SwitchBranch("main"))

	assert.True(t, s.DeleteBranch("feature/7", true))
	assert.False(t, s.BranchExists("feature/7"))
}

func TestSwitchBranchFailsForMissingBranch(t *testing.T) {
	requireGit(t)
	s := New(initRepo(t))

	assert.Error(t, s.SwitchBranch("no-such-branch"))
}

func TestCommit(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)
	s := New(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "feat.txt"), []byte("z"), 0o644))
	_, _ = s.run("add", ".")

	require.NoError(t, s.Commit("feat: #42 implementation", false))
	assert.False(t, s.HasUncommittedChanges())
}

func TestDefaultBranchFallsBackToLocal(t *testing.T) {
	requireGit(t)

	// No origin/HEAD configured; falls back to probing main/master.
	assert.Equal(t, "main", New(initRepo(t)).DefaultBranch())
}
