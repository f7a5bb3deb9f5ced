package cli

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWorkItemID(t *testing.T) {
	cases := []struct {
		arg  string
		want int
		ok   bool
	}{
		{"42", 42, true},
		{"1", 1, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{"4.2", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.arg, func(t *testing.T) {
			id, err := validateWorkItemID(tc.arg)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.want, id)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateWorkDir(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := validateWorkDir("/definitely/not/a/real/path")
		assert.Error(t, err)
	})

	t.Run("not a repository", func(t *testing.T) {
		if _, err := exec.LookPath("git"); err != nil {
			t.Skip("git not installed")
		}
		_, err := validateWorkDir(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a git repository")
	})

	t.Run("valid repository", func(t *testing.T) {
		if _, err := exec.LookPath("git"); err != nil {
			t.Skip("git not installed")
		}
		dir := t.TempDir()
		cmd := exec.Command("git", "init")
		cmd.Dir = dir
		require.NoError(t, cmd.Run())

		resolved, err := validateWorkDir(dir)
		require.NoError(t, err)
		assert.NotEmpty(t, resolved)
	})
}
