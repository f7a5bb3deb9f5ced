package copilot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCapturesStdoutOnSuccess(t *testing.T) {
	res := Run(context.Background(), []string{"echo", "hello"}, "", 30*time.Second, nil)

	assert.True(t, res.Succeeded)
	assert.False(t, res.TimedOut)
	assert.Equal(t, "hello\n", res.Output)
}

func TestRunCapturesStderrOnFailure(t *testing.T) {
	res := Run(context.Background(), []string{"sh", "-c", "echo oops >&2; exit 3"}, "", 30*time.Second, nil)

	assert.False(t, res.Succeeded)
	assert.Equal(t, "oops\n", res.Output)
}

func TestRunFallsBackToStdoutWhenStderrEmpty(t *testing.T) {
	res := Run(context.Background(), []string{"sh", "-c", "echo partial; exit 1"}, "", 30*time.Second, nil)

	assert.False(t, res.Succeeded)
	assert.Equal(t, "partial\n", res.Output)
}

func TestRunTimeoutKillsProcess(t *testing.T) {
	start := time.Now()
	res := Run(context.Background(), []string{"sleep", "10"}, "", 1*time.Second, nil)
	elapsed := time.Since(start)

	assert.False(t, res.Succeeded)
	assert.True(t, res.TimedOut)
	assert.Empty(t, res.Output, "partial output must be discarded on timeout")
	assert.Greater(t, elapsed, 1*time.Second)
	assert.Less(t, elapsed, 3*time.Second, "process should be killed promptly after the deadline")
}

func TestRunTimeoutWithOrphanedGrandchildren(t *testing.T) {
	// The shell exits only after 60s, and the backgrounded sleep inherits
	// its stdout/stderr. Neither may keep Run alive past the deadline.
	start := time.Now()
	res := Run(context.Background(), []string{"sh", "-c", "sleep 20 & sleep 60"}, "", 1*time.Second, nil)
	elapsed := time.Since(start)

	assert.False(t, res.Succeeded)
	assert.True(t, res.TimedOut)
	assert.Empty(t, res.Output)
	assert.Less(t, elapsed, 3*time.Second, "pipes held open by grandchildren must not stall the return")
}

func TestRunTimeoutDiscardsPartialOutput(t *testing.T) {
	res := Run(context.Background(), []string{"sh", "-c", "echo before; sleep 10"}, "", 1*time.Second, nil)

	assert.False(t, res.Succeeded)
	assert.Empty(t, res.Output)
}

func TestRunLaunchFailure(t *testing.T) {
	res := Run(context.Background(), []string{"definitely-not-a-real-binary-xyz"}, "", 5*time.Second, nil)

	assert.False(t, res.Succeeded)
	assert.False(t, res.TimedOut)
	assert.Empty(t, res.Output)
}

func TestRunEmptyCommand(t *testing.T) {
	res := Run(context.Background(), nil, "", time.Second, nil)

	assert.False(t, res.Succeeded)
	assert.Empty(t, res.Output)
}

func TestRunPreservesStdoutOrdering(t *testing.T) {
	res := Run(context.Background(), []string{"sh", "-c", "for i in $(seq 1 50); do echo line$i; done"}, "", 30*time.Second, nil)

	require.True(t, res.Succeeded)
	expected := ""
	for i := 1; i <= 50; i++ {
		expected += fmt.Sprintf("line%d\n", i)
	}
	assert.Equal(t, expected, res.Output)
}

func TestRunStreamsTailsToCallback(t *testing.T) {
	var tails []string
	res := Run(context.Background(),
		[]string{"sh", "-c", "printf a; sleep 0.5; printf b"}, "", 30*time.Second,
		func(tail string) { tails = append(tails, tail) })

	require.True(t, res.Succeeded)
	assert.Equal(t, "ab", res.Output)
	require.NotEmpty(t, tails)
	assert.Contains(t, tails, "a", "callback should see output before the process exits")
	assert.Equal(t, "ab", tails[len(tails)-1])
}

func TestRunTailIsBounded(t *testing.T) {
	var tails []string
	res := Run(context.Background(),
		[]string{"sh", "-c", `head -c 5000 /dev/zero | tr '\0' x`}, "", 30*time.Second,
		func(tail string) { tails = append(tails, tail) })

	require.True(t, res.Succeeded)
	assert.Len(t, res.Output, 5000, "full output must not be truncated")
	for _, tail := range tails {
		assert.LessOrEqual(t, len(tail), tailBytes)
	}
}

func TestRunContextCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	res := Run(ctx, []string{"sleep", "10"}, "", 30*time.Second, nil)

	assert.False(t, res.Succeeded)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestRunUsesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0o644))

	res := Run(context.Background(), []string{"ls"}, dir, 30*time.Second, nil)

	require.True(t, res.Succeeded)
	assert.Contains(t, res.Output, "marker.txt")
}
