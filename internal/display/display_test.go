package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("a\nb\n\n  c "))
	assert.Equal(t, "", CleanText("\n\n"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long te...", Truncate("long text that keeps going", 10))
}

func TestWrapLine(t *testing.T) {
	d := New()

	assert.Equal(t, []string{"abc"}, d.wrapLine("abc", 10))
	assert.Equal(t, []string{"abcde", "fghij", "k"}, d.wrapLine("abcdefghijk", 5))
}
