package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	ringbuffer "github.com/xchscan/ring-buffer-ts"
)

func TestCollectLast(t *testing.T) {
	window, err := ringbuffer.NewRingT[string](3)
	require.NoError(t, err)

	seen, err := collectLast(strings.NewReader("a\nb\nc\nd\ne\n"), window, 0)
	require.NoError(t, err)
	require.Equal(t, 5, seen)
	require.Equal(t, []string{"c", "d", "e"}, window.ToSlice())
}

func TestCollectLastSkip(t *testing.T) {
	// Skipped lines count as seen, but never enter the window
	window, err := ringbuffer.NewRingT[string](10)
	require.NoError(t, err)

	seen, err := collectLast(strings.NewReader("a\nb\nc\nd\n"), window, 2)
	require.NoError(t, err)
	require.Equal(t, 4, seen)
	require.Equal(t, []string{"c", "d"}, window.ToSlice())

	// Skipping more lines than the input holds leaves the window empty
	window.Clear()
	seen, err = collectLast(strings.NewReader("a\nb\n"), window, 5)
	require.NoError(t, err)
	require.Equal(t, 2, seen)
	require.True(t, window.IsEmpty())
}
