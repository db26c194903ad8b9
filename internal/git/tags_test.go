package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abrady0/gitty/internal/git"
)

func TestParseTags(t *testing.T) {
	t.Run("returns tags in input order", func(t *testing.T) {
		tags, err := git.ParseTags("v0.1.0\nv0.2.0\nv1.0.0")
		require.NoError(t, err)
		require.Equal(t, []string{"v0.1.0", "v0.2.0", "v1.0.0"}, tags)
	})

	t.Run("drops empty entries from LF and CRLF output", func(t *testing.T) {
		tags, err := git.ParseTags("v1\r\n\r\nv2\nv3\n\n")
		require.NoError(t, err)
		require.Equal(t, []string{"v1", "v2", "v3"}, tags)
		require.NotContains(t, tags, "")
	})

	t.Run("empty output yields an empty list", func(t *testing.T) {
		tags, err := git.ParseTags("")
		require.NoError(t, err)
		require.Empty(t, tags)
	})

	t.Run("consecutive empty lines do not skip following tags", func(t *testing.T) {
		tags, err := git.ParseTags("\n\n\nv1\n\n\nv2\n\n")
		require.NoError(t, err)
		require.Equal(t, []string{"v1", "v2"}, tags)
	})
}
