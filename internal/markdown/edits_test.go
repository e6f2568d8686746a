package markdown

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApply_ReplacesRangeOnly(t *testing.T) {
	src := []byte("# Title\n\n### Shared Requirements\nold\n## Next\n")
	start := bytes.Index(src, []byte("### Shared"))
	end := bytes.Index(src, []byte("## Next"))

	out, err := Apply(src, Edit{Start: start, End: end, Replacement: []byte("### Shared Requirements\nnew\n")})
	require.NoError(t, err)
	require.Equal(t, "# Title\n\n### Shared Requirements\nnew\n## Next\n", string(out))
	require.Equal(t, "# Title\n\n### Shared Requirements\nold\n## Next\n", string(src), "source must not be modified")
}

func TestApply_CRLFPreservedOutsideRange(t *testing.T) {
	src := []byte("A\r\nB\r\nC\r\n")
	out, err := Apply(src, Edit{Start: 3, End: 4, Replacement: []byte("b")})
	require.NoError(t, err)
	require.Equal(t, "A\r\nb\r\nC\r\n", string(out))
}

func TestApply_AppendAtEnd(t *testing.T) {
	src := []byte("body")
	out, err := Apply(src, Edit{Start: 4, End: 4, Replacement: []byte("\n")})
	require.NoError(t, err)
	require.Equal(t, "body\n", string(out))
}

func TestApply_InvalidRanges(t *testing.T) {
	src := []byte("abc")
	for _, e := range []Edit{
		{Start: -1, End: 1},
		{Start: 2, End: 1},
		{Start: 0, End: 4},
	} {
		_, err := Apply(src, e)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInvalidEdit))
	}
}
