package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldTime := Version, GitCommit, BuildTime
	t.Cleanup(func() { Version, GitCommit, BuildTime = oldVersion, oldCommit, oldTime })

	Version, GitCommit = "v1.0.0", "unknown"
	require.Equal(t, "v1.0.0", String())

	GitCommit, BuildTime = "abc1234", "2026-01-02"
	require.Equal(t, "v1.0.0 (abc1234, built 2026-01-02)", String())
}
