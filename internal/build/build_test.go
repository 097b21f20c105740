package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
	assert.Contains(t, info.Full(), info.Commit)
}

func TestSemver(t *testing.T) {
	assert.Nil(t, Info{Version: "dev"}.Semver())

	v := Info{Version: "1.2.3"}.Semver()
	require.NotNil(t, v)
	assert.Equal(t, uint64(1), v.Major())
}
