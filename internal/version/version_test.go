package version_test

import (
	"strings"
	"testing"

	"github.com/latoulicious/ailie/internal/version"
	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	original := version.GitCommit
	version.GitCommit = "0123456789abcdef"
	t.Cleanup(func() { version.GitCommit = original })

	info := version.Get()
	assert.Equal(t, version.Version, info.Version)
	assert.Equal(t, "0123456789abcdef", info.GitCommit)
	assert.Equal(t, "0123456", info.ShortCommit)
	assert.True(t, strings.HasPrefix(info.GoVersion, "go"))
	assert.Contains(t, info.String(), "Ailie v"+version.Version)
	assert.Contains(t, info.String(), "commit: 0123456")
}
