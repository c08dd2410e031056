package pkgmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	spec, ok := ParseSpec("pnpm@9.0.6+sha512.deadbeef")
	require.True(t, ok)
	assert.Equal(t, PNPM, spec.Manager)
	require.NotNil(t, spec.Version)
	assert.Equal(t, "9.0.6", spec.Version.String())
	assert.Equal(t, "sha512.deadbeef", spec.Hash)

	spec, ok = ParseSpec("  yarn  ")
	require.True(t, ok)
	assert.Equal(t, Yarn, spec.Manager)
	assert.Nil(t, spec.Version)

	_, ok = ParseSpec("@9.0.0")
	assert.False(t, ok)

	_, ok = ParseSpec("volta@1.0.0")
	assert.False(t, ok)
}
