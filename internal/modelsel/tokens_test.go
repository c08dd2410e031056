package modelsel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountTokens(t *testing.T) {
	if testing.Short() {
		t.Skip("encoding download skipped in short mode")
	}

	n, err := CountTokens("hello world", "")
	if err != nil {
		t.Skipf("encoding unavailable: %v", err)
	}
	assert.Equal(t, 2, n)
}
