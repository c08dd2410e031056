package pkgmanager

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_StreamsAndCaptures(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available, skipping")
	}

	var stdout bytes.Buffer
	r := &Runner{Stdout: &stdout, Stderr: &bytes.Buffer{}}

	out, err := r.Run(context.Background(), t.TempDir(), "echo hello")
	require.NoError(t, err)
	assert.Equal(t, 0, out.ExitCode)
	assert.Equal(t, "hello\n", out.Stdout)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestRunner_NonZeroExitIsNotAnError(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available, skipping")
	}

	r := &Runner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	out, err := r.Run(context.Background(), t.TempDir(), "false")
	require.NoError(t, err)
	assert.Equal(t, 1, out.ExitCode)
}

func TestRunner_Errors(t *testing.T) {
	r := &Runner{}

	_, err := r.Run(context.Background(), t.TempDir(), "   ")
	assert.Error(t, err)

	_, err = r.Run(context.Background(), t.TempDir(), "definitely-not-a-package-manager install")
	assert.Error(t, err)
}
