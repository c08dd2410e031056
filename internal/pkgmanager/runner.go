package pkgmanager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/agentx-labs/agentkit/internal/logger"
)

// Runner executes package manager commands built by this package.
type Runner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Output captures the result of a command execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Run executes command (e.g. "pnpm run build") in dir, streaming output to the
// configured writers while also capturing it. A non-zero exit is reported in
// Output.ExitCode rather than as an error.
func (r *Runner) Run(ctx context.Context, dir, command string) (*Output, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	bin, err := exec.LookPath(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%s is not installed: %w", fields[0], err)
	}

	cmd := exec.CommandContext(ctx, bin, fields[1:]...)
	cmd.Dir = dir

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	logger.G(ctx).WithField("dir", dir).WithField("command", command).Debug("running package manager command")
	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("running %q: %w", command, err)
	}
	return output, nil
}
