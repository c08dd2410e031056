package gitlog

import (
	"context"
	"os/exec"
	"strings"

	"github.com/agentx-labs/agentkit/internal/logger"
	"github.com/pkg/errors"
)

// logFormat produces "<short hash> <subject>" per commit.
const logFormat = "--format=%h %s"

// Source returns raw log lines for a revision range.
type Source interface {
	Log(ctx context.Context, revRange string) ([]string, error)
}

// CLI reads history by invoking the local git binary.
type CLI struct {
	// Dir is the repository to run git in; empty means the working directory.
	Dir string
}

// Log runs git log for revRange and returns its non-empty output lines.
func (g *CLI) Log(ctx context.Context, revRange string) ([]string, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, errors.New("git is required but not found in PATH")
	}
	if strings.HasPrefix(revRange, "-") {
		return nil, errors.Errorf("invalid revision range %q", revRange)
	}

	args := []string{"log", logFormat}
	if revRange != "" {
		args = append(args, revRange)
	}
	args = append(args, "--")

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.Dir
	output, err := cmd.Output()
	if err != nil {
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		return nil, errors.Wrapf(err, "git log %s: %s", revRange, stderr)
	}

	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// ParseCommitRange reads and parses the commits in revRange. Any failure
// (bad range, no repository, missing git) yields an empty list.
func ParseCommitRange(ctx context.Context, src Source, revRange string) []Commit {
	if src == nil {
		return []Commit{}
	}
	lines, err := src.Log(ctx, revRange)
	if err != nil {
		logger.G(ctx).WithError(err).WithField("range", revRange).
			Debug("commit range unavailable, continuing with no commits")
		return []Commit{}
	}
	return ParseLines(lines)
}
