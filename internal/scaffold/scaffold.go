package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/agentkit/internal/gitlog"
	"github.com/agentx-labs/agentkit/internal/logger"
	"github.com/agentx-labs/agentkit/internal/manifest"
	"github.com/aymanbagabas/go-udiff"
)

// Result holds the outcome of scaffolding a skill.
type Result struct {
	OutputDir string
	Files     []string // Written file names relative to OutputDir, SKILL.md first
	Commits   int      // Commits read from the range
	Warnings  []string // Manifest validation problems; the files are still written
	Diff      string   // Unified diff of SKILL.md against the previous run, if it changed
}

// Scaffolder creates skill directories from git history.
type Scaffolder struct {
	Source gitlog.Source
}

// New returns a Scaffolder reading history from src. A nil src reads from
// git in the working directory.
func New(src gitlog.Source) *Scaffolder {
	if src == nil {
		src = &gitlog.CLI{}
	}
	return &Scaffolder{Source: src}
}

// Create writes <baseDir>/<name>/SKILL.md and one supporting file per commit
// prefix found in revRange. The name is validated before anything touches the
// filesystem. Existing files are overwritten, so running Create twice with the
// same arguments leaves the same directory behind.
func (s *Scaffolder) Create(ctx context.Context, name, revRange, baseDir string) (*Result, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	commits := gitlog.ParseCommitRange(ctx, s.Source, revRange)
	groups := GroupByPrefix(commits)
	content := GenerateManifest(name, groups)

	outputDir := filepath.Join(baseDir, name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{
		OutputDir: outputDir,
		Commits:   len(commits),
	}

	manifestPath := filepath.Join(outputDir, manifest.FileName)
	previous, readErr := os.ReadFile(manifestPath)
	if err := os.WriteFile(manifestPath, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", manifestPath, err)
	}
	result.Files = append(result.Files, manifest.FileName)
	if readErr == nil && string(previous) != content {
		result.Diff = udiff.Unified("a/"+manifest.FileName, "b/"+manifest.FileName, string(previous), content)
	}

	files := groups.FileNames()
	for _, prefix := range groups.Prefixes() {
		fileName := files[prefix]
		outPath := filepath.Join(outputDir, fileName)
		if err := os.WriteFile(outPath, []byte(RenderCommitFile(prefix, groups[prefix])), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, fileName)
	}

	valResult, valErr := manifest.Validate([]byte(content))
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			result.Warnings = append(result.Warnings, issue.String())
		}
	}

	logger.G(ctx).WithField("skill", name).
		WithField("commits", result.Commits).
		WithField("files", len(result.Files)).
		Debug("skill scaffolded")

	return result, nil
}

// CreateSkill is Create reduced to success or failure. Failures are logged.
func (s *Scaffolder) CreateSkill(ctx context.Context, name, revRange, baseDir string) bool {
	if _, err := s.Create(ctx, name, revRange, baseDir); err != nil {
		logger.G(ctx).WithError(err).WithField("skill", name).Warn("failed to create skill")
		return false
	}
	return true
}

// CreateSkill scaffolds a skill from the git repository in the working
// directory.
func CreateSkill(ctx context.Context, name, revRange, baseDir string) bool {
	return New(nil).CreateSkill(ctx, name, revRange, baseDir)
}
