package cli

import (
	"fmt"
	"io"

	"github.com/agentx-labs/agentkit/internal/config"
	"github.com/agentx-labs/agentkit/internal/gitlog"
	"github.com/agentx-labs/agentkit/internal/manifest"
	"github.com/agentx-labs/agentkit/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	skillFromRange string
	skillOutputDir string
	skillRepoDir   string
	skillShowDiff  bool
)

func init() {
	skillCreateCmd.Flags().StringVar(&skillFromRange, "from-range", "", "Git revision range to read (default from config, HEAD~10..HEAD)")
	skillCreateCmd.Flags().StringVar(&skillOutputDir, "output", "", "Base directory for skills (default from config, ./skills)")
	skillCreateCmd.Flags().StringVar(&skillRepoDir, "repo", "", "Git repository to read history from (default: working directory)")
	skillCreateCmd.Flags().BoolVar(&skillShowDiff, "diff", false, "Show changes to an existing SKILL.md")

	skillCmd.AddCommand(skillCreateCmd)
	skillCmd.AddCommand(skillValidateCmd)
	rootCmd.AddCommand(skillCmd)
}

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Scaffold and validate skills",
}

var skillCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Scaffold a skill from git history",
	Long: `Read a range of git history, group the commits by conventional-commit prefix,
and write <output>/<name>/SKILL.md plus one supporting file per prefix.
Running the command again overwrites the previous output.

Examples:
  agentkit skill create release-notes
  agentkit skill create api-client --from-range v1.2.0..HEAD --output .claude/skills`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		revRange := skillFromRange
		if revRange == "" {
			revRange = config.Get(config.KeyDefaultRange)
		}
		baseDir := skillOutputDir
		if baseDir == "" {
			baseDir = config.Get(config.KeySkillsDir)
		}

		s := scaffold.New(&gitlog.CLI{Dir: skillRepoDir})
		result, err := s.Create(cmd.Context(), args[0], revRange, baseDir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printSkillResult(out, result)
		if skillShowDiff && result.Diff != "" {
			fmt.Fprintln(out)
			fmt.Fprint(out, result.Diff)
		}
		return nil
	},
}

var skillValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate every SKILL.md below a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := config.Get(config.KeySkillsDir)
		if len(args) == 1 {
			root = args[0]
		}

		paths, err := manifest.FindManifests(root)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(paths) == 0 {
			printWarn(out, "No %s files found under %s", manifest.FileName, root)
			return nil
		}

		invalid := 0
		for _, p := range paths {
			result, err := manifest.ValidateFile(p)
			if err != nil {
				return fmt.Errorf("validating %s: %w", p, err)
			}
			if result.Valid {
				printOK(out, "%s", p)
				continue
			}
			invalid++
			printFail(out, "%s", p)
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "    - %s\n", issue)
			}
		}

		if invalid > 0 {
			return fmt.Errorf("%d of %d manifests invalid", invalid, len(paths))
		}
		return nil
	},
}

func printSkillResult(w io.Writer, result *scaffold.Result) {
	printOK(w, "Created skill at %s/ from %d commits", result.OutputDir, result.Commits)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}
