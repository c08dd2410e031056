package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/agentkit/internal/config"
	"github.com/agentx-labs/agentkit/internal/pkgmanager"
	"github.com/spf13/cobra"
)

var (
	pmDir    string
	pmExec   bool
	pmJSON   bool
	pmAddDev bool
)

func init() {
	pmCmd.PersistentFlags().StringVarP(&pmDir, "dir", "C", ".", "Project directory")
	pmCmd.PersistentFlags().BoolVar(&pmExec, "exec", false, "Run the command instead of printing it")
	pmDetectCmd.Flags().BoolVar(&pmJSON, "json", false, "Print the detection as JSON")
	pmAddCmd.Flags().BoolVarP(&pmAddDev, "dev", "D", false, "Add as a development dependency")

	pmCmd.AddCommand(pmDetectCmd)
	pmCmd.AddCommand(pmInstallCmd)
	pmCmd.AddCommand(pmRunCmd)
	pmCmd.AddCommand(pmAddCmd)
	pmCmd.AddCommand(pmExecCmd)
	pmCmd.AddCommand(pmSelectCmd)
	rootCmd.AddCommand(pmCmd)
}

var pmCmd = &cobra.Command{
	Use:   "pm",
	Short: "Detect the package manager and build its commands",
	Long: `Detect which JavaScript package manager a project uses (lockfile first, then
the package.json "packageManager" field, then npm) and print the matching
commands. A configured package_manager overrides detection for command output.`,
}

var pmDetectCmd = &cobra.Command{
	Use:   "detect [dir]",
	Short: "Show the detected package manager and why",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := pmDir
		if len(args) == 1 {
			dir = args[0]
		}
		d := pkgmanager.DetectDetailed(dir)

		out := cmd.OutOrStdout()
		if pmJSON {
			data, err := json.MarshalIndent(d, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling detection: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		line := fmt.Sprintf("%s (%s", bold(d.Manager), d.Signal)
		if d.File != "" {
			line += ": " + filepath.Base(d.File)
		}
		if d.Version != "" {
			line += ", version " + d.Version
		}
		fmt.Fprintln(out, line+")")
		return nil
	},
}

var pmInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Print (or run) the install command",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return emitCommand(cmd, pkgmanager.InstallCommand(resolveManager()))
	},
}

var pmRunCmd = &cobra.Command{
	Use:   "run <script> [args...]",
	Short: "Print (or run) the command for a package.json script",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		command := pkgmanager.RunCommand(resolveManager(), args[0])
		return emitCommand(cmd, withArgs(command, args[1:]))
	},
}

var pmAddCmd = &cobra.Command{
	Use:   "add [packages...]",
	Short: "Print (or run) the command to add dependencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		command := pkgmanager.AddCommand(resolveManager(), pmAddDev)
		return emitCommand(cmd, withArgs(command, args))
	},
}

var pmExecCmd = &cobra.Command{
	Use:   "exec [package] [args...]",
	Short: "Print (or run) the one-off package executor",
	RunE: func(cmd *cobra.Command, args []string) error {
		command := pkgmanager.ExecCommand(resolveManager())
		return emitCommand(cmd, withArgs(command, args))
	},
}

var pmSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Choose a package manager and save it as the preference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current := resolveManager()
		choice, err := pkgmanager.Select(cmd.InOrStdin(), cmd.OutOrStdout(), current)
		if err != nil {
			return err
		}
		if err := config.Set(config.KeyPackageManager, choice.String()); err != nil {
			return fmt.Errorf("saving package manager preference: %w", err)
		}
		printOK(cmd.OutOrStdout(), "Package manager set to %s", bold(choice))
		return nil
	},
}

// resolveManager applies the configured preference, then detection in pmDir.
func resolveManager() pkgmanager.PackageManager {
	return pkgmanager.Resolve(pmDir, config.Get(config.KeyPackageManager)).Manager
}

func withArgs(command string, args []string) string {
	if len(args) == 0 {
		return command
	}
	return command + " " + strings.Join(args, " ")
}

// emitCommand prints command, or runs it in pmDir when --exec is set.
func emitCommand(cmd *cobra.Command, command string) error {
	if !pmExec {
		fmt.Fprintln(cmd.OutOrStdout(), command)
		return nil
	}

	r := &pkgmanager.Runner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
	output, err := r.Run(cmd.Context(), pmDir, command)
	if err != nil {
		return err
	}
	if output.ExitCode != 0 {
		return fmt.Errorf("%s exited with code %d", command, output.ExitCode)
	}
	return nil
}
