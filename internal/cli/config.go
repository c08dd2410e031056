package cli

import (
	"fmt"

	"github.com/agentx-labs/agentkit/internal/config"
	"github.com/agentx-labs/agentkit/internal/pkgmanager"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write agentkit configuration stored at ~/.agentkit/config.yaml.

Keys:
  package_manager  npm, yarn, pnpm, or bun; overrides detection
  skills_dir       base directory for "skill create" (default: skills)
  default_range    git range for "skill create" (default: HEAD~10..HEAD)
  log_level        debug, info, warn, or error
  log_format       text or json`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if key == config.KeyPackageManager {
			if _, ok := pkgmanager.Parse(value); !ok {
				return fmt.Errorf("unknown package manager %q (want npm, yarn, pnpm, or bun)", value)
			}
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
