package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/agentx-labs/agentkit/internal/branding"
	"github.com/agentx-labs/agentkit/internal/config"
	"github.com/agentx-labs/agentkit/internal/logger"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds skills from git history, resolves the project's
JavaScript package manager, and routes task categories to model tiers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		level := logLevel
		if level == "" {
			level = config.Get(config.KeyLogLevel)
		}
		if err := logger.SetLogLevel(level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}

		format := logFormat
		if format == "" {
			format = config.Get(config.KeyLogFormat)
		}
		logger.SetLogFormat(format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json (default from config)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}
