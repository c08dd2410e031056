package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/agentx-labs/agentkit/internal/modelsel"
	"github.com/spf13/cobra"
)

var (
	modelJSON        bool
	budgetTier       string
	budgetText       string
	budgetTokens     int
	budgetRemaining  int
	tokensExact      bool
	tokensEncodingID string
)

func init() {
	modelConfigCmd.Flags().BoolVar(&modelJSON, "json", false, "Print the configuration as JSON")

	modelBudgetCmd.Flags().StringVar(&budgetTier, "tier", string(modelsel.DefaultTier), "Model tier: opus, sonnet, or haiku")
	modelBudgetCmd.Flags().StringVar(&budgetText, "text", "", "Estimate tokens from this text")
	modelBudgetCmd.Flags().IntVar(&budgetTokens, "tokens", 0, "Token count of the operation")
	modelBudgetCmd.Flags().IntVar(&budgetRemaining, "budget", 0, "Remaining budget in sonnet-equivalent tokens")
	modelBudgetCmd.MarkFlagsMutuallyExclusive("text", "tokens")

	modelTokensCmd.Flags().BoolVar(&tokensExact, "exact", false, "Also count tokens with a BPE tokenizer")
	modelTokensCmd.Flags().StringVar(&tokensEncodingID, "encoding-model", modelsel.DefaultEncodingModel, "Model whose encoding --exact uses")

	modelCmd.AddCommand(modelSelectCmd)
	modelCmd.AddCommand(modelConfigCmd)
	modelCmd.AddCommand(modelCategoriesCmd)
	modelCmd.AddCommand(modelBudgetCmd)
	modelCmd.AddCommand(modelTokensCmd)
	rootCmd.AddCommand(modelCmd)
}

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Route task categories to model tiers and check budgets",
}

var modelSelectCmd = &cobra.Command{
	Use:   "select <category>",
	Short: "Show the tier and model for a task category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := modelsel.Route(args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", bold(cfg.Tier), cfg.ModelID)
		return nil
	},
}

var modelConfigCmd = &cobra.Command{
	Use:   "config <tier>",
	Short: "Show the configuration of a model tier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := modelsel.Config(modelsel.Tier(args[0]))
		if !ok {
			return fmt.Errorf("unknown tier %q (want %s)", args[0], joinTiers())
		}

		out := cmd.OutOrStdout()
		if modelJSON {
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling model config: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "Tier:          %s\n", cfg.Tier)
		fmt.Fprintf(out, "Model:         %s\n", cfg.ModelID)
		fmt.Fprintf(out, "Max output:    %d tokens\n", cfg.MaxOutput)
		fmt.Fprintf(out, "Cost tier:     %s\n", cfg.CostTier)
		fmt.Fprintf(out, "Relative cost: %gx\n", cfg.RelativeCost)
		fmt.Fprintf(out, "Pricing:       $%g in / $%g out per MTok\n", cfg.InputPerMTok, cfg.OutputPerMTok)
		return nil
	},
}

var modelCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List task categories and their tiers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, c := range modelsel.Categories() {
			fmt.Fprintf(out, "%-16s %s\n", c, modelsel.SelectModel(c))
		}
		fmt.Fprintf(out, "%-16s %s\n", "(other)", modelsel.DefaultTier)
		return nil
	},
}

var modelBudgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Check whether an operation fits the remaining budget",
	Long: `Weight an operation's token count by the tier's relative cost and compare it
with the remaining budget. Exits non-zero when the operation does not fit.

Example:
  agentkit model budget --tier opus --tokens 1200 --budget 5000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tier := modelsel.Tier(budgetTier)
		if _, ok := modelsel.Config(tier); !ok {
			return fmt.Errorf("unknown tier %q (want %s)", budgetTier, joinTiers())
		}

		tokens := budgetTokens
		if cmd.Flags().Changed("text") {
			tokens = modelsel.EstimateTokens(budgetText)
		}

		cost := modelsel.WeightedCost(tier, tokens)
		if !modelsel.IsWithinBudget(tier, tokens, budgetRemaining) {
			printFail(cmd.OutOrStdout(), "%d %s tokens cost %d, budget is %d", tokens, tier, cost, budgetRemaining)
			return fmt.Errorf("over budget")
		}
		printOK(cmd.OutOrStdout(), "%d %s tokens cost %d of %d", tokens, tier, cost, budgetRemaining)
		return nil
	},
}

var modelTokensCmd = &cobra.Command{
	Use:   "tokens [text]",
	Short: "Estimate the token count of text (reads stdin without an argument)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) == 1 {
			text = args[0]
		} else {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			text = string(data)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Estimated: %d\n", modelsel.EstimateTokens(text))
		if !tokensExact {
			return nil
		}

		n, err := modelsel.CountTokens(text, tokensEncodingID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Exact (%s): %d\n", tokensEncodingID, n)
		return nil
	},
}

func joinTiers() string {
	tiers := modelsel.Tiers()
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
