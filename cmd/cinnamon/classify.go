package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cinnamonledger/cinnamon/internal/engine"
	"github.com/cinnamonledger/cinnamon/internal/service"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Categorize transactions",
		Long: `Categorize transactions through the strategy chain: high-confidence
rules first, then cached fallback results, then the budget-gated external
classifier. Transactions nothing can place are assigned Uncategorized.

Examples:
  cinnamon classify                      # Classify all stored transactions
  cinnamon classify --account acc-123    # Limit to one account
  cinnamon classify --from 2025-01-01    # Limit by date
  cinnamon classify --dry-run            # Preview without saving`,
		RunE: runClassify,
	}

	cmd.Flags().StringP("account", "a", "", "Account ID to classify (empty = all accounts)")
	cmd.Flags().String("from", "", "Start date (format: 2006-01-02)")
	cmd.Flags().String("to", "", "End date (format: 2006-01-02)")
	cmd.Flags().Bool("dry-run", false, "Preview without saving changes")

	_ = viper.BindPFlag("classify.account", cmd.Flags().Lookup("account"))
	_ = viper.BindPFlag("classify.from", cmd.Flags().Lookup("from"))
	_ = viper.BindPFlag("classify.to", cmd.Flags().Lookup("to"))
	_ = viper.BindPFlag("classify.dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	dryRun := viper.GetBool("classify.dry_run")

	filter := service.TransactionFilter{AccountID: viper.GetString("classify.account")}
	if from := viper.GetString("classify.from"); from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return fmt.Errorf("invalid --from date (use YYYY-MM-DD): %w", err)
		}
		filter.StartDate = &parsed
	}
	if to := viper.GetString("classify.to"); to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return fmt.Errorf("invalid --to date (use YYYY-MM-DD): %w", err)
		}
		filter.EndDate = &parsed
	}

	store, settings, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	eng, cleanup, err := buildEngine(ctx, store, settings)
	if err != nil {
		return err
	}
	defer cleanup()

	transactions, err := store.GetTransactions(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	if len(transactions) == 0 {
		slog.Info("No transactions to classify")
		return nil
	}

	slog.Info("Starting classification", "transactions", len(transactions))
	start := time.Now()

	assignments := eng.ClassifyBatch(ctx, transactions)

	if !dryRun {
		for i := range assignments {
			if err := store.SaveAssignment(ctx, &assignments[i]); err != nil {
				return fmt.Errorf("failed to save assignment: %w", err)
			}
		}
	}

	stats := engine.Stats(assignments, time.Since(start))
	slog.Info("Classification complete",
		"total", stats.Total,
		"by_rule", stats.ByRule,
		"by_cache", stats.ByCache,
		"by_fallback", stats.ByFallback,
		"uncategorized", stats.Uncategorized,
		"duration", stats.Duration,
		"dry_run", dryRun)

	return nil
}
