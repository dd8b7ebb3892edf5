package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cinnamonledger/cinnamon/internal/model"
	"github.com/cinnamonledger/cinnamon/internal/recurring"
)

func recurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Detect and list recurring charge patterns",
	}

	cmd.AddCommand(recurringDetectCmd())
	cmd.AddCommand(recurringListCmd())

	return cmd
}

func recurringDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect recurring patterns in an account's history",
		Long: `Scan an account's transaction history for recurring charges and
persist the detected patterns. Re-running detection extends known patterns
with new occurrences; a changed classification supersedes the old pattern
rather than mutating it.`,
		RunE: runRecurringDetect,
	}

	cmd.Flags().StringP("account", "a", "", "Account ID to scan (required)")
	_ = cmd.MarkFlagRequired("account")
	_ = viper.BindPFlag("recurring.account", cmd.Flags().Lookup("account"))

	return cmd
}

func runRecurringDetect(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	accountID := viper.GetString("recurring.account")

	store, _, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	history, err := store.GetAccountHistory(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to load account history: %w", err)
	}
	if len(history) == 0 {
		slog.Info("No transactions for account", "account", accountID)
		return nil
	}

	detector := recurring.NewDetector(recurring.DefaultConfig(), slog.Default())
	fresh := detector.Detect(accountID, history)

	existing, err := store.GetPatternsByAccount(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to load existing patterns: %w", err)
	}

	var extended, superseded, created int
	for _, update := range recurring.Merge(existing, fresh) {
		pattern := update.Pattern
		switch {
		case update.SupersedesID != "":
			if err := store.SupersedePattern(ctx, update.SupersedesID, &pattern); err != nil {
				return fmt.Errorf("failed to supersede pattern: %w", err)
			}
			superseded++
		default:
			known := false
			for _, prior := range existing {
				if prior.ID == pattern.ID {
					known = true
					break
				}
			}
			if err := store.SavePattern(ctx, &pattern); err != nil {
				return fmt.Errorf("failed to save pattern: %w", err)
			}
			if known {
				extended++
			} else {
				created++
			}
		}
	}

	slog.Info("Recurring detection complete",
		"account", accountID,
		"detected", len(fresh),
		"created", created,
		"extended", extended,
		"superseded", superseded)

	return nil
}

func recurringListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active recurring patterns for an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			accountID := viper.GetString("recurring.list_account")

			store, _, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			patterns, err := store.GetPatternsByAccount(ctx, accountID)
			if err != nil {
				return fmt.Errorf("failed to load patterns: %w", err)
			}

			if len(patterns) == 0 {
				fmt.Println("No recurring patterns found.")
				return nil
			}

			for _, p := range patterns {
				amount := fmt.Sprintf("$%.2f", p.Amount)
				if p.AmountKind != model.AmountFixed {
					amount = fmt.Sprintf("$%.2f-$%.2f", p.AmountMin, p.AmountMax)
				}
				fmt.Printf("%-32s %-8s %s  x%d  conf %.2f  next %s\n",
					p.MerchantKey, p.IntervalKind, amount,
					p.Occurrences(), p.Confidence,
					p.NextPredicted.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().StringP("account", "a", "", "Account ID (required)")
	_ = cmd.MarkFlagRequired("account")
	_ = viper.BindPFlag("recurring.list_account", cmd.Flags().Lookup("account"))

	return cmd
}
