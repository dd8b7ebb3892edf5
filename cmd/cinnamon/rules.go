package main

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cinnamonledger/cinnamon/internal/rules"
	"github.com/cinnamonledger/cinnamon/internal/score"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage the category rule table",
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesSeedCmd())

	return cmd
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored rules in evaluation order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, _, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ruleSet, err := store.GetRules(ctx)
			if err != nil {
				return fmt.Errorf("failed to load rules: %w", err)
			}
			if len(ruleSet) == 0 {
				fmt.Println("No rules stored. Run 'cinnamon rules seed' to load the defaults.")
				return nil
			}

			sort.Slice(ruleSet, func(i, j int) bool {
				return score.RuleLess(ruleSet[i], ruleSet[j])
			})

			for _, rule := range ruleSet {
				fmt.Printf("%4d  %-10s %-40q -> %s (conf %.2f)\n",
					rule.Priority, rule.Kind, rule.Pattern, rule.Category, rule.Confidence)
			}
			return nil
		},
	}
}

func rulesSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the stored rule table with the built-in defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, _, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			defaults := rules.DefaultRules()
			if err := store.SaveRules(ctx, defaults); err != nil {
				return fmt.Errorf("failed to seed rules: %w", err)
			}

			slog.Info("Seeded default rule set", "rules", len(defaults))
			return nil
		},
	}
}
