package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cinnamonledger/cinnamon/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import transactions from a CSV file",
		Long: `Import transactions from a CSV export. The file must have a header
row with at least the columns: date, descriptor, amount. Optional columns:
id, account_id, user_id. Rows that duplicate an already imported transaction
are skipped.

Example:
  cinnamon import statements/2025-06.csv --account acc-123`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().StringP("account", "a", "", "Account ID to assign when the file has no account_id column")
	cmd.Flags().StringP("user", "u", "", "User ID to assign when the file has no user_id column")
	_ = viper.BindPFlag("import.account", cmd.Flags().Lookup("account"))
	_ = viper.BindPFlag("import.user", cmd.Flags().Lookup("user"))

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	transactions, err := parseCSV(file,
		viper.GetString("import.account"),
		viper.GetString("import.user"))
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		slog.Info("No transactions found in file", "file", path)
		return nil
	}

	store, _, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveTransactions(ctx, transactions); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	slog.Info("Import complete", "file", path, "transactions", len(transactions))
	return nil
}

// parseCSV reads transactions from a CSV stream. Column order is taken from
// the header row, so exports from different institutions work as long as the
// column names match.
func parseCSV(r io.Reader, defaultAccount, defaultUser string) ([]model.Transaction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "descriptor", "amount"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var transactions []model.Transaction
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		date, err := parseDate(field(record, "date"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		amount, err := strconv.ParseFloat(field(record, "amount"), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount %q", line, field(record, "amount"))
		}

		txn := model.Transaction{
			ID:         field(record, "id"),
			Date:       date,
			Descriptor: field(record, "descriptor"),
			Amount:     amount,
			AccountID:  field(record, "account_id"),
			UserID:     field(record, "user_id"),
		}
		if txn.AccountID == "" {
			txn.AccountID = defaultAccount
		}
		if txn.UserID == "" {
			txn.UserID = defaultUser
		}
		txn.Hash = txn.GenerateHash()
		if txn.ID == "" {
			// Hash is stable across imports, so it makes a usable ID for
			// exports that carry none of their own.
			txn.ID = txn.Hash[:16]
		}

		transactions = append(transactions, txn)
	}

	return transactions, nil
}

// parseDate accepts the date formats bank exports commonly use.
func parseDate(value string) (time.Time, error) {
	formats := []string{"2006-01-02", "01/02/2006", "1/2/2006", time.RFC3339}
	for _, format := range formats {
		if parsed, err := time.Parse(format, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
