package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := `date,descriptor,amount,account_id
2025-06-01,NETFLIX.COM 866-579-7172 CA,-15.99,acc-1
2025-06-03,STARBUCKS STORE 12345 SEATTLE WA,-6.45,acc-1
`
	transactions, err := parseCSV(strings.NewReader(input), "fallback-acc", "user-1")
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	first := transactions[0]
	assert.Equal(t, "NETFLIX.COM 866-579-7172 CA", first.Descriptor)
	assert.InDelta(t, -15.99, first.Amount, 0.001)
	assert.Equal(t, "acc-1", first.AccountID, "file column wins over flag default")
	assert.Equal(t, "user-1", first.UserID, "flag default fills missing column")
	assert.NotEmpty(t, first.ID, "missing ID is derived from the hash")
	assert.NotEmpty(t, first.Hash)
}

func TestParseCSVColumnOrderIndependent(t *testing.T) {
	input := `amount,date,id,descriptor
-9.99,06/15/2025,txn-abc,SPOTIFY USA
`
	transactions, err := parseCSV(strings.NewReader(input), "", "")
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "txn-abc", transactions[0].ID)
	assert.Equal(t, 2025, transactions[0].Date.Year())
	assert.Equal(t, 6, int(transactions[0].Date.Month()))
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "missing required column",
			input: "date,amount\n2025-06-01,-5.00\n",
		},
		{
			name:  "bad amount",
			input: "date,descriptor,amount\n2025-06-01,COFFEE,abc\n",
		},
		{
			name:  "bad date",
			input: "date,descriptor,amount\nJune first,COFFEE,-5.00\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCSV(strings.NewReader(tt.input), "", "")
			assert.Error(t, err)
		})
	}
}
