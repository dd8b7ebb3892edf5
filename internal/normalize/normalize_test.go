package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cinnamonledger/cinnamon/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.MerchantKey
	}{
		{
			name: "store number and city state suffix",
			raw:  "STARBUCKS STORE #1234 SEATTLE WA",
			want: "STARBUCKS",
		},
		{
			name: "phone number and state suffix",
			raw:  "NETFLIX.COM 866-579-7172 CA",
			want: "NETFLIX.COM",
		},
		{
			name: "toast payment prefix",
			raw:  "TST* JOES PIZZA 4521",
			want: "JOES PIZZA",
		},
		{
			name: "square payment prefix",
			raw:  "SQ *COFFEE CART",
			want: "COFFEE CART",
		},
		{
			name: "paypal prefix",
			raw:  "PAYPAL *SPOTIFY USA",
			want: "SPOTIFY USA",
		},
		{
			name: "pos noise tokens",
			raw:  "POS DEBIT PURCHASE TRADER JOES",
			want: "TRADER JOES",
		},
		{
			name: "lowercase input",
			raw:  "netflix.com",
			want: "NETFLIX.COM",
		},
		{
			name: "trailing reference number",
			raw:  "AMAZON MKTPL REF7214X99",
			want: "AMAZON MKTPL",
		},
		{
			name: "masked card suffix",
			raw:  "SHELL OIL XXXX1234",
			want: "SHELL OIL",
		},
		{
			name: "surrounding whitespace",
			raw:  "   COSTCO WHOLESALE   ",
			want: "COSTCO WHOLESALE",
		},
		{
			name: "empty input",
			raw:  "",
			want: model.UnknownMerchant,
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: model.UnknownMerchant,
		},
		{
			name: "purely numeric",
			raw:  "1234 5678",
			want: model.UnknownMerchant,
		},
		{
			name: "noise only",
			raw:  "POS DEBIT 4521",
			want: model.UnknownMerchant,
		},
		{
			name: "state code alone is not a suffix",
			raw:  "WA",
			want: "WA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"STARBUCKS STORE #1234 SEATTLE WA",
		"NETFLIX.COM 866-579-7172 CA",
		"TST* JOES PIZZA 4521",
		"POS DEBIT PURCHASE TRADER JOES",
		"AMAZON MKTPL REF7214X99",
		"WHOLE FOODS MARKET 10293 AUSTIN TX",
		"SQ *COFFEE CART",
		"",
		"1234",
		"SOME VERY LONG MERCHANT NAME THAT KEEPS GOING AND GOING AND GOING",
	}

	for _, raw := range inputs {
		once := Normalize(raw)
		twice := Normalize(string(once))
		assert.Equal(t, once, twice, "Normalize must be idempotent for %q", raw)
	}
}

func TestNormalizeStableAcrossOccurrences(t *testing.T) {
	// The same subscription renders slightly differently per charge but must
	// produce one key.
	variants := []string{
		"NETFLIX.COM 866-579-7172 CA",
		"NETFLIX.COM  866-579-7172  CA",
		"netflix.com 866-579-7172 ca",
	}

	want := Normalize(variants[0])
	for _, v := range variants[1:] {
		assert.Equal(t, want, Normalize(v))
	}
}

func TestNormalizeBoundsKeyLength(t *testing.T) {
	raw := strings.Repeat("VERYLONGTOKEN ", 12)
	key := Normalize(raw)
	assert.LessOrEqual(t, len(key), maxKeyLength)
	assert.NotEqual(t, model.UnknownMerchant, key)
	// Truncation happens between tokens, never inside one.
	assert.False(t, strings.HasSuffix(string(key), " "))
	for _, tok := range strings.Fields(string(key)) {
		assert.Equal(t, "VERYLONGTOKEN", tok)
	}
}
