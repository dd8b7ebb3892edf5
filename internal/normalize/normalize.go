// Package normalize canonicalizes raw transaction descriptors into stable
// merchant keys.
package normalize

import (
	"strings"
	"unicode"

	"github.com/cinnamonledger/cinnamon/internal/model"
)

// maxKeyLength bounds the length of a merchant key. Truncation happens at a
// token boundary so keys stay readable.
const maxKeyLength = 48

// noiseTokens are transaction-type and point-of-sale codes that carry no
// merchant identity. They are dropped wherever they appear.
var noiseTokens = map[string]struct{}{
	"POS":        {},
	"DEBIT":      {},
	"CREDIT":     {},
	"CHECKCARD":  {},
	"CHKCARD":    {},
	"PURCHASE":   {},
	"PURCH":      {},
	"AUTHORIZED": {},
	"AUTH":       {},
	"ACH":        {},
	"WEB":        {},
	"ONLINE":     {},
	"PMT":        {},
	"PMNT":       {},
	"RECURRING":  {},
	"RECUR":      {},
	"WITHDRAWAL": {},
	"WITHDRAW":   {},
	"TRANSACTION": {},
	"TXN":        {},
	"VISA":       {},
	"MASTERCARD": {},
	"TERMINAL":   {},
}

// locationTokens introduce a store-number suffix ("STORE 00234", "UNIT 12").
var locationTokens = map[string]struct{}{
	"STORE":    {},
	"STR":      {},
	"UNIT":     {},
	"BRANCH":   {},
	"LOCATION": {},
	"LOC":      {},
	"NO":       {},
	"NBR":      {},
}

// stateCodes are US state and territory abbreviations stripped from trailing
// city/state suffixes.
var stateCodes = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {},
	"IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {},
	"MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {},
	"NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {},
	"WY": {}, "DC": {}, "PR": {},
}

// paymentPrefixes are processor tags prepended to the merchant name
// ("TST* JOES PIZZA", "SQ *COFFEE CART").
var paymentPrefixes = []string{"TST*", "TST *", "SQ*", "SQ *", "PY*", "PY *", "PP*", "PP *", "PAYPAL *"}

// Normalize canonicalizes a raw descriptor into a merchant key. It is a total
// function: malformed, empty, or purely numeric input yields the sentinel key
// rather than an error. Normalize is idempotent over its own output.
func Normalize(raw string) model.MerchantKey {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return model.UnknownMerchant
	}

	// The stripping passes can expose new suffixes (a trailing state code
	// behind a reference number, say), so run to a fixpoint. Every pass that
	// changes the string shrinks it, so this terminates.
	for {
		next := normalizeOnce(s)
		if next == s {
			break
		}
		s = next
	}

	if s == "" || isNumeric(s) {
		return model.UnknownMerchant
	}
	return model.MerchantKey(s)
}

func normalizeOnce(s string) string {
	for _, prefix := range paymentPrefixes {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimSpace(s[len(prefix):])
			break
		}
	}

	tokens := strings.Fields(s)
	kept := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := strings.Trim(tokens[i], "*#-")
		if tok == "" {
			continue
		}
		if _, noise := noiseTokens[tok]; noise {
			continue
		}
		// Store-number pairs: "STORE 00234".
		if _, loc := locationTokens[tok]; loc && i+1 < len(tokens) && isNumeric(strings.Trim(tokens[i+1], "*#-")) {
			i++
			continue
		}
		// Bare store/reference numbers.
		if isNumeric(tok) {
			continue
		}
		kept = append(kept, tok)
	}

	// Trailing reference tokens are digit-heavy ("REF7214X99", "XXXX1234").
	for len(kept) > 1 {
		if !isReferenceToken(kept[len(kept)-1]) {
			break
		}
		kept = kept[:len(kept)-1]
	}

	// Trailing "CITY ST" suffix: drop the state code and the city token in
	// front of it, as long as a merchant name remains.
	if len(kept) >= 2 {
		if _, ok := stateCodes[kept[len(kept)-1]]; ok {
			kept = kept[:len(kept)-1]
			if len(kept) >= 2 {
				kept = kept[:len(kept)-1]
			}
		}
	}

	// Bounded length, cut at token boundaries.
	out := ""
	for _, tok := range kept {
		candidate := tok
		if out != "" {
			candidate = out + " " + tok
		}
		if len(candidate) > maxKeyLength {
			break
		}
		out = candidate
	}
	return out
}

// isNumeric reports whether every rune is a digit.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isReferenceToken reports whether a token looks like a transaction reference
// number: at least four characters and at least half digits. The half-digit
// bar catches masked card suffixes like "XXXX1234".
func isReferenceToken(s string) bool {
	if len(s) < 4 {
		return false
	}
	digits := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits*2 >= len(s)
}
