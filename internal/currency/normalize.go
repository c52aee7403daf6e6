// Package currency turns free-text money tokens into decimal values.
//
// Source data mixes Indonesian formatting (1.500.000,00) with Western
// formatting (1,500,000.00), currency prefixes, and accounting-style
// parenthesized negatives. Normalize resolves all of these with a
// best-effort heuristic and never fails: dirty input degrades to zero.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyPrefixes are stripped case-insensitively from the start of a
// token. Longest match first so "Rp." wins over "Rp".
var currencyPrefixes = []string{"Rp.", "IDR", "USD", "Rp"}

// Normalize parses a free-text numeric/currency token into a signed
// decimal. Unparsable input yields zero, never an error.
func Normalize(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}

	negative := false

	// Accounting notation: (50.000) means -50000.
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	for _, prefix := range currencyPrefixes {
		if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
			s = s[len(prefix):]
			break
		}
	}
	s = strings.Join(strings.Fields(s), "")

	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	s = resolveSeparators(s)

	// Drop anything that is not a digit or the decimal point.
	s = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' {
			return r
		}
		return -1
	}, s)
	// "Rp 1.500.000,-" style suffixes leave a dangling decimal point.
	s = strings.TrimSuffix(s, ".")

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		return value.Neg()
	}
	return value
}

// resolveSeparators disambiguates comma and dot as thousand vs decimal
// separators. With no locale context this is a heuristic; the bare
// "10,000" case is inherently ambiguous and resolved by the 3-digit
// trailing group rule.
func resolveSeparators(s string) string {
	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			// Indonesian: dots group thousands, comma is the decimal mark.
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// Western: commas group thousands.
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		last := strings.LastIndex(s, ",")
		if len(s)-last-1 == 3 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ",", ".")
		}
	case hasDot:
		// No decimal signal at all: favor the Indonesian convention
		// and read dots as thousand separators.
		s = strings.ReplaceAll(s, ".", "")
	}
	return s
}
