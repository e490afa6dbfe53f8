// Package currencyutils converts locale-ambiguous amount strings to integer
// minor units (pence, cents). All monetary values in the pipeline are integer
// minor units to avoid floating-point drift; decimal arithmetic is used only
// at the parsing boundary.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolReplacer = strings.NewReplacer(
	"£", "",
	"$", "",
	"€", "",
	"CHF", "",
	"GBP", "",
	"USD", "",
	"EUR", "",
	",", "",
	"'", "",
	" ", "",
)

// ParseMinorUnits converts an amount string to non-negative integer minor
// units. Amounts without a decimal point are whole major units and are scaled
// by 100 ("5" -> 500); some statement layouts render whole-currency amounts
// that way, and treating them as already-scaled would under-report by 100x.
func ParseMinorUnits(raw string) (int64, error) {
	minor, _, err := ParseSignedMinorUnits(raw)
	return minor, err
}

// ParseSignedMinorUnits is ParseMinorUnits plus a flag reporting whether the
// raw string carried a leading minus sign. The returned minor units are
// always non-negative; the extractor uses the sign to infer debit vs credit.
func ParseSignedMinorUnits(raw string) (int64, bool, error) {
	cleaned := symbolReplacer.Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return 0, false, fmt.Errorf("empty amount string %q", raw)
	}

	negative := strings.HasPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "-")
	if cleaned == "" {
		return 0, false, fmt.Errorf("no digits in amount string %q", raw)
	}

	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, false, fmt.Errorf("invalid amount %q: %w", raw, err)
	}

	if !strings.Contains(cleaned, ".") {
		// Whole major units without a decimal point.
		dec = dec.Mul(decimal.NewFromInt(100))
	} else {
		dec = dec.Mul(decimal.NewFromInt(100)).Round(0)
	}

	if !dec.IsInteger() {
		dec = dec.Round(0)
	}

	return dec.IntPart(), negative, nil
}

// FormatMinorUnits renders integer minor units as a major-unit string with
// two decimal places. Round-trips with ParseMinorUnits.
func FormatMinorUnits(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}

// RoundToMajor rounds minor units to the nearest whole major unit, used by
// the recurrence detector's fuzzy grouping key.
func RoundToMajor(minor int64) int64 {
	return decimal.New(minor, -2).Round(0).IntPart()
}
