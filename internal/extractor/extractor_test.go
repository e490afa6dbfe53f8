package extractor

import (
	"testing"

	"finledger/statement-parser/internal/bankdetect"
	"finledger/statement-parser/internal/logging"
	"finledger/statement-parser/internal/models"
	"finledger/statement-parser/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor() *Extractor {
	return New(&logging.MockLogger{})
}

func TestExtract_GenericProfile(t *testing.T) {
	text := "01/05/2025  TESCO STORES  45.20\n" +
		"02/05/2025  NETFLIX.COM  9.99\n"

	txns, warnings, err := newTestExtractor().Extract(text, bankdetect.Generic())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, txns, 2)

	assert.Equal(t, "2025-05-01", txns[0].Date)
	assert.Equal(t, "TESCO STORES", txns[0].Description)
	assert.Equal(t, int64(4520), txns[0].AmountMinorUnits)
	assert.Equal(t, models.TypeDebit, txns[0].Type)
	assert.Equal(t, 1.0, txns[0].Confidence)
	assert.NotEmpty(t, txns[0].ID)
	assert.NotEqual(t, txns[0].ID, txns[1].ID)

	assert.Equal(t, "2025-05-02", txns[1].Date)
	assert.Equal(t, int64(999), txns[1].AmountMinorUnits)
}

func TestExtract_NoiseLinesFiltered(t *testing.T) {
	text := "01/05/2025  TESCO STORES  45.20\n" +
		"31/05/2025  Closing Balance  1,203.44\n" +
		"01/05/2025  Opening Balance  1,000.00\n" +
		"31/05/2025  Total Payments  500.00\n" +
		"15/05/2025  Balance Brought Forward  900.00\n"

	txns, _, err := newTestExtractor().Extract(text, bankdetect.Generic())
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "TESCO STORES", txns[0].Description)
}

func TestExtract_Deduplicates(t *testing.T) {
	// The same logical line twice (page-overlap artifact) must yield one
	// transaction.
	text := "01/05/2025  TESCO STORES  45.20\n" +
		"01/05/2025  TESCO STORES  45.20\n"

	txns, _, err := newTestExtractor().Extract(text, bankdetect.Generic())
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestExtract_DedupUsesDescriptionPrefix(t *testing.T) {
	// Same date and amount, descriptions identical through the prefix window
	// but diverging afterwards: still one logical transaction.
	text := "01/05/2025  AMAZON MARKETPLACE EU-UK  19.99\n" +
		"01/05/2025  AMAZON MARKETPLACE LONDON  19.99\n"

	txns, _, err := newTestExtractor().Extract(text, bankdetect.Generic())
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestExtract_TypeIndicators(t *testing.T) {
	tests := []struct {
		name string
		line string
		want models.TransactionType
	}{
		{name: "trailing CR", line: "01/05/2025  SALARY ACME LTD  2,500.00 CR", want: models.TypeCredit},
		{name: "trailing DR", line: "01/05/2025  TESCO STORES  45.20 DR", want: models.TypeDebit},
		{name: "leading minus", line: "01/05/2025  CREDIT ADJUSTMENT  -10.00", want: models.TypeCredit},
		{name: "refund keyword", line: "01/05/2025  REFUND ARGOS ONLINE  29.99", want: models.TypeCredit},
		{name: "payment received", line: "01/05/2025  PAYMENT RECEIVED THANK YOU  120.00", want: models.TypeCredit},
		{name: "payment to merchant is debit", line: "01/05/2025  CARD PAYMENT TO TESCO  45.20", want: models.TypeDebit},
		{name: "default debit", line: "01/05/2025  TESCO STORES  45.20", want: models.TypeDebit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns, _, err := newTestExtractor().Extract(tt.line+"\n", bankdetect.Generic())
			require.NoError(t, err)
			require.Len(t, txns, 1)
			assert.Equal(t, tt.want, txns[0].Type)
		})
	}
}

func TestExtract_AmountsAlwaysNonNegative(t *testing.T) {
	txns, _, err := newTestExtractor().Extract(
		"01/05/2025  CREDIT ADJUSTMENT  -10.00\n", bankdetect.Generic())
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, int64(1000), txns[0].AmountMinorUnits)
}

func TestExtract_FallbackLadder(t *testing.T) {
	// Amex patterns require decimal amounts; a whole-unit amount only matches
	// a generic fallback, with a correspondingly reduced confidence.
	text := "01/13/2025  CORNER SHOP  5\n"

	txns, _, err := newTestExtractor().Extract(text, bankdetect.Lookup(bankdetect.ProfileAmex))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, int64(500), txns[0].AmountMinorUnits)
	assert.Equal(t, "2025-01-13", txns[0].Date) // month-first per Amex
	assert.Less(t, txns[0].Confidence, 0.8)
}

func TestExtract_SkipsUnparseableDates(t *testing.T) {
	text := "99/99/2025  BROKEN LINE  45.20\n" +
		"01/05/2025  TESCO STORES  45.20\n"

	txns, warnings, err := newTestExtractor().Extract(text, bankdetect.Generic())
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "TESCO STORES", txns[0].Description)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "1 candidate lines")
}

func TestExtract_SkippedTallySurvivesFallback(t *testing.T) {
	// The primary pass skips the broken line and yields nothing, so the
	// fallback ladder runs. The skip must still be reported, and reported
	// once even though later passes re-match the same broken line.
	text := "99/99/2025  BROKEN LINE  45.20\n" +
		"01/13/2025  CORNER SHOP  5\n"

	txns, warnings, err := newTestExtractor().Extract(text, bankdetect.Lookup(bankdetect.ProfileAmex))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "CORNER SHOP", txns[0].Description)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "1 candidate lines")
}

func TestExtract_NoTransactionsFound(t *testing.T) {
	// Generic already is the fallback pattern set, so the attempt count is
	// just its own patterns, not the ladder re-run on top.
	_, _, err := newTestExtractor().Extract(
		"this statement has prose but no transaction lines at all\n", bankdetect.Generic())

	var notFound *parsererror.NoTransactionsError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "generic", notFound.Bank)
	assert.Equal(t, len(bankdetect.Generic().TransactionPatterns), notFound.PatternsAttempted)
}

func TestExtract_PatternsAttemptedIncludesLadder(t *testing.T) {
	// A named bank that matches nothing exhausts its own patterns plus the
	// generic ladder.
	_, _, err := newTestExtractor().Extract(
		"this statement has prose but no transaction lines at all\n",
		bankdetect.Lookup(bankdetect.ProfileAmex))

	var notFound *parsererror.NoTransactionsError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "amex", notFound.Bank)
	want := len(bankdetect.Lookup(bankdetect.ProfileAmex).TransactionPatterns) +
		len(bankdetect.Generic().TransactionPatterns)
	assert.Equal(t, want, notFound.PatternsAttempted)
}

func TestExtractAccountNumber(t *testing.T) {
	profile := bankdetect.Generic()
	assert.Equal(t, "12345678",
		ExtractAccountNumber("Account Number: 12345678", profile))
	assert.Equal(t, "",
		ExtractAccountNumber("no account here", profile))
}

func TestExtractStatementPeriod(t *testing.T) {
	profile := bankdetect.Generic()
	period := ExtractStatementPeriod("Statement Period: 01/05/2025 to 31/05/2025", profile)
	require.NotNil(t, period)
	assert.Equal(t, "2025-05-01", period.From)
	assert.Equal(t, "2025-05-31", period.To)

	assert.Nil(t, ExtractStatementPeriod("no period here", profile))
}
