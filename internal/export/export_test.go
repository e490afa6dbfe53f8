package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"finledger/statement-parser/internal/logging"
	"finledger/statement-parser/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []models.ParsedTransaction {
	return []models.ParsedTransaction{
		{
			ID:               "a1",
			Date:             "2025-05-02",
			Description:      "NETFLIX.COM",
			AmountMinorUnits: 999,
			Type:             models.TypeDebit,
			Category:         models.CategoryStreaming,
			Merchant:         "Netflix",
			IsSubscription:   true,
			Confidence:       0.95,
		},
		{
			ID:               "a2",
			Date:             "2025-05-01",
			Description:      "TESCO STORES 3029",
			AmountMinorUnits: 4520,
			Type:             models.TypeDebit,
			Category:         models.CategoryGroceries,
			Merchant:         "Tesco",
			Confidence:       0.95,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "transactions.csv")

	e := New(&logging.MockLogger{})
	require.NoError(t, e.WriteCSV(sampleTransactions(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ID,Date,Description,Amount")
	assert.Contains(t, lines[1], "9.99")
	assert.Contains(t, lines[2], "45.20")
}

func TestWriteCSV_NilTransactions(t *testing.T) {
	e := New(&logging.MockLogger{})
	assert.Error(t, e.WriteCSV(nil, filepath.Join(t.TempDir(), "out.csv")))
}

func TestWriteCSV_CustomDelimiter(t *testing.T) {
	old := Delimiter
	SetDelimiter(';')
	defer SetDelimiter(old)

	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	e := New(&logging.MockLogger{})
	require.NoError(t, e.WriteCSV(sampleTransactions(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ID;Date;Description")
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.json")

	result := &models.ParseResult{
		Transactions:      sampleTransactions(),
		BankName:          "HSBC",
		TotalTransactions: 2,
		Errors:            []string{},
	}

	e := New(&logging.MockLogger{})
	require.NoError(t, e.WriteJSON(result, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded models.ParseResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "HSBC", decoded.BankName)
	require.Len(t, decoded.Transactions, 2)
	assert.EqualValues(t, 999, decoded.Transactions[0].AmountMinorUnits)
}
