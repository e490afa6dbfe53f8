// Package export writes parse results to CSV and JSON files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"finledger/statement-parser/internal/currencyutils"
	"finledger/statement-parser/internal/logging"
	"finledger/statement-parser/internal/models"

	"github.com/gocarina/gocsv"
)

// Delimiter is the CSV field separator, configurable for locales whose
// spreadsheet tooling expects semicolons.
var Delimiter rune = ','

// SetDelimiter changes the CSV output delimiter.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// csvRow is the flattened CSV representation of a transaction. Amounts are
// rendered in major units with two decimals so the file opens cleanly in a
// spreadsheet.
type csvRow struct {
	ID             string  `csv:"ID"`
	Date           string  `csv:"Date"`
	Description    string  `csv:"Description"`
	Amount         string  `csv:"Amount"`
	Type           string  `csv:"Type"`
	Category       string  `csv:"Category"`
	Subcategory    string  `csv:"Subcategory"`
	Merchant       string  `csv:"Merchant"`
	IsSubscription bool    `csv:"IsSubscription"`
	Confidence     float64 `csv:"Confidence"`
}

// Exporter writes transactions and results to disk.
type Exporter struct {
	logger logging.Logger
}

// New creates an Exporter.
func New(logger logging.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// WriteCSV writes transactions to a CSV file, creating parent directories as
// needed.
func (e *Exporter) WriteCSV(transactions []models.ParsedTransaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Writing transactions to CSV file")

	if err := os.MkdirAll(filepath.Dir(csvFile), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]csvRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, csvRow{
			ID:             tx.ID,
			Date:           tx.Date,
			Description:    tx.Description,
			Amount:         currencyutils.FormatMinorUnits(tx.AmountMinorUnits),
			Type:           string(tx.Type),
			Category:       tx.Category,
			Subcategory:    tx.Subcategory,
			Merchant:       tx.Merchant,
			IsSubscription: tx.IsSubscription,
			Confidence:     tx.Confidence,
		})
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteJSON writes the full parse result, transactions and errors included,
// as indented JSON.
func (e *Exporter) WriteJSON(result *models.ParseResult, jsonFile string) error {
	if result == nil {
		return fmt.Errorf("cannot write nil result to JSON")
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: jsonFile},
		logging.Field{Key: logging.FieldCount, Value: result.TotalTransactions},
	).Info("Writing parse result to JSON file")

	if err := os.MkdirAll(filepath.Dir(jsonFile), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	if err := os.WriteFile(jsonFile, data, 0600); err != nil {
		return fmt.Errorf("error writing JSON file: %w", err)
	}
	return nil
}
