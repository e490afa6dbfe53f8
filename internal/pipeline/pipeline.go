// Package pipeline orchestrates statement parsing end to end: layout
// reconstruction, bank detection, transaction extraction, classification and
// recurrence detection. The pipeline is fail-soft throughout: problems are
// reported in the result's Errors list and a partial result is always
// returned, never a panic.
package pipeline

import (
	"context"
	"fmt"
	"sort"

	"finledger/statement-parser/internal/bankdetect"
	"finledger/statement-parser/internal/categorizer"
	"finledger/statement-parser/internal/extractor"
	"finledger/statement-parser/internal/layout"
	"finledger/statement-parser/internal/logging"
	"finledger/statement-parser/internal/models"
	"finledger/statement-parser/internal/parsererror"
	"finledger/statement-parser/internal/recurrence"
)

const (
	// minTextLength is the smallest reconstructed document worth parsing.
	// Anything shorter is a failed extraction, not a statement.
	minTextLength = 100

	// lowConfidenceThreshold marks transactions whose blended confidence is
	// too weak to trust without review.
	lowConfidenceThreshold = 0.5
)

// Parser is the assembled statement-parsing pipeline.
type Parser struct {
	extractor   *extractor.Extractor
	categorizer *categorizer.Categorizer
	recurrence  *recurrence.Detector
	logger      logging.Logger
}

// New wires a Parser from its stages.
func New(cat *categorizer.Categorizer, logger logging.Logger) *Parser {
	return &Parser{
		extractor:   extractor.New(logger),
		categorizer: cat,
		recurrence:  recurrence.New(logger),
		logger:      logger,
	}
}

// Parse runs the full pipeline over positioned page text. The returned result
// is never nil: stage failures land in result.Errors and whatever was parsed
// up to that point is kept.
func (p *Parser) Parse(ctx context.Context, pages []models.Page) (result *models.ParseResult) {
	result = &models.ParseResult{
		Transactions: []models.ParsedTransaction{},
		Errors:       []string{},
	}

	// A malformed document must degrade into an error entry, not take the
	// process down.
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.WithField("panic", rec).Error("Parsing panicked")
			result.Errors = append(result.Errors, fmt.Sprintf("internal error: %v", rec))
		}
	}()

	text := layout.Reconstruct(pages)
	if len(text) < minTextLength {
		err := &parsererror.EmptyDocumentError{Length: len(text), MinLength: minTextLength}
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	profileID := bankdetect.Detect(text, p.logger)
	profile := bankdetect.Lookup(profileID)
	result.BankName = profile.DisplayName
	result.AccountNumber = extractor.ExtractAccountNumber(text, profile)
	result.StatementPeriod = extractor.ExtractStatementPeriod(text, profile)

	transactions, warnings, err := p.extractor.Extract(text, profile)
	result.Errors = append(result.Errors, warnings...)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	p.classify(ctx, transactions)
	p.recurrence.Apply(transactions)

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})

	result.Transactions = transactions
	result.TotalTransactions = len(transactions)

	if low := countLowConfidence(transactions); low > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%d transactions have low confidence and may need review", low))
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldBank, Value: result.BankName},
		logging.Field{Key: logging.FieldCount, Value: result.TotalTransactions},
	).Info("Statement parsed")
	return result
}

// classify runs every transaction through the categorizer and blends the
// classification confidence into the extraction confidence. Extraction says
// how sure we are the line IS a transaction; classification says how sure we
// are about what it is for. The product reflects both doubts.
func (p *Parser) classify(ctx context.Context, transactions []models.ParsedTransaction) {
	for i := range transactions {
		tx := &transactions[i]
		c := p.categorizer.Classify(ctx, categorizer.Transaction{
			Description:      tx.Description,
			AmountMinorUnits: tx.AmountMinorUnits,
			IsCredit:         tx.IsCredit(),
		})
		tx.Category = c.Category
		tx.Subcategory = c.Subcategory
		tx.Merchant = c.Merchant
		if c.IsSubscription {
			tx.IsSubscription = true
		}
		tx.Confidence = tx.Confidence * c.Confidence
	}
}

func countLowConfidence(transactions []models.ParsedTransaction) int {
	var n int
	for _, tx := range transactions {
		if tx.Confidence <= lowConfidenceThreshold {
			n++
		}
	}
	return n
}

// ValidTransactions splits transactions into those safe to hand downstream
// and those needing review: a valid transaction has a date, a description, a
// positive amount and better-than-coin-flip confidence.
func ValidTransactions(transactions []models.ParsedTransaction) (valid, review []models.ParsedTransaction) {
	for _, tx := range transactions {
		if tx.Date != "" && tx.Description != "" && tx.AmountMinorUnits > 0 && tx.Confidence > lowConfidenceThreshold {
			valid = append(valid, tx)
		} else {
			review = append(review, tx)
		}
	}
	return valid, review
}
