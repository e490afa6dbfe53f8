// Package extractor applies a bank profile's pattern set to reconstructed
// statement text and produces raw transactions: date, description, amount,
// type and the matched line. Classification happens downstream.
package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"finledger/statement-parser/internal/bankdetect"
	"finledger/statement-parser/internal/currencyutils"
	"finledger/statement-parser/internal/dateutils"
	"finledger/statement-parser/internal/logging"
	"finledger/statement-parser/internal/models"
	"finledger/statement-parser/internal/parsererror"

	"github.com/google/uuid"
)

// dedupPrefixLen is how much of the description participates in the duplicate
// key. Overlapping pattern variants can match the same logical line with
// slightly different description boundaries; a fixed prefix absorbs that.
const dedupPrefixLen = 16

// fallbackPenalty is subtracted from the confidence scale for each fallback
// pattern step beyond the profile's own set.
const fallbackPenalty = 0.1

// noiseBlocklist rejects candidate lines that are balances, totals, headers
// or card-statement boilerplate rather than transactions.
var noiseBlocklist = []string{
	"balance",
	"total",
	"statement",
	"opening",
	"closing",
	"brought forward",
	"carried forward",
	"membership",
	"annual fee",
	"minimum payment",
}

var creditKeywordRe = regexp.MustCompile(`(?i)\b(refund|reversal)\b`)

// Extractor turns profile pattern matches into ParsedTransactions.
type Extractor struct {
	logger logging.Logger
}

// New creates an Extractor.
func New(logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{logger: logger}
}

// Extract runs the profile's pattern set over the reconstructed text. When
// the profile's own patterns yield nothing it walks the generic fallback
// ladder, most specific first, stopping at the first pattern that produces at
// least one transaction; the ladder is skipped when the profile already is
// the generic one. Per-line date/amount failures are skipped and tallied as
// warnings, each line counted once across passes; only a fully exhausted
// ladder is an error.
func (e *Extractor) Extract(text string, profile bankdetect.Profile) ([]models.ParsedTransaction, []string, error) {
	lines := splitLines(text)

	skipped := make(map[string]bool)
	transactions := e.applyPatternSet(lines, profile.TransactionPatterns, profile.DateOrder, 0, skipped)

	attempts := len(profile.TransactionPatterns)
	if len(transactions) == 0 && profile.ID != bankdetect.ProfileGeneric {
		for step, spec := range bankdetect.Generic().TransactionPatterns {
			attempts++
			transactions = e.applyPatternSet(lines,
				[]bankdetect.PatternSpec{spec}, profile.DateOrder, float64(step+1)*fallbackPenalty, skipped)
			if len(transactions) > 0 {
				e.logger.WithFields(
					logging.Field{Key: logging.FieldPattern, Value: spec.Name},
					logging.Field{Key: logging.FieldCount, Value: len(transactions)},
				).Debug("Fallback pattern produced transactions")
				break
			}
		}
	}

	var warnings []string
	if len(skipped) > 0 {
		warnings = append(warnings,
			fmt.Sprintf("%d candidate lines could not be parsed and were skipped", len(skipped)))
	}

	if len(transactions) == 0 {
		return nil, warnings, &parsererror.NoTransactionsError{
			Bank:              string(profile.ID),
			PatternsAttempted: attempts,
		}
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldBank, Value: profile.DisplayName},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Extracted transactions")

	return transactions, warnings, nil
}

// applyPatternSet runs each pattern over every line, accepting the first
// pattern that matches a given line and deduplicating across the whole set.
// Unparseable candidate lines are recorded in skipped, keyed by line so a
// later pass re-matching the same line does not inflate the tally.
func (e *Extractor) applyPatternSet(lines []string, specs []bankdetect.PatternSpec,
	order dateutils.DateOrder, penalty float64, skipped map[string]bool) []models.ParsedTransaction {

	var transactions []models.ParsedTransaction
	seen := make(map[string]bool)

	for _, line := range lines {
		for _, spec := range specs {
			match := spec.Re.FindStringSubmatch(line)
			if match == nil {
				continue
			}

			tx, err := e.buildTransaction(spec, match, line, order, penalty)
			if err != nil {
				e.logger.WithError(err).WithField(logging.FieldLine, line).
					Debug("Skipping unparseable candidate line")
				skipped[line] = true
				break
			}
			if tx == nil {
				// Noise line; do not let a looser pattern resurrect it.
				break
			}

			key := dedupKey(tx)
			if !seen[key] {
				seen[key] = true
				transactions = append(transactions, *tx)
			}
			break
		}
	}

	return transactions
}

// buildTransaction converts one regex match into a transaction. A nil
// transaction with nil error means the line is noise.
func (e *Extractor) buildTransaction(spec bankdetect.PatternSpec, match []string,
	line string, order dateutils.DateOrder, penalty float64) (*models.ParsedTransaction, error) {

	groups := namedGroups(spec.Re, match)

	description := strings.TrimSpace(groups["desc"])
	if description == "" || isNoise(description) {
		return nil, nil
	}

	date, err := dateutils.NormalizeDate(groups["date"], order)
	if err != nil {
		return nil, &parsererror.ExtractionError{Field: "date", Value: groups["date"], Line: line, Err: err}
	}

	minor, negative, err := currencyutils.ParseSignedMinorUnits(groups["amount"])
	if err != nil {
		return nil, &parsererror.ExtractionError{Field: "amount", Value: groups["amount"], Line: line, Err: err}
	}

	confidence := spec.ConfidenceScale - penalty
	if confidence < 0.1 {
		confidence = 0.1
	}

	return &models.ParsedTransaction{
		ID:               uuid.NewString(),
		Date:             date,
		Description:      description,
		AmountMinorUnits: minor,
		Type:             inferType(groups["ind"], negative, description),
		Confidence:       confidence,
		RawText:          line,
	}, nil
}

// inferType derives debit/credit from explicit indicators: a trailing CR/DR
// marker, a leading minus sign, or credit-implying keywords. Debit is the
// default since statements list mostly spending.
func inferType(indicator string, negative bool, description string) models.TransactionType {
	switch strings.ToUpper(strings.TrimSpace(indicator)) {
	case "CR":
		return models.TypeCredit
	case "DR":
		return models.TypeDebit
	}
	if negative {
		return models.TypeCredit
	}
	if creditKeywordRe.MatchString(description) {
		return models.TypeCredit
	}
	// "PAYMENT RECEIVED" style lines are credits on card statements, but
	// "PAYMENT TO <merchant>" is money going out.
	lowered := strings.ToLower(description)
	if strings.Contains(lowered, "payment") && !strings.Contains(lowered, "payment to") {
		return models.TypeCredit
	}
	return models.TypeDebit
}

func isNoise(description string) bool {
	lowered := strings.ToLower(description)
	for _, noise := range noiseBlocklist {
		if strings.Contains(lowered, noise) {
			return true
		}
	}
	return false
}

func dedupKey(tx *models.ParsedTransaction) string {
	prefix := strings.ToUpper(tx.Description)
	if len(prefix) > dedupPrefixLen {
		prefix = prefix[:dedupPrefixLen]
	}
	return fmt.Sprintf("%s|%d|%s", tx.Date, tx.AmountMinorUnits, prefix)
}

func namedGroups(re *regexp.Regexp, match []string) map[string]string {
	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(match) {
			groups[name] = match[i]
		}
	}
	return groups
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(strings.ReplaceAll(line, "\f", ""))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ExtractAccountNumber pulls the account number via the profile's pattern.
func ExtractAccountNumber(text string, profile bankdetect.Profile) string {
	if profile.AccountPattern == nil {
		return ""
	}
	match := profile.AccountPattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return ""
	}
	return strings.Join(strings.Fields(match[1]), " ")
}

// ExtractStatementPeriod pulls and normalizes the statement period.
func ExtractStatementPeriod(text string, profile bankdetect.Profile) *models.StatementPeriod {
	if profile.PeriodPattern == nil {
		return nil
	}
	match := profile.PeriodPattern.FindStringSubmatch(text)
	if len(match) < 3 {
		return nil
	}
	from, err := dateutils.NormalizeDate(match[1], profile.DateOrder)
	if err != nil {
		return nil
	}
	to, err := dateutils.NormalizeDate(match[2], profile.DateOrder)
	if err != nil {
		return nil
	}
	return &models.StatementPeriod{From: from, To: to}
}
