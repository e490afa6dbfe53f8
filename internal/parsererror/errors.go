// Package parsererror defines the typed errors returned by the statement
// parsing pipeline. Expected conditions never escape the top-level Parse call
// as panics; they are folded into the ParseResult, but the lower layers use
// these types so callers and tests can distinguish failure modes.
package parsererror

import "fmt"

// EmptyDocumentError indicates the reconstructed statement text was too short
// to contain any transactions. Fatal for the single document.
type EmptyDocumentError struct {
	Length    int
	MinLength int
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("document text too short to parse: %d characters (minimum %d)",
		e.Length, e.MinLength)
}

// NoTransactionsError indicates every pattern attempt, primary and fallback,
// yielded zero transactions for the detected bank profile.
type NoTransactionsError struct {
	Bank              string
	PatternsAttempted int
}

func (e *NoTransactionsError) Error() string {
	return fmt.Sprintf("no transactions found for bank %q after %d pattern attempts",
		e.Bank, e.PatternsAttempted)
}

// ExtractionError is a localized per-line failure: one candidate line whose
// date or amount could not be normalized. The line is skipped, not fatal.
type ExtractionError struct {
	Field string
	Value string
	Line  string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s=%q from line %q: %v",
		e.Field, e.Value, e.Line, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
