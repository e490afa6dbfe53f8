// Package models provides the data structures shared across the parsing pipeline.
package models

// PositionedRun is one glyph run emitted by the PDF decoder, with its
// position in PDF coordinate space (y increases upward).
type PositionedRun struct {
	Text string
	X    float64
	Y    float64
}

// Page is the ordered list of positioned runs extracted from one PDF page.
type Page []PositionedRun

// StatementPeriod is the date range covered by a statement, ISO-8601 dates.
type StatementPeriod struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ParseResult is the sole output artifact of the pipeline. It is immutable
// once returned; Errors carries non-fatal warnings accumulated along the way.
type ParseResult struct {
	Transactions      []ParsedTransaction `json:"transactions"`
	BankName          string              `json:"bankName,omitempty"`
	AccountNumber     string              `json:"accountNumber,omitempty"`
	StatementPeriod   *StatementPeriod    `json:"statementPeriod,omitempty"`
	TotalTransactions int                 `json:"totalTransactions"`
	Errors            []string            `json:"errors"`
}
