package models

// TransactionType distinguishes money leaving the account from money arriving.
type TransactionType string

const (
	// TypeDebit marks money leaving the account.
	TypeDebit TransactionType = "debit"
	// TypeCredit marks money arriving into the account.
	TypeCredit TransactionType = "credit"
)

// ParsedTransaction is one transaction extracted from a statement.
// The extractor fills ID, Date, Description, AmountMinorUnits, Type and
// RawText; the classifier adds Category, Subcategory, Merchant, Confidence
// and the IsSubscription baseline; the recurrence detector may upgrade
// IsSubscription afterwards.
type ParsedTransaction struct {
	ID               string          `csv:"ID" json:"id"`
	Date             string          `csv:"Date" json:"date"` // ISO-8601 (YYYY-MM-DD)
	Description      string          `csv:"Description" json:"description"`
	AmountMinorUnits int64           `csv:"AmountMinorUnits" json:"amountMinorUnits"`
	Type             TransactionType `csv:"Type" json:"type"`
	Category         string          `csv:"Category" json:"category,omitempty"`
	Subcategory      string          `csv:"Subcategory" json:"subcategory,omitempty"`
	Merchant         string          `csv:"Merchant" json:"merchant,omitempty"`
	IsSubscription   bool            `csv:"IsSubscription" json:"isSubscription"`
	Confidence       float64         `csv:"Confidence" json:"confidence"`
	RawText          string          `csv:"-" json:"rawText,omitempty"`
}

// IsDebit returns true if the transaction is money leaving the account.
func (t *ParsedTransaction) IsDebit() bool {
	return t.Type == TypeDebit
}

// IsCredit returns true if the transaction is money arriving.
func (t *ParsedTransaction) IsCredit() bool {
	return t.Type == TypeCredit
}
