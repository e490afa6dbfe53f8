// Package categorizer assigns a category, optional merchant and confidence to
// extracted transactions. Classification runs through an ordered chain of
// strategies, strongest signal first: merchant identity, then income
// heuristics, then category keywords, then subscription phrases, then
// amount-based guesses. The first strategy that matches wins; later
// strategies never override an earlier match.
package categorizer

import "context"

// Transaction is the classifier's view of an extracted transaction.
type Transaction struct {
	Description      string
	AmountMinorUnits int64
	IsCredit         bool
}

// Classification is the outcome of a strategy match.
type Classification struct {
	Category       string
	Subcategory    string
	Merchant       string
	Confidence     float64
	IsSubscription bool
}

// Strategy is one categorization approach. Categorize returns the
// classification, whether this strategy matched, and any error encountered.
type Strategy interface {
	Categorize(ctx context.Context, tx Transaction) (Classification, bool, error)

	// Name identifies the strategy in logs.
	Name() string
}
