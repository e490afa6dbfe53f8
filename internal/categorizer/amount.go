package categorizer

import (
	"context"
	"strings"

	"finledger/statement-parser/internal/logging"
	"finledger/statement-parser/internal/models"
)

const (
	// smallPurchaseMax covers the typical price of a coffee-shop debit.
	smallPurchaseMax = 700

	// largeRecurringMin is the floor for a rent or mortgage sized debit.
	largeRecurringMin = 50000

	smallPurchaseConfidence  = 0.6
	largeRecurringConfidence = 0.85
)

var housingKeywords = []string{"rent", "mortgage", "letting", "housing"}

// AmountStrategy guesses from the amount alone. It sits near the end of the
// chain: these are weak signals that only matter when nothing textual matched.
type AmountStrategy struct {
	logger logging.Logger
}

// NewAmountStrategy creates an AmountStrategy.
func NewAmountStrategy(logger logging.Logger) *AmountStrategy {
	return &AmountStrategy{logger: logger}
}

// Name returns the strategy name for logging.
func (s *AmountStrategy) Name() string {
	return "Amount"
}

// Categorize classifies small debits as coffee and large housing-flavoured
// debits as rent or mortgage. Credits never match.
func (s *AmountStrategy) Categorize(_ context.Context, tx Transaction) (Classification, bool, error) {
	if tx.IsCredit {
		return Classification{}, false, nil
	}

	if tx.AmountMinorUnits > 0 && tx.AmountMinorUnits < smallPurchaseMax {
		s.logger.WithFields(
			logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
			logging.Field{Key: logging.FieldCategory, Value: models.CategoryCoffee},
		).Debug("Small debit classified as coffee")
		return Classification{Category: models.CategoryCoffee, Confidence: smallPurchaseConfidence}, true, nil
	}

	if tx.AmountMinorUnits >= largeRecurringMin {
		description := strings.ToLower(tx.Description)
		for _, keyword := range housingKeywords {
			if strings.Contains(description, keyword) {
				s.logger.WithFields(
					logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
					logging.Field{Key: logging.FieldCategory, Value: models.CategoryRentMortgage},
				).Debug("Large debit classified as rent or mortgage")
				return Classification{
					Category:       models.CategoryRentMortgage,
					Confidence:     largeRecurringConfidence,
					IsSubscription: true,
				}, true, nil
			}
		}
	}

	return Classification{}, false, nil
}
