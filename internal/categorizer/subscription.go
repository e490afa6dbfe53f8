package categorizer

import (
	"context"
	"strings"

	"finledger/statement-parser/internal/logging"
	"finledger/statement-parser/internal/models"
)

const subscriptionConfidence = 0.7

// subscriptionPhrases mark a transaction as a recurring membership even when
// neither the merchant dictionary nor the keyword table recognises it.
var subscriptionPhrases = []string{
	"subscription",
	"membership",
	"monthly plan",
	"annual plan",
	"recurring payment",
	"auto-renewal",
	"auto renewal",
}

// SubscriptionStrategy flags generic subscription language. Matches classify
// as entertainment, the most common category for unrecognised subscriptions.
type SubscriptionStrategy struct {
	logger logging.Logger
}

// NewSubscriptionStrategy creates a SubscriptionStrategy.
func NewSubscriptionStrategy(logger logging.Logger) *SubscriptionStrategy {
	return &SubscriptionStrategy{logger: logger}
}

// Name returns the strategy name for logging.
func (s *SubscriptionStrategy) Name() string {
	return "Subscription"
}

// Categorize matches subscription phrases in the description.
func (s *SubscriptionStrategy) Categorize(_ context.Context, tx Transaction) (Classification, bool, error) {
	description := strings.ToLower(tx.Description)

	for _, phrase := range subscriptionPhrases {
		if strings.Contains(description, phrase) {
			s.logger.WithFields(
				logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
				logging.Field{Key: "phrase", Value: phrase},
			).Debug("Matched subscription phrase")
			return Classification{
				Category:       models.CategoryEntertainment,
				Confidence:     subscriptionConfidence,
				IsSubscription: true,
			}, true, nil
		}
	}

	return Classification{}, false, nil
}
