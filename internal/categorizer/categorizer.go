package categorizer

import (
	"context"

	"finledger/statement-parser/internal/logging"
	"finledger/statement-parser/internal/models"
)

const defaultConfidence = 0.5

// Categorizer runs transactions through an ordered strategy chain. The first
// strategy to match wins; when none match the transaction falls back to the
// "other" category at low confidence.
type Categorizer struct {
	strategies []Strategy
	logger     logging.Logger
}

// New assembles the standard chain from the given reference data. An AI
// client may be nil, in which case the AI strategy is skipped entirely.
func New(merchants []models.MerchantInfo, categories []models.CategoryConfig, aiClient AIClient, logger logging.Logger) *Categorizer {
	strategies := []Strategy{
		NewMerchantStrategy(merchants, logger),
		NewIncomeStrategy(logger),
		NewKeywordStrategy(categories, logger),
		NewSubscriptionStrategy(logger),
	}
	if aiClient != nil {
		strategies = append(strategies, NewAIStrategy(aiClient, logger))
	}
	strategies = append(strategies, NewAmountStrategy(logger))

	return &Categorizer{strategies: strategies, logger: logger}
}

// NewWithStrategies builds a Categorizer over an explicit chain, mainly for
// tests.
func NewWithStrategies(strategies []Strategy, logger logging.Logger) *Categorizer {
	return &Categorizer{strategies: strategies, logger: logger}
}

// Classify categorizes a single transaction. It never returns an error:
// strategy failures are logged and the chain moves on, so a broken external
// service degrades classification quality instead of failing the statement.
func (c *Categorizer) Classify(ctx context.Context, tx Transaction) Classification {
	for _, strategy := range c.strategies {
		result, matched, err := strategy.Categorize(ctx, tx)
		if err != nil {
			c.logger.WithError(err).WithFields(
				logging.Field{Key: logging.FieldStrategy, Value: strategy.Name()},
				logging.Field{Key: logging.FieldDescription, Value: tx.Description},
			).Warn("Categorization strategy failed, trying next")
			continue
		}
		if matched {
			return result
		}
	}

	return Classification{Category: models.CategoryOther, Confidence: defaultConfidence}
}
