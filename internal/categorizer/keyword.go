package categorizer

import (
	"context"
	"strings"

	"finledger/statement-parser/internal/logging"
	"finledger/statement-parser/internal/models"
)

const keywordConfidence = 0.8

// KeywordStrategy matches descriptions against the category keyword table.
// It catches the long tail of merchants the dictionary does not know, at a
// lower confidence than a direct merchant hit.
type KeywordStrategy struct {
	categories []models.CategoryConfig
	logger     logging.Logger
}

// NewKeywordStrategy creates a KeywordStrategy over the given keyword table.
func NewKeywordStrategy(categories []models.CategoryConfig, logger logging.Logger) *KeywordStrategy {
	return &KeywordStrategy{categories: categories, logger: logger}
}

// Name returns the strategy name for logging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Categorize scans the keyword table in declared order; the first keyword
// found as a substring of the description wins.
func (s *KeywordStrategy) Categorize(_ context.Context, tx Transaction) (Classification, bool, error) {
	description := strings.ToLower(tx.Description)

	for _, category := range s.categories {
		for _, keyword := range category.Keywords {
			if strings.Contains(description, keyword) {
				s.logger.WithFields(
					logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
					logging.Field{Key: logging.FieldCategory, Value: category.Name},
					logging.Field{Key: "keyword", Value: keyword},
				).Debug("Matched category keyword")
				return Classification{Category: category.Name, Confidence: keywordConfidence}, true, nil
			}
		}
	}

	return Classification{}, false, nil
}
