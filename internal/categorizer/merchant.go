package categorizer

import (
	"context"
	"strings"

	"finledger/statement-parser/internal/logging"
	"finledger/statement-parser/internal/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	merchantConfidence      = 0.95
	merchantFuzzyConfidence = 0.85

	// fuzzyMinPatternLen guards the fuzzy pass: short patterns are one edit
	// away from too many unrelated words.
	fuzzyMinPatternLen = 5
)

// MerchantStrategy matches descriptions against the merchant dictionary.
// Merchant identity is the most reliable classification signal, so this
// strategy runs first and carries the highest confidence.
type MerchantStrategy struct {
	merchants []models.MerchantInfo
	logger    logging.Logger
}

// NewMerchantStrategy creates a MerchantStrategy over the given dictionary.
func NewMerchantStrategy(merchants []models.MerchantInfo, logger logging.Logger) *MerchantStrategy {
	return &MerchantStrategy{merchants: merchants, logger: logger}
}

// Name returns the strategy name for logging.
func (s *MerchantStrategy) Name() string {
	return "Merchant"
}

// Categorize looks the description up in the merchant dictionary: an exact
// substring pass first, then a single-edit fuzzy pass to absorb OCR damage
// ("NETFLLX" still resolves to Netflix, at reduced confidence).
func (s *MerchantStrategy) Categorize(_ context.Context, tx Transaction) (Classification, bool, error) {
	description := strings.ToLower(tx.Description)
	if strings.TrimSpace(description) == "" {
		return Classification{}, false, nil
	}

	for _, merchant := range s.merchants {
		if strings.Contains(description, merchant.Pattern) {
			s.logger.WithFields(
				logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
				logging.Field{Key: logging.FieldMerchant, Value: merchant.Name},
				logging.Field{Key: logging.FieldCategory, Value: merchant.Category},
			).Debug("Matched merchant by substring")
			return s.classify(merchant, merchantConfidence), true, nil
		}
	}

	// Fuzzy pass: compare single-word patterns against description tokens.
	tokens := strings.Fields(description)
	for _, merchant := range s.merchants {
		if len(merchant.Pattern) < fuzzyMinPatternLen || strings.ContainsRune(merchant.Pattern, ' ') {
			continue
		}
		for _, token := range tokens {
			if fuzzy.LevenshteinDistance(token, merchant.Pattern) == 1 {
				s.logger.WithFields(
					logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
					logging.Field{Key: logging.FieldMerchant, Value: merchant.Name},
					logging.Field{Key: "token", Value: token},
				).Debug("Matched merchant by fuzzy token")
				return s.classify(merchant, merchantFuzzyConfidence), true, nil
			}
		}
	}

	return Classification{}, false, nil
}

func (s *MerchantStrategy) classify(merchant models.MerchantInfo, confidence float64) Classification {
	return Classification{
		Category:       merchant.Category,
		Subcategory:    merchant.Subcategory,
		Merchant:       merchant.Name,
		Confidence:     confidence,
		IsSubscription: merchant.IsSubscription,
	}
}
