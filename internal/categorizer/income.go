package categorizer

import (
	"context"
	"strings"

	"finledger/statement-parser/internal/logging"
	"finledger/statement-parser/internal/models"
)

// materialityThreshold is the minor-unit amount above which a vague
// transfer/deposit credit is treated as a deliberate transfer rather than
// incidental income.
const materialityThreshold = 10000

// incomeRule is one credit-classification rule, evaluated top to bottom so
// the precedence lives in data rather than nested conditionals.
type incomeRule struct {
	category   string
	confidence float64
	keywords   []string
	minAmount  int64
}

var incomeRules = []incomeRule{
	{
		category:   models.CategorySalary,
		confidence: 0.9,
		keywords:   []string{"salary", "payroll", "wages", "net pay"},
	},
	{
		category:   models.CategoryInvestmentIncome,
		confidence: 0.85,
		keywords:   []string{"dividend", "interest", "capital gain", "coupon"},
	},
	{
		category:   models.CategoryTransfers,
		confidence: 0.8,
		keywords:   []string{"transfer", "deposit", "payment"},
		minAmount:  materialityThreshold,
	},
}

// IncomeStrategy classifies credit transactions by income type. Debits never
// match.
type IncomeStrategy struct {
	logger logging.Logger
}

// NewIncomeStrategy creates an IncomeStrategy.
func NewIncomeStrategy(logger logging.Logger) *IncomeStrategy {
	return &IncomeStrategy{logger: logger}
}

// Name returns the strategy name for logging.
func (s *IncomeStrategy) Name() string {
	return "Income"
}

// Categorize applies the income rule table to credit transactions; a credit
// that matches no rule still classifies as generic income.
func (s *IncomeStrategy) Categorize(_ context.Context, tx Transaction) (Classification, bool, error) {
	if !tx.IsCredit {
		return Classification{}, false, nil
	}

	description := strings.ToLower(tx.Description)

	for _, rule := range incomeRules {
		if rule.minAmount > 0 && tx.AmountMinorUnits < rule.minAmount {
			continue
		}
		for _, keyword := range rule.keywords {
			if strings.Contains(description, keyword) {
				s.logger.WithFields(
					logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
					logging.Field{Key: logging.FieldCategory, Value: rule.category},
					logging.Field{Key: "keyword", Value: keyword},
				).Debug("Matched income rule")
				return Classification{Category: rule.category, Confidence: rule.confidence}, true, nil
			}
		}
	}

	return Classification{Category: models.CategoryIncome, Confidence: 0.7}, true, nil
}
