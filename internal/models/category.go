package models

// Category names used throughout the classification pipeline. Keeping them as
// constants avoids typo drift between the merchant table, the keyword rules
// and the tests.
const (
	CategoryGroceries        = "groceries"
	CategoryStreaming        = "streaming"
	CategoryEntertainment    = "entertainment"
	CategorySalary           = "salary"
	CategoryInvestmentIncome = "investment_income"
	CategoryTransfers        = "transfers"
	CategoryIncome           = "income"
	CategoryRentMortgage     = "rent_mortgage"
	CategoryCoffee           = "coffee"
	CategoryDining           = "dining"
	CategoryTransport        = "transport"
	CategoryUtilities        = "utilities"
	CategoryShopping         = "shopping"
	CategoryInsurance        = "insurance"
	CategoryHealth           = "health"
	CategoryFees             = "bank_fees"
	CategoryOther            = "other"
)

// AllCategories returns every known category name.
func AllCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryStreaming,
		CategoryEntertainment,
		CategorySalary,
		CategoryInvestmentIncome,
		CategoryTransfers,
		CategoryIncome,
		CategoryRentMortgage,
		CategoryCoffee,
		CategoryDining,
		CategoryTransport,
		CategoryUtilities,
		CategoryShopping,
		CategoryInsurance,
		CategoryHealth,
		CategoryFees,
		CategoryOther,
	}
}

// IsKnownCategory reports whether name is one of the known categories.
func IsKnownCategory(name string) bool {
	for _, c := range AllCategories() {
		if c == name {
			return true
		}
	}
	return false
}

// CategoryConfig is one category's keyword rule set, loaded from YAML or the
// compiled-in defaults. Keywords are matched case-insensitively as substrings.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// MerchantInfo describes a known merchant. Pattern is a lowercase substring
// matched against transaction descriptions; a hit is the strongest
// classification signal the pipeline has.
type MerchantInfo struct {
	Pattern        string `yaml:"pattern"`
	Name           string `yaml:"name"`
	Category       string `yaml:"category"`
	Subcategory    string `yaml:"subcategory,omitempty"`
	IsSubscription bool   `yaml:"is_subscription,omitempty"`
}
