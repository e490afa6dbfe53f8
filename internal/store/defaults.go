package store

import "finledger/statement-parser/internal/models"

// DefaultMerchants is the compiled-in merchant dictionary. Patterns are
// lowercase substrings matched against transaction descriptions.
func DefaultMerchants() []models.MerchantInfo {
	return []models.MerchantInfo{
		// Streaming and subscriptions
		{Pattern: "netflix", Name: "Netflix", Category: models.CategoryStreaming, IsSubscription: true},
		{Pattern: "spotify", Name: "Spotify", Category: models.CategoryStreaming, IsSubscription: true},
		{Pattern: "disney+", Name: "Disney+", Category: models.CategoryStreaming, IsSubscription: true},
		{Pattern: "disney plus", Name: "Disney+", Category: models.CategoryStreaming, IsSubscription: true},
		{Pattern: "amazon prime", Name: "Amazon Prime", Category: models.CategoryStreaming, IsSubscription: true},
		{Pattern: "youtube premium", Name: "YouTube Premium", Category: models.CategoryStreaming, IsSubscription: true},
		{Pattern: "apple.com/bill", Name: "Apple", Category: models.CategoryStreaming, IsSubscription: true},
		{Pattern: "audible", Name: "Audible", Category: models.CategoryEntertainment, IsSubscription: true},

		// Groceries
		{Pattern: "tesco", Name: "Tesco", Category: models.CategoryGroceries},
		{Pattern: "sainsbury", Name: "Sainsbury's", Category: models.CategoryGroceries},
		{Pattern: "asda", Name: "Asda", Category: models.CategoryGroceries},
		{Pattern: "morrisons", Name: "Morrisons", Category: models.CategoryGroceries},
		{Pattern: "waitrose", Name: "Waitrose", Category: models.CategoryGroceries},
		{Pattern: "aldi", Name: "Aldi", Category: models.CategoryGroceries},
		{Pattern: "lidl", Name: "Lidl", Category: models.CategoryGroceries},
		{Pattern: "co-op", Name: "Co-op", Category: models.CategoryGroceries},
		{Pattern: "whole foods", Name: "Whole Foods", Category: models.CategoryGroceries},
		{Pattern: "trader joe", Name: "Trader Joe's", Category: models.CategoryGroceries},

		// Coffee and dining
		{Pattern: "starbucks", Name: "Starbucks", Category: models.CategoryCoffee},
		{Pattern: "costa coffee", Name: "Costa Coffee", Category: models.CategoryCoffee},
		{Pattern: "caffe nero", Name: "Caffè Nero", Category: models.CategoryCoffee},
		{Pattern: "pret a manger", Name: "Pret a Manger", Category: models.CategoryCoffee},
		{Pattern: "mcdonald", Name: "McDonald's", Category: models.CategoryDining, Subcategory: "fast_food"},
		{Pattern: "deliveroo", Name: "Deliveroo", Category: models.CategoryDining, Subcategory: "delivery"},
		{Pattern: "just eat", Name: "Just Eat", Category: models.CategoryDining, Subcategory: "delivery"},
		{Pattern: "uber eats", Name: "Uber Eats", Category: models.CategoryDining, Subcategory: "delivery"},
		{Pattern: "nando", Name: "Nando's", Category: models.CategoryDining},

		// Transport
		{Pattern: "uber", Name: "Uber", Category: models.CategoryTransport, Subcategory: "rideshare"},
		{Pattern: "trainline", Name: "Trainline", Category: models.CategoryTransport, Subcategory: "rail"},
		{Pattern: "tfl travel", Name: "Transport for London", Category: models.CategoryTransport},
		{Pattern: "shell", Name: "Shell", Category: models.CategoryTransport, Subcategory: "fuel"},
		{Pattern: "esso", Name: "Esso", Category: models.CategoryTransport, Subcategory: "fuel"},
		{Pattern: "bp ", Name: "BP", Category: models.CategoryTransport, Subcategory: "fuel"},

		// Shopping
		{Pattern: "amazon", Name: "Amazon", Category: models.CategoryShopping},
		{Pattern: "ebay", Name: "eBay", Category: models.CategoryShopping},
		{Pattern: "argos", Name: "Argos", Category: models.CategoryShopping},
		{Pattern: "john lewis", Name: "John Lewis", Category: models.CategoryShopping},
		{Pattern: "ikea", Name: "IKEA", Category: models.CategoryShopping, Subcategory: "furniture"},
		{Pattern: "paypal", Name: "PayPal", Category: models.CategoryShopping},

		// Utilities and telecom
		{Pattern: "british gas", Name: "British Gas", Category: models.CategoryUtilities, IsSubscription: true},
		{Pattern: "edf energy", Name: "EDF Energy", Category: models.CategoryUtilities, IsSubscription: true},
		{Pattern: "octopus energy", Name: "Octopus Energy", Category: models.CategoryUtilities, IsSubscription: true},
		{Pattern: "thames water", Name: "Thames Water", Category: models.CategoryUtilities, IsSubscription: true},
		{Pattern: "vodafone", Name: "Vodafone", Category: models.CategoryUtilities, Subcategory: "mobile", IsSubscription: true},
		{Pattern: "o2", Name: "O2", Category: models.CategoryUtilities, Subcategory: "mobile", IsSubscription: true},
		{Pattern: "ee limited", Name: "EE", Category: models.CategoryUtilities, Subcategory: "mobile", IsSubscription: true},
		{Pattern: "virgin media", Name: "Virgin Media", Category: models.CategoryUtilities, Subcategory: "broadband", IsSubscription: true},
		{Pattern: "sky digital", Name: "Sky", Category: models.CategoryUtilities, Subcategory: "broadband", IsSubscription: true},

		// Health and fitness
		{Pattern: "boots", Name: "Boots", Category: models.CategoryHealth, Subcategory: "pharmacy"},
		{Pattern: "puregym", Name: "PureGym", Category: models.CategoryHealth, Subcategory: "gym", IsSubscription: true},
		{Pattern: "the gym group", Name: "The Gym Group", Category: models.CategoryHealth, Subcategory: "gym", IsSubscription: true},
	}
}

// DefaultCategories is the compiled-in category keyword table, evaluated in
// declared order: first substring hit wins.
func DefaultCategories() []models.CategoryConfig {
	return []models.CategoryConfig{
		{Name: models.CategoryGroceries, Keywords: []string{
			"supermarket", "grocery", "groceries", "food store", "mini market", "convenience store"}},
		{Name: models.CategoryCoffee, Keywords: []string{
			"coffee", "cafe", "espresso", "bakery"}},
		{Name: models.CategoryDining, Keywords: []string{
			"restaurant", "takeaway", "take away", "pizzeria", "kebab", "sushi", "diner", "bistro", "pub "}},
		{Name: models.CategoryTransport, Keywords: []string{
			"rail", "train", "bus ", "taxi", "parking", "petrol", "fuel", "toll", "airline", "airways"}},
		{Name: models.CategoryRentMortgage, Keywords: []string{
			"rent", "mortgage", "letting", "landlord"}},
		{Name: models.CategoryUtilities, Keywords: []string{
			"electric", "energy", "gas bill", "water", "broadband", "council tax", "insurance premium"}},
		{Name: models.CategoryInsurance, Keywords: []string{
			"insurance", "assurance", "policy"}},
		{Name: models.CategoryHealth, Keywords: []string{
			"pharmacy", "dental", "doctor", "clinic", "optician", "gym"}},
		{Name: models.CategoryEntertainment, Keywords: []string{
			"cinema", "theatre", "concert", "tickets", "gaming", "steam"}},
		{Name: models.CategoryShopping, Keywords: []string{
			"retail", "store", "clothing", "fashion", "department"}},
		{Name: models.CategoryFees, Keywords: []string{
			"overdraft", "interest charged", "account fee", "service charge", "atm fee"}},
	}
}
