// Package bankdetect holds the static statement profiles for the banks the
// pipeline recognizes and selects the profile that matches a reconstructed
// document. Profiles are read-only after initialization; selection is a pure
// function of the document text.
package bankdetect

import (
	"regexp"

	"finledger/statement-parser/internal/dateutils"
)

// ProfileID identifies one recognized statement layout.
type ProfileID string

const (
	ProfileHSBC     ProfileID = "hsbc"
	ProfileBarclays ProfileID = "barclays"
	ProfileMonzo    ProfileID = "monzo"
	ProfileNatWest  ProfileID = "natwest"
	ProfileChase    ProfileID = "chase"
	ProfileAmex     ProfileID = "amex"
	ProfileGeneric  ProfileID = "generic"
)

// PatternSpec is one transaction line pattern. Patterns within a profile are
// tried in declared order; ConfidenceScale discounts matches from the looser
// fallbacks (primary 1.0, minus 0.1 per fallback step).
//
// Every pattern uses the named groups date, desc, amount and optionally ind
// (a trailing CR/DR indicator).
type PatternSpec struct {
	Name            string
	Re              *regexp.Regexp
	ConfidenceScale float64
}

// Profile is the immutable configuration for one bank's statement layout.
type Profile struct {
	ID                  ProfileID
	DisplayName         string
	Indicators          []string // lowercase substrings that identify the bank
	TransactionPatterns []PatternSpec
	AccountPattern      *regexp.Regexp
	PeriodPattern       *regexp.Regexp
	DateOrder           dateutils.DateOrder
}

// dateAtom matches the date formats that open a transaction line across the
// configured banks. Alternatives are ordered longest-first so the regexp
// engine prefers complete dates over year-less ones.
const dateAtom = `\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}` +
	`|\d{4}-\d{2}-\d{2}` +
	`|\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{2,4}` +
	`|\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?` +
	`|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2}`

const amountAtom = `-?[£$€]?[\d,]+\.\d{2}`

// looseAmountAtom also accepts whole-unit amounts without a decimal point,
// which some layouts render ("5" meaning 5.00).
const looseAmountAtom = `-?[£$€]?\d[\d,]*(?:\.\d{1,2})?`

var (
	accountRe = regexp.MustCompile(
		`(?i)(?:account|acct\.?)\s*(?:number|no\.?)?\s*[:#]?\s*([\d][\d\s-]{5,18}\d)`)
	sortCodeAccountRe = regexp.MustCompile(
		`(?i)account\s*:?\s*(\d{2}-\d{2}-\d{2}\s+\d{6,10})`)
	periodRe = regexp.MustCompile(
		`(?i)(?:statement\s+period|period|from)\s*:?\s+(` + dateAtom + `)\s+(?:to|through|-|–)\s+(` + dateAtom + `)`)
)

// standardPatterns builds the ladder shared by most bank layouts: a strict
// column-separated pattern with an optional CR/DR marker first, then
// progressively looser variants. Looser patterns carry a lower confidence
// scale so fallback matches are routed to review sooner.
func standardPatterns() []PatternSpec {
	return []PatternSpec{
		{
			Name: "columns-with-indicator",
			Re: regexp.MustCompile(`^(?P<date>` + dateAtom + `)\s+(?P<desc>.+?)\s{2,}(?P<amount>` +
				amountAtom + `)\s*(?P<ind>CR|DR|cr|dr)?$`),
			ConfidenceScale: 1.0,
		},
		{
			Name: "single-space-columns",
			Re: regexp.MustCompile(`^(?P<date>` + dateAtom + `)\s+(?P<desc>.+?)\s+(?P<amount>` +
				amountAtom + `)\s*(?P<ind>CR|DR|cr|dr)?$`),
			ConfidenceScale: 0.9,
		},
		{
			Name: "whole-unit-amount",
			Re: regexp.MustCompile(`^(?P<date>` + dateAtom + `)\s+(?P<desc>.+?)\s{2,}(?P<amount>` +
				looseAmountAtom + `)$`),
			ConfidenceScale: 0.8,
		},
		{
			Name: "last-number-on-line",
			Re: regexp.MustCompile(`^(?P<date>` + dateAtom + `)\s+(?P<desc>.+)\s(?P<amount>` +
				looseAmountAtom + `)$`),
			ConfidenceScale: 0.7,
		},
	}
}

// amexPatterns: American Express card statements have no CR/DR column; credits
// appear with a leading minus.
func amexPatterns() []PatternSpec {
	return []PatternSpec{
		{
			Name: "amex-columns",
			Re: regexp.MustCompile(`^(?P<date>` + dateAtom + `)\s+(?P<desc>.+?)\s{2,}(?P<amount>` +
				amountAtom + `)$`),
			ConfidenceScale: 1.0,
		},
		{
			Name: "amex-single-space",
			Re: regexp.MustCompile(`^(?P<date>` + dateAtom + `)\s+(?P<desc>.+?)\s+(?P<amount>` +
				amountAtom + `)$`),
			ConfidenceScale: 0.9,
		},
	}
}

// registry is the fixed priority order for detection. Generic is not listed;
// it is the fallback when nothing matches.
var registry = []Profile{
	{
		ID:                  ProfileHSBC,
		DisplayName:         "HSBC",
		Indicators:          []string{"hsbc"},
		TransactionPatterns: standardPatterns(),
		AccountPattern:      sortCodeAccountRe,
		PeriodPattern:       periodRe,
		DateOrder:           dateutils.OrderDayFirst,
	},
	{
		ID:                  ProfileBarclays,
		DisplayName:         "Barclays",
		Indicators:          []string{"barclays"},
		TransactionPatterns: standardPatterns(),
		AccountPattern:      accountRe,
		PeriodPattern:       periodRe,
		DateOrder:           dateutils.OrderDayFirst,
	},
	{
		ID:                  ProfileMonzo,
		DisplayName:         "Monzo",
		Indicators:          []string{"monzo"},
		TransactionPatterns: standardPatterns(),
		AccountPattern:      accountRe,
		PeriodPattern:       periodRe,
		DateOrder:           dateutils.OrderDayFirst,
	},
	{
		ID:                  ProfileNatWest,
		DisplayName:         "NatWest",
		Indicators:          []string{"natwest", "national westminster"},
		TransactionPatterns: standardPatterns(),
		AccountPattern:      accountRe,
		PeriodPattern:       periodRe,
		DateOrder:           dateutils.OrderDayFirst,
	},
	{
		ID:                  ProfileChase,
		DisplayName:         "Chase",
		Indicators:          []string{"chase", "jpmorgan"},
		TransactionPatterns: standardPatterns(),
		AccountPattern:      accountRe,
		PeriodPattern:       periodRe,
		DateOrder:           dateutils.OrderMonthFirst,
	},
	{
		ID:                  ProfileAmex,
		DisplayName:         "American Express",
		Indicators:          []string{"american express", "amex"},
		TransactionPatterns: amexPatterns(),
		AccountPattern:      accountRe,
		PeriodPattern:       periodRe,
		DateOrder:           dateutils.OrderMonthFirst,
	},
}

var genericProfile = Profile{
	ID:                  ProfileGeneric,
	DisplayName:         "Generic",
	Indicators:          nil,
	TransactionPatterns: standardPatterns(),
	AccountPattern:      accountRe,
	PeriodPattern:       periodRe,
	// The configured banks skew UK; without a header match, day-first is the
	// safer default for ambiguous numeric dates.
	DateOrder: dateutils.OrderDayFirst,
}

// Lookup returns the profile for an id, falling back to Generic.
func Lookup(id ProfileID) Profile {
	for _, p := range registry {
		if p.ID == id {
			return p
		}
	}
	return genericProfile
}

// Profiles returns the detection priority order (excluding Generic).
func Profiles() []Profile {
	return registry
}

// Generic returns the fallback profile.
func Generic() Profile {
	return genericProfile
}
