// Package recurrence detects repeating transactions across a statement and
// flags them as subscriptions. Transactions are grouped by a normalized
// description prefix and rounded amount, then the spacing of each group's
// dates is compared against known billing cadences.
package recurrence

import (
	"sort"
	"strings"

	"finledger/statement-parser/internal/currencyutils"
	"finledger/statement-parser/internal/dateutils"
	"finledger/statement-parser/internal/logging"
	"finledger/statement-parser/internal/models"
)

const (
	// groupPrefixLen is how much of the description identifies a merchant
	// for grouping. Statement descriptions carry trailing reference noise,
	// so only the leading characters are stable across months.
	groupPrefixLen = 12

	// minOccurrences is the smallest group worth testing for a cadence. A
	// pair already carries one measurable gap.
	minOccurrences = 2

	// applyThreshold is the confidence above which a detected cadence marks
	// the group's transactions as subscriptions.
	applyThreshold = 0.7
)

// interval describes one known billing cadence: a target gap in days, a
// tolerance around it, and the confidence a match earns.
type interval struct {
	name       string
	days       float64
	tolerance  float64
	confidence float64
}

// intervals is checked longest first so an annual charge is not mistaken for
// twelve sloppy quarters.
var intervals = []interval{
	{name: "annual", days: 365, tolerance: 15, confidence: 0.9},
	{name: "quarterly", days: 90, tolerance: 7, confidence: 0.85},
	{name: "monthly", days: 30, tolerance: 3, confidence: 0.9},
	{name: "biweekly", days: 14, tolerance: 2, confidence: 0.85},
	{name: "weekly", days: 7, tolerance: 1, confidence: 0.85},
}

// Pattern is one detected recurring charge.
type Pattern struct {
	Description string
	Cadence     string
	Confidence  float64
	Occurrences int
}

// Detector finds recurring transaction groups.
type Detector struct {
	logger logging.Logger
}

// New creates a Detector.
func New(logger logging.Logger) *Detector {
	return &Detector{logger: logger}
}

type groupKey struct {
	prefix      string
	amountMajor int64
}

// detect returns the recurring patterns present in transactions, keyed by
// the group they were found in.
func (d *Detector) detect(transactions []models.ParsedTransaction) map[groupKey]Pattern {
	groups := make(map[groupKey][]int)
	for i, tx := range transactions {
		if tx.Date == "" {
			continue
		}
		groups[keyFor(tx)] = append(groups[keyFor(tx)], i)
	}

	patterns := make(map[groupKey]Pattern)
	for key, indices := range groups {
		if len(indices) < minOccurrences {
			continue
		}

		dates := make([]string, 0, len(indices))
		for _, i := range indices {
			dates = append(dates, transactions[i].Date)
		}
		sort.Strings(dates)

		cadence, confidence, ok := matchCadence(dates)
		if !ok {
			continue
		}

		d.logger.WithFields(
			logging.Field{Key: logging.FieldDescription, Value: key.prefix},
			logging.Field{Key: "cadence", Value: cadence},
			logging.Field{Key: logging.FieldConfidence, Value: confidence},
			logging.Field{Key: logging.FieldCount, Value: len(indices)},
		).Debug("Detected recurring pattern")

		patterns[key] = Pattern{
			Description: key.prefix,
			Cadence:     cadence,
			Confidence:  confidence,
			Occurrences: len(indices),
		}
	}
	return patterns
}

// Apply runs detection and marks the members of each confident pattern as
// subscriptions in place.
func (d *Detector) Apply(transactions []models.ParsedTransaction) []Pattern {
	patterns := d.detect(transactions)

	applied := make([]Pattern, 0, len(patterns))
	for key, pattern := range patterns {
		if pattern.Confidence <= applyThreshold {
			continue
		}
		for i := range transactions {
			if transactions[i].Date != "" && keyFor(transactions[i]) == key {
				transactions[i].IsSubscription = true
			}
		}
		applied = append(applied, pattern)
	}

	sort.Slice(applied, func(i, j int) bool {
		return applied[i].Description < applied[j].Description
	})
	return applied
}

func keyFor(tx models.ParsedTransaction) groupKey {
	prefix := strings.ToLower(strings.TrimSpace(tx.Description))
	if len(prefix) > groupPrefixLen {
		prefix = prefix[:groupPrefixLen]
	}
	return groupKey{
		prefix:      prefix,
		amountMajor: currencyutils.RoundToMajor(tx.AmountMinorUnits),
	}
}

// matchCadence compares the mean gap between consecutive dates against the
// interval table. Dates must be sorted ISO strings.
func matchCadence(dates []string) (string, float64, bool) {
	gaps := make([]float64, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		days, err := dateutils.DaysBetween(dates[i-1], dates[i])
		if err != nil {
			return "", 0, false
		}
		gaps = append(gaps, float64(days))
	}

	var sum float64
	for _, g := range gaps {
		sum += g
	}
	mean := sum / float64(len(gaps))

	for _, iv := range intervals {
		if mean >= iv.days-iv.tolerance && mean <= iv.days+iv.tolerance {
			return iv.name, iv.confidence, true
		}
	}
	return "", 0, false
}
