// Package dateutils normalizes the date formats that appear on bank
// statements to ISO-8601 calendar dates. Statement dates are locale-ambiguous
// ("01/05/2025" reads differently in London and New York), so normalization
// takes a DateOrder hint from the detected bank profile and falls back to the
// ">12 means day" magnitude heuristic.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayoutISO is the output layout for all normalized dates.
const DateLayoutISO = "2006-01-02"

// DateOrder expresses which component comes first in an ambiguous numeric
// date. UK banks print day-first, US banks month-first.
type DateOrder int

const (
	// OrderUnknown applies only the magnitude heuristic.
	OrderUnknown DateOrder = iota
	// OrderDayFirst treats ##/##/#### as DD/MM/YYYY when ambiguous.
	OrderDayFirst
	// OrderMonthFirst treats ##/##/#### as MM/DD/YYYY when ambiguous.
	OrderMonthFirst
)

var monthsByName = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

var (
	numericDateRe   = regexp.MustCompile(`^(\d{1,4})[/\-.](\d{1,2})[/\-.](\d{1,4})$`)
	dayMonthYearRe  = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]{3,9})\.?\s+(\d{2,4})$`)
	monthDayRe      = regexp.MustCompile(`^([A-Za-z]{3,9})\.?\s+(\d{1,2})$`)
	dayMonthRe      = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]{3,9})\.?$`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// NormalizeDate converts a raw statement date string to ISO-8601. The order
// hint resolves ambiguous numeric dates where both components are <= 12;
// unrecognized input returns an error and the caller treats the record as
// low confidence.
func NormalizeDate(raw string, order DateOrder) (string, error) {
	cleaned := whitespaceRe.ReplaceAllString(strings.TrimSpace(raw), " ")
	if cleaned == "" {
		return "", fmt.Errorf("empty date string")
	}

	// Already ISO.
	if t, err := time.Parse(DateLayoutISO, cleaned); err == nil {
		return t.Format(DateLayoutISO), nil
	}

	if m := numericDateRe.FindStringSubmatch(cleaned); m != nil {
		return normalizeNumeric(m[1], m[2], m[3], order)
	}

	if m := dayMonthYearRe.FindStringSubmatch(cleaned); m != nil {
		month, ok := monthsByName[strings.ToLower(m[2])]
		if !ok {
			return "", fmt.Errorf("unknown month name %q", m[2])
		}
		day, _ := strconv.Atoi(m[1])
		year := expandYear(atoi(m[3]))
		return buildDate(year, month, day)
	}

	// Year-less "Mon DD" and "DD Mon": assume the current calendar year.
	if m := monthDayRe.FindStringSubmatch(cleaned); m != nil {
		if month, ok := monthsByName[strings.ToLower(m[1])]; ok {
			day, _ := strconv.Atoi(m[2])
			return buildDate(time.Now().Year(), month, day)
		}
	}
	if m := dayMonthRe.FindStringSubmatch(cleaned); m != nil {
		if month, ok := monthsByName[strings.ToLower(m[2])]; ok {
			day, _ := strconv.Atoi(m[1])
			return buildDate(time.Now().Year(), month, day)
		}
	}

	return "", fmt.Errorf("unrecognized date format %q", raw)
}

func normalizeNumeric(first, second, third string, order DateOrder) (string, error) {
	a, b, c := atoi(first), atoi(second), atoi(third)

	// YYYY-MM-DD with any separator.
	if len(first) == 4 {
		return buildDate(a, time.Month(b), c)
	}

	year := expandYear(c)

	var day, month int
	switch {
	case a > 12 && b <= 12:
		day, month = a, b
	case b > 12 && a <= 12:
		day, month = b, a
	case order == OrderDayFirst:
		day, month = a, b
	default:
		// Month-first covers OrderMonthFirst and the unknown case; MM/DD is
		// the more common layout among the profiles that omit a hint.
		day, month = b, a
	}

	return buildDate(year, time.Month(month), day)
}

func buildDate(year int, month time.Month, day int) (string, error) {
	if month < time.January || month > time.December {
		return "", fmt.Errorf("month out of range: %d", month)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. day 32 becomes next month); reject
	// anything that moved.
	if t.Day() != day || t.Month() != month || t.Year() != year {
		return "", fmt.Errorf("invalid calendar date %d-%d-%d", year, month, day)
	}
	return t.Format(DateLayoutISO), nil
}

// expandYear maps two-digit years onto 2000-2099.
func expandYear(year int) int {
	if year < 100 {
		return 2000 + year
	}
	return year
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// DaysBetween returns the whole days from one ISO date to another.
func DaysBetween(fromISO, toISO string) (int, error) {
	from, err := time.Parse(DateLayoutISO, fromISO)
	if err != nil {
		return 0, err
	}
	to, err := time.Parse(DateLayoutISO, toISO)
	if err != nil {
		return 0, err
	}
	return int(to.Sub(from).Hours() / 24), nil
}
