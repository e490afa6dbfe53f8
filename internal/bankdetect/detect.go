package bankdetect

import (
	"regexp"
	"strings"

	"finledger/statement-parser/internal/logging"
)

// headerWindow restricts the first detection pass to the statement header,
// where the issuing bank's name reliably appears.
const headerWindow = 500

var (
	punctRe      = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Detect scans the reconstructed document text for known bank indicators and
// returns the matching profile id, or ProfileGeneric when no bank matches.
//
// Two passes per indicator: a word-boundary match inside the header window
// first (precision: "natwest" inside another bank's marketing copy must not
// win), then a plain substring match across the whole document (recall:
// some statements only name the bank in the footer).
func Detect(text string, logger logging.Logger) ProfileID {
	normalized := normalize(text)
	header := normalized
	if len(header) > headerWindow {
		header = header[:headerWindow]
	}

	for _, profile := range registry {
		for _, indicator := range profile.Indicators {
			if matchWord(header, indicator) {
				logger.WithFields(
					logging.Field{Key: logging.FieldBank, Value: profile.DisplayName},
					logging.Field{Key: "indicator", Value: indicator},
				).Debug("Bank detected from statement header")
				return profile.ID
			}
		}
	}

	for _, profile := range registry {
		for _, indicator := range profile.Indicators {
			if strings.Contains(normalized, indicator) {
				logger.WithFields(
					logging.Field{Key: logging.FieldBank, Value: profile.DisplayName},
					logging.Field{Key: "indicator", Value: indicator},
				).Debug("Bank detected from document body")
				return profile.ID
			}
		}
	}

	logger.Debug("No bank indicator matched, using generic profile")
	return ProfileGeneric
}

// normalize lowercases, strips punctuation and collapses whitespace so
// indicator matching is insensitive to statement formatting.
func normalize(text string) string {
	lowered := strings.ToLower(text)
	lowered = punctRe.ReplaceAllString(lowered, " ")
	return whitespaceRe.ReplaceAllString(lowered, " ")
}

// matchWord reports whether indicator appears in text on word boundaries.
func matchWord(text, indicator string) bool {
	idx := 0
	for {
		pos := strings.Index(text[idx:], indicator)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(indicator)
		beforeOK := start == 0 || text[start-1] == ' '
		afterOK := end == len(text) || text[end] == ' '
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}
