package bankdetect

import (
	"strings"
	"testing"

	"finledger/statement-parser/internal/dateutils"
	"finledger/statement-parser/internal/logging"

	"github.com/stretchr/testify/assert"
)

func TestDetect_HeaderWordBoundary(t *testing.T) {
	logger := &logging.MockLogger{}

	tests := []struct {
		name string
		text string
		want ProfileID
	}{
		{name: "hsbc header", text: "HSBC Bank plc\nStatement of Account\n01/05/2025 TESCO 45.20", want: ProfileHSBC},
		{name: "barclays header", text: "Barclays Bank UK PLC\nYour statement", want: ProfileBarclays},
		{name: "monzo header", text: "Monzo Bank Limited statement", want: ProfileMonzo},
		{name: "natwest header", text: "NatWest — National Westminster Bank", want: ProfileNatWest},
		{name: "chase header", text: "CHASE\nJPMorgan Chase Bank, N.A.", want: ProfileChase},
		{name: "amex header", text: "American Express Card Statement", want: ProfileAmex},
		{name: "unknown bank", text: "Some Credit Union\n01/05/2025 SHOP 1.00", want: ProfileGeneric},
		{name: "empty text", text: "", want: ProfileGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text, logger))
		})
	}
}

func TestDetect_PartialWordDoesNotMatchHeader(t *testing.T) {
	logger := &logging.MockLogger{}

	// "natwesterly" contains "natwest" but not on a word boundary, and no
	// other indicator appears, so the substring fallback eventually fires.
	// A word like "chased" must not select Chase from the header pass while
	// a genuine word-boundary match elsewhere wins.
	text := "Unchased Finance Ltd\n" + "HSBC statement services\n"
	assert.Equal(t, ProfileHSBC, Detect(text, logger))
}

func TestDetect_SubstringFallbackBeyondHeader(t *testing.T) {
	logger := &logging.MockLogger{}

	// Bank name appears only after the 500-character header window.
	padding := strings.Repeat("transaction line filler text ", 30)
	text := padding + "\nissued by monzo bank"
	assert.Equal(t, ProfileMonzo, Detect(text, logger))
}

func TestDetect_PriorityOrderIsStable(t *testing.T) {
	logger := &logging.MockLogger{}

	// Both appear in the header; the registry order decides.
	text := "HSBC and Barclays joint statement"
	assert.Equal(t, ProfileHSBC, Detect(text, logger))
}

func TestLookup(t *testing.T) {
	assert.Equal(t, "HSBC", Lookup(ProfileHSBC).DisplayName)
	assert.Equal(t, dateutils.OrderMonthFirst, Lookup(ProfileChase).DateOrder)
	assert.Equal(t, ProfileGeneric, Lookup(ProfileID("nonexistent")).ID)
	assert.Equal(t, ProfileGeneric, Lookup(ProfileGeneric).ID)
}

func TestProfiles_AllCarryPatterns(t *testing.T) {
	for _, p := range Profiles() {
		assert.NotEmpty(t, p.TransactionPatterns, "profile %s has no patterns", p.ID)
		assert.NotEmpty(t, p.Indicators, "profile %s has no indicators", p.ID)
		for i, spec := range p.TransactionPatterns {
			assert.NotNil(t, spec.Re, "profile %s pattern %d is nil", p.ID, i)
			assert.Greater(t, spec.ConfidenceScale, 0.0)
		}
	}
	assert.NotEmpty(t, Generic().TransactionPatterns)
}
