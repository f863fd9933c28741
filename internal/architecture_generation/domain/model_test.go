package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_DropsBlankEntries(t *testing.T) {
	in := Requirements{
		SystemName:              "Shop",
		MainFeatures:            []string{"", "Catalog", "  ", " Checkout "},
		TechnicalConstraints:    []string{""},
		Preferences:             []string{"\t"},
		PerformanceRequirements: []string{"< 200ms"},
		SecurityRequirements:    nil,
		Integrations:            []string{"Stripe", "\n"},
	}
	out := in.Clean()

	assert.Equal(t, []string{"Catalog", " Checkout "}, out.MainFeatures)
	assert.Empty(t, out.TechnicalConstraints)
	assert.Empty(t, out.Preferences)
	assert.Equal(t, []string{"< 200ms"}, out.PerformanceRequirements)
	assert.Empty(t, out.SecurityRequirements)
	assert.Equal(t, []string{"Stripe"}, out.Integrations)

	// the input is left untouched
	assert.Len(t, in.MainFeatures, 4)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Requirements{Purpose: "x"}.Validate(), ErrSystemNameRequired)
	assert.ErrorIs(t, Requirements{SystemName: "  ", Purpose: "x"}.Validate(), ErrSystemNameRequired)
	assert.ErrorIs(t, Requirements{SystemName: "Shop"}.Validate(), ErrPurposeRequired)
	assert.NoError(t, Requirements{SystemName: "Shop", Purpose: "Sell"}.Validate())
}
