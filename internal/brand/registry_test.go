package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ascforge/internal/domain"
)

func TestLookup_Known(t *testing.T) {
	rule, err := Lookup("Amazon")
	require.NoError(t, err)
	assert.Equal(t, "Amazon", rule.Name)
	assert.Equal(t, "ASC Name", rule.EntityColumn)
	assert.True(t, rule.HasAdvanceSection)
	assert.Equal(t, "Earning", rule.AmountColumn())
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("Nokia")
	assert.ErrorIs(t, err, domain.ErrBrandUnknown)
}

func TestNames_Order(t *testing.T) {
	assert.Equal(t, []string{"Amazon", "Harman", "Philips", "LifeLong", "CandorCRM"}, Names())
}

// Every rule's required columns must cover the entity column and the
// primary amount alias, or validation could pass a dataset the
// calculators cannot use.
func TestRules_RequiredColumnsCoverEntityAndAmount(t *testing.T) {
	for _, name := range Names() {
		rule, err := Lookup(name)
		require.NoError(t, err)

		required := make(map[string]bool, len(rule.RequiredColumns))
		for _, c := range rule.RequiredColumns {
			required[c] = true
		}
		assert.True(t, required[rule.EntityColumn], "%s: entity column not required", name)
		assert.True(t, required[rule.AmountColumn()], "%s: amount column not required", name)
		assert.NotEmpty(t, rule.DocumentTitle, name)
		assert.NotEmpty(t, rule.PeriodBanner, name)
		assert.NotEmpty(t, rule.ServiceCode, name)
		assert.NotEmpty(t, rule.Declaration, name)
	}
}

func TestRules_BrandToggles(t *testing.T) {
	freelancer := map[string]bool{"Harman": true, "LifeLong": true}
	for _, name := range Names() {
		rule, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, freelancer[name], rule.FreelancerZeroTax, name)
		assert.Equal(t, name == "Amazon", rule.HasAdvanceSection, name)
		assert.Equal(t, name == "LifeLong", rule.LineSpacing, name)
		assert.Equal(t, name == "CandorCRM", rule.AlternateSchema, name)
	}
}

func TestResolveAmountColumn(t *testing.T) {
	rule := Rule{AmountAliases: []string{"Final Amount", "Amount"}}

	assert.Equal(t, "Final Amount", rule.ResolveAmountColumn(map[string]bool{"Final Amount": true}))
	assert.Equal(t, "Amount", rule.ResolveAmountColumn(map[string]bool{"Amount": true}))
	// Nothing matches: fall back to the primary alias.
	assert.Equal(t, "Final Amount", rule.ResolveAmountColumn(map[string]bool{"Other": true}))
}
