// Package brand holds the per-brand invoicing rules. Every downstream
// component (totals, line items, layout) is brand-agnostic and driven
// entirely by the Rule record, so adding a brand is a data change here.
package brand

import (
	"ascforge/internal/domain"
)

// FreelancerMarker is the literal substring that marks a service centre as
// a freelancer. The containment check is case-sensitive.
const FreelancerMarker = "Free Lancer"

// Rule is the immutable configuration for one brand.
type Rule struct {
	Name string

	// EntityColumn identifies the billed service centre; one invoice is
	// produced per distinct value.
	EntityColumn string

	// RequiredColumns must all exist in the uploaded dataset. Always a
	// superset of {EntityColumn, AmountAliases[0]}.
	RequiredColumns []string

	// GroupColumn splits an entity's rows into line items. When absent or
	// entirely empty a single fallback "Services" item is produced.
	GroupColumn string

	// AmountAliases is the ordered list of acceptable amount-column names,
	// primary first. The column actually used is resolved once, against
	// the dataset schema, before any computation.
	AmountAliases []string

	// QuantityColumn, when set and present, is summed for quantities;
	// otherwise quantities fall back to row counts.
	QuantityColumn string

	// AdvanceColumn is summed into the advance-received figure. Only
	// meaningful when HasAdvanceSection is set.
	AdvanceColumn string

	// InterestRatePercent is the late-payment interest rate quoted in the
	// declaration text. Tax itself is always 18% unless zero-rated.
	InterestRatePercent int

	HasAdvanceSection bool
	FreelancerZeroTax bool
	LineSpacing       bool
	AlternateSchema   bool

	// ExcludeContact drops the owner name and phone line from the entity
	// details block.
	ExcludeContact bool

	DocumentTitle string
	// PeriodBanner is a fmt template with one %s for the period label.
	PeriodBanner string
	ServiceCode  string
	Declaration  string
	// CounterpartyLabel and CounterpartyText form the fixed buyer block.
	CounterpartyLabel string
	CounterpartyText  string
}

// AmountColumn returns the primary amount column name.
func (r Rule) AmountColumn() string {
	return r.AmountAliases[0]
}

// ResolveAmountColumn picks the first alias present in the schema. The
// primary alias is returned when none match; validation guarantees it
// exists for any dataset that reaches computation.
func (r Rule) ResolveAmountColumn(schema map[string]bool) string {
	for _, alias := range r.AmountAliases {
		if schema[alias] {
			return alias
		}
	}
	return r.AmountAliases[0]
}

const (
	declStandard = "Declaration:- We declare that this invoice shows the actual price of the goods/services described and that all particulars are true and correct.\n\n* In case of non reflection of the GST amount in GSTR-2B of RV Solutions Pvt. Ltd. within 30th-June of Next Financial year, we agree to pay RV Solutions Pvt. Ltd. the GST amount along with interest @18% p.a. on delayed payment."
	declTerms    = "Declaration:- We declare that this invoice shows the actual price of the goods/services described and that all particulars are true and correct.\n\nTerms: * In case of non reflection of the GST amount in GSTR-2B of RV Solutions Pvt. Ltd. within 30th-June of Next Financial year, we agree to pay RV Solutions Pvt. Ltd. the GST amount along with interest @24% p.a. on delayed payment."

	billToStandard = "Bill To,\nRV Solutions Private Limited.\nD-59, Sector-2, Gautam Buddh Nagar, Noida,\nUttar Pradesh Noida-201301."
	buyerCandor    = "Buyer\nRV Solutions Pvt. Ltd.\nD-59, Sector-2, District-Gautam Buddh Nagar, Noida,\nUttar Pradesh - 201301.\nContact No.-8588881737"
)

// names fixes the presentation order of supported brands.
var names = []string{"Amazon", "Harman", "Philips", "LifeLong", "CandorCRM"}

var registry = map[string]Rule{
	"Amazon": {
		Name:         "Amazon",
		EntityColumn: "ASC Name",
		RequiredColumns: []string{
			"ASC Name", "Earning", "COD", "quantity", "category",
			"Owner Name", "Contact No.", "PAN No.", "GST No.", "Address",
		},
		GroupColumn:         "category",
		AmountAliases:       []string{"Earning"},
		QuantityColumn:      "quantity",
		AdvanceColumn:       "COD",
		InterestRatePercent: 18,
		HasAdvanceSection:   true,
		DocumentTitle:       "Tax Invoice",
		PeriodBanner:        "Amazon Invoice Month of %s",
		ServiceCode:         "998715",
		Declaration:         declStandard,
		CounterpartyLabel:   "Bill To,",
		CounterpartyText:    billToStandard,
	},
	"Harman": {
		Name:         "Harman",
		EntityColumn: "ASC Name",
		RequiredColumns: []string{
			"ASC Name", "Description", "Call Charge",
			"Owner Name", "Contact No.", "PAN No.", "GST No.", "Address",
		},
		GroupColumn:         "Description",
		AmountAliases:       []string{"Call Charge"},
		InterestRatePercent: 24,
		FreelancerZeroTax:   true,
		DocumentTitle:       "Bill of Supply",
		PeriodBanner:        "Harman Invoice Month of %s",
		ServiceCode:         "998715",
		Declaration:         declTerms,
		CounterpartyLabel:   "Bill To,",
		CounterpartyText:    billToStandard,
	},
	"Philips": {
		Name:         "Philips",
		EntityColumn: "ASC Name",
		RequiredColumns: []string{
			"ASC Name", "Category", "Final Amount",
			"Owner Name", "Contact No.", "PAN No.", "GST No.", "Address",
		},
		GroupColumn:         "Category",
		AmountAliases:       []string{"Final Amount"},
		InterestRatePercent: 18,
		DocumentTitle:       "Tax Invoice",
		PeriodBanner:        "Philips Invoice Month of %s",
		ServiceCode:         "998715",
		Declaration:         declStandard,
		CounterpartyLabel:   "Bill To,",
		CounterpartyText:    billToStandard,
	},
	"LifeLong": {
		Name:         "LifeLong",
		EntityColumn: "ASC Name",
		RequiredColumns: []string{
			"ASC Name", "Description", "Final Amount",
			"Owner Name", "Contact No.", "PAN No.", "GST No.", "Address",
		},
		GroupColumn:         "Description",
		AmountAliases:       []string{"Final Amount"},
		InterestRatePercent: 24,
		FreelancerZeroTax:   true,
		LineSpacing:         true,
		DocumentTitle:       "Bill of Supply",
		PeriodBanner:        "LifeLong Invoice Month of %s",
		ServiceCode:         "998715",
		Declaration:         declTerms,
		CounterpartyLabel:   "Bill To,",
		CounterpartyText:    billToStandard,
	},
	"CandorCRM": {
		Name:         "CandorCRM",
		EntityColumn: "ASC Name",
		RequiredColumns: []string{
			"ASC Name", "Claim Status", "Amount",
			"PAN No.", "GST No.", "Address",
		},
		GroupColumn:         "Claim Status",
		AmountAliases:       []string{"Amount"},
		InterestRatePercent: 18,
		AlternateSchema:     true,
		ExcludeContact:      true,
		DocumentTitle:       "Tax Invoice",
		PeriodBanner:        "Honor/Acwo Claim Month of %s",
		ServiceCode:         "998729",
		Declaration:         declStandard,
		CounterpartyLabel:   "Buyer",
		CounterpartyText:    buyerCandor,
	},
}

// Lookup returns the rule for a brand name.
func Lookup(name string) (Rule, error) {
	rule, ok := registry[name]
	if !ok {
		return Rule{}, domain.ErrBrandUnknown
	}
	return rule, nil
}

// Names lists the supported brands in presentation order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
