// Package invoice computes the financial model of one invoice: totals,
// line items, and the amount spelled out in words. All money is exact
// fixed-point decimal; every rounding point rounds half up to two places.
package invoice

import (
	"strings"

	"github.com/shopspring/decimal"

	"ascforge/internal/brand"
	"ascforge/internal/dataset"
)

// taxRate is the GST rate applied to every non-zero-rated invoice,
// regardless of the interest rate quoted in the declaration text.
var taxRate = decimal.New(18, -2)

// round2 rounds to two decimal places. decimal.Round rounds half away
// from zero, which for the non-negative amounts handled here is exactly
// the half-up behaviour tax rounding requires.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Totals is the computed financial summary for one entity group.
// Immutable once derived.
type Totals struct {
	Quantity      int64
	GrossAmount   decimal.Decimal
	AdvanceAmount decimal.Decimal
	Tax           decimal.Decimal
	InvoiceAmount decimal.Decimal
	NetAmount     decimal.Decimal
	ZeroRated     bool
	AmountInWords string
}

// ComputeTotals derives the Totals for one entity's rows. amountColumn is
// the alias already resolved against the dataset schema. The tax is
// computed on the unrounded gross and rounded once; the invoice amount is
// rounded again after adding the tax. Missing optional columns (quantity,
// advance) degrade silently to row counts and zero.
func ComputeTotals(rows *dataset.Dataset, rule brand.Rule, entity, amountColumn string) (Totals, error) {
	zeroRated := rule.FreelancerZeroTax && strings.Contains(entity, brand.FreelancerMarker)

	gross, err := rows.SumDecimal(amountColumn)
	if err != nil {
		return Totals{}, err
	}

	quantity := int64(rows.Len())
	if rule.QuantityColumn != "" && rows.HasColumn(rule.QuantityColumn) {
		q, err := rows.SumDecimal(rule.QuantityColumn)
		if err != nil {
			return Totals{}, err
		}
		quantity = q.IntPart()
	}

	advance := decimal.Zero
	if rule.HasAdvanceSection && rule.AdvanceColumn != "" {
		advance, err = rows.SumDecimal(rule.AdvanceColumn)
		if err != nil {
			return Totals{}, err
		}
	}

	tax := decimal.Zero
	if !zeroRated {
		tax = round2(gross.Mul(taxRate))
	}
	invoiceAmount := round2(gross.Add(tax))

	netAmount := invoiceAmount
	if rule.HasAdvanceSection {
		netAmount = round2(invoiceAmount.Sub(advance))
	}

	return Totals{
		Quantity:      quantity,
		GrossAmount:   gross,
		AdvanceAmount: advance,
		Tax:           tax,
		InvoiceAmount: invoiceAmount,
		NetAmount:     netAmount,
		ZeroRated:     zeroRated,
		AmountInWords: AmountInWords(invoiceAmount),
	}, nil
}
