package invoice

import (
	"strings"

	"github.com/shopspring/decimal"

	"ascforge/internal/brand"
	"ascforge/internal/dataset"
)

// fallbackDescription labels the single line item produced when the
// grouping column is absent or entirely empty, and any partition whose
// group value is blank.
const fallbackDescription = "Services"

// LineItem is one row of the invoice's itemized table.
type LineItem struct {
	Description string
	ServiceCode string
	Quantity    int64
	Amount      decimal.Decimal
	// Rate is only populated for the alternate table schema: the first
	// row's amount, taken as the per-unit rate of the partition.
	Rate decimal.Decimal
}

// AggregateItems builds the line items for one entity's rows. When the
// rule's group column exists and carries at least one value, one item is
// produced per distinct group value in first-appearance order; otherwise a
// single fallback item summarizes the whole group.
func AggregateItems(rows *dataset.Dataset, rule brand.Rule, amountColumn string) ([]LineItem, error) {
	if rule.GroupColumn == "" || !rows.HasValues(rule.GroupColumn) {
		item, err := buildItem(rows, rule, fallbackDescription, amountColumn)
		if err != nil {
			return nil, err
		}
		return []LineItem{item}, nil
	}

	parts := rows.GroupBy(rule.GroupColumn)
	items := make([]LineItem, 0, len(parts))
	for _, part := range parts {
		desc := strings.TrimSpace(part.Key)
		if desc == "" {
			desc = fallbackDescription
		}
		item, err := buildItem(part.Rows, rule, desc, amountColumn)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func buildItem(rows *dataset.Dataset, rule brand.Rule, description, amountColumn string) (LineItem, error) {
	quantity := int64(rows.Len())
	if rule.QuantityColumn != "" && rows.HasColumn(rule.QuantityColumn) {
		q, err := rows.SumDecimal(rule.QuantityColumn)
		if err != nil {
			return LineItem{}, err
		}
		quantity = q.IntPart()
	}

	amount, err := rows.SumDecimal(amountColumn)
	if err != nil {
		return LineItem{}, err
	}

	item := LineItem{
		Description: description,
		ServiceCode: rule.ServiceCode,
		Quantity:    quantity,
		Amount:      round2(amount),
	}

	if rule.AlternateSchema && rows.Len() > 0 {
		rate, err := rows.Decimal(0, amountColumn)
		if err != nil {
			return LineItem{}, err
		}
		item.Rate = round2(rate)
	}
	return item, nil
}
