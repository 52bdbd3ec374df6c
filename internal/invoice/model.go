package invoice

import (
	"fmt"
	"strings"
	"time"

	"ascforge/internal/brand"
	"ascforge/internal/dataset"
)

// periodColumns are checked in order for a date the billing period can be
// derived from. The first row's first parseable value wins.
var periodColumns = []string{"order_day", "invoice_date", "appointment_start_time"}

// dateLayouts are the cell formats accepted for period dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01-02-06",
	"1/2/06 15:04",
	"01/02/2006",
	"02-Jan-2006",
}

// Model aggregates everything the layout engine needs for one invoice.
// Built once per entity group and not mutated afterwards.
type Model struct {
	Entity        string
	Address       string
	OwnerName     string
	ContactNo     string
	PANNo         string
	GSTNo         string
	InvoiceNumber string
	InvoiceDate   string
	PeriodLabel   string
	Items         []LineItem
	Totals        Totals
}

// BuildModel assembles the invoice model for one entity group. Identity
// and contact fields come from the group's first row; now anchors the
// invoice date and all fallbacks.
func BuildModel(rows *dataset.Dataset, rule brand.Rule, entity string, items []LineItem, totals Totals, now time.Time) *Model {
	return &Model{
		Entity:        entity,
		Address:       rows.Value(0, "Address"),
		OwnerName:     rows.Value(0, "Owner Name"),
		ContactNo:     rows.Value(0, "Contact No."),
		PANNo:         rows.Value(0, "PAN No."),
		GSTNo:         rows.Value(0, "GST No."),
		InvoiceNumber: invoiceNumber(rows, entity, now),
		InvoiceDate:   now.Format("02-Jan-2006"),
		PeriodLabel:   periodLabel(rows, now),
		Items:         items,
		Totals:        totals,
	}
}

// EntityDetails renders the top-left details block. The owner/contact
// line is omitted for rules that exclude it.
func (m *Model) EntityDetails(rule brand.Rule) string {
	if rule.ExcludeContact {
		return m.Entity + "\n" + m.Address
	}
	return fmt.Sprintf("%s\n%s\nName: %s Mob. No.: %s", m.Entity, m.Address, m.OwnerName, m.ContactNo)
}

// invoiceNumber takes the dataset's value when present, else derives a
// dated fallback from the entity name.
func invoiceNumber(rows *dataset.Dataset, entity string, now time.Time) string {
	if n := strings.TrimSpace(rows.Value(0, "Invoice Number")); n != "" {
		return n
	}
	prefix := []rune(entity)
	if len(prefix) > 5 {
		prefix = prefix[:5]
	}
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), string(prefix))
}

// periodLabel derives the "Month Year" billing-period label from the first
// row of the first recognizable date column, defaulting to the current
// month.
func periodLabel(rows *dataset.Dataset, now time.Time) string {
	for _, col := range periodColumns {
		raw := strings.TrimSpace(rows.Value(0, col))
		if raw == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.Format("January 2006")
			}
		}
	}
	return now.Format("January 2006")
}
