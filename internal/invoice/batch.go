package invoice

import (
	"github.com/shopspring/decimal"
)

// EntityInvoice is the finished output for one service centre: the
// rendered invoice workbook, the verbatim raw-data echo, and the summary
// figures the host surfaces.
type EntityInvoice struct {
	Entity        string          `json:"entity"`
	InvoiceNumber string          `json:"invoice_number"`
	Records       int             `json:"records"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Document      []byte          `json:"-"`
	RawData       []byte          `json:"-"`
}

// Batch is the ordered result of one generation run. Results keeps the
// first-appearance order of the entity column, which downstream packaging
// relies on for deterministic output.
type Batch struct {
	Brand   string
	Results []EntityInvoice
}

// Get looks up an entity's result by name.
func (b *Batch) Get(entity string) (*EntityInvoice, bool) {
	for i := range b.Results {
		if b.Results[i].Entity == entity {
			return &b.Results[i], true
		}
	}
	return nil, false
}

// TotalRecords sums the record counts across all entities.
func (b *Batch) TotalRecords() int {
	n := 0
	for i := range b.Results {
		n += b.Results[i].Records
	}
	return n
}

// TotalAmount sums the gross amounts across all entities.
func (b *Batch) TotalAmount() decimal.Decimal {
	sum := decimal.Zero
	for i := range b.Results {
		sum = sum.Add(b.Results[i].TotalAmount)
	}
	return sum
}
