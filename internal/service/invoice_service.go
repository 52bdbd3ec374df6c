package service

import (
	"fmt"
	"time"

	"ascforge/internal/brand"
	"ascforge/internal/dataset"
	"ascforge/internal/domain"
	"ascforge/internal/invoice"
	"ascforge/internal/layout"
	"ascforge/internal/render/xlsx"
)

// InvoiceService runs the full batch transform: validate the dataset,
// group it by service centre, and produce one rendered invoice plus a
// raw-data echo per centre.
type InvoiceService interface {
	Brands() []string
	Generate(ds *dataset.Dataset, brandName string) (*invoice.Batch, error)
}

type invoiceService struct {
	now func() time.Time
}

// NewInvoiceService creates the default InvoiceService implementation.
func NewInvoiceService() InvoiceService {
	return &invoiceService{now: time.Now}
}

func (s *invoiceService) Brands() []string {
	return brand.Names()
}

// Generate processes the whole dataset in one pass. It either returns a
// complete batch or an error with no partial results: a failure in any
// group discards everything.
func (s *invoiceService) Generate(ds *dataset.Dataset, brandName string) (*invoice.Batch, error) {
	rule, err := brand.Lookup(brandName)
	if err != nil {
		return nil, err
	}
	if err := validateSchema(ds, rule); err != nil {
		return nil, err
	}
	if ds.Len() == 0 {
		return nil, domain.ErrEmptyDataset
	}

	amountColumn := rule.ResolveAmountColumn(ds.Schema())
	now := s.now()

	groups := ds.GroupBy(rule.EntityColumn)
	batch := &invoice.Batch{Brand: rule.Name, Results: make([]invoice.EntityInvoice, 0, len(groups))}

	for _, grp := range groups {
		res, err := s.generateOne(grp, rule, amountColumn, now)
		if err != nil {
			return nil, fmt.Errorf("entity %q: %w", grp.Key, err)
		}
		batch.Results = append(batch.Results, *res)
	}
	return batch, nil
}

func (s *invoiceService) generateOne(grp dataset.Group, rule brand.Rule, amountColumn string, now time.Time) (*invoice.EntityInvoice, error) {
	totals, err := invoice.ComputeTotals(grp.Rows, rule, grp.Key, amountColumn)
	if err != nil {
		return nil, err
	}
	items, err := invoice.AggregateItems(grp.Rows, rule, amountColumn)
	if err != nil {
		return nil, err
	}

	model := invoice.BuildModel(grp.Rows, rule, grp.Key, items, totals, now)
	doc, err := xlsx.Encode(layout.Build(model, rule))
	if err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}
	raw, err := grp.Rows.WriteXLSX()
	if err != nil {
		return nil, fmt.Errorf("echo raw data: %w", err)
	}

	return &invoice.EntityInvoice{
		Entity:        grp.Key,
		InvoiceNumber: model.InvoiceNumber,
		Records:       grp.Rows.Len(),
		TotalAmount:   totals.GrossAmount.Round(2),
		Document:      doc,
		RawData:       raw,
	}, nil
}

// validateSchema checks every required column, and the entity column
// redundantly since a rule need not list it, before any computation runs.
func validateSchema(ds *dataset.Dataset, rule brand.Rule) error {
	var missing []string
	for _, col := range rule.RequiredColumns {
		if !ds.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &domain.SchemaError{Missing: missing}
	}
	if !ds.HasColumn(rule.EntityColumn) {
		return &domain.SchemaError{Missing: []string{rule.EntityColumn}}
	}
	return nil
}
