package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ascforge/internal/dataset"
)

var testNow = time.Date(2025, time.April, 10, 12, 0, 0, 0, time.UTC)

func TestBuildModel(t *testing.T) {
	ds := dataset.New(
		[]string{"ASC Name", "Amount", "Address", "Owner Name", "Contact No.", "PAN No.", "GST No.", "order_day"},
		[][]string{
			{"Alpha Services", "10", "12 MG Road, Noida", "R Kumar", "9876543210", "ABCDE1234F", "09ABCDE1234F1Z5", "2025-03-15"},
			{"Alpha Services", "5", "ignored", "ignored", "", "", "", "2025-04-01"},
		},
	)

	m := BuildModel(ds, testRule(), "Alpha Services", nil, Totals{}, testNow)
	assert.Equal(t, "12 MG Road, Noida", m.Address)
	assert.Equal(t, "R Kumar", m.OwnerName)
	assert.Equal(t, "ABCDE1234F", m.PANNo)
	assert.Equal(t, "09ABCDE1234F1Z5", m.GSTNo)
	assert.Equal(t, "10-Apr-2025", m.InvoiceDate)
	// Period comes from the first row's date, not the clock.
	assert.Equal(t, "March 2025", m.PeriodLabel)
}

func TestBuildModel_InvoiceNumber(t *testing.T) {
	ds := dataset.New(
		[]string{"ASC Name", "Invoice Number"},
		[][]string{{"Alpha", "HRM/2025/042"}},
	)
	m := BuildModel(ds, testRule(), "Alpha", nil, Totals{}, testNow)
	assert.Equal(t, "HRM/2025/042", m.InvoiceNumber)

	// No column: dated fallback from the entity name, five runes max.
	ds = dataset.New([]string{"ASC Name"}, [][]string{{"Alpha Services"}})
	m = BuildModel(ds, testRule(), "Alpha Services", nil, Totals{}, testNow)
	assert.Equal(t, "INV-20250410-Alpha", m.InvoiceNumber)
}

func TestBuildModel_PeriodFallsBackToNow(t *testing.T) {
	ds := dataset.New(
		[]string{"ASC Name", "order_day"},
		[][]string{{"Alpha", "not a date"}},
	)
	m := BuildModel(ds, testRule(), "Alpha", nil, Totals{}, testNow)
	assert.Equal(t, "April 2025", m.PeriodLabel)
}

func TestEntityDetails(t *testing.T) {
	m := &Model{
		Entity:    "Alpha Services",
		Address:   "12 MG Road",
		OwnerName: "R Kumar",
		ContactNo: "9876543210",
	}

	rule := testRule()
	assert.Equal(t, "Alpha Services\n12 MG Road\nName: R Kumar Mob. No.: 9876543210", m.EntityDetails(rule))

	rule.ExcludeContact = true
	assert.Equal(t, "Alpha Services\n12 MG Road", m.EntityDetails(rule))
}
