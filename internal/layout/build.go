package layout

import (
	"fmt"

	"ascforge/internal/brand"
	"ascforge/internal/invoice"
)

// columns is the fixed grid width shared by both layout variants.
const columns = 4

// Issuer identity shown opposite the counterparty block on every invoice.
const (
	issuerPAN       = "AADCR9806P"
	issuerGST       = "09AADCR9806PJZL"
	issuerStateCode = "'09"
	issuerPlace     = "Uttar Pradesh"
)

// spacingRows is the count of blank, unstyled rows inserted between line
// items when the rule asks for line spacing.
const spacingRows = 3

// Build lays the invoice model out as a styled grid. Sections are stacked
// top to bottom, each builder consuming the current row cursor and
// returning the next free row, so brand-conditional sections shift
// everything below them without any fixed row numbers.
func Build(m *invoice.Model, rule brand.Rule) *Grid {
	g := NewGrid(columns)

	row := 0
	row = titleBar(g, row, rule)
	row = partyBlocks(g, row, m, rule)
	row = periodBanner(g, row, m, rule)
	row = itemTable(g, row, m, rule)
	row = totalsSection(g, row, m, rule)
	row = wordsSection(g, row, m)
	signatureSection(g, row, rule)

	applyWidths(g, rule)
	return g
}

// styleRange forces a border (and optionally the highlight fill) onto
// every cell of a region, creating empty cells where none were set.
// Merged regions need this because only their anchor carries a value.
func styleRange(g *Grid, row1, col1, row2, col2 int, fill bool) {
	for r := row1; r <= row2; r++ {
		for c := col1; c <= col2; c++ {
			cell, _ := g.Cell(r, c)
			cell.Border = true
			if fill {
				cell.Fill = true
			}
			g.Set(r, c, cell)
		}
	}
}

func titleBar(g *Grid, row int, rule brand.Rule) int {
	g.Set(row, 0, Cell{
		Value:  rule.DocumentTitle,
		Bold:   true,
		Size:   14,
		HAlign: AlignCenter,
		VAlign: AlignCenter,
	})
	g.AddMerge(row, 0, row, columns-1)
	styleRange(g, row, 0, row, columns-1, true)
	return row + 1
}

// labelValueRow writes a bold label in column C and its value in column D.
func labelValueRow(g *Grid, row int, label, value string) {
	g.Set(row, 2, Cell{Value: label, Bold: true, HAlign: AlignLeft, Border: true})
	g.Set(row, 3, Cell{Value: value, HAlign: AlignLeft, Border: true})
}

// detailsBlock merges the left two columns over height rows and fills them
// with wrapped top-left text.
func detailsBlock(g *Grid, row, height int, text string, bold bool) {
	g.Set(row, 0, Cell{Value: text, Bold: bold, HAlign: AlignLeft, VAlign: AlignTop, Wrap: true})
	g.AddMerge(row, 0, row+height-1, 1)
	styleRange(g, row, 0, row+height-1, 1, false)
}

// partyBlocks renders the entity-details block beside the invoice
// metadata, the alternate variant's service-code row, and the
// counterparty block beside the fixed issuer identity.
func partyBlocks(g *Grid, row int, m *invoice.Model, rule brand.Rule) int {
	detailsBlock(g, row, 4, m.EntityDetails(rule), false)
	meta := [][2]string{
		{"Invoice Number:", m.InvoiceNumber},
		{"Invoice Date:", m.InvoiceDate},
		{"PAN No.:", m.PANNo},
		{"GST No.:", m.GSTNo},
	}
	for i, pair := range meta {
		labelValueRow(g, row+i, pair[0], pair[1])
	}
	row += 4

	if rule.AlternateSchema {
		labelValueRow(g, row, "SAC Code:", rule.ServiceCode)
		row++
	}

	detailsBlock(g, row, 4, rule.CounterpartyText, rule.AlternateSchema)
	issuer := [][2]string{
		{"PAN No.:", issuerPAN},
		{"GST No.:", issuerGST},
		{"State Code:", issuerStateCode},
		{"Place of Supply:", issuerPlace},
	}
	for i, pair := range issuer {
		labelValueRow(g, row+i, pair[0], pair[1])
	}
	return row + 4
}

func periodBanner(g *Grid, row int, m *invoice.Model, rule brand.Rule) int {
	g.Set(row, 0, Cell{
		Value:  fmt.Sprintf(rule.PeriodBanner, m.PeriodLabel),
		Bold:   true,
		HAlign: AlignCenter,
		VAlign: AlignCenter,
	})
	g.AddMerge(row, 0, row, columns-1)
	styleRange(g, row, 0, row, columns-1, false)
	return row + 1
}

func itemTable(g *Grid, row int, m *invoice.Model, rule brand.Rule) int {
	headers := []string{"Description", "SAC Code", "Qty", "Amount"}
	aligns := []string{AlignLeft, AlignLeft, AlignCenter, AlignRight}
	if rule.AlternateSchema {
		headers = []string{"Description", "Quantity", "Rate", "Amount"}
		aligns = []string{AlignLeft, AlignCenter, AlignRight, AlignRight}
	}
	for c, h := range headers {
		g.Set(row, c, Cell{Value: h, Bold: true, HAlign: aligns[c], Border: true, Fill: true})
	}
	row++

	for i := range m.Items {
		item := &m.Items[i]
		g.Set(row, 0, Cell{Value: item.Description, HAlign: AlignLeft, Border: true})
		if rule.AlternateSchema {
			g.Set(row, 1, Cell{Value: item.Quantity, HAlign: AlignRight, Border: true})
			g.Set(row, 2, Cell{Value: item.Rate.InexactFloat64(), HAlign: AlignRight, Border: true, NumFmt: MoneyFormat})
		} else {
			g.Set(row, 1, Cell{Value: item.ServiceCode, HAlign: AlignCenter, Border: true})
			g.Set(row, 2, Cell{Value: item.Quantity, HAlign: AlignRight, Border: true})
		}
		g.Set(row, 3, Cell{Value: item.Amount.InexactFloat64(), HAlign: AlignRight, Border: true, NumFmt: MoneyFormat})
		row++

		// Spacing rows stay borderless so they read as visual gaps, and
		// none follow the last item.
		if rule.LineSpacing && i < len(m.Items)-1 {
			for s := 0; s < spacingRows; s++ {
				for c := 0; c < columns; c++ {
					g.Set(row, c, Cell{Value: ""})
				}
				row++
			}
		}
	}
	return row
}

// mergedLabelRow writes a right-aligned bold label merged across the
// leftmost span columns.
func mergedLabelRow(g *Grid, row, span int, label string, fill bool) {
	g.Set(row, 0, Cell{Value: label, Bold: true, HAlign: AlignRight})
	g.AddMerge(row, 0, row, span-1)
	styleRange(g, row, 0, row, span-1, fill)
}

func totalsSection(g *Grid, row int, m *invoice.Model, rule brand.Rule) int {
	t := &m.Totals
	if rule.AlternateSchema {
		return alternateTotals(g, row, t)
	}

	// Quantity + amount totals under their table columns.
	g.Set(row, 0, Cell{Value: ""})
	g.AddMerge(row, 0, row, 1)
	styleRange(g, row, 0, row, 1, false)
	g.Set(row, 2, Cell{Value: t.Quantity, Bold: true, HAlign: AlignRight, Border: true})
	g.Set(row, 3, Cell{Value: t.GrossAmount.Round(2).InexactFloat64(), Bold: true, HAlign: AlignRight, Border: true, NumFmt: MoneyFormat})
	row++

	// IGST carries the real rate and amount; the intra-state split is
	// never applicable and renders as placeholders.
	mergedLabelRow(g, row, 2, "IGST", false)
	if t.ZeroRated {
		g.Set(row, 2, Cell{Value: "-", HAlign: AlignRight, Border: true})
		g.Set(row, 3, Cell{Value: "-", HAlign: AlignRight, Border: true})
	} else {
		g.Set(row, 2, Cell{Value: "18%", HAlign: AlignRight, Border: true})
		g.Set(row, 3, Cell{Value: t.Tax.InexactFloat64(), HAlign: AlignRight, Border: true, NumFmt: MoneyFormat})
	}
	row++

	for _, label := range []string{"CGST", "SGST"} {
		mergedLabelRow(g, row, 2, label, false)
		g.Set(row, 2, Cell{Value: "-", HAlign: AlignCenter, Border: true})
		g.Set(row, 3, Cell{Value: "-", HAlign: AlignCenter, Border: true})
		row++
	}

	mergedLabelRow(g, row, 2, "Invoice Amount", true)
	g.Set(row, 2, Cell{Border: true, Fill: true})
	g.Set(row, 3, Cell{Value: t.InvoiceAmount.InexactFloat64(), Bold: true, HAlign: AlignRight, Border: true, Fill: true, NumFmt: MoneyFormat})
	row++

	if rule.HasAdvanceSection {
		mergedLabelRow(g, row, 2, "Advance Received (COD)", false)
		g.Set(row, 2, Cell{Border: true})
		g.Set(row, 3, Cell{Value: t.AdvanceAmount.Round(2).InexactFloat64(), HAlign: AlignRight, Border: true, NumFmt: MoneyFormat})
		row++

		mergedLabelRow(g, row, 2, "Net Amount", false)
		g.Set(row, 2, Cell{Border: true})
		g.Set(row, 3, Cell{Value: t.NetAmount.InexactFloat64(), Bold: true, HAlign: AlignRight, Border: true, NumFmt: MoneyFormat})
		row++
	}
	return row
}

// alternateTotals renders the four-column variant: a labelled total row,
// the IGST rate and amount on separate rows, placeholders for the
// intra-state split, and a "Grand Total" row.
func alternateTotals(g *Grid, row int, t *invoice.Totals) int {
	mergedLabelRow(g, row, 3, "Total", false)
	g.Set(row, 3, Cell{Value: t.GrossAmount.Round(2).InexactFloat64(), Bold: true, HAlign: AlignRight, Border: true, NumFmt: MoneyFormat})
	row++

	mergedLabelRow(g, row, 3, "IGST", false)
	g.Set(row, 3, Cell{Value: "18%", HAlign: AlignRight, Border: true})
	row++

	g.Set(row, 0, Cell{Value: "", HAlign: AlignRight})
	g.AddMerge(row, 0, row, 2)
	styleRange(g, row, 0, row, 2, false)
	g.Set(row, 3, Cell{Value: t.Tax.InexactFloat64(), HAlign: AlignRight, Border: true, NumFmt: MoneyFormat})
	row++

	for _, label := range []string{"CGST", "SGST"} {
		mergedLabelRow(g, row, 3, label, false)
		g.Set(row, 3, Cell{Value: "-", HAlign: AlignCenter, Border: true})
		row++
	}

	mergedLabelRow(g, row, 3, "Grand Total", true)
	g.Set(row, 3, Cell{Value: t.InvoiceAmount.InexactFloat64(), Bold: true, HAlign: AlignRight, Border: true, Fill: true, NumFmt: MoneyFormat})
	return row + 1
}

func wordsSection(g *Grid, row int, m *invoice.Model) int {
	g.Set(row, 0, Cell{Value: "Invoice Amount (in words)", Bold: true})
	g.AddMerge(row, 0, row, columns-1)
	styleRange(g, row, 0, row, columns-1, false)
	row++

	g.Set(row, 0, Cell{Value: m.Totals.AmountInWords, HAlign: AlignLeft})
	g.AddMerge(row, 0, row, columns-1)
	styleRange(g, row, 0, row, columns-1, false)
	return row + 1
}

// declarationRows is the height of the declaration and signatory blocks.
const declarationRows = 9

func signatureSection(g *Grid, row int, rule brand.Rule) int {
	g.Set(row, 0, Cell{Value: rule.Declaration, HAlign: AlignLeft, VAlign: AlignTop, Wrap: true})
	g.AddMerge(row, 0, row+declarationRows-1, 1)
	styleRange(g, row, 0, row+declarationRows-1, 1, false)

	g.Set(row, 2, Cell{Value: "Authorised Signatory", Bold: true, HAlign: AlignCenter, VAlign: AlignBottom})
	g.AddMerge(row, 2, row+declarationRows-1, 3)
	styleRange(g, row, 2, row+declarationRows-1, 3, false)
	return row + declarationRows
}

func applyWidths(g *Grid, rule brand.Rule) {
	widths := []float64{35, 10, 16, 18}
	if rule.AlternateSchema {
		widths = []float64{35, 12, 12, 18}
	}
	for c, w := range widths {
		g.SetColWidth(c, w)
	}
}
