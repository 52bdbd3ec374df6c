// Package xlsx encodes a layout.Grid as an XLSX workbook. It owns the
// mapping from abstract cell styles to spreadsheet styling; the grid's
// content and geometry are taken as-is.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"ascforge/internal/layout"
)

const sheetName = "Invoice"

// fillColor is the light peach highlight used for the title bar, table
// header, and amount rows.
const fillColor = "FFE5CC"

// styleKey collapses a cell's style attributes into a comparable cache
// key so each distinct style is registered with the workbook only once.
type styleKey struct {
	bold   bool
	size   float64
	hAlign string
	vAlign string
	wrap   bool
	border bool
	fill   bool
	numFmt string
}

// Encode renders the grid into workbook bytes.
func Encode(g *layout.Grid) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	styles := make(map[styleKey]int)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell, ok := g.Cell(r, c)
			if !ok {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			if cell.Value != nil {
				if err := f.SetCellValue(sheetName, axis, cell.Value); err != nil {
					return nil, fmt.Errorf("set cell %s: %w", axis, err)
				}
			}
			id, err := styleID(f, styles, &cell)
			if err != nil {
				return nil, fmt.Errorf("style cell %s: %w", axis, err)
			}
			if err := f.SetCellStyle(sheetName, axis, axis, id); err != nil {
				return nil, fmt.Errorf("apply style %s: %w", axis, err)
			}
		}
	}

	for _, m := range g.Merges() {
		from, err := excelize.CoordinatesToCellName(m.Col1+1, m.Row1+1)
		if err != nil {
			return nil, err
		}
		to, err := excelize.CoordinatesToCellName(m.Col2+1, m.Row2+1)
		if err != nil {
			return nil, err
		}
		if err := f.MergeCell(sheetName, from, to); err != nil {
			return nil, fmt.Errorf("merge %s:%s: %w", from, to, err)
		}
	}

	for c, w := range g.ColWidths() {
		if w <= 0 {
			continue
		}
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, name, name, w); err != nil {
			return nil, fmt.Errorf("set width %s: %w", name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func styleID(f *excelize.File, cache map[styleKey]int, cell *layout.Cell) (int, error) {
	key := styleKey{
		bold:   cell.Bold,
		size:   cell.Size,
		hAlign: cell.HAlign,
		vAlign: cell.VAlign,
		wrap:   cell.Wrap,
		border: cell.Border,
		fill:   cell.Fill,
		numFmt: cell.NumFmt,
	}
	if id, ok := cache[key]; ok {
		return id, nil
	}

	style := &excelize.Style{}
	if cell.Bold || cell.Size > 0 {
		style.Font = &excelize.Font{Bold: cell.Bold, Size: cell.Size}
	}
	if cell.HAlign != "" || cell.VAlign != "" || cell.Wrap {
		style.Alignment = &excelize.Alignment{
			Horizontal: cell.HAlign,
			Vertical:   cell.VAlign,
			WrapText:   cell.Wrap,
		}
	}
	if cell.Border {
		style.Border = thinBorder()
	}
	if cell.Fill {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillColor}}
	}
	if cell.NumFmt != "" {
		numFmt := cell.NumFmt
		style.CustomNumFmt = &numFmt
	}

	id, err := f.NewStyle(style)
	if err != nil {
		return 0, err
	}
	cache[key] = id
	return id, nil
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, s := range sides {
		borders = append(borders, excelize.Border{Type: s, Color: "000000", Style: 1})
	}
	return borders
}
