// Package layout turns a computed invoice model into an addressable,
// styled 2-D cell grid. The grid knows nothing about file formats; a
// renderer maps it to a workbook afterwards.
package layout

// Horizontal and vertical alignment values, named after the spreadsheet
// vocabulary the renderer maps onto.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
	AlignTop    = "top"
	AlignBottom = "bottom"
)

// MoneyFormat is the number format applied to monetary cells.
const MoneyFormat = "#,##0.00"

// Cell is one styled grid cell. The zero value is an empty, unstyled,
// borderless cell.
type Cell struct {
	Value  interface{}
	Bold   bool
	Size   float64
	HAlign string
	VAlign string
	Wrap   bool
	Border bool
	Fill   bool
	NumFmt string
}

// Merge is a merged region, 0-based and inclusive on both corners.
type Merge struct {
	Row1, Col1 int
	Row2, Col2 int
}

// Grid is the laid-out document: sparse cells, merged regions, and column
// widths. Coordinates are 0-based.
type Grid struct {
	cells  map[[2]int]Cell
	merges []Merge
	widths []float64
	rows   int
	cols   int
}

// NewGrid creates an empty grid with the given column count.
func NewGrid(cols int) *Grid {
	return &Grid{
		cells:  make(map[[2]int]Cell),
		widths: make([]float64, cols),
		cols:   cols,
	}
}

// Set places a cell at (row, col), growing the row extent as needed.
func (g *Grid) Set(row, col int, cell Cell) {
	g.cells[[2]int{row, col}] = cell
	if row+1 > g.rows {
		g.rows = row + 1
	}
}

// Cell returns the cell at (row, col) and whether one was set.
func (g *Grid) Cell(row, col int) (Cell, bool) {
	c, ok := g.cells[[2]int{row, col}]
	return c, ok
}

// AddMerge records a merged region.
func (g *Grid) AddMerge(row1, col1, row2, col2 int) {
	g.merges = append(g.merges, Merge{Row1: row1, Col1: col1, Row2: row2, Col2: col2})
}

// SetColWidth assigns a display width to a column.
func (g *Grid) SetColWidth(col int, width float64) {
	if col >= 0 && col < len(g.widths) {
		g.widths[col] = width
	}
}

// Rows returns the number of rows the grid extends over.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the fixed column count.
func (g *Grid) Cols() int { return g.cols }

// Merges returns the merged regions in insertion order.
func (g *Grid) Merges() []Merge { return g.merges }

// ColWidths returns the per-column display widths (0 = renderer default).
func (g *Grid) ColWidths() []float64 { return g.widths }
