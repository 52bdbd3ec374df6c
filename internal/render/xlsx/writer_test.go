package xlsx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ascforge/internal/layout"
)

func TestEncode(t *testing.T) {
	g := layout.NewGrid(4)
	g.Set(0, 0, layout.Cell{Value: "Tax Invoice", Bold: true, HAlign: layout.AlignCenter, Fill: true, Border: true})
	g.AddMerge(0, 0, 0, 3)
	g.Set(1, 0, layout.Cell{Value: "Services", Border: true})
	g.Set(1, 3, layout.Cell{Value: 177.59, HAlign: layout.AlignRight, Border: true, NumFmt: layout.MoneyFormat})
	g.Set(2, 2, layout.Cell{Value: int64(7), HAlign: layout.AlignRight, Border: true})
	g.SetColWidth(0, 35)
	g.SetColWidth(3, 18)

	out, err := Encode(g)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, "Invoice", f.GetSheetName(0))

	v, err := f.GetCellValue("Invoice", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Tax Invoice", v)

	// The money format is applied on read-back.
	v, err = f.GetCellValue("Invoice", "D2")
	require.NoError(t, err)
	assert.Equal(t, "177.59", v)

	v, err = f.GetCellValue("Invoice", "C3")
	require.NoError(t, err)
	assert.Equal(t, "7", v)

	merges, err := f.GetMergeCells("Invoice")
	require.NoError(t, err)
	require.Len(t, merges, 1)
	assert.Equal(t, "A1", merges[0].GetStartAxis())
	assert.Equal(t, "D1", merges[0].GetEndAxis())

	w, err := f.GetColWidth("Invoice", "A")
	require.NoError(t, err)
	assert.InDelta(t, 35, w, 0.01)
	w, err = f.GetColWidth("Invoice", "D")
	require.NoError(t, err)
	assert.InDelta(t, 18, w, 0.01)
}

func TestEncode_StyleAttributes(t *testing.T) {
	g := layout.NewGrid(2)
	g.Set(0, 0, layout.Cell{Value: "Header", Bold: true, Fill: true, Border: true})
	g.Set(0, 1, layout.Cell{Value: "Plain"})

	out, err := Encode(g)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	id, err := f.GetCellStyle("Invoice", "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
	assert.Equal(t, "pattern", style.Fill.Type)
	require.NotEmpty(t, style.Fill.Color)
	assert.Contains(t, style.Fill.Color[0], "FFE5CC")
	assert.Len(t, style.Border, 4)
}

func TestEncode_EmptyGrid(t *testing.T) {
	out, err := Encode(layout.NewGrid(4))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, "Invoice", f.GetSheetName(0))
}
