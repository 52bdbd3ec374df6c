package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ascforge/internal/invoice"
)

var stamp = time.Date(2025, time.April, 10, 9, 30, 15, 0, time.UTC)

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Alpha Services", SanitizeName("Alpha Services"))
	assert.Equal(t, "AB Traders Pvt Ltd", SanitizeName("A/B Traders (Pvt) Ltd."))
	assert.Equal(t, "Alpha_1-2", SanitizeName(" Alpha_1-2 "))
	assert.Equal(t, "", SanitizeName("///"))
}

func TestBuildZip(t *testing.T) {
	b := &invoice.Batch{
		Brand: "Harman",
		Results: []invoice.EntityInvoice{
			{Entity: "Alpha Services", Document: []byte("doc-a"), RawData: []byte("raw-a")},
			{Entity: "Beta/Co.", Document: []byte("doc-b"), RawData: []byte("raw-b")},
		},
	}

	data, err := BuildZip(b, stamp)
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, r.File, 4)

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"Invoice_Alpha Services_20250410.xlsx",
		"RawData_Alpha Services_20250410.xlsx",
		"Invoice_BetaCo_20250410.xlsx",
		"RawData_BetaCo_20250410.xlsx",
	}, names)

	rc, err := r.File[0].Open()
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, []byte("doc-a"), content)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Harman_Invoices_20250410_093015.zip", Filename("Harman", stamp))
}
