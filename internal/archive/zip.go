// Package archive packages a generated batch into the downloadable ZIP
// the host serves: one invoice workbook and one raw-data workbook per
// service centre.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"ascforge/internal/invoice"
)

// unsafeChars matches everything not kept in output filenames: anything
// but alphanumerics, spaces, hyphens, and underscores.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9 _-]+`)

// SanitizeName cleans an entity name for use inside archive filenames.
func SanitizeName(name string) string {
	return strings.TrimSpace(unsafeChars.ReplaceAllString(name, ""))
}

// BuildZip writes the batch as a deflate-compressed archive. Entries
// follow the batch's entity order; at stamps the per-file date suffix.
func BuildZip(b *invoice.Batch, at time.Time) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	date := at.Format("20060102")

	for i := range b.Results {
		res := &b.Results[i]
		safe := SanitizeName(res.Entity)

		if err := addEntry(w, fmt.Sprintf("Invoice_%s_%s.xlsx", safe, date), res.Document); err != nil {
			return nil, err
		}
		if err := addEntry(w, fmt.Sprintf("RawData_%s_%s.xlsx", safe, date), res.RawData); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename returns the download name for a brand's archive.
func Filename(brandName string, at time.Time) string {
	return fmt.Sprintf("%s_Invoices_%s.zip", brandName, at.Format("20060102_150405"))
}

func addEntry(w *zip.Writer, name string, data []byte) error {
	f, err := w.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
