// Command invoicegen generates brand invoices from a billing export
// without the HTTP server.
// Usage: go run ./cmd/invoicegen -input export.xlsx -brand Amazon -out ./dist
// Output: <out>/<Brand>_Invoices_<timestamp>.zip
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ascforge/internal/archive"
	"ascforge/internal/brand"
	"ascforge/internal/dataset"
	"ascforge/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	input := flag.String("input", "", "path to the billing export (.xlsx)")
	brandName := flag.String("brand", "", "brand name (see -list)")
	outDir := flag.String("out", ".", "output directory for the archive")
	list := flag.Bool("list", false, "list supported brands and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(brand.Names(), "\n"))
		return nil
	}
	if *input == "" || *brandName == "" {
		flag.Usage()
		return fmt.Errorf("-input and -brand are required")
	}

	f, err := os.Open(*input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	ds, err := dataset.FromXLSX(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", *input, err)
	}
	log.Printf("Read %d rows, %d columns", ds.Len(), len(ds.Columns()))

	svc := service.NewInvoiceService()
	batch, err := svc.Generate(ds, *brandName)
	if err != nil {
		return fmt.Errorf("generate invoices: %w", err)
	}

	for i := range batch.Results {
		res := &batch.Results[i]
		log.Printf("%-40s records=%-5d amount=%s", res.Entity, res.Records, res.TotalAmount.StringFixed(2))
	}

	now := time.Now()
	data, err := archive.BuildZip(batch, now)
	if err != nil {
		return fmt.Errorf("package archive: %w", err)
	}

	outPath := filepath.Join(*outDir, archive.Filename(batch.Brand, now))
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	log.Printf("Generated %d invoices (%d records, total %s) in %s",
		len(batch.Results), batch.TotalRecords(), batch.TotalAmount().Round(2).StringFixed(2), outPath)
	return nil
}
