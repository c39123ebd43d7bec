// Package importer loads menu CSV exports into the product repository.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"burgerdelicia/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product, position int) error
}

// CSVImporter reads menu CSV rows and inserts/updates products, keeping the
// row order as catalog order.
type CSVImporter struct {
	reader *csv.Reader
	repo   ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr, repo: repo}
}

// Run parses the CSV and upserts every row. It returns the number of
// imported products.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		product, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", imported+2, err)
		}

		if err := i.repo.Upsert(ctx, product, imported); err != nil {
			return imported, fmt.Errorf("upsert %s: %w", product.ID, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for pos, header := range headers {
		index[strings.ToLower(strings.TrimSpace(header))] = pos
	}
	return index
}

func parseRow(record []string, index map[string]int) (domain.Product, error) {
	field := func(name string) string {
		pos, ok := index[name]
		if !ok || pos >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[pos])
	}

	p := domain.Product{
		ID:          field("id"),
		Name:        field("name"),
		Description: field("description"),
		Category:    domain.Category(field("category")),
	}
	if p.ID == "" || p.Name == "" {
		return domain.Product{}, errors.New("missing id or name")
	}
	if !p.Category.Valid() {
		return domain.Product{}, fmt.Errorf("unknown category %q", field("category"))
	}

	var err error
	if p.Price, err = decimal.NewFromString(field("price")); err != nil {
		return domain.Product{}, fmt.Errorf("bad price %q: %w", field("price"), err)
	}
	if raw := field("original_price"); raw != "" {
		original, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.Product{}, fmt.Errorf("bad original_price %q: %w", raw, err)
		}
		p.OriginalPrice = &original
	}

	for _, tag := range splitList(field("tags")) {
		p.Tags = append(p.Tags, domain.Tag(tag))
	}
	p.Allergens = splitList(field("allergens"))
	p.Images = splitList(field("images"))

	p.Nutrition = domain.Nutrition{
		Calories: intField(field("calories")),
		Protein:  intField(field("protein")),
		Carbs:    intField(field("carbs")),
		Fat:      intField(field("fat")),
		Sodium:   intField(field("sodium")),
	}
	p.PreparationTime = intField(field("preparation_time"))
	p.SpiceLevel = intField(field("spice_level"))
	p.Featured = boolField(field("featured"))
	p.Available = boolField(field("available"))
	p.Stock = intField(field("stock"))
	p.MaxQuantity = intField(field("max_quantity"))

	return p, nil
}

// splitList parses semicolon-separated list cells.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ";") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func intField(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

func boolField(raw string) bool {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}
