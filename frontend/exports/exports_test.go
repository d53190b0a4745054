package exports

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"savor/backend"
)

func sampleItems() []backend.PantryItem {
	size := 500.0
	return []backend.PantryItem{
		{
			ID:                  1,
			ProductName:         "Basmati Rice",
			Quantity:            2,
			ProductQuantity:     &size,
			ProductQuantityUnit: "g",
			Code:                "4006381333931",
		},
		{
			ID:                   2,
			ProductName:          "Trail Mix",
			Quantity:             1,
			HasAllergenConflict:  true,
			ConflictingAllergens: []string{"peanuts", "tree_nuts"},
		},
	}
}

func TestRenderPantryPDF(t *testing.T) {
	out, err := renderPantryPDF(sampleItems(), "casper", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}

func TestRenderPantryPDFEmptyPantry(t *testing.T) {
	out, err := renderPantryPDF(nil, "", time.Now())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}

func TestRenderCode128PNG(t *testing.T) {
	out, err := renderCode128PNG("4006381333931", 900, 180)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 900 || bounds.Dy() != 180 {
		t.Fatalf("unexpected dimensions %v", bounds)
	}
}

func TestRenderPantryXLSX(t *testing.T) {
	out, err := renderPantryXLSX(sampleItems())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus two items, got %d rows", len(rows))
	}
	if rows[0][0] != "product_name" {
		t.Fatalf("unexpected header row %v", rows[0])
	}
	if rows[1][0] != "Basmati Rice" || rows[1][4] != "4006381333931" {
		t.Fatalf("unexpected first item row %v", rows[1])
	}
	if rows[2][6] != "peanuts; tree_nuts" {
		t.Fatalf("allergen tags not joined: %v", rows[2])
	}
}
