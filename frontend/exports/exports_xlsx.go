package exports

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"savor/backend"
)

// renderPantryXLSX writes the inventory as a flat sheet, one item per
// row, using the stream writer so a large pantry stays cheap.
func renderPantryXLSX(items []backend.PantryItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, err
	}

	header := []interface{}{
		"product_name", "quantity", "size", "unit", "code",
		"allergen_conflict", "conflicting_allergens", "dietary_mismatch", "missing_dietary_tags",
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	for i, item := range items {
		row := []interface{}{
			item.ProductName,
			item.Quantity,
			sizeValue(item),
			item.ProductQuantityUnit,
			item.Code,
			item.HasAllergenConflict,
			joinTags(item.ConflictingAllergens),
			item.HasDietaryMismatch,
			joinTags(item.MissingDietaryTags),
		}
		cellAddr, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cellAddr, row); err != nil {
			return nil, err
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if _, err := f.WriteTo(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func sizeValue(item backend.PantryItem) interface{} {
	if item.ProductQuantity == nil {
		return ""
	}
	return *item.ProductQuantity
}

func joinTags(tags []string) string {
	out := ""
	for i, tag := range tags {
		if i > 0 {
			out += "; "
		}
		out += tag
	}
	return out
}
