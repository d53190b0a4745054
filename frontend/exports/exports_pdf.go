package exports

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strconv"
	"strings"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"

	"savor/backend"
)

// renderPantryPDF lays out the pantry inventory one item per row, with a
// scannable Code 128 barcode for items that carry a product code.
func renderPantryPDF(items []backend.PantryItem, username string, printedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Pantry Inventory", false)
	pdf.SetAutoPageBreak(true, 16)
	pdf.AddPage()

	owner := strings.TrimSpace(username)
	if owner == "" {
		owner = "Unknown User"
	}

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, "Pantry Inventory", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Owner: "+owner, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Printed: "+printedAt.Format("02/01/2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(items) == 0 {
		pdf.SetFont("Helvetica", "I", 12)
		pdf.CellFormat(0, 10, "The pantry is empty.", "", 1, "C", false, 0, "")
	}

	for i, item := range items {
		name := strings.TrimSpace(item.ProductName)
		if name == "" {
			name = "Unnamed Product"
		}

		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, name, "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		line := "Quantity: " + strconv.FormatFloat(item.Quantity, 'f', -1, 64)
		if item.ProductQuantity != nil {
			line += "  |  Size: " + strconv.FormatFloat(*item.ProductQuantity, 'f', -1, 64)
			if item.ProductQuantityUnit != "" {
				line += " " + item.ProductQuantityUnit
			}
		}
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")

		code := strings.TrimSpace(item.Code)
		if code != "" {
			barcodePNG, err := renderCode128PNG(code, 900, 180)
			if err != nil {
				return nil, fmt.Errorf("barcode for %q: %w", code, err)
			}
			opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
			imageName := fmt.Sprintf("pantry-barcode-%d", i)
			pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
			pdf.ImageOptions(imageName, pdf.GetX(), pdf.GetY()+1, 70, 14, false, opt, 0, "")
			pdf.Ln(17)
			pdf.SetFont("Helvetica", "", 9)
			pdf.CellFormat(0, 4, code, "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}
	normalized := toNRGBA(scaled)
	var out bytes.Buffer
	if err := png.Encode(&out, normalized); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
