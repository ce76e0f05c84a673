// Package sheet generates a printable PDF product sheet for a showroom item:
// title, the texture/price table, and a QR code that opens the viewer page on
// a phone.
package sheet

import (
	"bytes"
	"fmt"

	"showroom/internal/catalog"

	"github.com/jung-kurt/gofpdf/v2"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	pageW     = 595
	margin    = 48
	titleSize = 22
	bodySize  = 11
	rowH      = 20.0
	qrSide    = 120.0
)

// Generate returns PDF bytes for the product sheet. activeName marks the
// variant the visitor had selected; shareURL is encoded into the QR code and
// printed beneath it.
func Generate(p *catalog.Product, activeName, shareURL string) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("sheet: nil product")
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(0, 28, p.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", bodySize)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 16, "Available finishes", "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Variant table: finish name and price, selected one marked.
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetTextColor(30, 30, 30)
	for _, v := range p.Variants {
		name := v.Name
		style := ""
		if v.Name == activeName {
			name += "  (selected)"
			style = "B"
		}
		pdf.SetFont("Helvetica", style, bodySize)
		pdf.CellFormat(220, rowH, name, "B", 0, "L", false, 0, "")
		pdf.CellFormat(100, rowH, fmt.Sprintf("$%d", v.Price), "B", 1, "R", false, 0, "")
	}
	pdf.Ln(24)

	if shareURL != "" {
		if err := drawQR(pdf, shareURL); err != nil {
			return nil, err
		}
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(140, 140, 140)
	pdf.SetY(-margin - 14)
	pdf.CellFormat(0, 12, "Demo only. Prices are illustrative; no orders are processed.", "", 0, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawQR renders the share URL as a QR code with the raw link printed under
// it, so the sheet works both scanned and typed.
func drawQR(pdf *gofpdf.Fpdf, shareURL string) error {
	png, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("sheet: encode qr: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("share-qr", opts, bytes.NewReader(png))

	y := pdf.GetY()
	pdf.ImageOptions("share-qr", margin, y, qrSide, qrSide, false, opts, 0, "")
	pdf.SetXY(margin+qrSide+16, y+qrSide/2-18)
	pdf.SetFont("Helvetica", "B", bodySize)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(0, 14, "View this piece in AR on your phone", "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetX(margin + qrSide + 16)
	pdf.CellFormat(pageW-2*margin-qrSide-16, 12, shareURL, "", 0, "L", false, 0, "")
	pdf.SetY(y + qrSide + 12)
	return nil
}
