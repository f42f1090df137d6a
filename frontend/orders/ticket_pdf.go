package orders

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strings"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"

	"tecnoreparos/models"
)

// renderTicketPDF produces the printable counter ticket for a service
// order: client and device details plus a code128 barcode of the order id
// so the bench can pull the order up with a scanner.
func renderTicketPDF(order models.ServiceOrder, printedAt time.Time) ([]byte, error) {
	return buildTicketPDF(order, printedAt, true)
}

func buildTicketPDF(order models.ServiceOrder, printedAt time.Time, compress bool) ([]byte, error) {
	barcodeValue := ticketBarcodeValue(order.ID)
	barcodePNG, err := renderCode128PNG(barcodeValue, 1200, 260)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetCompression(compress)
	// Core fonts are cp1252; UTF-8 Portuguese text must be transcoded or
	// every accented character prints as two garbage glyphs.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Ordem de Serviço"), false)
	pdf.AddPage()

	clientName := strings.TrimSpace(order.ClientName)
	if clientName == "" {
		clientName = "Cliente não informado"
	}

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, "TecnoReparos", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(clientName), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, tr("Aparelho: "+strings.TrimSpace(order.Device)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, "Status: "+string(order.Status), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, "Criada: "+formatISO(order.CreatedAt), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, "Impressa: "+printedAt.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr("Defeito relatado: "+strings.TrimSpace(order.IssueDescription)), "", "L", false)

	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	imageName := "order-barcode-" + order.ID
	pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
	pageW, _ := pdf.GetPageSize()
	imgW := 110.0
	imgH := 26.0
	x := (pageW - imgW) / 2
	y := pdf.GetY() + 6
	pdf.ImageOptions(imageName, x, y, imgW, imgH, false, opt, 0, "")

	pdf.SetY(y + imgH + 4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, barcodeValue, "", 1, "C", false, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// ticketBarcodeValue shortens UUID order ids to a scannable prefix; seed ids
// are short already and pass through.
func ticketBarcodeValue(id string) string {
	compact := strings.ReplaceAll(id, "-", "")
	if len(compact) > 12 {
		compact = compact[:12]
	}
	return fmt.Sprintf("OS-%s", strings.ToUpper(compact))
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

	// gofpdf needs a concrete pixel format it understands.
	bounds := scaled.Bounds()
	normalized := image.NewNRGBA(bounds)
	draw.Draw(normalized, bounds, scaled, bounds.Min, draw.Src)

	var out bytes.Buffer
	if err := png.Encode(&out, normalized); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
