package report

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/hoteldesk/otaparse/internal/schema"
)

// WritePDF renders the record as a simple two-column table and writes it to
// outPath. This is intentionally basic: the text and HTML outputs are the
// compatibility contract, the PDF is a convenience copy for printing.
func WritePDF(r schema.Record, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, "Normalized Booking "+r.Get(schema.FieldBookingID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Ln(2)

	row := func(name, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(70, 7, name, "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, value, "1", 1, "L", false, 0, "")
	}

	for _, field := range schema.FieldOrder {
		if field == schema.FieldBilling {
			continue
		}
		row(field, r.Get(field))
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, "Billing Details", "", 1, "L", false, 0, "")
	for _, subfield := range schema.BillingOrder {
		row(subfield, r.Billing(subfield))
	}

	return pdf.OutputFileAndClose(outPath)
}
