package orders

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// PrintInvoice renders a PDF invoice for one order. The QR code carries the
// tracker id so a field technician can pull the order up on delivery.
func PrintInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, ok := FindByID(ctx, ps.ByName("id"))
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	qrData := fmt.Sprintf("trk=%s&id=%s&ts=%d", order.TrackerID, order.ID, time.Now().Unix())
	qrPNG, err := qrcode.Encode(qrData, qrcode.Medium, 128)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "SRI THIRUMALA ENTERPRISES", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 6, "Authorized Sun Direct DTH Service Provider - Support: 9985265605", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Tracker ID: %s\nCustomer: %s\nPhone: %s\nAddress: %s\nDelivery by: %s\nStatus: %s",
		order.TrackerID,
		order.CustomerName,
		order.CustomerPhone,
		order.CustomerAddress,
		order.DeliveryDate.Format("02 Jan 2006"),
		order.Status,
	), "", "L", false)
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(110, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	subtotal := 0
	for _, line := range order.Items {
		amount := line.Part.Cost * line.Quantity
		subtotal += amount
		pdf.CellFormat(110, 8, line.Part.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", line.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("Rs. %d", amount), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(130, 8, "Subtotal", "T", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("Rs. %d", subtotal), "T", 1, "R", false, 0, "")
	pdf.CellFormat(130, 8, "GST (18%)", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("Rs. %d", order.Total-subtotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(130, 8, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("Rs. %d", order.Total), "", 1, "R", false, 0, "")

	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 230, 40, 40, false, imgOpts, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 10, "Show the QR code to the delivering technician for verification.", "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+order.TrackerID+".pdf")
	w.Write(buf.Bytes())
}
