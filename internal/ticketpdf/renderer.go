// Package ticketpdf renders a booked ticket into a printable PDF with an
// embedded QR code for entry verification.
package ticketpdf

import (
	"bytes"
	"fmt"

	"github.com/isharanirmal/Onvent/internal/domain"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(ticket *domain.Ticket, user *domain.User, event *domain.Event) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(0, 70, 180)
	pdf.CellFormat(0, 15, "EVENT TICKET", "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(5)

	qrContent := fmt.Sprintf(
		"Ticket ID: %s\nEvent: %s\nAttendee: %s\nDate: %s",
		ticket.ID, event.Title, user.Name, event.EventDate.Format("2006-01-02 15:04"),
	)
	qrBytes, err := qrcode.Encode(qrContent, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qrBytes))
	pdf.ImageOptions("qr", 85, pdf.GetY(), 40, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")
	pdf.Ln(48)

	rows := [][2]string{
		{"Ticket ID", ticket.ID},
		{"Event Name", event.Title},
		{"Event Date", event.EventDate.Format("2006-01-02 15:04")},
		{"Location", event.Location},
		{"Attendee Name", user.Name},
		{"Booking Date", ticket.PurchaseDate.Format("2006-01-02 15:04")},
		{"Ticket Code", ticket.TicketCode},
		{"Total Price", fmt.Sprintf("$%.2f", event.Price)},
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(60, 9, "Field", "1", 0, "L", true, 0, "")
	pdf.CellFormat(120, 9, "Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	for _, row := range rows {
		pdf.CellFormat(60, 9, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(120, 9, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(0, 8, "Thank you for booking with Onvent!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), nil
}
