// Package ticket renders a printable e-ticket for a booking: one A5 page
// with the trip details and a QR code the driver can scan at the door. It is
// a pure function of the booking record and performs no network I/O.
package ticket

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/iliyamo/shuttle-booking-client/internal/model"
)

const qrSizePx = 256

// QRContent is the payload encoded in the ticket's QR code. The gate check
// resolves the booking id and verifies the student id against it.
func QRContent(b model.Booking) string {
	return fmt.Sprintf("booking:%d:%s", b.ID, b.StudentID)
}

// Render produces the PDF bytes for one booking.
func Render(b model.Booking) ([]byte, error) {
	qrPNG, err := qrImage(QRContent(b))
	if err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Shuttle e-ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Campus Shuttle E-Ticket", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(35, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}
	line("Booking", fmt.Sprintf("#%d", b.ID))
	line("Student", b.StudentID)
	line("Route", b.Schedule.Route)
	line("Date", b.Schedule.Date)
	line("Departure", b.Schedule.DepartureTime)
	line("Seat", b.SeatNumber)

	pdf.Ln(6)
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", (148-50)/2, pdf.GetY(), 50, 50, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetY(pdf.GetY() + 54)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Show this code to the driver when boarding.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// qrImage encodes content as a PNG QR code.
func qrImage(content string) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(qrSizePx)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
