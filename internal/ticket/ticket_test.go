package ticket

import (
	"bytes"
	"testing"

	"github.com/iliyamo/shuttle-booking-client/internal/model"
)

func sampleBooking() model.Booking {
	return model.Booking{
		ID:         42,
		StudentID:  "S001",
		SeatNumber: "7",
		Schedule: model.ScheduleSummary{
			ID:            3,
			Date:          "2024-05-01",
			Route:         "Campus-HSR Station",
			DepartureTime: "09:30",
		},
	}
}

func TestQRContent(t *testing.T) {
	if got, want := QRContent(sampleBooking()), "booking:42:S001"; got != want {
		t.Errorf("QRContent = %q, want %q", got, want)
	}
}

func TestRenderProducesPDF(t *testing.T) {
	out, err := Render(sampleBooking())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header")
	}
	if len(out) < 1024 {
		t.Errorf("suspiciously small PDF: %d bytes", len(out))
	}
}
