package stubserver

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/shuttle-booking-client/internal/api"
)

// newTestAPI serves the stub over real HTTP and returns the production REST
// client pointed at it.
func newTestAPI(t *testing.T) *api.Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	New(NewStore(seedDay, 3), logger).Register(e)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return api.New(srv.URL+"/api", 0, logger)
}

func TestLoginEchoesStudentID(t *testing.T) {
	client := newTestAPI(t)
	ctx := context.Background()

	id, err := client.Login(ctx, "S001", "whatever")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if id != "S001" {
		t.Errorf("student id = %q, want S001", id)
	}

	if _, err := client.Login(ctx, "   ", "pw"); !api.IsRemote(err) {
		t.Errorf("blank username: %v, want a backend rejection", err)
	}
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	client := newTestAPI(t)
	ctx := context.Background()

	schedules, err := client.Schedules(ctx, "2024-05-01", "Campus-HSR Station")
	if err != nil {
		t.Fatalf("Schedules: %v", err)
	}
	if len(schedules) != len(seedTimes) {
		t.Fatalf("got %d departures, want %d", len(schedules), len(seedTimes))
	}
	target := schedules[0]

	booking, err := client.CreateBooking(ctx, "S001", target.ID, "5")
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.Schedule.Route != target.Route || booking.Schedule.DepartureTime != target.DepartureTime {
		t.Errorf("embedded summary = %+v, want schedule %d's", booking.Schedule, target.ID)
	}

	// the conflict surfaces as a backend message, not a transport error
	if _, err := client.CreateBooking(ctx, "S002", target.ID, "5"); !api.IsRemote(err) {
		t.Fatalf("seat conflict: %v, want a backend rejection", err)
	} else if api.RemoteMessage(err, "") != "seat already booked" {
		t.Errorf("conflict message = %q", api.RemoteMessage(err, ""))
	}

	schedules, err = client.Schedules(ctx, "2024-05-01", target.Route)
	if err != nil {
		t.Fatalf("Schedules after booking: %v", err)
	}
	if got := schedules[0].AvailableSeats; got != seatsPerShuttle-1 {
		t.Errorf("available = %d, want %d", got, seatsPerShuttle-1)
	}
	if got := schedules[0].OccupiedSeats; len(got) != 1 || got[0] != "5" {
		t.Errorf("occupied = %v, want [5]", got)
	}

	mine, err := client.MyBookings(ctx, "S001")
	if err != nil {
		t.Fatalf("MyBookings: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != booking.ID {
		t.Fatalf("bookings = %+v, want the one just created", mine)
	}

	if err := client.DeleteBooking(ctx, booking.ID, "S002"); !api.IsRemote(err) {
		t.Errorf("foreign delete: %v, want a backend rejection", err)
	}
	if err := client.DeleteBooking(ctx, booking.ID, "S001"); err != nil {
		t.Fatalf("DeleteBooking: %v", err)
	}
	mine, err = client.MyBookings(ctx, "S001")
	if err != nil {
		t.Fatalf("MyBookings after delete: %v", err)
	}
	if len(mine) != 0 {
		t.Errorf("bookings after delete = %+v, want none", mine)
	}
}

func TestSchedulesOutsideWindowOverHTTP(t *testing.T) {
	client := newTestAPI(t)

	_, err := client.Schedules(context.Background(), "2030-01-01", "")
	if !api.IsRemote(err) {
		t.Fatalf("err = %v, want a backend rejection", err)
	}
	if got := api.RemoteMessage(err, ""); got != "booking not yet open" {
		t.Errorf("message = %q", got)
	}
}

func TestRegisterOverHTTP(t *testing.T) {
	client := newTestAPI(t)
	ctx := context.Background()
	req := api.RegisterRequest{StudentID: "S001", Name: "Alex", Email: "alex@example.edu", Password: "pw"}

	if err := client.Register(ctx, req); err != nil {
		t.Fatalf("Register: %v", err)
	}
	err := client.Register(ctx, req)
	if !api.IsRemote(err) {
		t.Fatalf("duplicate register: %v, want a backend rejection", err)
	}
	if got := api.RemoteMessage(err, ""); got != "student id already registered" {
		t.Errorf("message = %q", got)
	}
}
