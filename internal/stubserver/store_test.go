package stubserver

import (
	"testing"
	"time"
)

var seedDay = time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)

func TestNewStoreSeedShape(t *testing.T) {
	s := NewStore(seedDay, 3)

	want := 3 * len(seedRoutes) * len(seedTimes)
	if got := len(s.schedules); got != want {
		t.Fatalf("seeded %d schedules, want %d", got, want)
	}
	day1, err := s.SchedulesFor("2024-05-01", "")
	if err != nil {
		t.Fatalf("SchedulesFor: %v", err)
	}
	if got := len(day1); got != len(seedRoutes)*len(seedTimes) {
		t.Errorf("day one has %d departures, want %d", got, len(seedRoutes)*len(seedTimes))
	}
	for _, sched := range day1 {
		if sched.TotalSeats != seatsPerShuttle || sched.AvailableSeats != seatsPerShuttle {
			t.Errorf("schedule %d seeded with %d/%d seats", sched.ID, sched.AvailableSeats, sched.TotalSeats)
		}
		if len(sched.OccupiedSeats) != 0 {
			t.Errorf("schedule %d seeded with occupied seats %v", sched.ID, sched.OccupiedSeats)
		}
	}
}

func TestSchedulesForRejectsDatesOutsideWindow(t *testing.T) {
	s := NewStore(seedDay, 3)

	for _, date := range []string{"2024-04-30", "2024-06-15", "not-a-date"} {
		if _, err := s.SchedulesFor(date, ""); err == nil {
			t.Errorf("date %q accepted, want a window rejection", date)
		}
	}
}

func TestSchedulesForRouteFilter(t *testing.T) {
	s := NewStore(seedDay, 3)

	out, err := s.SchedulesFor("2024-05-01", "Campus-HSR Station")
	if err != nil {
		t.Fatalf("SchedulesFor: %v", err)
	}
	if len(out) != len(seedTimes) {
		t.Fatalf("got %d departures, want %d", len(out), len(seedTimes))
	}
	for _, sched := range out {
		if sched.Route != "Campus-HSR Station" {
			t.Errorf("route filter leaked %q", sched.Route)
		}
	}
}

func TestCreateBookingAdjustsAvailability(t *testing.T) {
	s := NewStore(seedDay, 3)

	b, err := s.CreateBooking("S001", 1, "5")
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if b.ID == 0 || b.SeatNumber != "5" || b.Schedule.Date != "2024-05-01" {
		t.Errorf("booking = %+v", b)
	}

	day, _ := s.SchedulesFor("2024-05-01", "")
	if day[0].AvailableSeats != seatsPerShuttle-1 {
		t.Errorf("available = %d, want %d", day[0].AvailableSeats, seatsPerShuttle-1)
	}
	if len(day[0].OccupiedSeats) != 1 || day[0].OccupiedSeats[0] != "5" {
		t.Errorf("occupied = %v, want [5]", day[0].OccupiedSeats)
	}
}

func TestCreateBookingSeatConflictIsFirstWins(t *testing.T) {
	s := NewStore(seedDay, 3)

	if _, err := s.CreateBooking("S001", 1, "5"); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := s.CreateBooking("S002", 1, "5"); err != errSeatTaken {
		t.Errorf("second booking of the same seat: %v, want %v", err, errSeatTaken)
	}
	// the same seat on another schedule is free
	if _, err := s.CreateBooking("S002", 2, "5"); err != nil {
		t.Errorf("same seat on another schedule: %v", err)
	}
}

func TestCreateBookingRejectsBlankFieldsAndUnknownSchedule(t *testing.T) {
	s := NewStore(seedDay, 3)

	if _, err := s.CreateBooking("  ", 1, "5"); err == nil {
		t.Error("blank student id accepted")
	}
	if _, err := s.CreateBooking("S001", 1, ""); err == nil {
		t.Error("blank seat accepted")
	}
	if _, err := s.CreateBooking("S001", 99999, "5"); err == nil {
		t.Error("unknown schedule accepted")
	}
}

func TestDeleteBookingOwnershipAndSeatReturn(t *testing.T) {
	s := NewStore(seedDay, 3)
	b, err := s.CreateBooking("S001", 1, "5")
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if err := s.DeleteBooking(b.ID, "S002"); err == nil {
		t.Fatal("another student deleted the booking")
	}
	if err := s.DeleteBooking(b.ID, "S001"); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := s.DeleteBooking(b.ID, "S001"); err == nil {
		t.Error("double delete accepted")
	}

	day, _ := s.SchedulesFor("2024-05-01", "")
	if day[0].AvailableSeats != seatsPerShuttle {
		t.Errorf("available = %d after delete, want the seat returned", day[0].AvailableSeats)
	}
}

func TestBookingsForReturnsOnlyOwnOldestFirst(t *testing.T) {
	s := NewStore(seedDay, 3)
	if _, err := s.CreateBooking("S001", 2, "3"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateBooking("S002", 1, "1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateBooking("S001", 1, "7"); err != nil {
		t.Fatal(err)
	}

	mine := s.BookingsFor("S001")
	if len(mine) != 2 {
		t.Fatalf("got %d bookings, want 2", len(mine))
	}
	if mine[0].ID >= mine[1].ID {
		t.Errorf("bookings not oldest first: %d, %d", mine[0].ID, mine[1].ID)
	}
	for _, b := range mine {
		if b.StudentID != "S001" {
			t.Errorf("foreign booking leaked: %+v", b)
		}
	}
}

func TestRegisterStudentRejectsDuplicate(t *testing.T) {
	s := NewStore(seedDay, 3)
	if err := s.RegisterStudent("S001", "Alex", "alex@example.edu", "pw"); err != nil {
		t.Fatalf("RegisterStudent: %v", err)
	}
	if err := s.RegisterStudent("S001", "Other", "other@example.edu", "pw"); err != errDuplicateID {
		t.Errorf("duplicate register: %v, want %v", err, errDuplicateID)
	}
}
