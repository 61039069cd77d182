package stubserver

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/shuttle-booking-client/internal/model"
)

// Seed shape: every day in the window gets one departure per route and time
// slot, all with the full 20-seat inventory.
var (
	seedRoutes = []string{
		"Campus-HSR Station",
		"HSR Station-Campus",
		"Campus-Central Station",
		"Central Station-Campus",
	}
	seedTimes = []string{"08:00", "09:30", "11:00", "13:30", "15:00", "16:30"}
)

const seatsPerShuttle = 20

// Booking window errors reported through the REST envelope.
var (
	errWindow      = errors.New("booking not yet open")
	errSeatTaken   = errors.New("seat already booked")
	errBookFailed  = errors.New("booking failed")
	errDelFailed   = errors.New("delete failed")
	errDuplicateID = errors.New("student id already registered")
)

type storedBooking struct {
	ID         int64
	StudentID  string
	ScheduleID int64
	SeatNumber string
}

type student struct {
	StudentID string
	Name      string
	Email     string
	Password  string
}

// Store is the in-memory state behind the stub backend: seeded schedules,
// bookings and registered students. Echo serves requests concurrently, so
// unlike the original single-threaded dev server every access takes the
// mutex.
type Store struct {
	mu sync.Mutex

	today     time.Time
	days      int
	schedules []model.Schedule
	bookings  []storedBooking
	students  map[string]student

	nextScheduleID int64
	nextBookingID  int64
}

// NewStore seeds a store with days worth of departures starting at today.
func NewStore(today time.Time, days int) *Store {
	if days <= 0 {
		days = 30
	}
	s := &Store{
		today:          model.Midnight(today),
		days:           days,
		students:       make(map[string]student),
		nextScheduleID: 1,
		nextBookingID:  1,
	}
	for i := 0; i < days; i++ {
		date := model.FormatDate(s.today.AddDate(0, 0, i))
		for _, route := range seedRoutes {
			for _, tm := range seedTimes {
				s.schedules = append(s.schedules, model.Schedule{
					ID:             s.nextScheduleID,
					Date:           date,
					Route:          route,
					DepartureTime:  tm,
					TotalSeats:     seatsPerShuttle,
					AvailableSeats: seatsPerShuttle,
				})
				s.nextScheduleID++
			}
		}
	}
	return s
}

// RegisterStudent stores a new account, rejecting duplicates.
func (s *Store) RegisterStudent(id, name, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.students[id]; ok {
		return errDuplicateID
	}
	s.students[id] = student{StudentID: id, Name: name, Email: email, Password: password}
	return nil
}

// SchedulesFor returns schedules matching the date and optional route, each
// with its occupied seat set computed from current bookings. Dates outside
// the seeded window (in the past, or beyond the last seeded day) are
// rejected; booking that far ahead is not open yet.
func (s *Store) SchedulesFor(date, route string) ([]model.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if date != "" {
		d, err := model.ParseDate(date)
		if err != nil {
			return nil, errWindow
		}
		d = model.Midnight(d)
		if d.Before(s.today) || d.After(s.today.AddDate(0, 0, s.days)) {
			return nil, errWindow
		}
	}
	out := make([]model.Schedule, 0, len(seedTimes)*len(seedRoutes))
	for _, sched := range s.schedules {
		if date != "" && sched.Date != date {
			continue
		}
		if route != "" && sched.Route != route {
			continue
		}
		sched.OccupiedSeats = s.occupiedSeatsLocked(sched.ID)
		out = append(out, sched)
	}
	return out, nil
}

// CreateBooking reserves a seat, enforcing availability and a first-wins
// seat conflict check.
func (s *Store) CreateBooking(studentID string, scheduleID int64, seatNumber string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(studentID) == "" || strings.TrimSpace(seatNumber) == "" {
		return model.Booking{}, errBookFailed
	}
	sched := s.scheduleLocked(scheduleID)
	if sched == nil || sched.AvailableSeats <= 0 {
		return model.Booking{}, errBookFailed
	}
	for _, b := range s.bookings {
		if b.ScheduleID == scheduleID && b.SeatNumber == seatNumber {
			return model.Booking{}, errSeatTaken
		}
	}
	rec := storedBooking{
		ID:         s.nextBookingID,
		StudentID:  studentID,
		ScheduleID: scheduleID,
		SeatNumber: seatNumber,
	}
	s.nextBookingID++
	s.bookings = append(s.bookings, rec)
	sched.AvailableSeats--
	return model.Booking{
		ID:         rec.ID,
		StudentID:  rec.StudentID,
		SeatNumber: rec.SeatNumber,
		Schedule:   sched.Summary(),
	}, nil
}

// BookingsFor returns the student's bookings with embedded schedule
// summaries, oldest first.
func (s *Store) BookingsFor(studentID string) []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Booking{}
	for _, b := range s.bookings {
		if b.StudentID != studentID {
			continue
		}
		sched := s.scheduleLocked(b.ScheduleID)
		if sched == nil {
			continue
		}
		out = append(out, model.Booking{
			ID:         b.ID,
			StudentID:  b.StudentID,
			SeatNumber: b.SeatNumber,
			Schedule:   sched.Summary(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DeleteBooking removes a booking if it exists and belongs to the student,
// returning its seat to the schedule's availability.
func (s *Store) DeleteBooking(bookingID int64, studentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID != bookingID || b.StudentID != studentID {
			continue
		}
		s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
		if sched := s.scheduleLocked(b.ScheduleID); sched != nil {
			sched.AvailableSeats++
		}
		return nil
	}
	return errDelFailed
}

func (s *Store) scheduleLocked(id int64) *model.Schedule {
	for i := range s.schedules {
		if s.schedules[i].ID == id {
			return &s.schedules[i]
		}
	}
	return nil
}

func (s *Store) occupiedSeatsLocked(scheduleID int64) []string {
	seats := []string{}
	for _, b := range s.bookings {
		if b.ScheduleID == scheduleID {
			seats = append(seats, b.SeatNumber)
		}
	}
	sort.Strings(seats)
	return seats
}

// String summarizes the store for startup logging.
func (s *Store) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("%d schedules over %d days from %s", len(s.schedules), s.days, model.FormatDate(s.today))
}
