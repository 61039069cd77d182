// Package app holds the client's single controller: every piece of mutable
// state (session, cached bookings, last query results, seat-map context)
// lives on one Controller struct instead of free package variables, and all
// state transitions happen on the goroutine that owns it.
//
// The concurrency model mirrors the event loop the original browser client
// ran on. Controller methods are event handlers invoked from one goroutine.
// A backend call never blocks that goroutine: the request runs in its own
// goroutine and its completion is queued back, to be applied by Flush on the
// owning goroutine. Each completion is tagged with the controller generation
// current when the request was issued; login, logout and seat-map close bump
// the generation, so a stale response is discarded instead of corrupting the
// state it no longer belongs to.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/iliyamo/shuttle-booking-client/internal/api"
	"github.com/iliyamo/shuttle-booking-client/internal/model"
	"github.com/iliyamo/shuttle-booking-client/internal/seatmap"
)

// noticeDelay is how long the transient success banner stays up.
const noticeDelay = 3 * time.Second

// Backend is the slice of the REST contract the controller drives. It is
// satisfied by *api.Client and by test fakes.
type Backend interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, req api.RegisterRequest) error
	Schedules(ctx context.Context, date, route string) ([]model.Schedule, error)
	CreateBooking(ctx context.Context, studentID string, scheduleID int64, seatNumber string) (model.Booking, error)
	MyBookings(ctx context.Context, studentID string) ([]model.Booking, error)
	DeleteBooking(ctx context.Context, bookingID int64, studentID string) error
}

// searchParams are the three schedule filters. The date is required; route
// and time filter may be empty.
type searchParams struct {
	Date  string
	Route string
	Time  string
}

// bookingContext is the schedule the open seat overlay belongs to. It exists
// only while the overlay is open.
type bookingContext struct {
	ScheduleID    int64
	Route         string
	DepartureTime string
	Date          string
}

// completion is one queued unit of work for the owning goroutine. tracked
// completions correspond to outstanding backend requests and are what Flush
// waits for; untracked ones (banner expiry) run opportunistically.
type completion struct {
	tracked bool
	run     func()
}

// Options configures a Controller. Backend and View are required.
type Options struct {
	Backend Backend
	View    View
	Logger  *slog.Logger
	// Clock supplies "now" for filter defaults and booking urgency. Defaults
	// to time.Now.
	Clock func() time.Time
	// After schedules a delayed function, used for banner expiry. Defaults
	// to time.AfterFunc. Tests substitute it to control time.
	After func(d time.Duration, f func())
	// Remember, when set, is called with the student id after a successful
	// login so the shell can echo it locally. Never authoritative.
	Remember func(studentID string)
}

// Controller owns the whole client state and implements every user-facing
// operation. It is not safe for concurrent use: call it from one goroutine
// and drain completions with Flush or Pump on that same goroutine.
type Controller struct {
	backend  Backend
	view     View
	log      *slog.Logger
	clock    func() time.Time
	after    func(d time.Duration, f func())
	remember func(string)

	queue   chan completion
	pending int
	gen     uint64

	student    string
	bookings   []model.Booking
	schedules  []model.Schedule
	filters    searchParams
	lastSearch searchParams
	hasSearch  bool
	seats      *seatmap.Map
	booking    *bookingContext
	noticeSeq  uint64
}

// New builds a Controller. A missing Backend or View is a programming error,
// not a runtime condition, so it panics.
func New(opts Options) *Controller {
	if opts.Backend == nil || opts.View == nil {
		panic("app: Backend and View are required")
	}
	c := &Controller{
		backend:  opts.Backend,
		view:     opts.View,
		log:      opts.Logger,
		clock:    opts.Clock,
		after:    opts.After,
		remember: opts.Remember,
		queue:    make(chan completion, 128),
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	if c.after == nil {
		c.after = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	return c
}

// StudentID returns the current session's student id, empty when logged out.
func (c *Controller) StudentID() string { return c.student }

// LoggedIn reports whether a session is active.
func (c *Controller) LoggedIn() bool { return c.student != "" }

// Filters returns the current search filter values, used by shells to
// prefill the search inputs after login resets them.
func (c *Controller) Filters() (date, route, timeFilter string) {
	return c.filters.Date, c.filters.Route, c.filters.Time
}

// async issues one backend request. fetch runs off the owning goroutine and
// must touch nothing but the backend; the closure it returns is applied back
// on the owning goroutine, and only if the generation has not moved on.
func (c *Controller) async(fetch func() func()) {
	gen := c.gen
	c.pending++
	go func() {
		apply := fetch()
		c.queue <- completion{tracked: true, run: func() {
			if gen != c.gen {
				c.log.Debug("discarding stale completion", "issued_gen", gen, "current_gen", c.gen)
				return
			}
			if apply != nil {
				apply()
			}
		}}
	}()
}

// post queues work for the owning goroutine without counting it as an
// outstanding request.
func (c *Controller) post(run func()) {
	c.queue <- completion{run: run}
}

// Flush applies queued completions until no backend request is outstanding.
// Completions may issue follow-up requests (a confirmed booking reloads both
// lists); Flush waits for those too.
func (c *Controller) Flush() {
	for c.pending > 0 {
		e := <-c.queue
		if e.tracked {
			c.pending--
		}
		e.run()
	}
}

// Pump applies any already-queued completions without blocking. Shells call
// it between user events so delayed work, like banner expiry, gets a chance
// to run.
func (c *Controller) Pump() {
	for {
		select {
		case e := <-c.queue:
			if e.tracked {
				c.pending--
			}
			e.run()
		default:
			return
		}
	}
}

// notify shows the success banner and schedules its removal. A newer banner
// supersedes the pending removal of an older one.
func (c *Controller) notify(msg string) {
	c.view.Notify(msg)
	c.noticeSeq++
	seq := c.noticeSeq
	c.after(noticeDelay, func() {
		c.post(func() {
			if c.noticeSeq == seq {
				c.view.ClearNotice()
			}
		})
	})
}
