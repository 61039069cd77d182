// Package api is the REST client for the shuttle backend. It owns the wire
// shapes of the backend contract and normalizes its inconsistent success
// signalling (success flags, {error} payloads, id-presence on booking
// creation) into plain Go results: a value and an error, where business
// failures are a typed *RemoteError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/shuttle-booking-client/internal/model"
)

// Client talks to one backend instance. It is safe for use from a single
// goroutine at a time, which matches how the controller issues requests.
type Client struct {
	base string
	http *http.Client
	log  *slog.Logger
}

// New builds a Client for the given base URL, e.g.
// "http://localhost:8080/api". A zero timeout leaves the platform default in
// place; no request-level timeout is imposed beyond it.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
		log:  logger,
	}
}

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// statusReply is the {success, message?, error?} envelope used by the login,
// register and delete endpoints.
type statusReply struct {
	Success   bool   `json:"success"`
	StudentID string `json:"studentId"`
	Message   string `json:"message"`
	Error     string `json:"error"`
}

func (r statusReply) failure() *RemoteError {
	msg := r.Message
	if msg == "" {
		msg = r.Error
	}
	return &RemoteError{Message: msg}
}

// Login authenticates the student and returns the backend's student id.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var reply statusReply
	if err := c.roundTrip(ctx, http.MethodPost, "/login", nil, body, &reply); err != nil {
		return "", err
	}
	if !reply.Success {
		return "", reply.failure()
	}
	return reply.StudentID, nil
}

// Register creates a student account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	var reply statusReply
	if err := c.roundTrip(ctx, http.MethodPost, "/register", nil, req, &reply); err != nil {
		return err
	}
	if !reply.Success {
		return reply.failure()
	}
	return nil
}

// Schedules queries departures for a date and an optional route. Results come
// back in backend order; the client never re-sorts them.
func (c *Client) Schedules(ctx context.Context, date, route string) ([]model.Schedule, error) {
	q := url.Values{}
	q.Set("date", date)
	if route != "" {
		q.Set("route", route)
	}
	var out []model.Schedule
	if err := c.roundTrip(ctx, http.MethodGet, "/schedules", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBooking reserves one seat on a schedule for the student. The backend
// signals success by returning a booking with an id rather than a success
// flag; that asymmetry is absorbed here.
func (c *Client) CreateBooking(ctx context.Context, studentID string, scheduleID int64, seatNumber string) (model.Booking, error) {
	body := map[string]any{
		"studentId":  studentID,
		"scheduleId": scheduleID,
		"seatNumber": seatNumber,
	}
	var reply struct {
		model.Booking
		Error string `json:"error"`
	}
	if err := c.roundTrip(ctx, http.MethodPost, "/bookings", nil, body, &reply); err != nil {
		return model.Booking{}, err
	}
	if reply.ID == 0 {
		return model.Booking{}, &RemoteError{Message: reply.Error}
	}
	return reply.Booking, nil
}

// MyBookings returns every booking owned by the student.
func (c *Client) MyBookings(ctx context.Context, studentID string) ([]model.Booking, error) {
	var out []model.Booking
	if err := c.roundTrip(ctx, http.MethodGet, "/bookings/"+url.PathEscape(studentID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteBooking cancels a booking. The student id is passed so the backend
// can verify ownership.
func (c *Client) DeleteBooking(ctx context.Context, bookingID int64, studentID string) error {
	q := url.Values{}
	q.Set("studentId", studentID)
	var reply statusReply
	if err := c.roundTrip(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", bookingID), q, nil, &reply); err != nil {
		return err
	}
	if !reply.Success {
		return reply.failure()
	}
	return nil
}

// roundTrip performs one request and decodes the response body into out.
// Non-2xx responses carry a JSON envelope with an error or message field;
// those surface as *RemoteError so callers can tell business failures from
// transport errors. Every request carries a correlation id that also appears
// in the log line.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqID := uuid.NewString()

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("backend request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var envelope statusReply
		if err := json.Unmarshal(raw, &envelope); err == nil && (envelope.Error != "" || envelope.Message != "") {
			c.log.Debug("backend rejected request", "method", method, "path", path, "request_id", reqID, "status", resp.StatusCode)
			return envelope.failure()
		}
		c.log.Warn("backend returned unexpected status", "method", method, "path", path, "request_id", reqID, "status", resp.StatusCode)
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn("backend response undecodable", "method", method, "path", path, "request_id", reqID, "status", resp.StatusCode)
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	c.log.Debug("backend request", "method", method, "path", path, "request_id", reqID, "status", resp.StatusCode)
	return nil
}
