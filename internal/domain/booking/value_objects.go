package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"

	MaxCustomerNameLength = 255
)

var (
	ErrInvalidDate         = errors.New("date must use the YYYY-MM-DD format")
	ErrInvalidTimeOfDay    = errors.New("time must use the 24h HH:MM format")
	ErrInvalidTimeSlot     = errors.New("start time must be before end time")
	ErrEmptyCustomerName   = errors.New("customer name cannot be empty")
	ErrCustomerNameTooLong = errors.New("customer name is too long (max 255 characters)")
)

// Date is a calendar day without timezone semantics.
type Date struct {
	value string
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{value: t.Format(DateLayout)}, nil
}

func (d Date) String() string { return d.value }

// TimeOfDay is minutes since midnight.
type TimeOfDay struct {
	minutes int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeOfDayLayout, strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// TimeSlot is the half-open interval [start, end) on a single date.
type TimeSlot struct {
	date  Date
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeSlot(date Date, start, end TimeOfDay) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{date: date, start: start, end: end}, nil
}

func (ts TimeSlot) Date() Date       { return ts.date }
func (ts TimeSlot) Start() TimeOfDay { return ts.start }
func (ts TimeSlot) End() TimeOfDay   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return time.Duration(ts.end.minutes-ts.start.minutes) * time.Minute
}

// Overlaps reports whether both slots fall on the same date and their
// intervals intersect. Adjacent slots (one ends when the other starts) do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	if ts.date != other.date {
		return false
	}
	return ts.start.minutes < other.end.minutes && other.start.minutes < ts.end.minutes
}

type CustomerName struct {
	value string
}

func NewCustomerName(s string) (CustomerName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return CustomerName{}, ErrEmptyCustomerName
	}
	if len(t) > MaxCustomerNameLength {
		return CustomerName{}, ErrCustomerNameTooLong
	}
	return CustomerName{value: t}, nil
}

func (c CustomerName) String() string { return c.value }

// Matches compares names case-insensitively.
func (c CustomerName) Matches(name string) bool {
	return strings.EqualFold(c.value, name)
}
