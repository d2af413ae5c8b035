package appointment

import (
	"strconv"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Duration int

var allowedDurations = []Duration{45, 60, 75, 90, 105, 120}

func AllowedDurations() []Duration {
	out := make([]Duration, len(allowedDurations))
	copy(out, allowedDurations)
	return out
}

func NewDuration(minutes int) (Duration, error) {
	for _, d := range allowedDurations {
		if int(d) == minutes {
			return d, nil
		}
	}
	return 0, ErrInvalidDuration
}

func (d Duration) Minutes() int { return int(d) }

func (d Duration) String() string { return strconv.Itoa(int(d)) }

// Slot is a calendar date plus a wall-clock start time, both interpreted as UTC.
type Slot struct {
	date  string
	clock string
	start time.Time
}

func NewSlot(date, clock string) (Slot, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return Slot{}, ErrInvalidDate
	}
	if _, err := time.Parse(timeLayout, clock); err != nil {
		return Slot{}, ErrInvalidTime
	}
	start, err := time.Parse(time.RFC3339, date+"T"+clock+":00Z")
	if err != nil {
		return Slot{}, ErrInvalidTime
	}
	return Slot{date: date, clock: clock, start: start}, nil
}

func (s Slot) Date() string     { return s.date }
func (s Slot) Time() string     { return s.clock }
func (s Slot) Start() time.Time { return s.start }

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}
