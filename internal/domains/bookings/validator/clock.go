package validator

import (
	"errors"
	"fmt"
	"time"

	"github.com/savioruz/courtside/pkg/constant"
)

var (
	ErrMalformedTime = errors.New("time must be in HH:mm format")
	ErrMalformedDate = errors.New("date must be in YYYY-MM-DD format")
)

// TimeOfDay is a wall-clock reading with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay accepts "H:mm" or "HH:mm" with hour in [0,23] and minute in [0,59].
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(constant.HoursFormat, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// ClockOf returns the time of day of t, truncated to the minute.
func ClockOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*constant.MinutesPerHour + t.Minute
}

// Sub returns t - u in minutes.
func (t TimeOfDay) Sub(u TimeOfDay) int {
	return t.Minutes() - u.Minutes()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Date is a calendar day with no time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(constant.DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	return DateOf(t), nil
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()

	return Date{Year: y, Month: m, Day: d}
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}

	if d.Month != o.Month {
		return d.Month < o.Month
	}

	return d.Day < o.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
