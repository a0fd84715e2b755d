// Package validator decides whether a court booking draft can be scheduled and prices it.
//
// Validate is pure: the caller passes the wall-clock time, so the same inputs always
// yield the same Outcome.
package validator

import (
	"errors"
	"time"

	"github.com/savioruz/courtside/pkg/constant"
	"github.com/savioruz/courtside/pkg/helper"
	"golang.org/x/text/language"
)

var ErrNegativePrice = errors.New("price per hour must not be negative")

// Window is the bookable part of a court's day. Open is inclusive, Close is exclusive.
type Window struct {
	Open         TimeOfDay
	Close        TimeOfDay
	PricePerHour int64
}

func NewWindow(open, closeAt string, pricePerHour int64) (Window, error) {
	o, err := ParseTimeOfDay(open)
	if err != nil {
		return Window{}, err
	}

	c, err := ParseTimeOfDay(closeAt)
	if err != nil {
		return Window{}, err
	}

	if pricePerHour < 0 {
		return Window{}, ErrNegativePrice
	}

	return Window{Open: o, Close: c, PricePerHour: pricePerHour}, nil
}

// coversHour compares hours only, minutes inside a boundary hour are accepted.
func (w Window) coversHour(t TimeOfDay) bool {
	return t.Hour >= w.Open.Hour && t.Hour < w.Close.Hour
}

// Draft is a booking being edited on the client. Times stay raw until validated.
type Draft struct {
	Date        Date
	CourtNumber int
	StartTime   string
	EndTime     string
	Notes       string
}

// NewDraft returns the draft a booking screen opens with.
func NewDraft(today Date) Draft {
	return Draft{
		Date:        today,
		CourtNumber: constant.DefaultDraftCourtNumber,
		StartTime:   constant.DefaultDraftStartTime,
		EndTime:     constant.DefaultDraftEndTime,
	}
}

type Quote struct {
	DurationHours int   `json:"duration_hours"`
	TotalPrice    int64 `json:"total_price"`
}

// Outcome holds a Quote when the draft is valid, otherwise exactly one Violation.
type Outcome struct {
	Quote     Quote
	Violation *Violation
}

func (o Outcome) Valid() bool {
	return o.Violation == nil
}

// Err returns the violation as an error, or nil when the outcome is valid.
func (o Outcome) Err() error {
	if o.Violation == nil {
		return nil
	}

	return o.Violation
}

func invalid(kind ErrorKind) Outcome {
	return Outcome{
		Violation: &Violation{
			Kind:    kind,
			Message: Message(kind, language.English),
		},
	}
}

// Validate runs the booking checks in a fixed order and stops at the first failure:
// time format, past date, past start time (today only), ordering, minimum duration,
// operating hours.
//
// Duration and price use the hour components only, so 08:30-09:45 is billed as one hour.
func Validate(draft Draft, window Window, now time.Time) Outcome {
	start, err := ParseTimeOfDay(draft.StartTime)
	if err != nil {
		return invalid(MalformedTime)
	}

	end, err := ParseTimeOfDay(draft.EndTime)
	if err != nil {
		return invalid(MalformedTime)
	}

	today := DateOf(now)
	if draft.Date.Before(today) {
		return invalid(PastDate)
	}

	if draft.Date == today && start.Minutes() < ClockOf(now).Minutes() {
		return invalid(PastTime)
	}

	if end.Minutes() <= start.Minutes() {
		return invalid(EndBeforeStart)
	}

	if end.Sub(start) < constant.MinBookingMinutes {
		return invalid(TooShort)
	}

	if !window.coversHour(start) || !window.coversHour(end) {
		return invalid(OutsideOperatingHours)
	}

	hours := end.Hour - start.Hour

	return Outcome{
		Quote: Quote{
			DurationHours: hours,
			TotalPrice:    helper.CalculateTotalPrice(window.PricePerHour, hours),
		},
	}
}
