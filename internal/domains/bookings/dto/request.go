package dto

import (
	"fmt"

	"github.com/savioruz/courtside/internal/domains/bookings/validator"
)

// BookingRequest is the booking form as the client submits it.
// Start and end times are checked by the booking validator, not by tags.
type BookingRequest struct {
	CourtID     int64  `json:"court_id" validate:"required,min=1" example:"7"`
	CourtNumber int    `json:"court_number" validate:"required,min=1" example:"1"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02" example:"2006-01-02"`
	StartTime   string `json:"start_time" example:"08:00"`
	EndTime     string `json:"end_time" example:"10:00"`
	Notes       string `json:"notes" validate:"omitempty,max=500"`
}

func (r BookingRequest) Draft() (validator.Draft, error) {
	date, err := validator.ParseDate(r.Date)
	if err != nil {
		return validator.Draft{}, fmt.Errorf("invalid booking date %q: %w", r.Date, err)
	}

	return validator.Draft{
		Date:        date,
		CourtNumber: r.CourtNumber,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Notes:       r.Notes,
	}, nil
}

// CreateBookingPayload is the body the booking backend expects on create.
type CreateBookingPayload struct {
	CourtID     int64  `json:"courtId"`
	CourtNumber int    `json:"courtNumber"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Notes       string `json:"notes,omitempty"`
}

// NewCreateBookingPayload builds the payload from a draft that already passed validation,
// so both times parse.
func NewCreateBookingPayload(courtID int64, draft validator.Draft) CreateBookingPayload {
	start, _ := validator.ParseTimeOfDay(draft.StartTime)
	end, _ := validator.ParseTimeOfDay(draft.EndTime)

	return CreateBookingPayload{
		CourtID:     courtID,
		CourtNumber: draft.CourtNumber,
		BookingDate: draft.Date.String(),
		StartTime:   start.String(),
		EndTime:     end.String(),
		Notes:       draft.Notes,
	}
}

// Submitter is the authenticated caller a booking is forwarded for.
type Submitter struct {
	UserID string
	Email  string
	Token  string
}
