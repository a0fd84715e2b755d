package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/savioruz/courtside/internal/domains/bookings/repository"
	"github.com/savioruz/courtside/internal/domains/bookings/validator"
	"github.com/savioruz/courtside/pkg/constant"
	"github.com/savioruz/courtside/pkg/helper"
)

type DefaultsResponse struct {
	Date        string `json:"date"`
	CourtNumber int    `json:"court_number"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

func (d DefaultsResponse) FromDraft(draft validator.Draft) DefaultsResponse {
	return DefaultsResponse{
		Date:        draft.Date.String(),
		CourtNumber: draft.CourtNumber,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
	}
}

type QuoteResponse struct {
	CourtID       int64  `json:"court_id"`
	CourtNumber   int    `json:"court_number"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	DurationHours int    `json:"duration_hours"`
	PricePerHour  int64  `json:"price_per_hour"`
	TotalPrice    int64  `json:"total_price"`
}

func (q QuoteResponse) FromQuote(courtID int64, draft validator.Draft, window validator.Window, quote validator.Quote) QuoteResponse {
	payload := NewCreateBookingPayload(courtID, draft)

	return QuoteResponse{
		CourtID:       courtID,
		CourtNumber:   draft.CourtNumber,
		Date:          payload.BookingDate,
		StartTime:     payload.StartTime,
		EndTime:       payload.EndTime,
		DurationHours: quote.DurationHours,
		PricePerHour:  window.PricePerHour,
		TotalPrice:    quote.TotalPrice,
	}
}

// RemoteBooking is the part of the backend's create answer this service keeps.
type RemoteBooking struct {
	ID     json.Number `json:"id"`
	Status string      `json:"status"`
}

type SubmitResponse struct {
	SubmissionID    string `json:"submission_id"`
	RemoteBookingID string `json:"booking_id"`
	RemoteStatus    string `json:"booking_status,omitempty"`
	QuoteResponse
}

type SubmissionResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	CourtID         int64  `json:"court_id"`
	CourtNumber     int    `json:"court_number"`
	BookingDate     string `json:"booking_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationHours   int    `json:"duration_hours"`
	TotalPrice      int64  `json:"total_price"`
	Notes           string `json:"notes,omitempty"`
	RemoteBookingID string `json:"booking_id,omitempty"`
	Status          string `json:"status"`
	Reason          string `json:"reason,omitempty"`
	CreatedAt       string `json:"created_at"`
}

func (s SubmissionResponse) FromModel(model repository.BookingSubmission) SubmissionResponse {
	return SubmissionResponse{
		ID:              uuid.UUID(model.ID.Bytes).String(),
		UserID:          model.UserID,
		CourtID:         model.CourtID,
		CourtNumber:     int(model.CourtNumber),
		BookingDate:     model.BookingDate.Time.Format(constant.DateFormat),
		StartTime:       helper.PgTimeToString(model.StartTime),
		EndTime:         helper.PgTimeToString(model.EndTime),
		DurationHours:   int(model.DurationHours),
		TotalPrice:      helper.Int64FromPg(model.TotalPrice),
		Notes:           model.Notes.String,
		RemoteBookingID: model.RemoteBookingID.String,
		Status:          model.Status,
		Reason:          model.Reason.String,
		CreatedAt:       model.CreatedAt.Time.Format(constant.FullDateFormat),
	}
}

type GetSubmissionsResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
	TotalItems  int                  `json:"total_items"`
	TotalPages  int                  `json:"total_pages"`
}

func (g *GetSubmissionsResponse) FromModel(submissions []repository.BookingSubmission, totalItems, limit int) {
	g.TotalItems = totalItems
	g.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(submissions) == 0 {
		g.Submissions = []SubmissionResponse{}

		return
	}

	g.Submissions = make([]SubmissionResponse, len(submissions))

	for i, submission := range submissions {
		g.Submissions[i] = SubmissionResponse{}.FromModel(submission)
	}
}

// BookingSubmittedEvent is published after the backend accepts a booking.
type BookingSubmittedEvent struct {
	SubmissionID    string `json:"submission_id"`
	RemoteBookingID string `json:"booking_id"`
	UserID          string `json:"user_id"`
	Email           string `json:"email,omitempty"`
	CourtID         int64  `json:"court_id"`
	CourtNumber     int    `json:"court_number"`
	BookingDate     string `json:"booking_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	TotalPrice      int64  `json:"total_price"`
	SubmittedAt     string `json:"submitted_at"`
}
