package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/savioruz/courtside/config"
	"github.com/savioruz/courtside/internal/domains/bookings/dto"
	"github.com/savioruz/courtside/internal/domains/bookings/repository"
	"github.com/savioruz/courtside/internal/domains/bookings/validator"
	courtService "github.com/savioruz/courtside/internal/domains/courts/service"
	"github.com/savioruz/courtside/pkg/backend"
	"github.com/savioruz/courtside/pkg/constant"
	"github.com/savioruz/courtside/pkg/failure"
	"github.com/savioruz/courtside/pkg/gdto"
	"github.com/savioruz/courtside/pkg/helper"
	"github.com/savioruz/courtside/pkg/logger"
	"github.com/savioruz/courtside/pkg/mq"
	"github.com/savioruz/courtside/pkg/postgres"
	"golang.org/x/text/language"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock github.com/savioruz/courtside/internal/domains/bookings/service BookingService

type BookingService interface {
	Defaults(ctx context.Context) dto.DefaultsResponse
	Quote(ctx context.Context, req dto.BookingRequest, lang language.Tag) (dto.QuoteResponse, error)
	Submit(ctx context.Context, req dto.BookingRequest, submitter dto.Submitter, lang language.Tag) (dto.SubmitResponse, error)
	GetSubmissions(ctx context.Context, req gdto.PaginationRequest) (dto.GetSubmissionsResponse, error)
}

type bookingService struct {
	db        postgres.PgxIface
	repo      repository.Querier
	courts    courtService.CourtService
	backend   backend.Client
	publisher mq.Publisher
	cfg       *config.Config
	logger    logger.Interface
	now       func() time.Time
}

func New(
	db postgres.PgxIface,
	r repository.Querier,
	c courtService.CourtService,
	b backend.Client,
	p mq.Publisher,
	cfg *config.Config,
	l logger.Interface,
) BookingService {
	return &bookingService{
		db:        db,
		repo:      r,
		courts:    c,
		backend:   b,
		publisher: p,
		cfg:       cfg,
		logger:    l,
		now:       helper.NowInAppTimezone,
	}
}

const (
	identifier = "service - booking - %s"
)

func (s *bookingService) Defaults(_ context.Context) dto.DefaultsResponse {
	draft := validator.NewDraft(validator.DateOf(s.now()))

	return dto.DefaultsResponse{}.FromDraft(draft)
}

func (s *bookingService) Quote(ctx context.Context, req dto.BookingRequest, lang language.Tag) (res dto.QuoteResponse, err error) {
	draft, window, quote, err := s.check(ctx, req, lang)
	if err != nil {
		return res, err
	}

	return res.FromQuote(req.CourtID, draft, window, quote), nil
}

func (s *bookingService) Submit(ctx context.Context, req dto.BookingRequest, submitter dto.Submitter, lang language.Tag) (res dto.SubmitResponse, err error) {
	draft, window, quote, err := s.check(ctx, req, lang)
	if err != nil {
		return res, err
	}

	res.QuoteResponse = res.QuoteResponse.FromQuote(req.CourtID, draft, window, quote)

	payload := dto.NewCreateBookingPayload(req.CourtID, draft)
	audit := submissionParams(submitter.UserID, payload, quote)

	var remote dto.RemoteBooking
	if err = s.backend.Post(ctx, constant.BackendPathBookings, submitter.Token, payload, &remote); err != nil {
		s.logger.Error(identifier, fmt.Sprintf("submit - backend refused booking for court %d: %v", req.CourtID, err))

		var be *backend.Error
		if !errors.As(err, &be) {
			return res, failure.BadGateway("booking backend is unreachable")
		}

		audit.Status = constant.SubmissionStatusRejected
		audit.Reason = helper.PgString(be.Message)
		s.record(ctx, audit)

		return res, failure.FromUpstream(be.StatusCode, be.Message)
	}

	audit.Status = constant.SubmissionStatusSubmitted
	audit.RemoteBookingID = helper.PgString(remote.ID.String())

	// the booking exists upstream at this point, an audit failure must not fail the request
	submission, ok := s.record(ctx, audit)
	if ok {
		res.SubmissionID = dto.SubmissionResponse{}.FromModel(submission).ID
	}

	res.RemoteBookingID = remote.ID.String()
	res.RemoteStatus = remote.Status

	s.publish(ctx, dto.BookingSubmittedEvent{
		SubmissionID:    res.SubmissionID,
		RemoteBookingID: res.RemoteBookingID,
		UserID:          submitter.UserID,
		Email:           submitter.Email,
		CourtID:         payload.CourtID,
		CourtNumber:     payload.CourtNumber,
		BookingDate:     payload.BookingDate,
		StartTime:       payload.StartTime,
		EndTime:         payload.EndTime,
		TotalPrice:      quote.TotalPrice,
		SubmittedAt:     s.now().Format(constant.FullDateFormat),
	})

	return res, nil
}

func (s *bookingService) GetSubmissions(ctx context.Context, req gdto.PaginationRequest) (res dto.GetSubmissionsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	submissions, err := s.repo.GetSubmissions(ctx, s.db, repository.GetSubmissionsParams{
		Status: req.Filter,
		Limit:  int32(limit),
		Offset: int32(helper.CalculateOffset(page, limit)),
	})
	if err != nil {
		s.logger.Error(identifier, "get submissions - failed to query submissions: "+err.Error())

		return res, failure.InternalError(err)
	}

	total, err := s.repo.CountSubmissions(ctx, s.db, req.Filter)
	if err != nil {
		s.logger.Error(identifier, "get submissions - failed to count submissions: "+err.Error())

		return res, failure.InternalError(err)
	}

	res.FromModel(submissions, int(total), limit)

	return res, nil
}

// check turns a request into a priced draft. The court number is bounded by the
// court's count before the validator runs.
func (s *bookingService) check(
	ctx context.Context,
	req dto.BookingRequest,
	lang language.Tag,
) (draft validator.Draft, window validator.Window, quote validator.Quote, err error) {
	draft, err = req.Draft()
	if err != nil {
		return draft, window, quote, failure.BadRequest(err)
	}

	detail, window, err := s.courts.Availability(ctx, req.CourtID)
	if err != nil {
		return draft, window, quote, err
	}

	if detail.CourtCount > 0 && (draft.CourtNumber < 1 || draft.CourtNumber > detail.CourtCount) {
		return draft, window, quote, failure.BadRequestFromString(
			fmt.Sprintf("court number must be between 1 and %d", detail.CourtCount),
		)
	}

	outcome := validator.Validate(draft, window, s.now())
	if !outcome.Valid() {
		kind := outcome.Violation.Kind

		s.logger.Debug(identifier, fmt.Sprintf("check - draft for court %d rejected: %s", req.CourtID, kind))

		return draft, window, quote, failure.UnprocessableEntity(kind.String(), validator.Message(kind, lang))
	}

	return draft, window, outcome.Quote, nil
}

func (s *bookingService) record(ctx context.Context, arg repository.InsertSubmissionParams) (repository.BookingSubmission, bool) {
	submission, err := s.repo.InsertSubmission(ctx, s.db, arg)
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("record - failed to store %s submission: %v", arg.Status, err))

		return submission, false
	}

	return submission, true
}

func (s *bookingService) publish(ctx context.Context, event dto.BookingSubmittedEvent) {
	go func() {
		if err := s.publisher.PublishJSON(context.WithoutCancel(ctx), constant.EventBookingSubmitted, event); err != nil {
			s.logger.Error(identifier, fmt.Sprintf("publish - failed to publish %s: %v", constant.EventBookingSubmitted, err))
		}
	}()
}

func submissionParams(userID string, payload dto.CreateBookingPayload, quote validator.Quote) repository.InsertSubmissionParams {
	start, _ := validator.ParseTimeOfDay(payload.StartTime)
	end, _ := validator.ParseTimeOfDay(payload.EndTime)
	date, _ := validator.ParseDate(payload.BookingDate)

	return repository.InsertSubmissionParams{
		UserID:        userID,
		CourtID:       payload.CourtID,
		CourtNumber:   int32(payload.CourtNumber),
		BookingDate:   helper.PgDate(date.Year, date.Month, date.Day),
		StartTime:     helper.PgTime(start.Hour, start.Minute),
		EndTime:       helper.PgTime(end.Hour, end.Minute),
		DurationHours: int32(quote.DurationHours),
		TotalPrice:    helper.PgInt64(quote.TotalPrice),
		Notes:         helper.PgString(payload.Notes),
	}
}
