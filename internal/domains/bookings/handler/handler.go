package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/courtside/internal/delivery/http/middleware"
	"github.com/savioruz/courtside/internal/delivery/http/response"
	"github.com/savioruz/courtside/internal/domains/bookings/dto"
	"github.com/savioruz/courtside/internal/domains/bookings/service"
	draft "github.com/savioruz/courtside/internal/domains/bookings/validator"
	"github.com/savioruz/courtside/pkg/constant"
	"github.com/savioruz/courtside/pkg/failure"
	"github.com/savioruz/courtside/pkg/gdto"
	"github.com/savioruz/courtside/pkg/logger"
)

type Handler struct {
	service   service.BookingService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.BookingService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - booking - %s"

	routepath = "/bookings"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	bookings := r.Group(routepath)

	bookings.Get("/defaults", h.Defaults)
	bookings.Post("/quote", h.Quote)
	bookings.Post("/", middleware.Jwt(), h.Submit)
	bookings.Get("/submissions", middleware.AdminOnly(), h.GetSubmissions)
}

// Defaults godoc
// @Summary Get booking draft defaults
// @Description Get the values a new booking form starts with
// @Tags bookings
// @Produce json
// @Success 200 {object} response.Data[dto.DefaultsResponse]
// @Router /bookings/defaults [get]
func (h *Handler) Defaults(ctx *fiber.Ctx) error {
	return response.WithJSON(ctx, fiber.StatusOK, h.service.Defaults(ctx.UserContext()))
}

// Quote godoc
// @Summary Quote booking
// @Description Validate a booking draft against the court's hours and price it without booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Language for validation messages" default(en)
// @Param booking body dto.BookingRequest true "Booking request"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /bookings/quote [post]
func (h *Handler) Quote(ctx *fiber.Ctx) error {
	req, err := h.parse(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	res, err := h.service.Quote(ctx.UserContext(), req, draft.MatchLanguage(ctx.Get(fiber.HeaderAcceptLanguage)))
	if err != nil {
		h.logger.Error(identifier, "quote - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// Submit godoc
// @Summary Create booking
// @Description Validate a booking draft and forward it to the booking backend
// @Tags bookings
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Language for validation messages" default(en)
// @Param booking body dto.BookingRequest true "Booking request"
// @Success 201 {object} response.Data[dto.SubmitResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /bookings/ [post]
// @Security BearerAuth
func (h *Handler) Submit(ctx *fiber.Ctx) error {
	req, err := h.parse(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	userID, ok := ctx.Locals(constant.JwtFieldUser).(string)
	if !ok || userID == "" {
		h.logger.Error(identifier, "submit - user not found in context")

		return response.WithError(ctx, failure.Unauthorized("user not authenticated"))
	}

	token, ok := ctx.Locals(constant.JwtFieldToken).(string)
	if !ok {
		h.logger.Error(identifier, "submit - invalid token type in context")

		return response.WithError(ctx, constant.ErrInvalidContextUserType)
	}

	email, _ := ctx.Locals(constant.JwtFieldEmail).(string)

	submitter := dto.Submitter{
		UserID: userID,
		Email:  email,
		Token:  token,
	}

	res, err := h.service.Submit(ctx.UserContext(), req, submitter, draft.MatchLanguage(ctx.Get(fiber.HeaderAcceptLanguage)))
	if err != nil {
		h.logger.Error(identifier, "submit - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, res)
}

// GetSubmissions godoc
// @Summary Get booking submissions
// @Description Get forwarded booking drafts, newest first
// @Tags bookings
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param filter query string false "Submission status" Enums(submitted, rejected)
// @Success 200 {object} response.Data[dto.GetSubmissionsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/submissions [get]
// @Security BearerAuth
func (h *Handler) GetSubmissions(ctx *fiber.Ctx) error {
	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error(identifier, "get submissions - error parsing query: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "get submissions - validate error: "+err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	res, err := h.service.GetSubmissions(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "get submissions - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

func (h *Handler) parse(ctx *fiber.Ctx) (req dto.BookingRequest, err error) {
	if err = ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, "error parsing request body: "+err.Error())

		return req, failure.BadRequest(err)
	}

	if err = h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, "validate error: "+err.Error())

		return req, failure.BadRequestFromString(err.Error())
	}

	return req, nil
}
