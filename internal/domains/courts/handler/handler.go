package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/courtside/internal/delivery/http/middleware"
	"github.com/savioruz/courtside/internal/delivery/http/response"
	"github.com/savioruz/courtside/internal/domains/courts/service"
	"github.com/savioruz/courtside/pkg/constant"
	"github.com/savioruz/courtside/pkg/failure"
	"github.com/savioruz/courtside/pkg/logger"
)

type Handler struct {
	service service.CourtService
	logger  logger.Interface
}

func New(s service.CourtService, l logger.Interface) *Handler {
	return &Handler{
		service: s,
		logger:  l,
	}
}

const (
	identifier = "http - court - %s"

	routepath = "/courts"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	courts := r.Group(routepath)

	courts.Get("/:id", h.GetCourt)
}

// GetCourt godoc
// @Summary Get court by ID
// @Description Get court detail with its parsed opening hours and hourly price
// @Tags courts
// @Accept json
// @Produce json
// @Param id path int true "Court ID"
// @Success 200 {object} response.Data[dto.CourtResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /courts/{id} [get]
func (h *Handler) GetCourt(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt(constant.RequestParamID)
	if err != nil || id <= 0 {
		h.logger.Error(identifier, "get - invalid court id: "+ctx.Params(constant.RequestParamID))

		return response.WithError(ctx, failure.BadRequestFromString("invalid court id"))
	}

	res, err := h.service.Get(ctx.UserContext(), int64(id))
	if err != nil {
		h.logger.Error(identifier, "get - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}
