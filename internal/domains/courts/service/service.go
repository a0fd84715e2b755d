package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/savioruz/courtside/config"
	"github.com/savioruz/courtside/internal/domains/bookings/validator"
	"github.com/savioruz/courtside/internal/domains/courts/dto"
	"github.com/savioruz/courtside/pkg/backend"
	"github.com/savioruz/courtside/pkg/constant"
	"github.com/savioruz/courtside/pkg/failure"
	"github.com/savioruz/courtside/pkg/helper"
	"github.com/savioruz/courtside/pkg/logger"
	"github.com/savioruz/courtside/pkg/redis"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock github.com/savioruz/courtside/internal/domains/courts/service CourtService

type CourtService interface {
	Get(ctx context.Context, id int64) (dto.CourtResponse, error)
	Availability(ctx context.Context, id int64) (dto.CourtDetail, validator.Window, error)
	Invalidate(ctx context.Context) error
}

type courtService struct {
	backend backend.Client
	cache   redis.IRedisCache
	cfg     *config.Config
	logger  logger.Interface
}

func New(b backend.Client, c redis.IRedisCache, cfg *config.Config, l logger.Interface) CourtService {
	return &courtService{
		backend: b,
		cache:   c,
		cfg:     cfg,
		logger:  l,
	}
}

const (
	cacheGetCourtKey = "court"

	identifier = "service - court - %s"
)

func (s *courtService) Get(ctx context.Context, id int64) (res dto.CourtResponse, err error) {
	detail, window, err := s.Availability(ctx, id)
	if err != nil {
		return res, err
	}

	return res.FromDetail(detail, window), nil
}

// Availability returns the court detail and a window built fresh from it.
// Only the raw detail is cached.
func (s *courtService) Availability(ctx context.Context, id int64) (detail dto.CourtDetail, window validator.Window, err error) {
	detail, err = s.detail(ctx, id)
	if err != nil {
		return detail, window, err
	}

	window, err = detail.Window()
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("availability - court %d has an unusable schedule: %v", id, err))

		if err := s.cache.Delete(ctx, cacheKey(id)); err != nil {
			s.logger.Error(identifier, fmt.Sprintf("availability - failed to drop cached court %d: %v", id, err))
		}

		return detail, window, failure.BadGateway("court schedule is unavailable")
	}

	return detail, window, nil
}

func (s *courtService) detail(ctx context.Context, id int64) (res dto.CourtDetail, err error) {
	key := cacheKey(id)

	if err = s.cache.Get(ctx, key, &res); err == nil {
		s.logger.Debug(identifier, fmt.Sprintf("detail - cache hit for court %d", id))

		return res, nil
	}

	err = s.backend.Get(ctx, fmt.Sprintf(constant.BackendPathCourt, id), "", &res)
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("detail - failed to fetch court %d: %v", id, err))

		return res, translate(err, fmt.Sprintf("court %d not found", id))
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), key, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, fmt.Sprintf("detail - failed save cache: %v", err))
		}
	}()

	return res, nil
}

func (s *courtService) Invalidate(ctx context.Context) error {
	if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetCourtKey, "*")); err != nil {
		s.logger.Error(identifier, fmt.Sprintf("invalidate - failed to clear cache: %v", err))

		return err
	}

	return nil
}

func cacheKey(id int64) string {
	return helper.BuildCacheKey(cacheGetCourtKey, strconv.FormatInt(id, 10))
}

func translate(err error, notFound string) error {
	var be *backend.Error
	if !errors.As(err, &be) {
		return failure.BadGateway("booking backend is unreachable")
	}

	if be.StatusCode == http.StatusNotFound {
		return failure.NotFound(notFound)
	}

	return failure.FromUpstream(be.StatusCode, be.Message)
}
