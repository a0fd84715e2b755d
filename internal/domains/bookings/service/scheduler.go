package service

import (
	"context"
	"time"

	"github.com/savioruz/courtside/config"
	"github.com/savioruz/courtside/internal/domains/bookings/repository"
	"github.com/savioruz/courtside/pkg/helper"
	"github.com/savioruz/courtside/pkg/postgres"
)

type SchedulerService struct {
	db   postgres.PgxIface
	repo *repository.Queries
	cfg  *config.Config
	now  func() time.Time
}

func NewSchedulerService(db postgres.PgxIface, cfg *config.Config) *SchedulerService {
	return &SchedulerService{
		db:   db,
		repo: repository.New(),
		cfg:  cfg,
		now:  helper.NowInAppTimezone,
	}
}

// PurgeSubmissions deletes audit rows older than the retention period and reports how many went.
func (s *SchedulerService) PurgeSubmissions(ctx context.Context) (int64, error) {
	cutoff := s.now().AddDate(0, 0, -s.cfg.Schedule.SubmissionsRetention)

	return s.repo.DeleteSubmissionsBefore(ctx, s.db, helper.PgTimestamp(cutoff))
}
