package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/savioruz/courtside/config"
	"github.com/savioruz/courtside/pkg/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerService_PurgeSubmissions(t *testing.T) {
	cfg := &config.Config{Schedule: config.Schedule{SubmissionsRetention: 30}}
	cutoff := helper.PgTimestamp(fixedNow.AddDate(0, 0, -30))

	t.Run("success", func(t *testing.T) {
		mockPgx, err := pgxmock.NewPool()
		require.NoError(t, err)

		scheduler := NewSchedulerService(mockPgx, cfg)
		scheduler.now = func() time.Time { return fixedNow }

		mockPgx.ExpectExec("DELETE FROM booking_submissions").
			WithArgs(cutoff).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))

		deleted, err := scheduler.PurgeSubmissions(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
		assert.NoError(t, mockPgx.ExpectationsWereMet())
	})

	t.Run("error", func(t *testing.T) {
		mockPgx, err := pgxmock.NewPool()
		require.NoError(t, err)

		scheduler := NewSchedulerService(mockPgx, cfg)
		scheduler.now = func() time.Time { return fixedNow }

		mockPgx.ExpectExec("DELETE FROM booking_submissions").
			WithArgs(pgxmock.AnyArg()).
			WillReturnError(errors.New("connection reset"))

		_, err = scheduler.PurgeSubmissions(context.Background())

		assert.Error(t, err)
	})
}
