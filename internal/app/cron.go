package app

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/savioruz/courtside/config"
	"github.com/savioruz/courtside/pkg/helper"
)

// Cron registers the housekeeping jobs and starts the scheduler.
// A job that fails to register is logged and skipped.
func Cron(app *Application, cfg *config.Config) *cron.Cron {
	c := cron.New(cron.WithSeconds(), cron.WithLocation(helper.NowInAppTimezone().Location()))

	_, err := c.AddFunc(cfg.Schedule.SubmissionsPurge, func() {
		ctx := context.WithoutCancel(context.Background())

		deleted, err := app.Scheduler.PurgeSubmissions(ctx)
		if err != nil {
			app.Logger.Error("Cron job - PurgeSubmissions failed: %v", err)

			return
		}

		app.Logger.Info("Cron job - PurgeSubmissions removed %d submissions", deleted)
	})
	if err != nil {
		app.Logger.Error("Cron job - AddFunc PurgeSubmissions failed: %v", err)
	}

	_, err = c.AddFunc(cfg.Schedule.CourtsRefresh, func() {
		if err := app.Courts.Invalidate(context.Background()); err != nil {
			app.Logger.Error("Cron job - Invalidate courts failed: %v", err)
		}
	})
	if err != nil {
		app.Logger.Error("Cron job - AddFunc Invalidate courts failed: %v", err)
	}

	c.Start()

	return c
}
