package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// initJob starts the in-process schedule: the catalog listing cache is
// re-primed on the same interval as its TTL so the common read path
// rarely pays the database round trip, and a dropped Redis connection
// gets a reconnect attempt.
func (a *Application) initJob() {
	a.sched = cron.New()

	_, err := a.sched.AddFunc("@every 5m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if !a.cache.Available() && !a.cache.Reconnect(ctx) {
			return
		}
		if err := a.catalogSvc.WarmCache(ctx); err != nil {
			zap.L().Warn("catalog cache warm failed", zap.Error(err))
		}
	})
	if err != nil {
		zap.L().Error("failed to schedule cache warm job", zap.Error(err))
		return
	}

	a.sched.Start()
	zap.L().Info("background jobs started")
}
