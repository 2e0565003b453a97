package stacks

import (
	"context"
	"fmt"

	"stack-manager/core/reconcile"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// NewScheduler returns a cron scheduler running the full pipeline on the
// given standard cron spec. Runs never overlap: a tick arriving while the
// previous run is still executing is skipped.
// The caller starts and stops the scheduler.
func NewScheduler(service *Service, spec string, l *zap.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(
		cron.Recover(cron.DefaultLogger),
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := c.AddFunc(spec, func() {
		l.Info("Scheduled run started")
		results, err := service.Run(context.Background(), Pipeline, reconcile.Options{Confirmed: true}, nil)
		if err != nil {
			l.Error("Scheduled run failed", zap.Int("completed_steps", len(results)), zap.Error(err))
			return
		}
		l.Info("Scheduled run finished", zap.Int("steps", len(results)))
	})
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	return c, nil
}
