package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/zlog"

	"github.com/aletkin/carminder/internal/engine"
)

type runner interface {
	Run(ctx context.Context) (engine.Summary, error)
}

// Scheduler drives engine runs on an in-process cron schedule. It is
// optional: with an empty spec nothing is registered and runs only happen
// through the HTTP trigger.
type Scheduler struct {
	cron    *cron.Cron
	runner  runner
	spec    string
	timeout time.Duration
}

// New creates a scheduler for the given cron spec.
func New(r runner, spec string, timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		runner:  r,
		spec:    spec,
		timeout: timeout,
	}
}

// Start registers the engine run job and starts the cron loop.
func (s *Scheduler) Start() error {
	if s.spec == "" {
		zlog.Logger.Info().Msg("internal scheduler disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		summary, err := s.runner.Run(ctx)
		if err != nil {
			zlog.Logger.Error().Err(err).Msg("scheduled engine run failed")
			return
		}

		zlog.Logger.Info().Str("summary", summary.String()).Msg("scheduled engine run done")
	})
	if err != nil {
		return fmt.Errorf("register engine run job: %w", err)
	}

	s.cron.Start()
	zlog.Logger.Info().Str("spec", s.spec).Msg("internal scheduler started")

	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
