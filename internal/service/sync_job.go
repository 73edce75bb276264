package service

import (
	"context"
	"time"

	"github.com/nirco-cloud/tripsync/internal/logger"
)

// SyncJob triggers a sync cycle on a fixed interval so replicas converge even
// when nobody presses the button. Cycle failures are logged and swallowed;
// the next tick retries.
type SyncJob struct {
	sync     SyncService
	interval time.Duration
	logger   *logger.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSyncJob constructs a periodic job. A non-positive interval disables it;
// Start then returns immediately.
func NewSyncJob(sync SyncService, interval time.Duration, log *logger.Logger) *SyncJob {
	return &SyncJob{sync: sync, interval: interval, logger: log}
}

// Start launches the background loop. Safe to call once.
func (j *SyncJob) Start(ctx context.Context) {
	if j.interval <= 0 {
		return
	}

	ctx, j.cancel = context.WithCancel(ctx)
	j.done = make(chan struct{})

	go j.loop(ctx)

	j.logger.Info().
		Str("func", "SyncJob.Start").
		Dur("interval", j.interval).
		Msg("periodic sync job started")
}

// Stop cancels the loop and waits for it to exit.
func (j *SyncJob) Stop() {
	if j.cancel == nil {
		return
	}
	j.cancel()
	<-j.done
}

func (j *SyncJob) loop(ctx context.Context) {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := j.sync.SyncNow(ctx); err != nil {
				j.logger.Warn().
					Str("func", "SyncJob.loop").
					Err(err).
					Msg("periodic sync failed")
			}
		}
	}
}
