package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const defaultIdleTimeout = 5 * time.Minute

type autoLockJob struct {
	locker Locker
	logger *logger.Logger
	now    func() time.Time

	mu         sync.Mutex
	lastActive time.Time
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// NewAutoLockJob creates an idle [AutoLockJob] for locker.
func NewAutoLockJob(locker Locker, log *logger.Logger) AutoLockJob {
	return &autoLockJob{locker: locker, logger: log, now: time.Now}
}

// Start implements AutoLockJob. It stops any previously running job and
// checks for inactivity several times per idle period. A non-positive idle
// defaults to 5 minutes.
func (j *autoLockJob) Start(ctx context.Context, idle time.Duration) {
	if idle <= 0 {
		idle = defaultIdleTimeout
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.lastActive = j.now()
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(max(idle/4, 10*time.Millisecond))
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.lockIfIdle(idle)
			}
		}
	}()
}

func (j *autoLockJob) lockIfIdle(idle time.Duration) {
	j.mu.Lock()
	idleFor := j.now().Sub(j.lastActive)
	j.mu.Unlock()

	if idleFor < idle || j.locker.IsLocked() {
		return
	}

	j.locker.Lock()
	j.logger.Info().
		Str("func", "*autoLockJob.lockIfIdle").
		Dur("idle", idleFor).
		Msg("password manager locked after inactivity")
}

// Touch implements AutoLockJob.
func (j *autoLockJob) Touch() {
	j.mu.Lock()
	j.lastActive = j.now()
	j.mu.Unlock()
}

// Stop implements AutoLockJob. Safe to call when the job is not running.
func (j *autoLockJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
