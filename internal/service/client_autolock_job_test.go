package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type countingLocker struct {
	mu     sync.Mutex
	locked bool
	locks  int
}

func (l *countingLocker) Lock() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.locked = true
	l.locks++
}

func (l *countingLocker) IsLocked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.locked
}

func (l *countingLocker) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.locks
}

func TestAutoLockJob_LocksWhenIdle(t *testing.T) {
	locker := &countingLocker{}
	job := NewAutoLockJob(locker, logger.Nop())

	job.Start(context.Background(), 40*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, locker.IsLocked, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, locker.count(), "an already locked manager is not locked again")
}

func TestAutoLockJob_TouchPostponesLock(t *testing.T) {
	locker := &countingLocker{}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex

	job := NewAutoLockJob(locker, logger.Nop()).(*autoLockJob)
	job.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		now = now.Add(d)
		mu.Unlock()
	}

	job.Touch()
	advance(time.Minute)
	job.lockIfIdle(2 * time.Minute)
	assert.False(t, locker.IsLocked())

	job.Touch()
	advance(90 * time.Second)
	job.lockIfIdle(2 * time.Minute)
	assert.False(t, locker.IsLocked())

	advance(time.Minute)
	job.lockIfIdle(2 * time.Minute)
	assert.True(t, locker.IsLocked())
}

func TestAutoLockJob_StopIsIdempotent(t *testing.T) {
	job := NewAutoLockJob(&countingLocker{}, logger.Nop())
	job.Stop()

	job.Start(context.Background(), time.Hour)
	job.Stop()
	job.Stop()
}
