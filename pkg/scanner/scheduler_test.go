package scanner

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/webpulse/webpulse/pkg/domain"
)

func TestScheduler_StartStop(t *testing.T) {
	f := newFixture(t)

	var drains, schedules int32
	f.scans.ListPendingFunc = func(ctx context.Context, limit int) ([]*domain.Scan, error) {
		atomic.AddInt32(&drains, 1)
		return nil, nil
	}
	f.websites.ListDueFunc = func(ctx context.Context, now time.Time) ([]*domain.Website, error) {
		atomic.AddInt32(&schedules, 1)
		return nil, nil
	}

	sched := NewScheduler(f.scanner, SchedulerConfig{
		DrainInterval:    10 * time.Millisecond,
		ScheduleInterval: 10 * time.Millisecond,
	})

	sched.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	sched.Stop()

	// both workers ran immediately and then kept ticking
	assert.GreaterOrEqual(t, atomic.LoadInt32(&drains), int32(2))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&schedules), int32(2))

	// no further passes after Stop
	drainsAfter := atomic.LoadInt32(&drains)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, drainsAfter, atomic.LoadInt32(&drains))
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	f := newFixture(t)
	sched := NewScheduler(f.scanner, SchedulerConfig{})
	sched.Stop() // must not panic
}

func TestScheduler_Defaults(t *testing.T) {
	f := newFixture(t)
	sched := NewScheduler(f.scanner, SchedulerConfig{})
	assert.Equal(t, 5*time.Minute, sched.drainInterval)
	assert.Equal(t, time.Hour, sched.scheduleInterval)
}

func TestScheduler_ContextCancelStops(t *testing.T) {
	f := newFixture(t)
	f.scans.ListPendingFunc = func(ctx context.Context, limit int) ([]*domain.Scan, error) { return nil, nil }
	f.websites.ListDueFunc = func(ctx context.Context, now time.Time) ([]*domain.Website, error) { return nil, nil }

	ctx, cancel := context.WithCancel(context.Background())
	sched := NewScheduler(f.scanner, SchedulerConfig{
		DrainInterval:    10 * time.Millisecond,
		ScheduleInterval: 10 * time.Millisecond,
	})
	sched.Start(ctx)
	cancel()
	sched.Stop() // workers already stopped by context, Stop just waits
}
