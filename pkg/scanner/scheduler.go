package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

// Scheduler drives the scanner on timers: a frequent drain pass over the
// pending queue and an hourly pass queueing scans for due websites.
type Scheduler struct {
	scanner          *Scanner
	drainInterval    time.Duration
	scheduleInterval time.Duration
	wg               sync.WaitGroup
	cancel           context.CancelFunc
}

// SchedulerConfig holds scheduler intervals
type SchedulerConfig struct {
	DrainInterval    time.Duration
	ScheduleInterval time.Duration
}

// NewScheduler creates a scheduler around the scanner, filling in default
// intervals for unset values.
func NewScheduler(s *Scanner, cfg SchedulerConfig) *Scheduler {
	if cfg.DrainInterval == 0 {
		cfg.DrainInterval = 5 * time.Minute
	}
	if cfg.ScheduleInterval == 0 {
		cfg.ScheduleInterval = time.Hour
	}
	return &Scheduler{
		scanner:          s,
		drainInterval:    cfg.DrainInterval,
		scheduleInterval: cfg.ScheduleInterval,
	}
}

// Start begins both workers. Each runs once immediately so a restart picks
// up backlog without waiting a full interval.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.drainWorker(ctx)

	s.wg.Add(1)
	go s.scheduleWorker(ctx)

	lgr.Printf("[INFO] scheduler started, drain every %v, due check every %v", s.drainInterval, s.scheduleInterval)
}

// Stop gracefully stops the scheduler, waiting for in-flight passes
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// drainWorker periodically executes pending scans
func (s *Scheduler) drainWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.drainInterval)
	defer ticker.Stop()

	s.drain(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.drain(ctx)
		}
	}
}

// scheduleWorker periodically queues scans for due websites
func (s *Scheduler) scheduleWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.scheduleInterval)
	defer ticker.Stop()

	s.schedule(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.schedule(ctx)
		}
	}
}

func (s *Scheduler) drain(ctx context.Context) {
	processed, err := s.scanner.DrainPending(ctx)
	if err != nil && ctx.Err() == nil {
		lgr.Printf("[ERROR] queue drain failed: %v", err)
		return
	}
	if processed > 0 {
		lgr.Printf("[INFO] queue drain processed %d scans", processed)
	}
}

func (s *Scheduler) schedule(ctx context.Context) {
	queued, err := s.scanner.ScheduleDueScans(ctx, s.scanner.NowFunc())
	if err != nil && ctx.Err() == nil {
		lgr.Printf("[ERROR] due website pass failed: %v", err)
		return
	}
	if queued > 0 {
		lgr.Printf("[INFO] queued %d scans for due websites", queued)
	}
}
