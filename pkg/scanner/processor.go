package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
)

// DrainPending executes up to BatchSize pending scans, oldest first,
// strictly sequentially. One failing scan never blocks the rest of the
// batch. Returns the number of scans processed.
func (s *Scanner) DrainPending(ctx context.Context) (int, error) {
	scans, err := s.Scans.ListPending(ctx, s.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("list pending scans: %w", err)
	}
	s.Metrics.QueueDepth(len(scans))
	if len(scans) == 0 {
		return 0, nil
	}
	lgr.Printf("[INFO] processing %d pending scans", len(scans))

	processed := 0
	for _, scan := range scans {
		if ctx.Err() != nil {
			return processed, ctx.Err()
		}
		if err := s.Execute(ctx, scan.ID); err != nil {
			lgr.Printf("[WARN] scan %s not executed: %v", scan.ID, err)
			continue
		}
		processed++
	}
	return processed, nil
}

// ScheduleDueScans queues a scan for every active website whose next scan
// time has passed. Websites that already have an active scan are skipped.
// Returns the number of scans queued.
func (s *Scanner) ScheduleDueScans(ctx context.Context, now time.Time) (int, error) {
	due, err := s.Websites.ListDue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list due websites: %w", err)
	}
	if len(due) == 0 {
		return 0, nil
	}
	lgr.Printf("[INFO] %d websites due for scan", len(due))

	queued := 0
	for _, w := range due {
		if ctx.Err() != nil {
			return queued, ctx.Err()
		}
		if _, err := s.Enqueue(ctx, w.ID); err != nil {
			if errors.Is(err, ErrScanActive) {
				lgr.Printf("[DEBUG] website %s already has an active scan, skipped", w.ID)
				continue
			}
			lgr.Printf("[WARN] can't queue scan for website %s: %v", w.ID, err)
			continue
		}
		queued++
	}
	return queued, nil
}
