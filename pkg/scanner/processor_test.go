package scanner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webpulse/webpulse/pkg/domain"
)

func TestScanner_DrainPending(t *testing.T) {
	f := newFixture(t)

	var executed []string
	f.scans.ListPendingFunc = func(ctx context.Context, limit int) ([]*domain.Scan, error) {
		assert.Equal(t, 5, limit)
		return []*domain.Scan{
			{ID: "scan-a", WebsiteID: "site1", Status: domain.ScanStatusPending},
			{ID: "scan-b", WebsiteID: "site1", Status: domain.ScanStatusPending},
			{ID: "scan-c", WebsiteID: "site1", Status: domain.ScanStatusPending},
		}, nil
	}
	f.scans.GetFunc = func(ctx context.Context, id string) (*domain.Scan, error) {
		executed = append(executed, id)
		return &domain.Scan{ID: id, WebsiteID: "site1", Status: domain.ScanStatusPending}, nil
	}

	processed, err := f.scanner.DrainPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, processed)

	// strictly sequential, queue order preserved
	assert.Equal(t, []string{"scan-a", "scan-b", "scan-c"}, executed)
	assert.Len(t, f.scans.CompleteCalls(), 3)
}

func TestScanner_DrainPendingContinuesPastFailure(t *testing.T) {
	f := newFixture(t)

	f.scans.ListPendingFunc = func(ctx context.Context, limit int) ([]*domain.Scan, error) {
		return []*domain.Scan{
			{ID: "scan-bad", WebsiteID: "site1", Status: domain.ScanStatusPending},
			{ID: "scan-good", WebsiteID: "site1", Status: domain.ScanStatusPending},
		}, nil
	}
	f.scans.GetFunc = func(ctx context.Context, id string) (*domain.Scan, error) {
		if id == "scan-bad" {
			return nil, domain.NotFound("scan", id)
		}
		return &domain.Scan{ID: id, WebsiteID: "site1", Status: domain.ScanStatusPending}, nil
	}

	processed, err := f.scanner.DrainPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	assert.Len(t, f.scans.CompleteCalls(), 1)
	assert.Equal(t, "scan-good", f.scans.CompleteCalls()[0].ID)
}

func TestScanner_DrainPendingEmpty(t *testing.T) {
	f := newFixture(t)
	f.scans.ListPendingFunc = func(ctx context.Context, limit int) ([]*domain.Scan, error) { return nil, nil }

	processed, err := f.scanner.DrainPending(context.Background())
	require.NoError(t, err)
	assert.Zero(t, processed)
	assert.Empty(t, f.engine.AcquireCalls())
}

func TestScanner_DrainPendingListError(t *testing.T) {
	f := newFixture(t)
	f.scans.ListPendingFunc = func(ctx context.Context, limit int) ([]*domain.Scan, error) {
		return nil, errors.New("database is locked")
	}

	_, err := f.scanner.DrainPending(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list pending scans")
}

func TestScanner_ScheduleDueScans(t *testing.T) {
	f := newFixture(t)
	now := f.now

	f.websites.ListDueFunc = func(ctx context.Context, listNow time.Time) ([]*domain.Website, error) {
		assert.Equal(t, now, listNow)
		return []*domain.Website{
			{ID: "site1", URL: "https://example.com", Status: domain.WebsiteStatusActive},
			{ID: "site2", URL: "https://other.example.com", Status: domain.WebsiteStatusActive},
		}, nil
	}
	f.websites.GetFunc = func(ctx context.Context, id string) (*domain.Website, error) {
		return &domain.Website{ID: id, URL: "https://" + id + ".example.com"}, nil
	}
	// site2 already has a scan in flight
	f.scans.HasActiveFunc = func(ctx context.Context, websiteID string) (bool, error) {
		return websiteID == "site2", nil
	}

	queued, err := f.scanner.ScheduleDueScans(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, queued)

	require.Len(t, f.scans.CreateCalls(), 1)
	assert.Equal(t, "site1", f.scans.CreateCalls()[0].Scan.WebsiteID)
}

func TestScanner_ScheduleDueScansListError(t *testing.T) {
	f := newFixture(t)
	f.websites.ListDueFunc = func(ctx context.Context, now time.Time) ([]*domain.Website, error) {
		return nil, errors.New("database is locked")
	}

	_, err := f.scanner.ScheduleDueScans(context.Background(), f.now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list due websites")
}

func TestScanner_ScheduleDueScansContinuesPastFailure(t *testing.T) {
	f := newFixture(t)

	f.websites.ListDueFunc = func(ctx context.Context, now time.Time) ([]*domain.Website, error) {
		return []*domain.Website{{ID: "gone"}, {ID: "site1"}}, nil
	}

	queued, err := f.scanner.ScheduleDueScans(context.Background(), f.now)
	require.NoError(t, err)
	assert.Equal(t, 1, queued) // "gone" fails its lookup, site1 still queued
	assert.Len(t, f.scans.CreateCalls(), 1)
}
