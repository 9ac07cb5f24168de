package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webpulse/webpulse/pkg/domain"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()

	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}
	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })

	require.NoError(t, repos.Ping(context.Background()))
	return repos
}

func TestRepositories_WebsiteOperations(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	website := &domain.Website{
		URL:                "https://example.com",
		Name:               "Example",
		ScanFrequency:      domain.FrequencyHourly,
		EmailNotifications: true,
		UserID:             "user-1",
	}
	require.NoError(t, repos.Website.Create(ctx, website))
	require.NotEmpty(t, website.ID)
	require.NotNil(t, website.NextScanAt, "next scan time computed on create")
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), *website.NextScanAt, 5*time.Second)
	assert.Equal(t, domain.WebsiteStatusPending, website.Status)

	t.Run("get", func(t *testing.T) {
		got, err := repos.Website.Get(ctx, website.ID)
		require.NoError(t, err)
		assert.Equal(t, website.URL, got.URL)
		assert.Equal(t, domain.FrequencyHourly, got.ScanFrequency)
		assert.True(t, got.EmailNotifications)
		require.NotNil(t, got.NextScanAt)
	})

	t.Run("get missing returns NotFoundError", func(t *testing.T) {
		_, err := repos.Website.Get(ctx, "no-such-id")
		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "website", nf.Kind)
	})

	t.Run("set status", func(t *testing.T) {
		require.NoError(t, repos.Website.SetStatus(ctx, website.ID, domain.WebsiteStatusActive))
		got, err := repos.Website.Get(ctx, website.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.WebsiteStatusActive, got.Status)
	})

	t.Run("set status missing returns NotFoundError", func(t *testing.T) {
		err := repos.Website.SetStatus(ctx, "no-such-id", domain.WebsiteStatusActive)
		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
	})

	t.Run("list due", func(t *testing.T) {
		// website is active, make it overdue
		require.NoError(t, repos.Website.UpdateScanTimes(ctx, website.ID,
			time.Now().UTC().Add(-2*time.Hour), time.Now().UTC().Add(-time.Hour)))

		due, err := repos.Website.ListDue(ctx, time.Now().UTC())
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, website.ID, due[0].ID)

		// not due when next scan is in the future
		require.NoError(t, repos.Website.UpdateScanTimes(ctx, website.ID,
			time.Now().UTC(), time.Now().UTC().Add(time.Hour)))
		due, err = repos.Website.ListDue(ctx, time.Now().UTC())
		require.NoError(t, err)
		assert.Empty(t, due)
	})

	t.Run("update frequency recomputes next scan", func(t *testing.T) {
		require.NoError(t, repos.Website.UpdateFrequency(ctx, website.ID, domain.FrequencyWeekly))
		got, err := repos.Website.Get(ctx, website.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.FrequencyWeekly, got.ScanFrequency)
		require.NotNil(t, got.NextScanAt)
		assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, 7), *got.NextScanAt, 5*time.Second)
	})

	t.Run("list", func(t *testing.T) {
		all, err := repos.Website.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestRepositories_ScanLifecycle(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	website := &domain.Website{URL: "https://example.com", UserID: "user-1"}
	require.NoError(t, repos.Website.Create(ctx, website))

	scan := &domain.Scan{WebsiteID: website.ID}
	require.NoError(t, repos.Scan.Create(ctx, scan))
	require.NotEmpty(t, scan.ID)
	assert.Equal(t, domain.ScanStatusPending, scan.Status)

	t.Run("pending scan has no scores", func(t *testing.T) {
		got, err := repos.Scan.Get(ctx, scan.ID)
		require.NoError(t, err)
		assert.Nil(t, got.PerformanceScore)
		assert.Nil(t, got.StartTime)
		assert.Empty(t, got.ErrorMessage)
	})

	t.Run("has active", func(t *testing.T) {
		active, err := repos.Scan.HasActive(ctx, website.ID)
		require.NoError(t, err)
		assert.True(t, active)

		active, err = repos.Scan.HasActive(ctx, "other-website")
		require.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("running", func(t *testing.T) {
		start := time.Now().UTC()
		require.NoError(t, repos.Scan.SetRunning(ctx, scan.ID, start))

		got, err := repos.Scan.Get(ctx, scan.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ScanStatusRunning, got.Status)
		require.NotNil(t, got.StartTime)
		assert.WithinDuration(t, start, *got.StartTime, time.Second)
	})

	t.Run("complete", func(t *testing.T) {
		perf, a11y := 0.9, 0.8
		fcp := 1.2
		res := domain.ScanResult{
			PerformanceScore:     &perf,
			AccessibilityScore:   &a11y,
			FirstContentfulPaint: &fcp,
		}
		end := time.Now().UTC()
		require.NoError(t, repos.Scan.Complete(ctx, scan.ID, res, "reports/x.json", end))

		got, err := repos.Scan.Get(ctx, scan.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ScanStatusCompleted, got.Status)
		require.NotNil(t, got.PerformanceScore)
		assert.InDelta(t, 0.9, *got.PerformanceScore, 0.001)
		require.NotNil(t, got.FirstContentfulPaint)
		assert.InDelta(t, 1.2, *got.FirstContentfulPaint, 0.001)
		assert.Nil(t, got.SEOScore, "unset scores stay null")
		assert.Equal(t, "reports/x.json", got.ReportPath)
		require.NotNil(t, got.EndTime)

		// completed scan no longer counts as active
		active, err := repos.Scan.HasActive(ctx, website.ID)
		require.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("fail", func(t *testing.T) {
		failed := &domain.Scan{WebsiteID: website.ID}
		require.NoError(t, repos.Scan.Create(ctx, failed))
		require.NoError(t, repos.Scan.Fail(ctx, failed.ID, "browser crashed", time.Now().UTC()))

		got, err := repos.Scan.Get(ctx, failed.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ScanStatusFailed, got.Status)
		assert.Equal(t, "browser crashed", got.ErrorMessage)
		assert.Nil(t, got.PerformanceScore)
	})

	t.Run("get missing returns NotFoundError", func(t *testing.T) {
		_, err := repos.Scan.Get(ctx, "no-such-id")
		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
	})
}

func TestRepositories_PendingOrderAndLimit(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	website := &domain.Website{URL: "https://example.com"}
	require.NoError(t, repos.Website.Create(ctx, website))

	ids := make([]string, 7)
	for i := range ids {
		scan := &domain.Scan{WebsiteID: website.ID}
		require.NoError(t, repos.Scan.Create(ctx, scan))
		ids[i] = scan.ID
		time.Sleep(2 * time.Millisecond) // distinct created_at ordering
	}

	pending, err := repos.Scan.ListPending(ctx, 5)
	require.NoError(t, err)
	require.Len(t, pending, 5, "batch size respected")
	for i, scan := range pending {
		assert.Equal(t, ids[i], scan.ID, "oldest first")
	}
}

func TestRepositories_LastCompleted(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	website := &domain.Website{URL: "https://example.com"}
	require.NoError(t, repos.Website.Create(ctx, website))

	current := &domain.Scan{WebsiteID: website.ID}
	require.NoError(t, repos.Scan.Create(ctx, current))

	t.Run("none completed", func(t *testing.T) {
		prev, err := repos.Scan.LastCompleted(ctx, website.ID, current.ID)
		require.NoError(t, err)
		assert.Nil(t, prev)
	})

	mkCompleted := func(perf float64) *domain.Scan {
		scan := &domain.Scan{WebsiteID: website.ID}
		require.NoError(t, repos.Scan.Create(ctx, scan))
		require.NoError(t, repos.Scan.Complete(ctx, scan.ID,
			domain.ScanResult{PerformanceScore: &perf}, "", time.Now().UTC()))
		time.Sleep(2 * time.Millisecond)
		return scan
	}

	mkCompleted(0.70)
	newest := mkCompleted(0.90)

	t.Run("picks newest completed", func(t *testing.T) {
		prev, err := repos.Scan.LastCompleted(ctx, website.ID, current.ID)
		require.NoError(t, err)
		require.NotNil(t, prev)
		assert.Equal(t, newest.ID, prev.ID)
		assert.InDelta(t, 0.90, *prev.PerformanceScore, 0.001)
	})

	t.Run("excludes the given scan", func(t *testing.T) {
		prev, err := repos.Scan.LastCompleted(ctx, website.ID, newest.ID)
		require.NoError(t, err)
		require.NotNil(t, prev)
		assert.NotEqual(t, newest.ID, prev.ID)
	})
}

func TestRepositories_Recommendations(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	website := &domain.Website{URL: "https://example.com"}
	require.NoError(t, repos.Website.Create(ctx, website))
	scan := &domain.Scan{WebsiteID: website.ID}
	require.NoError(t, repos.Scan.Create(ctx, scan))

	score := 0.4
	recs := []domain.Recommendation{
		{
			ScanID:      scan.ID,
			Category:    domain.CategoryPerformance,
			Title:       "Properly size images",
			Description: "Serve images that are appropriately-sized.",
			Impact:      domain.ImpactHigh,
			Score:       &score,
			Details:     json.RawMessage(`{"type":"opportunity"}`),
		},
		{
			ScanID:   scan.ID,
			Category: domain.CategorySEO,
			Title:    "Document has a meta description",
			Impact:   domain.ImpactLow,
		},
	}
	require.NoError(t, repos.Recommendation.CreateBulk(ctx, recs))

	got, err := repos.Recommendation.ListByScan(ctx, scan.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// high impact sorts first
	assert.Equal(t, domain.ImpactHigh, got[0].Impact)
	assert.Equal(t, "Properly size images", got[0].Title)
	require.NotNil(t, got[0].Score)
	assert.InDelta(t, 0.4, *got[0].Score, 0.001)
	assert.JSONEq(t, `{"type":"opportunity"}`, string(got[0].Details))

	assert.Nil(t, got[1].Score)

	t.Run("empty bulk create is a no-op", func(t *testing.T) {
		require.NoError(t, repos.Recommendation.CreateBulk(ctx, nil))
	})
}

func TestRepositories_Users(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	user := &domain.User{Email: "owner@example.com", Name: "Owner"}
	require.NoError(t, repos.User.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	got, err := repos.User.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", got.Email)

	_, err = repos.User.Get(ctx, "no-such-id")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
}
