// Package scanner is the orchestration core: it queues scans, executes them
// against the audit engine, persists results and recommendations, keeps
// website schedules current and dispatches regression alerts.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/webpulse/webpulse/pkg/audit"
	"github.com/webpulse/webpulse/pkg/domain"
	"github.com/webpulse/webpulse/pkg/metrics"
	"github.com/webpulse/webpulse/pkg/notify"
)

//go:generate moq -out mocks/website_store.go -pkg mocks -skip-ensure -fmt goimports . WebsiteStore
//go:generate moq -out mocks/scan_store.go -pkg mocks -skip-ensure -fmt goimports . ScanStore
//go:generate moq -out mocks/recommendation_store.go -pkg mocks -skip-ensure -fmt goimports . RecommendationStore
//go:generate moq -out mocks/user_store.go -pkg mocks -skip-ensure -fmt goimports . UserStore
//go:generate moq -out mocks/report_store.go -pkg mocks -skip-ensure -fmt goimports . ReportStore
//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// WebsiteStore provides website persistence operations
type WebsiteStore interface {
	Get(ctx context.Context, id string) (*domain.Website, error)
	ListDue(ctx context.Context, now time.Time) ([]*domain.Website, error)
	SetStatus(ctx context.Context, id string, status domain.WebsiteStatus) error
	UpdateScanTimes(ctx context.Context, id string, last, next time.Time) error
}

// ScanStore provides scan persistence operations
type ScanStore interface {
	Create(ctx context.Context, scan *domain.Scan) error
	Get(ctx context.Context, id string) (*domain.Scan, error)
	ListPending(ctx context.Context, limit int) ([]*domain.Scan, error)
	HasActive(ctx context.Context, websiteID string) (bool, error)
	SetRunning(ctx context.Context, id string, start time.Time) error
	Complete(ctx context.Context, id string, res domain.ScanResult, reportPath string, end time.Time) error
	Fail(ctx context.Context, id, errMsg string, end time.Time) error
	LastCompleted(ctx context.Context, websiteID, excludeID string) (*domain.Scan, error)
}

// RecommendationStore persists recommendations extracted from reports
type RecommendationStore interface {
	CreateBulk(ctx context.Context, recs []domain.Recommendation) error
}

// UserStore resolves website owners for alert delivery
type UserStore interface {
	Get(ctx context.Context, id string) (*domain.User, error)
}

// ReportStore persists raw audit reports
type ReportStore interface {
	Save(scanID string, rep *audit.Report) (string, error)
}

// Engine produces disposable audit sessions
type Engine interface {
	Acquire(ctx context.Context) (audit.Context, error)
}

// Notifier dispatches performance alerts
type Notifier interface {
	SendPerformanceAlert(ctx context.Context, alert notify.PerformanceAlert) error
}

// ErrScanActive is returned by Enqueue when the website already has a
// pending or running scan.
var ErrScanActive = errors.New("website already has an active scan")

// performance score drop that triggers an owner alert
const regressionThreshold = 0.05

// Params contains scanner dependencies and tunables
type Params struct {
	Websites        WebsiteStore
	Scans           ScanStore
	Recommendations RecommendationStore
	Users           UserStore
	Reports         ReportStore
	Engine          Engine
	Notifier        Notifier
	Metrics         *metrics.Metrics

	AuditTimeout time.Duration    // per-scan audit deadline, default 90s
	BatchSize    int              // pending scans drained per pass, default 5
	NowFunc      func() time.Time // injectable clock for tests
}

// Scanner runs the scan lifecycle. All methods are safe for concurrent use
// as long as the underlying stores are.
type Scanner struct {
	Params
}

// New creates a Scanner, filling in defaults for unset tunables
func New(params Params) *Scanner {
	if params.AuditTimeout == 0 {
		params.AuditTimeout = 90 * time.Second
	}
	if params.BatchSize == 0 {
		params.BatchSize = 5
	}
	if params.NowFunc == nil {
		params.NowFunc = time.Now
	}
	return &Scanner{Params: params}
}

// Enqueue creates a pending scan for the website and marks the website
// active. Returns ErrScanActive when a pending or running scan already
// exists, so triggers are idempotent per website.
func (s *Scanner) Enqueue(ctx context.Context, websiteID string) (*domain.Scan, error) {
	website, err := s.Websites.Get(ctx, websiteID)
	if err != nil {
		return nil, fmt.Errorf("get website: %w", err)
	}

	active, err := s.Scans.HasActive(ctx, website.ID)
	if err != nil {
		return nil, fmt.Errorf("check active scans: %w", err)
	}
	if active {
		return nil, ErrScanActive
	}

	scan := &domain.Scan{WebsiteID: website.ID, Status: domain.ScanStatusPending}
	if err := s.Scans.Create(ctx, scan); err != nil {
		return nil, fmt.Errorf("create scan: %w", err)
	}

	if err := s.Websites.SetStatus(ctx, website.ID, domain.WebsiteStatusActive); err != nil {
		lgr.Printf("[WARN] can't mark website %s active: %v", website.ID, err)
	}

	lgr.Printf("[INFO] scan %s queued for %s", scan.ID, website.URL)
	return scan, nil
}

// Execute runs a single scan end to end: marks it running, audits the page,
// stores the raw report, writes scores and metrics, extracts recommendations,
// advances the website schedule and checks for regressions. Any step failing
// after the scan started marks the scan failed with the error message; such
// failures are not returned to the caller.
func (s *Scanner) Execute(ctx context.Context, scanID string) error {
	scan, err := s.Scans.Get(ctx, scanID)
	if err != nil {
		return fmt.Errorf("get scan: %w", err)
	}
	if scan.Terminal() {
		lgr.Printf("[WARN] scan %s already %s, skipped", scan.ID, scan.Status)
		return nil
	}

	website, err := s.Websites.Get(ctx, scan.WebsiteID)
	if err != nil {
		return fmt.Errorf("get website for scan %s: %w", scanID, err)
	}

	started := s.NowFunc()
	if err := s.Scans.SetRunning(ctx, scan.ID, started); err != nil {
		return fmt.Errorf("mark scan %s running: %w", scan.ID, err)
	}
	lgr.Printf("[INFO] scan %s started for %s", scan.ID, website.URL)

	rep, runErr := s.runAudit(ctx, website.URL)
	if runErr == nil {
		runErr = s.saveOutcome(ctx, scan.ID, website, rep)
	}

	elapsed := s.NowFunc().Sub(started)
	if runErr != nil {
		s.failScan(ctx, scan.ID, runErr)
		s.Metrics.ScanCompleted(string(domain.ScanStatusFailed), elapsed.Seconds())
		return nil
	}

	s.Metrics.ScanCompleted(string(domain.ScanStatusCompleted), elapsed.Seconds())
	lgr.Printf("[INFO] scan %s completed for %s in %v", scan.ID, website.URL, elapsed.Round(time.Millisecond))

	// alert delivery never affects a completed scan
	s.checkRegression(ctx, website, scan.ID, rep.CategoryScore(audit.CategoryPerformance))
	return nil
}

// runAudit acquires a browser session, audits the url under the configured
// deadline and releases the session.
func (s *Scanner) runAudit(ctx context.Context, url string) (*audit.Report, error) {
	session, err := s.Engine.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire audit session: %w", err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			lgr.Printf("[WARN] audit session close failed: %v", cerr)
		}
	}()

	auditCtx, cancel := context.WithTimeout(ctx, s.AuditTimeout)
	defer cancel()

	rep, err := session.Audit(auditCtx, url)
	if err != nil {
		return nil, fmt.Errorf("audit %s: %w", url, err)
	}
	return rep, nil
}

// saveOutcome persists everything a successful audit produces: the raw
// report file, the scan scores and metrics, the recommendations and the
// website's advanced schedule.
func (s *Scanner) saveOutcome(ctx context.Context, scanID string, website *domain.Website, rep *audit.Report) error {
	reportPath, err := s.Reports.Save(scanID, rep)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	finished := s.NowFunc()
	if err := s.Scans.Complete(ctx, scanID, resultFromReport(rep), reportPath, finished); err != nil {
		return fmt.Errorf("complete scan: %w", err)
	}

	recs := extractRecommendations(scanID, rep)
	if len(recs) > 0 {
		if err := s.Recommendations.CreateBulk(ctx, recs); err != nil {
			return fmt.Errorf("save recommendations: %w", err)
		}
		lgr.Printf("[DEBUG] scan %s produced %d recommendations", scanID, len(recs))
	}

	next := domain.NextScanTime(website.ScanFrequency, finished)
	if err := s.Websites.UpdateScanTimes(ctx, website.ID, finished, next); err != nil {
		return fmt.Errorf("update website schedule: %w", err)
	}
	return nil
}

// failScan records a terminal failure, it never bubbles storage errors up
func (s *Scanner) failScan(ctx context.Context, scanID string, cause error) {
	lgr.Printf("[WARN] scan %s failed: %v", scanID, cause)
	if err := s.Scans.Fail(ctx, scanID, cause.Error(), s.NowFunc()); err != nil {
		lgr.Printf("[ERROR] can't record failure for scan %s: %v", scanID, err)
	}
}

// resultFromReport maps report categories and timing metrics into stored
// scan fields. Paint and interactivity timings convert from milliseconds to
// seconds; layout shift is unitless and blocking time stays in milliseconds.
func resultFromReport(rep *audit.Report) domain.ScanResult {
	return domain.ScanResult{
		PerformanceScore:   rep.CategoryScore(audit.CategoryPerformance),
		AccessibilityScore: rep.CategoryScore(audit.CategoryAccessibility),
		BestPracticesScore: rep.CategoryScore(audit.CategoryBestPractices),
		SEOScore:           rep.CategoryScore(audit.CategorySEO),
		PWAScore:           rep.CategoryScore(audit.CategoryPWA),

		FirstContentfulPaint:   msToSeconds(rep.MetricValue(audit.AuditFirstContentfulPaint)),
		LargestContentfulPaint: msToSeconds(rep.MetricValue(audit.AuditLargestContentfulPaint)),
		CumulativeLayoutShift:  rep.MetricValue(audit.AuditCumulativeLayoutShift),
		TotalBlockingTime:      rep.MetricValue(audit.AuditTotalBlockingTime),
		TimeToInteractive:      msToSeconds(rep.MetricValue(audit.AuditInteractive)),
		SpeedIndex:             msToSeconds(rep.MetricValue(audit.AuditSpeedIndex)),
	}
}

func msToSeconds(v *float64) *float64 {
	if v == nil {
		return nil
	}
	s := *v / 1000
	return &s
}
