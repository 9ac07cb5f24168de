package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webpulse/webpulse/pkg/domain"
	"github.com/webpulse/webpulse/pkg/scanner"
	"github.com/webpulse/webpulse/server/mocks"
)

func fptr(v float64) *float64 { return &v }

type testServer struct {
	websites *mocks.WebsiteStoreMock
	scans    *mocks.ScanStoreMock
	recs     *mocks.RecommendationStoreMock
	trigger  *mocks.TriggerMock
	ts       *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	srv := &testServer{
		websites: &mocks.WebsiteStoreMock{},
		scans:    &mocks.ScanStoreMock{},
		recs:     &mocks.RecommendationStoreMock{},
		trigger:  &mocks.TriggerMock{},
	}

	s := New(Config{Listen: ":0", Timeout: 5 * time.Second, Version: "test"},
		srv.websites, srv.scans, srv.recs, srv.trigger)
	srv.ts = httptest.NewServer(s.router)
	t.Cleanup(srv.ts.Close)
	return srv
}

func (ts *testServer) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.ts.URL + path)
	require.NoError(t, err)
	return resp
}

func (ts *testServer) postJSON(t *testing.T, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.ts.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func TestServer_Status(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.get(t, "/api/v1/status")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["version"])
}

func TestServer_Ping(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.get(t, "/ping")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_CreateWebsite(t *testing.T) {
	srv := newTestServer(t)
	srv.websites.CreateFunc = func(ctx context.Context, w *domain.Website) error {
		w.ID = "site-new"
		w.Status = domain.WebsiteStatusPending
		return nil
	}

	resp := srv.postJSON(t, "/api/v1/websites",
		`{"url":"https://example.com","name":"Example","scan_frequency":"weekly","email_notifications":true}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var website domain.Website
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&website))
	assert.Equal(t, "site-new", website.ID)
	assert.Equal(t, domain.FrequencyWeekly, website.ScanFrequency)
	assert.True(t, website.EmailNotifications)

	require.Len(t, srv.websites.CreateCalls(), 1)
	assert.Equal(t, "https://example.com", srv.websites.CreateCalls()[0].W.URL)
}

func TestServer_CreateWebsiteDefaultsToDaily(t *testing.T) {
	srv := newTestServer(t)
	srv.websites.CreateFunc = func(ctx context.Context, w *domain.Website) error { return nil }

	resp := srv.postJSON(t, "/api/v1/websites", `{"url":"https://example.com"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.Len(t, srv.websites.CreateCalls(), 1)
	assert.Equal(t, domain.FrequencyDaily, srv.websites.CreateCalls()[0].W.ScanFrequency)
}

func TestServer_CreateWebsiteRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing url", `{"name":"Example"}`},
		{"relative url", `{"url":"example.com/page"}`},
		{"bad frequency", `{"url":"https://example.com","scan_frequency":"fortnightly"}`},
		{"broken json", `{"url":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			resp := srv.postJSON(t, "/api/v1/websites", tt.body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Empty(t, srv.websites.CreateCalls())
		})
	}
}

func TestServer_GetWebsite(t *testing.T) {
	srv := newTestServer(t)
	srv.websites.GetFunc = func(ctx context.Context, id string) (*domain.Website, error) {
		if id != "site1" {
			return nil, domain.NotFound("website", id)
		}
		return &domain.Website{ID: "site1", URL: "https://example.com"}, nil
	}

	resp := srv.get(t, "/api/v1/websites/site1")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp404 := srv.get(t, "/api/v1/websites/unknown")
	defer resp404.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp404.StatusCode)
}

func TestServer_ListWebsites(t *testing.T) {
	srv := newTestServer(t)
	srv.websites.ListFunc = func(ctx context.Context) ([]*domain.Website, error) {
		return []*domain.Website{
			{ID: "site1", URL: "https://example.com"},
			{ID: "site2", URL: "https://other.example.com"},
		}, nil
	}

	resp := srv.get(t, "/api/v1/websites")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var websites []domain.Website
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&websites))
	assert.Len(t, websites, 2)
}

func TestServer_UpdateFrequency(t *testing.T) {
	srv := newTestServer(t)
	srv.websites.UpdateFrequencyFunc = func(ctx context.Context, id string, freq domain.ScanFrequency) error {
		if id != "site1" {
			return domain.NotFound("website", id)
		}
		return nil
	}

	req, err := http.NewRequest(http.MethodPut, srv.ts.URL+"/api/v1/websites/site1/frequency",
		bytes.NewBufferString(`{"scan_frequency":"hourly"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, srv.websites.UpdateFrequencyCalls(), 1)
	assert.Equal(t, domain.FrequencyHourly, srv.websites.UpdateFrequencyCalls()[0].Freq)
}

func TestServer_UpdateFrequencyRejectsUnknown(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodPut, srv.ts.URL+"/api/v1/websites/site1/frequency",
		bytes.NewBufferString(`{"scan_frequency":"yearly"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_TriggerScan(t *testing.T) {
	srv := newTestServer(t)
	srv.trigger.EnqueueFunc = func(ctx context.Context, websiteID string) (*domain.Scan, error) {
		return &domain.Scan{ID: "scan-new", WebsiteID: websiteID, Status: domain.ScanStatusPending}, nil
	}

	resp := srv.postJSON(t, "/api/v1/websites/site1/scan", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var scan domain.Scan
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&scan))
	assert.Equal(t, "scan-new", scan.ID)
	assert.Equal(t, domain.ScanStatusPending, scan.Status)
}

func TestServer_TriggerScanConflict(t *testing.T) {
	srv := newTestServer(t)
	srv.trigger.EnqueueFunc = func(ctx context.Context, websiteID string) (*domain.Scan, error) {
		return nil, scanner.ErrScanActive
	}

	resp := srv.postJSON(t, "/api/v1/websites/site1/scan", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestServer_TriggerScanUnknownWebsite(t *testing.T) {
	srv := newTestServer(t)
	srv.trigger.EnqueueFunc = func(ctx context.Context, websiteID string) (*domain.Scan, error) {
		return nil, domain.NotFound("website", websiteID)
	}

	resp := srv.postJSON(t, "/api/v1/websites/unknown/scan", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_ListScans(t *testing.T) {
	srv := newTestServer(t)
	srv.websites.GetFunc = func(ctx context.Context, id string) (*domain.Website, error) {
		return &domain.Website{ID: id, URL: "https://example.com"}, nil
	}
	srv.scans.ListByWebsiteFunc = func(ctx context.Context, websiteID string, limit int) ([]*domain.Scan, error) {
		assert.Equal(t, 5, limit)
		return []*domain.Scan{
			{ID: "scan2", WebsiteID: websiteID, Status: domain.ScanStatusCompleted, PerformanceScore: fptr(0.9)},
			{ID: "scan1", WebsiteID: websiteID, Status: domain.ScanStatusFailed, ErrorMessage: "timeout"},
		}, nil
	}

	resp := srv.get(t, "/api/v1/websites/site1/scans?limit=5")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var scans []domain.Scan
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&scans))
	require.Len(t, scans, 2)
	assert.Equal(t, "scan2", scans[0].ID)
	assert.Equal(t, "timeout", scans[1].ErrorMessage)
}

func TestServer_ListScansBadLimit(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.get(t, "/api/v1/websites/site1/scans?limit=bogus")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_GetScan(t *testing.T) {
	srv := newTestServer(t)
	srv.scans.GetFunc = func(ctx context.Context, id string) (*domain.Scan, error) {
		if id != "scan1" {
			return nil, domain.NotFound("scan", id)
		}
		return &domain.Scan{ID: "scan1", Status: domain.ScanStatusCompleted, PerformanceScore: fptr(0.83)}, nil
	}

	resp := srv.get(t, "/api/v1/scans/scan1")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var scan domain.Scan
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&scan))
	require.NotNil(t, scan.PerformanceScore)
	assert.InDelta(t, 0.83, *scan.PerformanceScore, 0.0001)

	resp404 := srv.get(t, "/api/v1/scans/unknown")
	defer resp404.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp404.StatusCode)
}

func TestServer_ListRecommendations(t *testing.T) {
	srv := newTestServer(t)
	srv.scans.GetFunc = func(ctx context.Context, id string) (*domain.Scan, error) {
		return &domain.Scan{ID: id, Status: domain.ScanStatusCompleted}, nil
	}
	srv.recs.ListByScanFunc = func(ctx context.Context, scanID string) ([]*domain.Recommendation, error) {
		return []*domain.Recommendation{
			{ID: "rec1", ScanID: scanID, Category: domain.CategoryAccessibility, Impact: domain.ImpactHigh, Title: "Images lack alt text"},
		}, nil
	}

	resp := srv.get(t, "/api/v1/scans/scan1/recommendations")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var recs []domain.Recommendation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recs))
	require.Len(t, recs, 1)
	assert.Equal(t, domain.ImpactHigh, recs[0].Impact)
}

func TestServer_ListWebsitesStoreError(t *testing.T) {
	srv := newTestServer(t)
	srv.websites.ListFunc = func(ctx context.Context) ([]*domain.Website, error) {
		return nil, errors.New("database is locked")
	}

	resp := srv.get(t, "/api/v1/websites")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestServer_Metrics(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.get(t, "/metrics")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
