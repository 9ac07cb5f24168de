package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/webpulse/webpulse/pkg/domain"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// createWebsiteHandler registers a new website for monitoring
func (s *Server) createWebsiteHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL                   string `json:"url"`
		Name                  string `json:"name"`
		ScanFrequency         string `json:"scan_frequency"`
		EmailNotifications    bool   `json:"email_notifications"`
		TelegramNotifications bool   `json:"telegram_notifications"`
		UserID                string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	if req.URL == "" {
		RenderError(w, r, fmt.Errorf("url is required"), http.StatusBadRequest)
		return
	}
	if u, err := url.Parse(req.URL); err != nil || u.Scheme == "" || u.Host == "" {
		RenderError(w, r, fmt.Errorf("invalid url %q", req.URL), http.StatusBadRequest)
		return
	}

	freq := domain.ScanFrequency(req.ScanFrequency)
	if req.ScanFrequency == "" {
		freq = domain.FrequencyDaily
	} else if !validFrequency(freq) {
		RenderError(w, r, fmt.Errorf("invalid scan_frequency %q", req.ScanFrequency), http.StatusBadRequest)
		return
	}

	website := &domain.Website{
		URL:                   req.URL,
		Name:                  req.Name,
		ScanFrequency:         freq,
		EmailNotifications:    req.EmailNotifications,
		TelegramNotifications: req.TelegramNotifications,
		UserID:                req.UserID,
	}
	if err := s.websites.Create(r.Context(), website); err != nil {
		lgr.Printf("[ERROR] can't create website: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	lgr.Printf("[INFO] website %s registered: %s", website.ID, website.URL)
	RenderJSON(w, r, http.StatusCreated, website)
}

// listWebsitesHandler returns all monitored websites
func (s *Server) listWebsitesHandler(w http.ResponseWriter, r *http.Request) {
	websites, err := s.websites.List(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] can't list websites: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, websites)
}

// getWebsiteHandler returns a single website
func (s *Server) getWebsiteHandler(w http.ResponseWriter, r *http.Request) {
	website, err := s.websites.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderError(w, r, err, storeErrorCode(err))
		return
	}
	RenderJSON(w, r, http.StatusOK, website)
}

// updateFrequencyHandler changes how often a website is scanned
func (s *Server) updateFrequencyHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ScanFrequency string `json:"scan_frequency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	freq := domain.ScanFrequency(req.ScanFrequency)
	if !validFrequency(freq) {
		RenderError(w, r, fmt.Errorf("invalid scan_frequency %q", req.ScanFrequency), http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	if err := s.websites.UpdateFrequency(r.Context(), id, freq); err != nil {
		RenderError(w, r, err, storeErrorCode(err))
		return
	}

	lgr.Printf("[INFO] website %s frequency updated to %s", id, freq)
	RenderJSON(w, r, http.StatusOK, map[string]string{"id": id, "scan_frequency": string(freq)})
}

// triggerScanHandler queues an on-demand scan for a website
func (s *Server) triggerScanHandler(w http.ResponseWriter, r *http.Request) {
	scan, err := s.trigger.Enqueue(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderError(w, r, err, storeErrorCode(err))
		return
	}
	RenderJSON(w, r, http.StatusAccepted, scan)
}

// listScansHandler returns scan history for a website, newest first
func (s *Server) listScansHandler(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			RenderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		limit = n
	}

	id := r.PathValue("id")
	if _, err := s.websites.Get(r.Context(), id); err != nil {
		RenderError(w, r, err, storeErrorCode(err))
		return
	}

	scans, err := s.scans.ListByWebsite(r.Context(), id, limit)
	if err != nil {
		lgr.Printf("[ERROR] can't list scans for website %s: %v", id, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, scans)
}

// getScanHandler returns a single scan with its results
func (s *Server) getScanHandler(w http.ResponseWriter, r *http.Request) {
	scan, err := s.scans.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderError(w, r, err, storeErrorCode(err))
		return
	}
	RenderJSON(w, r, http.StatusOK, scan)
}

// listRecommendationsHandler returns recommendations for a completed scan
func (s *Server) listRecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.scans.Get(r.Context(), id); err != nil {
		RenderError(w, r, err, storeErrorCode(err))
		return
	}

	recs, err := s.recs.ListByScan(r.Context(), id)
	if err != nil {
		lgr.Printf("[ERROR] can't list recommendations for scan %s: %v", id, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, recs)
}

func validFrequency(freq domain.ScanFrequency) bool {
	switch freq {
	case domain.FrequencyHourly, domain.FrequencyDaily, domain.FrequencyWeekly, domain.FrequencyMonthly:
		return true
	}
	return false
}
