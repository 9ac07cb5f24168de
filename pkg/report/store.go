// Package report stores raw audit reports on the filesystem, one JSON file
// per scan keyed by the scan id.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/webpulse/webpulse/pkg/audit"
)

// FileStore writes report artifacts under a base directory. The path recorded
// on the scan is relative to the base so the storage root can move.
type FileStore struct {
	dir string
}

// NewFileStore creates the reports directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create reports directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the report for a scan and returns the relative artifact path
func (s *FileStore) Save(scanID string, rep *audit.Report) (string, error) {
	data, err := json.Marshal(rep)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	name := scanID + ".json"
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil { //nolint:gosec // report is not sensitive
		return "", fmt.Errorf("write report %s: %w", name, err)
	}
	return filepath.Join(filepath.Base(s.dir), name), nil
}

// Load reads a previously saved report by scan id
func (s *FileStore) Load(scanID string) (*audit.Report, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, scanID+".json")) //nolint:gosec // path is built from a validated id
	if err != nil {
		return nil, fmt.Errorf("read report for scan %s: %w", scanID, err)
	}
	var rep audit.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("parse report for scan %s: %w", scanID, err)
	}
	return &rep, nil
}
