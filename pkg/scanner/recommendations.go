package scanner

import (
	"github.com/webpulse/webpulse/pkg/audit"
	"github.com/webpulse/webpulse/pkg/domain"
)

// report categories surfaced to owners, in presentation order. PWA audits
// are informational and produce no recommendations.
var recommendationCategories = []struct {
	reportID string
	domain   domain.Category
}{
	{audit.CategoryPerformance, domain.CategoryPerformance},
	{audit.CategoryAccessibility, domain.CategoryAccessibility},
	{audit.CategoryBestPractices, domain.CategoryBestPractices},
	{audit.CategorySEO, domain.CategorySEO},
}

// extractRecommendations turns every audit below 1.0 into a recommendation.
// Audits without a score count as not-passing and surface with medium impact.
// An audit referenced by several categories yields one recommendation per
// category.
func extractRecommendations(scanID string, rep *audit.Report) []domain.Recommendation {
	var recs []domain.Recommendation
	for _, cat := range recommendationCategories {
		for _, auditID := range rep.CategoryAudits[cat.reportID] {
			a, ok := rep.Audits[auditID]
			if !ok {
				continue
			}
			if a.Score != nil && *a.Score >= 1 {
				continue
			}
			recs = append(recs, domain.Recommendation{
				ScanID:      scanID,
				Category:    cat.domain,
				Title:       a.Title,
				Description: a.Description,
				Impact:      domain.ImpactForScore(a.Score),
				Score:       a.Score,
				Details:     a.Details,
			})
		}
	}
	return recs
}
