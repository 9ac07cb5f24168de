package audit

import (
	"encoding/json"
	"fmt"
	"time"
)

// pageProbe holds raw measurements collected from a loaded page. Timings are
// in milliseconds as reported by the browser performance APIs.
type pageProbe struct {
	FirstContentfulPaint   float64 `json:"firstContentfulPaint"`
	LargestContentfulPaint float64 `json:"largestContentfulPaint"`
	CumulativeLayoutShift  float64 `json:"cumulativeLayoutShift"`
	TotalBlockingTime      float64 `json:"totalBlockingTime"`
	DomInteractive         float64 `json:"domInteractive"`
	LoadEventEnd           float64 `json:"loadEventEnd"`

	Title           string `json:"title"`
	HasDoctype      bool   `json:"hasDoctype"`
	HasMetaDesc     bool   `json:"hasMetaDesc"`
	HasViewport     bool   `json:"hasViewport"`
	HasHTMLLang     bool   `json:"hasHtmlLang"`
	HasH1           bool   `json:"hasH1"`
	HasCanonical    bool   `json:"hasCanonical"`
	IsHTTPS         bool   `json:"isHttps"`
	InsecureScripts int    `json:"insecureScripts"`

	ImagesTotal     int `json:"imagesTotal"`
	ImagesWithAlt   int `json:"imagesWithAlt"`
	LinksTotal      int `json:"linksTotal"`
	LinksWithName   int `json:"linksWithName"`
	ButtonsTotal    int `json:"buttonsTotal"`
	ButtonsWithName int `json:"buttonsWithName"`
	InputsTotal     int `json:"inputsTotal"`
	InputsWithLabel int `json:"inputsWithLabel"`
	IframesTotal    int `json:"iframesTotal"`
	IframesWithName int `json:"iframesWithName"`

	ConsoleErrors int `json:"-"` // collected from CDP events, not in-page
}

// auditDef declares one audit: its metadata, category membership and how its
// score derives from a page probe.
type auditDef struct {
	id          string
	title       string
	description string
	category    string
	score       func(p *pageProbe) *float64
	numeric     func(p *pageProbe) *float64
}

// metricCurve scores a millisecond timing against good/poor thresholds:
// at or below good scores 1, at or above poor scores 0, linear in between.
// Lighthouse uses a log-normal curve; the linear ramp keeps the same ordering
// and the same pass/fail ends.
func metricCurve(good, poor float64) func(v float64) float64 {
	return func(v float64) float64 {
		switch {
		case v <= good:
			return 1
		case v >= poor:
			return 0
		default:
			return round2((poor - v) / (poor - good))
		}
	}
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

func ratioScore(with, total int) *float64 {
	if total == 0 {
		return ptr(1)
	}
	return ptr(round2(float64(with) / float64(total)))
}

func boolScore(ok bool) *float64 {
	if ok {
		return ptr(1)
	}
	return ptr(0)
}

func ptr(v float64) *float64 { return &v }

// speedIndex approximates the visual completeness midpoint from paint timings
func (p *pageProbe) speedIndex() float64 {
	return (p.FirstContentfulPaint + p.LargestContentfulPaint) / 2
}

// interactive approximates time to interactive as the later of DOM
// interactive and last observed paint
func (p *pageProbe) interactive() float64 {
	tti := p.DomInteractive
	if p.LargestContentfulPaint > tti {
		tti = p.LargestContentfulPaint
	}
	return tti
}

var (
	fcpCurve = metricCurve(1800, 6000)
	lcpCurve = metricCurve(2500, 8000)
	clsCurve = metricCurve(0.1, 0.82) // unitless
	tbtCurve = metricCurve(200, 3000)
	ttiCurve = metricCurve(3800, 12000)
	siCurve  = metricCurve(3400, 11000)
)

// auditDefs is the catalog of checks the engine runs. Metric audits carry a
// numeric value in milliseconds (CLS is unitless) alongside the score.
var auditDefs = []auditDef{
	// performance metrics
	{
		id: AuditFirstContentfulPaint, category: CategoryPerformance,
		title:       "First Contentful Paint",
		description: "First Contentful Paint marks the time at which the first text or image is painted.",
		score:       func(p *pageProbe) *float64 { return ptr(fcpCurve(p.FirstContentfulPaint)) },
		numeric:     func(p *pageProbe) *float64 { return ptr(p.FirstContentfulPaint) },
	},
	{
		id: AuditLargestContentfulPaint, category: CategoryPerformance,
		title:       "Largest Contentful Paint",
		description: "Largest Contentful Paint marks the time at which the largest text or image is painted.",
		score:       func(p *pageProbe) *float64 { return ptr(lcpCurve(p.LargestContentfulPaint)) },
		numeric:     func(p *pageProbe) *float64 { return ptr(p.LargestContentfulPaint) },
	},
	{
		id: AuditCumulativeLayoutShift, category: CategoryPerformance,
		title:       "Cumulative Layout Shift",
		description: "Cumulative Layout Shift measures the movement of visible elements within the viewport.",
		score:       func(p *pageProbe) *float64 { return ptr(clsCurve(p.CumulativeLayoutShift)) },
		numeric:     func(p *pageProbe) *float64 { return ptr(p.CumulativeLayoutShift) },
	},
	{
		id: AuditTotalBlockingTime, category: CategoryPerformance,
		title:       "Total Blocking Time",
		description: "Sum of all time periods between FCP and Time to Interactive, when task length exceeded 50ms.",
		score:       func(p *pageProbe) *float64 { return ptr(tbtCurve(p.TotalBlockingTime)) },
		numeric:     func(p *pageProbe) *float64 { return ptr(p.TotalBlockingTime) },
	},
	{
		id: AuditInteractive, category: CategoryPerformance,
		title:       "Time to Interactive",
		description: "Time to Interactive is the amount of time it takes for the page to become fully interactive.",
		score:       func(p *pageProbe) *float64 { return ptr(ttiCurve(p.interactive())) },
		numeric:     func(p *pageProbe) *float64 { return ptr(p.interactive()) },
	},
	{
		id: AuditSpeedIndex, category: CategoryPerformance,
		title:       "Speed Index",
		description: "Speed Index shows how quickly the contents of a page are visibly populated.",
		score:       func(p *pageProbe) *float64 { return ptr(siCurve(p.speedIndex())) },
		numeric:     func(p *pageProbe) *float64 { return ptr(p.speedIndex()) },
	},

	// accessibility
	{
		id: "image-alt", category: CategoryAccessibility,
		title:       "Image elements have [alt] attributes",
		description: "Informative elements should aim for short, descriptive alternate text.",
		score:       func(p *pageProbe) *float64 { return ratioScore(p.ImagesWithAlt, p.ImagesTotal) },
	},
	{
		id: "link-name", category: CategoryAccessibility,
		title:       "Links have a discernible name",
		description: "Link text that is discernible, unique, and focusable improves the navigation experience.",
		score:       func(p *pageProbe) *float64 { return ratioScore(p.LinksWithName, p.LinksTotal) },
	},
	{
		id: "button-name", category: CategoryAccessibility,
		title:       "Buttons have an accessible name",
		description: "When a button doesn't have an accessible name, screen readers announce it as \"button\".",
		score:       func(p *pageProbe) *float64 { return ratioScore(p.ButtonsWithName, p.ButtonsTotal) },
	},
	{
		id: "label", category: CategoryAccessibility,
		title:       "Form elements have associated labels",
		description: "Labels ensure that form controls are announced properly by assistive technologies.",
		score:       func(p *pageProbe) *float64 { return ratioScore(p.InputsWithLabel, p.InputsTotal) },
	},
	{
		id: "html-has-lang", category: CategoryAccessibility,
		title:       "<html> element has a [lang] attribute",
		description: "The lang attribute lets screen readers announce the page text correctly.",
		score:       func(p *pageProbe) *float64 { return boolScore(p.HasHTMLLang) },
	},
	{
		id: "frame-title", category: CategoryAccessibility,
		title:       "<frame> or <iframe> elements have a title",
		description: "Screen reader users rely on frame titles to describe the contents of frames.",
		score:       func(p *pageProbe) *float64 { return ratioScore(p.IframesWithName, p.IframesTotal) },
	},

	// best practices
	{
		id: "is-on-https", category: CategoryBestPractices,
		title:       "Uses HTTPS",
		description: "All sites should be protected with HTTPS, even ones that don't handle sensitive data.",
		score:       func(p *pageProbe) *float64 { return boolScore(p.IsHTTPS) },
	},
	{
		id: "no-mixed-content", category: CategoryBestPractices,
		title:       "Avoids requesting insecure resources",
		description: "Insecure subresources weaken the security of an otherwise secure page.",
		score:       func(p *pageProbe) *float64 { return boolScore(p.InsecureScripts == 0) },
	},
	{
		id: "errors-in-console", category: CategoryBestPractices,
		title:       "No browser errors logged to the console",
		description: "Errors logged to the console indicate unresolved problems on the page.",
		score:       func(p *pageProbe) *float64 { return boolScore(p.ConsoleErrors == 0) },
	},
	{
		id: "doctype", category: CategoryBestPractices,
		title:       "Page has the HTML doctype",
		description: "Specifying a doctype prevents the browser from switching to quirks-mode.",
		score:       func(p *pageProbe) *float64 { return boolScore(p.HasDoctype) },
	},

	// seo
	{
		id: "document-title", category: CategorySEO,
		title:       "Document has a <title> element",
		description: "The title gives screen reader users an overview and is heavily weighted by search engines.",
		score:       func(p *pageProbe) *float64 { return boolScore(p.Title != "") },
	},
	{
		id: "meta-description", category: CategorySEO,
		title:       "Document has a meta description",
		description: "Meta descriptions may be included in search results to concisely summarize page content.",
		score:       func(p *pageProbe) *float64 { return boolScore(p.HasMetaDesc) },
	},
	{
		id: "viewport", category: CategorySEO,
		title:       "Has a <meta name=\"viewport\"> tag",
		description: "A viewport meta tag optimizes the page for mobile screen sizes.",
		score:       func(p *pageProbe) *float64 { return boolScore(p.HasViewport) },
	},
	{
		id: "canonical", category: CategorySEO,
		title:       "Document has a valid rel=canonical",
		description: "Canonical links suggest which URL to show in search results.",
		score:       func(p *pageProbe) *float64 { return boolScore(p.HasCanonical) },
	},
	{
		id: "heading-order", category: CategorySEO,
		title:       "Page has a top level heading",
		description: "A single h1 per page helps search engines understand the page structure.",
		score:       func(p *pageProbe) *float64 { return boolScore(p.HasH1) },
	},
}

// performance score weights, roughly following the Lighthouse weighting
var perfWeights = map[string]float64{
	AuditFirstContentfulPaint:   0.10,
	AuditSpeedIndex:             0.10,
	AuditLargestContentfulPaint: 0.25,
	AuditInteractive:            0.10,
	AuditTotalBlockingTime:      0.30,
	AuditCumulativeLayoutShift:  0.15,
}

// buildReport turns raw page measurements into the normalized report shape
func buildReport(url string, probe *pageProbe) *Report {
	r := &Report{
		URL:            url,
		FetchedAt:      time.Now().UTC(),
		Categories:     map[string]CategoryResult{},
		Audits:         map[string]AuditResult{},
		CategoryAudits: map[string][]string{},
	}

	for _, def := range auditDefs {
		res := AuditResult{
			ID:          def.id,
			Title:       def.title,
			Description: def.description,
			Score:       def.score(probe),
		}
		if def.numeric != nil {
			res.NumericValue = def.numeric(probe)
		}
		if res.Score != nil && *res.Score < 1 {
			res.Details = auditDetails(def, probe)
		}
		r.Audits[def.id] = res
		r.CategoryAudits[def.category] = append(r.CategoryAudits[def.category], def.id)
	}

	for _, cat := range []string{CategoryPerformance, CategoryAccessibility, CategoryBestPractices, CategorySEO} {
		r.Categories[cat] = CategoryResult{ID: cat, Title: categoryTitle(cat), Score: r.scoreCategory(cat)}
	}
	// pwa is not assessed, present without a score
	r.Categories[CategoryPWA] = CategoryResult{ID: CategoryPWA, Title: categoryTitle(CategoryPWA)}

	return r
}

// scoreCategory averages member audit scores; performance uses metric weights
func (r *Report) scoreCategory(cat string) *float64 {
	ids := r.CategoryAudits[cat]
	if len(ids) == 0 {
		return nil
	}

	if cat == CategoryPerformance {
		var sum, weights float64
		for _, id := range ids {
			a := r.Audits[id]
			w := perfWeights[id]
			if a.Score == nil || w == 0 {
				continue
			}
			sum += *a.Score * w
			weights += w
		}
		if weights == 0 {
			return nil
		}
		return ptr(round2(sum / weights))
	}

	var sum float64
	var n int
	for _, id := range ids {
		if a := r.Audits[id]; a.Score != nil {
			sum += *a.Score
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return ptr(round2(sum / float64(n)))
}

func categoryTitle(id string) string {
	switch id {
	case CategoryPerformance:
		return "Performance"
	case CategoryAccessibility:
		return "Accessibility"
	case CategoryBestPractices:
		return "Best Practices"
	case CategorySEO:
		return "SEO"
	case CategoryPWA:
		return "PWA"
	}
	return id
}

// auditDetails attaches the raw measurements behind a failing audit
func auditDetails(def auditDef, probe *pageProbe) json.RawMessage {
	detail := map[string]any{"type": "debugdata", "auditId": def.id}
	switch def.id {
	case "image-alt":
		detail["items"] = []map[string]any{{"total": probe.ImagesTotal, "withAlt": probe.ImagesWithAlt}}
	case "link-name":
		detail["items"] = []map[string]any{{"total": probe.LinksTotal, "withName": probe.LinksWithName}}
	case "button-name":
		detail["items"] = []map[string]any{{"total": probe.ButtonsTotal, "withName": probe.ButtonsWithName}}
	case "label":
		detail["items"] = []map[string]any{{"total": probe.InputsTotal, "withLabel": probe.InputsWithLabel}}
	case "errors-in-console":
		detail["items"] = []map[string]any{{"errors": probe.ConsoleErrors}}
	case "no-mixed-content":
		detail["items"] = []map[string]any{{"insecureScripts": probe.InsecureScripts}}
	default:
		if def.numeric != nil {
			detail["items"] = []map[string]any{{"value": *def.numeric(probe)}}
		}
	}
	data, err := json.Marshal(detail)
	if err != nil {
		return json.RawMessage(fmt.Sprintf(`{"type":"debugdata","auditId":%q}`, def.id))
	}
	return data
}
