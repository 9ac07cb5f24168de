package audit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/go-pkgz/lgr"
)

// probeJS collects timing and document measurements from the loaded page.
// LCP and layout shift come from buffered PerformanceObserver entries; the
// promise resolves after a short settle window so late entries are included.
const probeJS = `new Promise(resolve => {
	let lcp = 0, cls = 0, tbt = 0;
	try {
		new PerformanceObserver(list => {
			for (const e of list.getEntries()) lcp = Math.max(lcp, e.startTime);
		}).observe({type: 'largest-contentful-paint', buffered: true});
	} catch (e) {}
	try {
		new PerformanceObserver(list => {
			for (const e of list.getEntries()) if (!e.hadRecentInput) cls += e.value;
		}).observe({type: 'layout-shift', buffered: true});
	} catch (e) {}
	try {
		new PerformanceObserver(list => {
			for (const e of list.getEntries()) tbt += Math.max(0, e.duration - 50);
		}).observe({type: 'longtask', buffered: true});
	} catch (e) {}

	setTimeout(() => {
		const nav = performance.getEntriesByType('navigation')[0] || {};
		let fcp = 0;
		for (const e of performance.getEntriesByType('paint')) {
			if (e.name === 'first-contentful-paint') fcp = e.startTime;
		}
		const https = location.protocol === 'https:';
		const insecure = https
			? performance.getEntriesByType('resource').filter(e => e.name.startsWith('http://')).length
			: 0;
		const visibleText = el => (el.textContent || '').trim() !== '' ||
			(el.getAttribute('aria-label') || '').trim() !== '' ||
			(el.getAttribute('title') || '').trim() !== '';
		const links = [...document.querySelectorAll('a[href]')];
		const buttons = [...document.querySelectorAll('button, [role="button"], input[type="button"], input[type="submit"]')];
		const inputs = [...document.querySelectorAll('input:not([type=hidden]):not([type=button]):not([type=submit]), select, textarea')];
		const labelled = el => el.labels && el.labels.length > 0 ||
			(el.getAttribute('aria-label') || '').trim() !== '' ||
			el.getAttribute('aria-labelledby') !== null;
		const imgs = [...document.images];
		const iframes = [...document.querySelectorAll('iframe, frame')];

		resolve({
			firstContentfulPaint: fcp,
			largestContentfulPaint: lcp || fcp,
			cumulativeLayoutShift: cls,
			totalBlockingTime: tbt,
			domInteractive: nav.domInteractive || 0,
			loadEventEnd: nav.loadEventEnd || 0,
			title: document.title || '',
			hasDoctype: !!document.doctype,
			hasMetaDesc: !!document.querySelector('meta[name="description"][content]'),
			hasViewport: !!document.querySelector('meta[name="viewport"][content]'),
			hasHtmlLang: (document.documentElement.getAttribute('lang') || '').trim() !== '',
			hasH1: !!document.querySelector('h1'),
			hasCanonical: !!document.querySelector('link[rel="canonical"][href]'),
			isHttps: https,
			insecureScripts: insecure,
			imagesTotal: imgs.length,
			imagesWithAlt: imgs.filter(i => i.hasAttribute('alt')).length,
			linksTotal: links.length,
			linksWithName: links.filter(visibleText).length,
			buttonsTotal: buttons.length,
			buttonsWithName: buttons.filter(b => visibleText(b) || (b.value || '').trim() !== '').length,
			inputsTotal: inputs.length,
			inputsWithLabel: inputs.filter(labelled).length,
			iframesTotal: iframes.length,
			iframesWithName: iframes.filter(f => (f.getAttribute('title') || '').trim() !== '').length
		});
	}, 1000);
})`

// ChromeEngine runs audits in disposable headless Chrome instances. Every
// Acquire launches its own browser which lives for exactly one audit session.
type ChromeEngine struct {
	opts Options
}

// Options configures browser startup
type Options struct {
	ExecPath  string // custom chrome binary, empty for auto-discovery
	UserAgent string
	NoSandbox bool
	IdleWait  time.Duration // network quiet period after navigation
}

// NewChromeEngine creates an engine with the given browser options
func NewChromeEngine(opts Options) *ChromeEngine {
	if opts.UserAgent == "" {
		opts.UserAgent = "WebPulse/1.0 (+https://github.com/webpulse/webpulse)"
	}
	if opts.IdleWait == 0 {
		opts.IdleWait = 2 * time.Second
	}
	return &ChromeEngine{opts: opts}
}

// Acquire launches a fresh browser and returns its audit context. The caller
// owns the context and must Close it.
func (e *ChromeEngine) Acquire(ctx context.Context) (Context, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(e.opts.UserAgent),
	)
	if e.opts.NoSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}
	if e.opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(e.opts.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// start the browser process now so Acquire fails fast on a broken setup
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	return &chromeContext{
		ctx:           browserCtx,
		browserCancel: browserCancel,
		allocCancel:   allocCancel,
		idleWait:      e.opts.IdleWait,
	}, nil
}

// chromeContext is one disposable browser session
type chromeContext struct {
	ctx           context.Context
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc
	idleWait      time.Duration
	closeOnce     sync.Once
}

// Audit navigates to the url, waits for the network to settle and collects
// the page probe, honoring the caller's deadline.
func (c *chromeContext) Audit(ctx context.Context, url string) (*Report, error) {
	runCtx := c.ctx
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithDeadline(c.ctx, deadline)
		defer cancel()
	}

	var consoleErrors int64
	chromedp.ListenTarget(runCtx, func(ev any) {
		switch e := ev.(type) {
		case *runtime.EventConsoleAPICalled:
			if e.Type == runtime.APITypeError {
				atomic.AddInt64(&consoleErrors, 1)
			}
		case *runtime.EventExceptionThrown:
			atomic.AddInt64(&consoleErrors, 1)
		}
	})

	idle := waitNetworkIdle(runCtx, c.idleWait)

	if err := chromedp.Run(runCtx, chromedp.Navigate(url)); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", url, err)
	}

	select {
	case <-idle:
	case <-runCtx.Done():
		return nil, fmt.Errorf("navigate %s: %w", url, runCtx.Err())
	}

	var probe pageProbe
	err := chromedp.Run(runCtx, chromedp.Evaluate(probeJS, &probe,
		func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}))
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", url, err)
	}
	probe.ConsoleErrors = int(atomic.LoadInt64(&consoleErrors))

	lgr.Printf("[DEBUG] audited %s: fcp=%.0fms lcp=%.0fms console errors=%d",
		url, probe.FirstContentfulPaint, probe.LargestContentfulPaint, probe.ConsoleErrors)

	return buildReport(url, &probe), nil
}

// Close shuts the browser down, safe to call multiple times
func (c *chromeContext) Close() error {
	c.closeOnce.Do(func() {
		c.browserCancel()
		c.allocCancel()
	})
	return nil
}

// waitNetworkIdle signals once no network request has been active for the
// quiet period. The returned channel also closes on context cancellation.
func waitNetworkIdle(ctx context.Context, quiet time.Duration) <-chan struct{} {
	idleChan := make(chan struct{})
	var activeReqs int32
	var mu sync.Mutex
	var timer *time.Timer
	var once sync.Once

	startTimer := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(quiet, func() {
			if atomic.LoadInt32(&activeReqs) == 0 {
				once.Do(func() { close(idleChan) })
			}
		})
	}

	chromedp.ListenTarget(ctx, func(ev any) {
		switch ev.(type) {
		case *network.EventRequestWillBeSent:
			atomic.AddInt32(&activeReqs, 1)
		case *network.EventLoadingFinished, *network.EventLoadingFailed:
			if atomic.AddInt32(&activeReqs, -1) <= 0 {
				startTimer()
			}
		}
	})

	go func() {
		<-ctx.Done()
		once.Do(func() { close(idleChan) })
	}()

	// cover pages that finish loading before any tracked request fires
	startTimer()

	return idleChan
}
