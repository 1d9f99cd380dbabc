// Package browser adapts a headless Chrome instance driven by chromedp
// to the session interface the scraper strategy consumes.
package browser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/pricepulse/pricepulse-api/config"
	"github.com/pricepulse/pricepulse-api/internal/strategy"
)

// ChromeProvider launches one headless Chrome tab per session.
type ChromeProvider struct {
	cfg config.ScraperConfig
	log *slog.Logger
}

// ChromeProviderOptions groups dependencies for ChromeProvider.
type ChromeProviderOptions struct {
	Config config.ScraperConfig
	Logger *slog.Logger // optional
}

// NewChromeProvider constructs a new ChromeProvider.
func NewChromeProvider(opts ChromeProviderOptions) *ChromeProvider {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &ChromeProvider{cfg: opts.Config, log: log}
}

// OpenSession starts a browser context. The returned session owns the
// allocator and must be closed by the caller.
func (p *ChromeProvider) OpenSession(ctx context.Context) (strategy.Session, error) {
	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if !p.cfg.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}
	if p.cfg.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(p.cfg.ExecPath))
	}
	allocOpts = append(allocOpts, chromedp.NoSandbox)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)

	// Starting the browser is deferred until the first action; run a
	// no-op now so a missing binary fails here, not mid-scrape.
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, fmt.Errorf("start browser: %w", err)
	}

	return &chromeSession{
		ctx:        tabCtx,
		cancels:    []context.CancelFunc{cancelTab, cancelAlloc},
		navTimeout: p.cfg.NavigationTimeout,
		log:        p.log,
	}, nil
}

type chromeSession struct {
	ctx        context.Context
	cancels    []context.CancelFunc
	navTimeout time.Duration
	log        *slog.Logger
}

// Navigate loads the URL and waits for the document body to be ready.
func (s *chromeSession) Navigate(ctx context.Context, url string) error {
	runCtx, cancel := s.boundedCtx(ctx, s.navTimeout)
	defer cancel()

	if err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

// WaitForSelector blocks until an element matching selector is visible.
func (s *chromeSession) WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error {
	runCtx, cancel := s.boundedCtx(ctx, timeout)
	defer cancel()

	if err := chromedp.Run(runCtx, chromedp.WaitVisible(selector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("wait for selector %q: %w", selector, err)
	}
	return nil
}

// Extract evaluates script in the page and unmarshals its result into out.
func (s *chromeSession) Extract(ctx context.Context, script string, out any) error {
	runCtx, cancel := s.boundedCtx(ctx, s.navTimeout)
	defer cancel()

	if err := chromedp.Run(runCtx, chromedp.Evaluate(script, out)); err != nil {
		return fmt.Errorf("evaluate extraction script: %w", err)
	}
	return nil
}

// Close tears down the tab and the browser process.
func (s *chromeSession) Close(context.Context) error {
	for _, cancel := range s.cancels {
		cancel()
	}
	return nil
}

// boundedCtx derives a chromedp-compatible context that also observes
// the caller's cancellation and an optional timeout.
func (s *chromeSession) boundedCtx(caller context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	runCtx := s.ctx
	stop := func() {}
	if caller != nil {
		var cancelCause context.CancelFunc
		runCtx, cancelCause = context.WithCancel(runCtx)
		stopDone := make(chan struct{})
		go func() {
			select {
			case <-caller.Done():
				cancelCause()
			case <-stopDone:
			}
		}()
		stop = func() { close(stopDone); cancelCause() }
	}
	if timeout > 0 {
		timed, cancelTimed := context.WithTimeout(runCtx, timeout)
		prev := stop
		return timed, func() { cancelTimed(); prev() }
	}
	return runCtx, stop
}
