package config

import "time"

// ScraperConfig contains headless browser scraper configuration.
type ScraperConfig struct {
	// Headless controls whether Chrome runs headless. Disable locally to
	// watch a scrape in a real browser window.
	Headless bool `env:"SCRAPER_HEADLESS" envDefault:"true"`

	// ExecPath optionally points at a specific Chrome/Chromium binary.
	// Empty means chromedp's default lookup.
	ExecPath string `env:"SCRAPER_EXEC_PATH" envDefault:""`

	// NavigationTimeout bounds page navigation per scrape.
	NavigationTimeout time.Duration `env:"SCRAPER_NAV_TIMEOUT" envDefault:"30s"`

	// SelectorTimeout bounds the wait for a configured product container
	// selector before the run is failed.
	SelectorTimeout time.Duration `env:"SCRAPER_SELECTOR_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to scraper configuration values.
func (s *ScraperConfig) Sanitize() {
	if s.NavigationTimeout <= 0 {
		s.NavigationTimeout = 30 * time.Second
	}
	if s.SelectorTimeout <= 0 {
		s.SelectorTimeout = 10 * time.Second
	}
}
