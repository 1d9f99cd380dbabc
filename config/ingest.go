package config

import "time"

// IngestConfig contains ingestion orchestration configuration.
type IngestConfig struct {
	// RunLockTTL is the Redis lease placed on a configuration while a
	// trigger is executing. It is a safety valve: a crashed run frees the
	// configuration once the lease expires.
	RunLockTTL time.Duration `env:"INGEST_RUN_LOCK_TTL" envDefault:"5m"`

	// APIRequestTimeout bounds a single API-pull request.
	APIRequestTimeout time.Duration `env:"INGEST_API_TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to ingest configuration values.
func (i *IngestConfig) Sanitize() {
	if i.RunLockTTL <= 0 {
		i.RunLockTTL = 5 * time.Minute
	}
	if i.APIRequestTimeout <= 0 {
		i.APIRequestTimeout = 30 * time.Second
	}
}
