package rest

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/mo"
)

// Option is a functional option for New
type Option func(*clientConfig)

type clientConfig struct {
	resolver mo.Option[CredentialResolver]
	timeout  mo.Option[time.Duration]
	clock    mo.Option[func() time.Time]
	logger   zerolog.Logger
}

func defaultClientConfig() clientConfig {
	return clientConfig{
		resolver: mo.None[CredentialResolver](),
		timeout:  mo.None[time.Duration](),
		clock:    mo.None[func() time.Time](),
		logger:   zerolog.Nop(),
	}
}

// WithResolver sets where credentials for signed requests come from
func WithResolver(resolver CredentialResolver) Option {
	return func(cfg *clientConfig) {
		cfg.resolver = mo.Some(resolver)
	}
}

// WithTimeout bounds every request by timeout. A zero or negative
// value leaves requests unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *clientConfig) {
		if timeout <= 0 {
			cfg.timeout = mo.None[time.Duration]()
			return
		}
		cfg.timeout = mo.Some(timeout)
	}
}

// WithClock sets the time source used to generate nonces
func WithClock(clock func() time.Time) Option {
	return func(cfg *clientConfig) {
		cfg.clock = mo.Some(clock)
	}
}

// WithLogger sets the logger used for request tracing at debug level
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *clientConfig) {
		cfg.logger = logger
	}
}
