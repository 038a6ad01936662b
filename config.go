// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import "time"

// Config holds common configuration for dnssd operations.
//
// Pass this to constructor functions ([Browse], [Resolve], [Register], ...)
// to pre-wire dependencies. All fields have sensible defaults set by
// [NewConfig]; the zero value is not directly usable because [Config.API]
// must be set to something that talks to a DNS-SD daemon.
type Config struct {
	// API is the Go mirror of the DNSService* C ABI used by every operation.
	//
	// Set by [NewConfig] to the real cgo-backed engine.
	API api

	// Logger receives structured logs for operation lifecycle and per-callback events.
	//
	// Set by [NewConfig] to [DefaultSLogger] (discards everything).
	Logger SLogger

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConfig] to [DefaultErrClassifier].
	ErrClassifier ErrClassifier

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		API:           newCgoAPI(),
		Logger:        DefaultSLogger(),
		ErrClassifier: DefaultErrClassifier,
		TimeNow:       time.Now,
	}
}
