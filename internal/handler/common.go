package handler

import "time"

// rateLimitConfig carries the public-form rate limit windows into handlers.
type rateLimitConfig struct {
	PPDB    time.Duration
	Message time.Duration
}

// NewRateLimitConfig builds the handler rate-limit configuration.
func NewRateLimitConfig(ppdb, message time.Duration) rateLimitConfig {
	return rateLimitConfig{PPDB: ppdb, Message: message}
}
