// Package config
package config

import (
	"errors"
	"github.com/half-nothing/flyleague-events/internal/interfaces/log"
	"time"
)

type SessionConfig struct {
	CookieName      string        `json:"cookie_name"`
	TokenLength     int           `json:"token_length"`
	ExpiresTime     string        `json:"expires_time"`
	ExpiresDuration time.Duration `json:"-"`
	CleanupTime     string        `json:"cleanup_time"`
	CleanupDuration time.Duration `json:"-"`
}

func defaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		CookieName:  "flyleague_session",
		TokenLength: 64,
		ExpiresTime: "24h",
		CleanupTime: "1h",
	}
}

func (config *SessionConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.CookieName == "" {
		return ValidFail(errors.New("invalid json field server.http_server.session.cookie_name, value must not be empty"))
	}
	if config.TokenLength < 16 {
		return ValidFail(errors.New("invalid json field server.http_server.session.token_length, value must be at least 16"))
	}

	if duration, err := time.ParseDuration(config.ExpiresTime); err != nil {
		return ValidFailWith(errors.New("invalid json field server.http_server.session.expires_time"), err)
	} else {
		config.ExpiresDuration = duration
	}

	if duration, err := time.ParseDuration(config.CleanupTime); err != nil {
		return ValidFailWith(errors.New("invalid json field server.http_server.session.cleanup_time"), err)
	} else {
		config.CleanupDuration = duration
	}

	return ValidPass()
}
