// Package config
package config

import (
	"fmt"
	"github.com/half-nothing/flyleague-events/internal/interfaces/log"
)

type HttpServerConfig struct {
	Host      string           `json:"host"`
	Port      uint             `json:"port"`
	Address   string           `json:"-"`
	ProxyType int              `json:"proxy_type"`
	BodyLimit string           `json:"body_limit"`
	Session   *SessionConfig   `json:"session"`
	Limits    *HttpServerLimit `json:"limits"`
	SSL       *SSLConfig       `json:"ssl"`
}

func defaultHttpServerConfig() *HttpServerConfig {
	return &HttpServerConfig{
		Host:      "0.0.0.0",
		Port:      3001,
		ProxyType: 0,
		BodyLimit: "1MB",
		Session:   defaultSessionConfig(),
		Limits:    defaultHttpServerLimit(),
		SSL:       defaultSSLConfig(),
	}
}

func (config *HttpServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if result := checkPort(config.Port); result.IsFail() {
		return result
	}

	config.Address = fmt.Sprintf("%s:%d", config.Host, config.Port)

	if config.BodyLimit == "" {
		logger.WarnF("body_limit is empty, where the length of the request body is not restricted. This is a very dangerous behavior")
	}

	if result := config.Session.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Limits.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.SSL.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
