// Package interfaces
package interfaces

import (
	. "github.com/half-nothing/flyleague-events/internal/interfaces/config"
)

type ConfigManagerInterface interface {
	Config() *Config
	SaveConfig() error
}
