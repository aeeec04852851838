// Package config
package config

import (
	"errors"
	"github.com/half-nothing/flyleague-events/internal/interfaces/log"
)

// GeneralConfig 站点基础配置, admin_username/admin_password 为启动时保证存在的管理员账户
type GeneralConfig struct {
	SiteName      string `json:"site_name"`
	AdminUsername string `json:"admin_username"`
	AdminPassword string `json:"admin_password"`
}

func defaultGeneralConfig() *GeneralConfig {
	return &GeneralConfig{
		SiteName:      "飞行活动中心",
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}
}

func (config *GeneralConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.AdminUsername == "" {
		return ValidFail(errors.New("invalid json field server.general.admin_username, value must not be empty"))
	}
	if config.AdminPassword == "" {
		return ValidFail(errors.New("invalid json field server.general.admin_password, value must not be empty"))
	}
	return ValidPass()
}
