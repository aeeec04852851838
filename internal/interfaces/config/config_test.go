package config

import (
	"github.com/half-nothing/flyleague-events/internal/interfaces/log"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	if result := config.CheckValid(log.NewNullLogger()); result.IsFail() {
		t.Fatalf("default config should pass validation, got: %v", result.Error())
	}
	if config.Database.DBType != SQLite {
		t.Errorf("default database type should be sqlite3, got %s", config.Database.DBType)
	}
	if config.Server.HttpServer.Address != "0.0.0.0:3001" {
		t.Errorf("unexpected server address %s", config.Server.HttpServer.Address)
	}
	if config.Server.HttpServer.Session.ExpiresDuration != 24*time.Hour {
		t.Errorf("unexpected session duration %v", config.Server.HttpServer.Session.ExpiresDuration)
	}
}

func TestCheckPort(t *testing.T) {
	tests := []struct {
		name string
		port uint
		fail bool
	}{
		{"valid port", 3001, false},
		{"max port", 65535, false},
		{"zero port", 0, true},
		{"port out of range", 70000, true},
		{"privileged port", 80, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if result := checkPort(test.port); result.IsFail() != test.fail {
				t.Errorf("checkPort(%d) fail = %v, want %v", test.port, result.IsFail(), test.fail)
			}
		})
	}
}

func TestConfigVersionMismatch(t *testing.T) {
	config := DefaultConfig()
	config.ConfigVersion = "0.0.1"
	if result := config.CheckValid(log.NewNullLogger()); !result.IsFail() {
		t.Error("config with mismatched version should fail validation")
	}
}

func TestSessionConfigRejectsShortToken(t *testing.T) {
	config := defaultSessionConfig()
	config.TokenLength = 8
	if result := config.checkValid(log.NewNullLogger()); !result.IsFail() {
		t.Error("session config with short token length should fail validation")
	}
}

func TestDatabaseConfigRejectsUnknownType(t *testing.T) {
	config := defaultDatabaseConfig()
	config.Type = "oracle"
	if result := config.checkValid(log.NewNullLogger()); !result.IsFail() {
		t.Error("database config with unsupported type should fail validation")
	}
}

func TestGeneralConfigRequiresAdminAccount(t *testing.T) {
	config := defaultGeneralConfig()
	config.AdminPassword = ""
	if result := config.checkValid(log.NewNullLogger()); !result.IsFail() {
		t.Error("general config without admin password should fail validation")
	}
}
