package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("botToken", "test-token")
	t.Setenv("PORT", "3001")
	t.Setenv("enviroment", "test")
	t.Setenv("ownerIds", "1,2,3")
	t.Setenv("TICKET_CLOSE_DELAY", "2s")

	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.Port != "3001" {
		t.Errorf("Port = %v, want %v", config.Port, "3001")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}

	if len(config.OwnerIDs) != 3 || config.OwnerIDs[1] != "2" {
		t.Errorf("OwnerIDs = %v, want [1 2 3]", config.OwnerIDs)
	}

	if config.TicketCloseDelay != 2*time.Second {
		t.Errorf("TicketCloseDelay = %v, want %v", config.TicketCloseDelay, 2*time.Second)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	resetForTesting()

	if _, err := Load(); err == nil {
		t.Error("Load() error = nil, want error for unknown driver")
	}
	resetForTesting()
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("TICKET_CLOSE_DELAY", "soon")
	resetForTesting()

	if _, err := Load(); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
	resetForTesting()
}

func TestIsProd(t *testing.T) {
	resetForTesting()
	t.Setenv("enviroment", "prod")
	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}

	resetForTesting()
	t.Setenv("enviroment", "dev")
	config, _ = Load()

	if config.IsProd() {
		t.Error("IsProd() should return false when environment is not 'prod'")
	}
}

func TestIsOwner(t *testing.T) {
	c := &Config{OwnerIDs: []string{"10", "20"}}

	if !c.IsOwner("20") {
		t.Error("IsOwner(20) = false, want true")
	}
	if c.IsOwner("30") {
		t.Error("IsOwner(30) = true, want false")
	}
}

func TestGet(t *testing.T) {
	resetForTesting()

	// Get should create a new config if none exists
	config := Get()
	if config == nil {
		t.Fatal("Get() returned nil")
	}

	// Get should return the same config on subsequent calls
	config2 := Get()
	if config != config2 {
		t.Error("Get() should return the same config on subsequent calls")
	}
}

func TestDefaultValues(t *testing.T) {
	for _, key := range []string{"mongodbUrl", "dbName", "MQTT_Host", "MQTT_Port", "PORT", "enviroment", "STORE_DRIVER", "DATABASE_FILE", "LOG_DIR", "TICKET_CLOSE_DELAY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	resetForTesting()
	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"MongoDBURL", config.MongoDBURL, "mongodb://localhost:27017"},
		{"DBName", config.DBName, "PancyServerManager"},
		{"MQTTHost", config.MQTTHost, "localhost"},
		{"MQTTPort", config.MQTTPort, "1883"},
		{"MQTTEnabled", config.MQTTEnabled, false},
		{"Port", config.Port, "3000"},
		{"Environment", config.Environment, "dev"},
		{"StoreDriver", config.StoreDriver, "file"},
		{"DatabaseFile", config.DatabaseFile, "database.json"},
		{"LogDir", config.LogDir, "logs"},
		{"TicketCloseDelay", config.TicketCloseDelay, 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s default = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}
