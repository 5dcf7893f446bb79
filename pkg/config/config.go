// Package config provides configuration management for the bot.
// It loads the .env file and parses environment variables into Config.
package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	BotToken   string   `env:"botToken"`
	DevGuildID string   `env:"devGuildId"`
	OwnerIDs   []string `env:"ownerIds" envSeparator:","`

	// Storage
	StoreDriver  string `env:"STORE_DRIVER" envDefault:"file"`
	DatabaseFile string `env:"DATABASE_FILE" envDefault:"database.json"`
	MongoDBURL   string `env:"mongodbUrl" envDefault:"mongodb://localhost:27017"`
	DBName       string `env:"dbName" envDefault:"PancyServerManager"`

	// MQTT
	MQTTEnabled  bool   `env:"MQTT_Enabled" envDefault:"false"`
	MQTTHost     string `env:"MQTT_Host" envDefault:"localhost"`
	MQTTPort     string `env:"MQTT_Port" envDefault:"1883"`
	MQTTUser     string `env:"MQTT_User"`
	MQTTPassword string `env:"MQTT_Password"`

	// Web Server
	Port         string `env:"PORT" envDefault:"3000"`
	AllowedHosts string `env:"WEB_ALLOWED_HOSTS"`

	// Environment
	Environment string `env:"enviroment" envDefault:"dev"`

	// Webhooks
	ErrorWebhook      string `env:"errorWebhook"`
	LogsWebhook       string `env:"logsWebhook"`
	LogsWebServerHook string `env:"logsWebServerWebhook"`

	// Logging
	LogDir    string `env:"LOG_DIR" envDefault:"logs"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Tickets
	TicketCloseDelay time.Duration `env:"TICKET_CLOSE_DELAY" envDefault:"5s"`
}

var (
	Version   = "Dev-Local"
	BuildTime = "Hoy"
)

// cfg holds the global configuration instance
var (
	cfg     *Config
	cfgErr  error
	cfgOnce sync.Once
)

// resetForTesting resets the configuration for testing purposes.
// This function should only be called from test code.
func resetForTesting() {
	cfg = nil
	cfgErr = nil
	cfgOnce = sync.Once{}
}

// loadConfig performs the actual configuration loading
func loadConfig() {
	// Load .env file if it exists (ignoring error if it doesn't)
	_ = godotenv.Load()

	parsed, err := env.ParseAs[Config]()
	if err != nil {
		cfgErr = fmt.Errorf("failed to parse environment: %w", err)
	} else if parsed.StoreDriver != "file" && parsed.StoreDriver != "mongo" {
		cfgErr = fmt.Errorf("unknown STORE_DRIVER %q, want file or mongo", parsed.StoreDriver)
	}

	cfg = &parsed
}

// Load initializes the configuration from environment variables
func Load() (*Config, error) {
	cfgOnce.Do(loadConfig)
	return cfg, cfgErr
}

// Get returns the current configuration
func Get() *Config {
	// Use sync.Once to ensure thread-safe initialization if Load wasn't called
	cfgOnce.Do(loadConfig)
	return cfg
}

// IsProd returns true if the environment is production
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}

// IsOwner reports whether a user id is one of the configured bot owners
func (c *Config) IsOwner(userID string) bool {
	for _, id := range c.OwnerIDs {
		if id == userID {
			return true
		}
	}
	return false
}
