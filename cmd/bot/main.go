// Package main is the entry point for Pancy Server Manager.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/PancyStudios/PancyServerManager/internal/commands"
	"github.com/PancyStudios/PancyServerManager/internal/events"
	"github.com/PancyStudios/PancyServerManager/pkg/config"
	"github.com/PancyStudios/PancyServerManager/pkg/database"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/errors"
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/PancyStudios/PancyServerManager/pkg/logger"
	"github.com/PancyStudios/PancyServerManager/pkg/models"
	"github.com/PancyStudios/PancyServerManager/pkg/mqtt"
	"github.com/PancyStudios/PancyServerManager/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.InitWithOptions(logger.Options{
		ErrorWebhook: cfg.ErrorWebhook,
		LogsWebhook:  cfg.LogsWebhook,
		Dir:          cfg.LogDir,
		Format:       cfg.LogFormat,
	})
	defer log.Close()

	logger.System(fmt.Sprintf("Iniciando Pancy Server Manager %s...", config.Version), "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			if err := discordClient.Stop(); err != nil {
				logger.Error(fmt.Sprintf("Error cerrando la sesión: %v", err), "Main")
			}
		}
	})

	// Initialize storage
	backend, err := openBackend(cfg)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error abriendo el almacenamiento %q: %v", cfg.StoreDriver, err), "Main")
		os.Exit(1)
	}
	if closer, ok := backend.(io.Closer); ok {
		defer closer.Close()
	}
	store := database.Init(backend)
	guild.Init(store)
	logger.Success(fmt.Sprintf("Almacenamiento listo: %s", backend.Name()), "Main")

	// Initialize MQTT
	if cfg.MQTTEnabled {
		mqttClientID := "pancy_manager"
		if !cfg.IsProd() {
			mqttClientID = "pancy_manager_canary"
		}

		mqttClient := mqtt.Init(
			cfg.MQTTHost,
			cfg.MQTTPort,
			cfg.MQTTUser,
			cfg.MQTTPassword,
			mqttClientID,
		)
		mqttClient.ServeGuildStatus(func(guildID string) (models.Status, error) {
			return guild.StoredStatus(store, guildID)
		})
		defer mqttClient.Destroy()
	}

	// Initialize web server
	webServer := web.Init(cfg.LogsWebServerHook, cfg.AllowedHosts)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Register commands and their components
	commands.RegisterAll(discordClient)

	// Register events
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func() {
		if err := discordClient.Stop(); err != nil {
			logger.Error(fmt.Sprintf("Error cerrando la sesión: %v", err), "Main")
		}
	}()

	logger.Success("Pancy Server Manager iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando Pancy Server Manager...", "Main")
}

// openBackend picks the record store medium named by STORE_DRIVER
func openBackend(cfg *config.Config) (database.Backend, error) {
	switch cfg.StoreDriver {
	case "mongo":
		return database.NewMongoBackend(cfg.MongoDBURL, cfg.DBName)
	default:
		return database.NewFileBackend(cfg.DatabaseFile)
	}
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
