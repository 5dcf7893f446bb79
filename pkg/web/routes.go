// Package web provides API routes for the web server.
package web

import (
	"net/http"

	"github.com/PancyStudios/PancyServerManager/pkg/database"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/PancyStudios/PancyServerManager/pkg/mqtt"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/guilds/:id/status", guildStatusHandler)
	}
	s.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// statusHandler returns the bot, store and broker status
func statusHandler(c *gin.Context) {
	storeStatus, storeOnline := "🔴 | Sin inicializar", false
	if store := database.Get(); store != nil {
		storeStatus, storeOnline = store.Status()
	}

	botOnline := false
	guilds := 0
	if client := discord.Get(); client != nil {
		botOnline = client.IsReady()
		guilds = client.GuildCount()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":   storeStatus,
			"isOnline": storeOnline,
		},
		"bot": gin.H{
			"isOnline": botOnline,
			"guilds":   guilds,
		},
		"mqtt": gin.H{
			"isOnline": mqtt.Get().IsConnected(),
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Pancy Server Manager is running",
	})
}

// guildStatusHandler returns the public status of one guild. Guilds the bot
// has never stored are reported as not found instead of being created.
func guildStatusHandler(c *gin.Context) {
	store := database.Get()
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Store Offline",
			"message": "El almacenamiento no está disponible.",
		})
		return
	}

	id := c.Param("id")
	status, err := guild.StoredStatus(store, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": "No hay datos para este servidor.",
			"status":  404,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guildId": id,
		"status":  status,
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "El bot no está disponible en este momento.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"avatar":   user.Avatar,
		"guilds":   client.GuildCount(),
		"isReady":  client.IsReady(),
	})
}
