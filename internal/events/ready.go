// Package events provides event handlers for the bot
package events

import (
	"fmt"

	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient) {
	client.EventHandler.OnReady(onReady)
}

// PresenceText is the activity shown while watching n guilds
func PresenceText(n int) string {
	if n == 1 {
		return "1 servidor 👀"
	}
	return fmt.Sprintf("%d servidores 👀", n)
}

// updatePresence sets the watching activity to the current guild count
func updatePresence(s *discordgo.Session, guilds int) {
	err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: string(discordgo.StatusOnline),
		Activities: []*discordgo.Activity{{
			Name: PresenceText(guilds),
			Type: discordgo.ActivityTypeWatching,
		}},
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error estableciendo estado: %v", err), "Ready")
	}
}

// onReady is called when the bot successfully connects to Discord
func onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("✅ Bot conectado: %s", r.User.Username), "Ready")
	logger.Info(fmt.Sprintf("📊 Conectado a %d servidores", len(r.Guilds)), "Ready")

	updatePresence(s, len(r.Guilds))
	logger.Debug("Estado del bot establecido correctamente", "Ready")
}

func guildCount(s *discordgo.Session) int {
	if s.State == nil {
		return 0
	}
	s.State.RLock()
	defer s.State.RUnlock()
	return len(s.State.Guilds)
}
