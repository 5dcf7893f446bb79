// Package events provides event handlers for message events
package events

import (
	"fmt"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnMessageCreate(onMessageCreate)
}

// mentions reports whether users contains id
func mentions(users []*discordgo.User, id string) bool {
	for _, u := range users {
		if u.ID == id {
			return true
		}
	}
	return false
}

// MentionEmbed answers a message that mentions the bot
func MentionEmbed(guildID string) *discordgo.MessageEmbed {
	e := common.Embed(guildID, "👋 ¡Hola!", "Uso comandos **slash (/)**.\nEscribe `/utils help` para ver todos los comandos disponibles.")
	discord.AddField(e, "⚙️ Configuración", "`/setup` - Panel del servidor", true)
	discord.AddField(e, "🛡️ Moderación", "`/mod` - Comandos de moderación", true)
	discord.AddField(e, "🎫 Tickets", "`/ticket setup` - Soporte", true)
	return e
}

// onMessageCreate replies with a short help when the bot is mentioned
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	if s.State == nil || s.State.User == nil || !mentions(m.Mentions, s.State.User.ID) {
		return
	}

	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, MentionEmbed(m.GuildID)); err != nil {
		logger.Error(fmt.Sprintf("Error enviando respuesta: %v", err), "Message")
	}
}
