// Package events provides event handlers for guild (server) events
package events

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// freshJoin is how recent JoinedAt must be for a GuildCreate to count as a
// new guild rather than a reconnect
const freshJoin = 10 * time.Second

// RegisterGuildEvents registers all guild-related event handlers
func RegisterGuildEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnGuildCreate(onGuildCreate)
	client.EventHandler.OnGuildDelete(onGuildDelete)
}

// isNewGuild reports whether a GuildCreate comes from being added to the guild
func isNewGuild(joinedAt, now time.Time) bool {
	return !joinedAt.IsZero() && joinedAt.After(now.Add(-freshJoin))
}

// JoinEmbed is posted to the system channel of a guild the bot was added to
func JoinEmbed(guildID string) *discordgo.MessageEmbed {
	e := common.Embed(guildID, "¡Gracias por agregarme! 🎉", "Hola, soy **Pancy Server Manager**. Empieza con `/setup` para configurarme.")
	discord.AddField(e, "⚙️ Configuración", "`/setup` y `/settings`", true)
	discord.AddField(e, "🛡️ Moderación", "`/mod`", true)
	discord.AddField(e, "❓ Ayuda", "`/utils help`", true)
	return e
}

// onGuildCreate is called when the bot joins a server
func onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if !isNewGuild(g.JoinedAt, time.Now()) {
		return
	}

	logger.Info(fmt.Sprintf("➕ Bot agregado a servidor: %s (ID: %s)", g.Name, g.ID), "Guild")
	logger.Debug(fmt.Sprintf("   Miembros: %d | Canales: %d", g.MemberCount, len(g.Channels)), "Guild")
	updatePresence(s, guildCount(s))

	if g.SystemChannelID == "" {
		return
	}
	if _, err := s.ChannelMessageSendEmbed(g.SystemChannelID, JoinEmbed(g.ID)); err != nil {
		logger.Error(fmt.Sprintf("Error enviando mensaje de bienvenida: %v", err), "Guild")
	}
}

// onGuildDelete is called when the bot is removed from a server or the
// guild becomes unavailable
func onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Unavailable {
		logger.Warn(fmt.Sprintf("Servidor no disponible: %s", g.ID), "Guild")
		return
	}
	logger.Info(fmt.Sprintf("➖ Bot removido del servidor ID: %s", g.ID), "Guild")
	updatePresence(s, guildCount(s))
}
