// Package events provides event handlers for member events
package events

import (
	"fmt"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/PancyStudios/PancyServerManager/pkg/logger"
	"github.com/PancyStudios/PancyServerManager/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnGuildMemberAdd(onGuildMemberAdd)
	client.EventHandler.OnGuildMemberRemove(onGuildMemberRemove)
}

// WelcomeEmbed renders the configured welcome message for a new member
func WelcomeEmbed(settings models.Settings, g *discordgo.Guild, user *discordgo.User) *discordgo.MessageEmbed {
	text := guild.RenderWelcome(settings.WelcomeMessage, "<@"+user.ID+">", g.Name, g.MemberCount)

	e := discord.NewEmbed("¡Bienvenido/a! 🎉", text, guild.ParseColor(settings.Color))
	discord.Thumbnail(e, user.AvatarURL("256"))
	e.Footer = &discordgo.MessageEmbedFooter{
		Text:    fmt.Sprintf("Miembro #%d", g.MemberCount),
		IconURL: common.GuildIcon(g),
	}
	return e
}

// onGuildMemberAdd greets the member in the welcome channel and grants the
// autorole, each only when configured
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Info(fmt.Sprintf("👋 Nuevo miembro: %s en servidor %s", m.User.Username, m.GuildID), "Member")

	settings, err := guild.Get().Settings(m.GuildID)
	if err != nil {
		logger.Error(fmt.Sprintf("Error leyendo la configuración de %s: %v", m.GuildID, err), "Member")
		return
	}

	if settings.WelcomeChannel.IsSet() {
		g, err := s.State.Guild(m.GuildID)
		if err != nil {
			g, err = s.Guild(m.GuildID)
		}
		if err != nil {
			logger.Error(fmt.Sprintf("Error obteniendo servidor: %v", err), "Member")
		} else if _, err := s.ChannelMessageSendEmbed(settings.WelcomeChannel.String(), WelcomeEmbed(settings, g, m.User)); err != nil {
			logger.Error(fmt.Sprintf("Error enviando mensaje de bienvenida: %v", err), "Member")
		}
	}

	if settings.Autorole.IsSet() && !m.User.Bot {
		if err := s.GuildMemberRoleAdd(m.GuildID, m.User.ID, settings.Autorole.String()); err != nil {
			logger.Warn(fmt.Sprintf("Error asignando el autorol %s: %v", settings.Autorole, err), "Member")
		}
	}
}

// onGuildMemberRemove is called when a member leaves the server
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Info(fmt.Sprintf("👋 Adiós: %s salió del servidor %s", m.User.Username, m.GuildID), "Member")
	common.LogAction(s, m.GuildID, "Leave", fmt.Sprintf("%s salió del servidor", common.UserTag(m.User)), m.User, m.User.Username)
}
