// Package common holds the helpers shared by every command category: guild
// colored embeds, the action log and status notifications.
package common

import (
	"fmt"

	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/PancyStudios/PancyServerManager/pkg/logger"
	"github.com/PancyStudios/PancyServerManager/pkg/models"
	"github.com/PancyStudios/PancyServerManager/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// NotSet is shown for settings that were never configured
const NotSet = "`No configurado`"

// Embed creates an embed in the color configured for the guild
func Embed(guildID, title, description string) *discordgo.MessageEmbed {
	color := guild.ParseColor(models.DefaultColor)
	if m := guild.Get(); m != nil && guildID != "" {
		color = m.Color(guildID)
	}
	return discord.NewEmbed(title, description, color)
}

// GuildIcon returns the icon url of a guild, or "" when it has none
func GuildIcon(g *discordgo.Guild) string {
	if g == nil || g.Icon == "" {
		return ""
	}
	return g.IconURL("256")
}

// Avatar returns the avatar shown for a member, falling back to the user
func Avatar(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Avatar != "" {
		return member.AvatarURL("256")
	}
	if user == nil && member != nil {
		user = member.User
	}
	if user == nil {
		return ""
	}
	return user.AvatarURL("256")
}

// LogEmbed builds the entry posted to the log channel
func LogEmbed(action, description string, user *discordgo.User, displayName string) *discordgo.MessageEmbed {
	e := discord.NewEmbed("", fmt.Sprintf("**[%s]** %s", action, description), discord.ColorDark)
	if user != nil {
		e.Author = &discordgo.MessageEmbedAuthor{Name: displayName, IconURL: user.AvatarURL("64")}
	}
	e.Footer = &discordgo.MessageEmbedFooter{Text: "Log │ " + action}
	return e
}

// LogAction posts an action to the log channel of the guild, if any, and
// publishes it to the audit feed. Failures are logged and never returned.
func LogAction(s *discordgo.Session, guildID, action, description string, user *discordgo.User, displayName string) {
	event := mqtt.NewAuditEvent(guildID, action, description, "", displayName)
	if user != nil {
		event.UserID = user.ID
	}
	mqtt.Get().PublishAudit(event)

	settings, err := guild.Get().Settings(guildID)
	if err != nil {
		logger.Warn(fmt.Sprintf("No se pudo leer la configuración de %s para el log: %v", guildID, err), "ActionLog")
		return
	}
	if !settings.LogChannel.IsSet() {
		return
	}

	e := LogEmbed(action, description, user, displayName)
	if _, err := s.ChannelMessageSendEmbed(settings.LogChannel.String(), e); err != nil {
		logger.Debug(fmt.Sprintf("No se pudo enviar el log a %s: %v", settings.LogChannel, err), "ActionLog")
	}
}

// NotifyStatus posts a status embed to the status channel of the guild, if
// any, and publishes the new status to the status feed
func NotifyStatus(s *discordgo.Session, guildID string, status models.Status, e *discordgo.MessageEmbed) {
	mqtt.Get().PublishStatus(guildID, status)

	settings, err := guild.Get().Settings(guildID)
	if err != nil {
		logger.Warn(fmt.Sprintf("No se pudo leer la configuración de %s para el estado: %v", guildID, err), "Status")
		return
	}
	if !settings.StatusChannel.IsSet() {
		return
	}

	if _, err := s.ChannelMessageSendEmbed(settings.StatusChannel.String(), e); err != nil {
		logger.Debug(fmt.Sprintf("No se pudo notificar el estado a %s: %v", settings.StatusChannel, err), "Status")
	}
}

// Log records an action performed through an interaction
func Log(ctx *discord.CommandContext, action, description string) {
	LogAction(ctx.Session, ctx.GuildID(), action, description, ctx.User(), ctx.ActorName())
}

// UserTag formats a user the way audit fields store it
func UserTag(u *discordgo.User) string {
	if u == nil {
		return ""
	}
	if u.Discriminator != "" && u.Discriminator != "0" {
		return u.Username + "#" + u.Discriminator
	}
	return u.Username
}

// Ptr returns a pointer to v, for optional discordgo fields
func Ptr[T any](v T) *T {
	return &v
}
