package utils

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/config"
	"github.com/PancyStudios/PancyServerManager/pkg/database"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// invitePermissions is what the invite link asks for
const invitePermissions = discordgo.PermissionAdministrator

// createBotInfoCommand creates the /utils botinfo subcommand
func createBotInfoCommand() *discord.Command {
	return discord.NewCommand(
		"botinfo",
		"🤖 Información del bot",
		"utils",
		botInfoHandler,
	)
}

// InviteURL is the OAuth2 link that adds the bot with slash commands
func InviteURL(appID string) string {
	return fmt.Sprintf("https://discord.com/oauth2/authorize?client_id=%s&permissions=%d&scope=bot%%20applications.commands", appID, invitePermissions)
}

// botInfoHandler handles the /utils botinfo command
func botInfoHandler(ctx *discord.CommandContext) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	memberCount := 0
	for _, g := range ctx.Session.State.Guilds {
		memberCount += g.MemberCount
	}

	storage := "🔴 Sin conexión"
	if store := database.Get(); store != nil {
		if name, ok := store.Status(); ok {
			storage = "🟢 " + name
		}
	}

	self := ctx.Session.State.User
	e := common.Embed(ctx.GuildID(), "🤖  "+self.Username, "Gestor de servidores de **PancyStudios**")
	discord.Thumbnail(e, self.AvatarURL("256"))
	discord.AddField(e, "Versión", "```"+config.Version+"```", true)
	discord.AddField(e, "Go", "```"+strings.TrimPrefix(runtime.Version(), "go")+"```", true)
	discord.AddField(e, "DiscordGo", "```"+discordgo.VERSION+"```", true)
	discord.AddField(e, "Servidores", fmt.Sprintf("```%d```", ctx.Client.GuildCount()), true)
	discord.AddField(e, "Miembros", fmt.Sprintf("```%d```", memberCount), true)
	discord.AddField(e, "Ping", fmt.Sprintf("```%dms```", ctx.Session.HeartbeatLatency().Milliseconds()), true)
	discord.AddField(e, "RAM", fmt.Sprintf("```%.2f MB```", float64(m.Alloc)/1024/1024), true)
	discord.AddField(e, "Almacenamiento", storage, true)
	discord.AddField(e, "Uptime", formatDuration(time.Since(ctx.Client.StartTime)), false)
	discord.AddField(e, "Invitación", "[Añadir al servidor]("+InviteURL(self.ID)+")", false)
	discord.Footer(e, nil, "", "💫 Developed by PancyStudios")
	return ctx.ReplyEmbed(e)
}

// formatDuration formats a time.Duration into a human-readable string
func formatDuration(dur time.Duration) string {
	days := int(dur.Hours() / 24)
	hours := int(dur.Hours()) % 24
	minutes := int(dur.Minutes()) % 60
	seconds := int(dur.Seconds()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d días", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d horas", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minutos", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d segundos", seconds))
	}

	return strings.Join(parts, ", ")
}
