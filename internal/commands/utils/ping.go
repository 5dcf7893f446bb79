package utils

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createPingCommand creates the /utils ping subcommand
func createPingCommand() *discord.Command {
	return discord.NewCommand(
		"ping",
		"🏓 Comprueba la latencia del bot",
		"utils",
		pingHandler,
	)
}

// latencyColor grades a websocket latency
func latencyColor(latency time.Duration) int {
	switch {
	case latency < 150*time.Millisecond:
		return discord.ColorSuccess
	case latency < 400*time.Millisecond:
		return discord.ColorWarning
	}
	return discord.ColorError
}

// PingEmbed shows the websocket latency
func PingEmbed(guildID string, latency time.Duration) *discordgo.MessageEmbed {
	e := common.Embed(guildID, "🏓  Pong!", fmt.Sprintf("```\n%dms\n```", latency.Milliseconds()))
	e.Color = latencyColor(latency)
	return e
}

// pingHandler handles the /utils ping command
func pingHandler(ctx *discord.CommandContext) error {
	e := PingEmbed(ctx.GuildID(), ctx.Session.HeartbeatLatency())
	discord.Footer(e, ctx.User(), ctx.ActorName(), "")
	return ctx.ReplyEmbed(e)
}
