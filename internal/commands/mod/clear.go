// Package mod - /mod clear and /mod slowmode commands
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

const (
	maxClear = 100

	// bulkDeleteWindow is how old a message can be and still be bulk deleted
	bulkDeleteWindow = 14 * 24 * time.Hour

	maxSlowmode = 21600
)

// createClearCommand creates the /mod clear subcommand
func createClearCommand() *discord.Command {
	return discord.NewCommand(
		"clear",
		"🧹 Borra mensajes del canal",
		"mod",
		clearHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "cantidad",
			Description: "Cantidad (1-100)",
			Required:    true,
			MinValue:    common.Ptr(1.0),
			MaxValue:    maxClear,
		},
	).ModOnly().
		WithBotPermissions(discordgo.PermissionManageMessages)
}

// deletableIDs returns the ids of the messages young enough to bulk delete
func deletableIDs(messages []*discordgo.Message, now time.Time) []string {
	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		if now.Sub(m.Timestamp) < bulkDeleteWindow {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

func purge(s *discordgo.Session, channelID string, amount int) (int, error) {
	messages, err := s.ChannelMessages(channelID, amount, "", "", "")
	if err != nil {
		return 0, err
	}

	ids := deletableIDs(messages, time.Now())
	switch len(ids) {
	case 0:
		return 0, nil
	case 1:
		return 1, s.ChannelMessageDelete(channelID, ids[0])
	}
	return len(ids), s.ChannelMessagesBulkDelete(channelID, ids)
}

// clearHandler handles the /mod clear command
func clearHandler(ctx *discord.CommandContext) error {
	amount := ctx.GetIntOption("cantidad")
	if amount < 1 || amount > maxClear {
		return ctx.ReplyEphemeral("❌ Un número del 1 al 100.")
	}

	if err := ctx.DeferEphemeral(); err != nil {
		return err
	}

	deleted, err := purge(ctx.Session, ctx.Interaction.ChannelID, int(amount))
	if err != nil {
		return err
	}

	e := common.Embed(ctx.GuildID(), "🧹  Limpieza", fmt.Sprintf("Se eliminaron **%d** mensajes.", deleted))
	e.Color = discord.ColorSuccess
	discord.Footer(e, ctx.User(), ctx.ActorName(), "Moderación")
	if err := ctx.EditReplyEmbed(e); err != nil {
		return err
	}

	common.Log(ctx, "Clear", fmt.Sprintf("%d mensajes en <#%s>", deleted, ctx.Interaction.ChannelID))
	return nil
}

// createSlowmodeCommand creates the /mod slowmode subcommand
func createSlowmodeCommand() *discord.Command {
	return discord.NewCommand(
		"slowmode",
		"🐌 Modo lento del canal",
		"mod",
		slowmodeHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "segundos",
			Description: "Retraso en segundos (0 = desactivado)",
			Required:    true,
			MinValue:    common.Ptr(0.0),
			MaxValue:    maxSlowmode,
		},
	).ModOnly().
		WithBotPermissions(discordgo.PermissionManageChannels)
}

// SlowmodeEmbed describes the new slowmode of a channel
func SlowmodeEmbed(guildID, channelID string, seconds int) *discordgo.MessageEmbed {
	if seconds == 0 {
		e := common.Embed(guildID, "🐌  Modo lento desactivado", "En <#"+channelID+">")
		e.Color = discord.ColorSuccess
		return e
	}
	e := common.Embed(guildID, "🐌  Modo lento", fmt.Sprintf("**%ds** en <#%s>", seconds, channelID))
	e.Color = discord.ColorWarning
	return e
}

// slowmodeHandler handles the /mod slowmode command
func slowmodeHandler(ctx *discord.CommandContext) error {
	seconds := int(ctx.GetIntOption("segundos"))
	if seconds < 0 || seconds > maxSlowmode {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Un número del 0 al %d.", maxSlowmode))
	}

	channelID := ctx.Interaction.ChannelID
	if _, err := ctx.Session.ChannelEdit(channelID, &discordgo.ChannelEdit{RateLimitPerUser: &seconds}); err != nil {
		return err
	}

	e := SlowmodeEmbed(ctx.GuildID(), channelID, seconds)
	discord.Footer(e, ctx.User(), ctx.ActorName(), "Moderación")
	return ctx.ReplyEmbed(e)
}
