// Package mod - /mod warn, /mod warns and /mod clearwarns commands
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/PancyStudios/PancyServerManager/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// shownWarns is how many warns /mod warns lists
const shownWarns = 10

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"⚠️ Advierte a un miembro",
		"mod",
		warnHandler,
	).WithOptions(
		userOption("Miembro a advertir"),
		reasonOption("Razón de la advertencia"),
	).ModOnly()
}

// warnHandler handles the /mod warn command
func warnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	reason := reasonOrDefault(ctx.GetStringOption("razon"))

	count, err := guild.Get().AddWarn(ctx.GuildID(), user.ID, reason, common.UserTag(ctx.User()))
	if err != nil {
		return err
	}

	e := sanctionEmbed(ctx.GuildID(), "⚠️  Advertencia", discord.ColorWarning, user, ctx.User().ID, reason)
	discord.AddField(e, "Total de advertencias", fmt.Sprintf("```%d```", count), true)
	discord.Footer(e, ctx.User(), ctx.ActorName(), "Moderación")
	if err := ctx.ReplyEmbed(e); err != nil {
		return err
	}

	common.Log(ctx, "Warn", fmt.Sprintf("%s advertencia #%d — %s", common.UserTag(user), count, reason))
	return nil
}

// createWarnsCommand creates the /mod warns subcommand
func createWarnsCommand() *discord.Command {
	return discord.NewCommand(
		"warns",
		"📋 Advertencias de un miembro",
		"mod",
		warnsHandler,
	).WithOptions(
		userOption("Miembro a consultar"),
	).ModOnly()
}

// WarnsEmbed lists the most recent warns of a member
func WarnsEmbed(guildID, displayName string, warns []models.Warn) *discordgo.MessageEmbed {
	e := common.Embed(guildID, "📋  Advertencias — "+displayName, "")
	if len(warns) == 0 {
		e.Description = "```\n✅ Sin advertencias\n```"
		return e
	}

	e.Description = fmt.Sprintf("```\nTotal: %d\n```", len(warns))
	for i, w := range guild.RecentWarns(warns, shownWarns) {
		discord.AddField(e, fmt.Sprintf("#%d │ %s", i+1, w.Date), fmt.Sprintf(">>> %s\n*— %s*", w.Reason, w.By), false)
	}
	return e
}

func warnsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	warns, err := guild.Get().Warns(ctx.GuildID(), user.ID)
	if err != nil {
		return err
	}

	member := ctx.GetMemberOption("usuario")
	e := WarnsEmbed(ctx.GuildID(), discord.DisplayName(member, user), warns)
	discord.Thumbnail(e, common.Avatar(member, user))
	discord.Footer(e, ctx.User(), ctx.ActorName(), "Moderación")
	return ctx.ReplyEphemeralEmbed(e)
}

// createClearWarnsCommand creates the /mod clearwarns subcommand
func createClearWarnsCommand() *discord.Command {
	return discord.NewCommand(
		"clearwarns",
		"🗑️ Borra las advertencias de un miembro",
		"mod",
		clearWarnsHandler,
	).WithOptions(
		userOption("Miembro"),
	).AdminOnly()
}

func clearWarnsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	previous, err := guild.Get().ClearWarns(ctx.GuildID(), user.ID)
	if err != nil {
		return err
	}

	e := common.Embed(ctx.GuildID(), "🗑️  Advertencias borradas", fmt.Sprintf("Se eliminaron **%d** advertencias de <@%s>", previous, user.ID))
	e.Color = discord.ColorSuccess
	discord.Footer(e, ctx.User(), ctx.ActorName(), "Moderación")
	if err := ctx.ReplyEmbed(e); err != nil {
		return err
	}

	common.Log(ctx, "ClearWarns", fmt.Sprintf("Advertencias de %s borradas (%d)", common.UserTag(user), previous))
	return nil
}
