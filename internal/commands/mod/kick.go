// Package mod - /mod kick command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createKickCommand creates the /mod kick subcommand
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"🦶 Expulsa a un miembro del servidor",
		"mod",
		kickHandler,
	).WithOptions(
		userOption("Miembro a expulsar"),
		reasonOption("Razón de la expulsión"),
	).ModOnly().
		WithBotPermissions(discordgo.PermissionKickMembers)
}

// kickHandler handles the /mod kick command
func kickHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	if msg := checkTarget(user.ID, ctx.User().ID, ownerID(ctx), "expulsar"); msg != "" {
		return ctx.ReplyEphemeral(msg)
	}

	reason := reasonOrDefault(ctx.GetStringOption("razon"))

	err := ctx.Session.GuildMemberDeleteWithReason(
		ctx.Interaction.GuildID,
		user.ID,
		reason,
	)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No tengo permisos para expulsar: %v", err))
	}

	e := sanctionEmbed(ctx.GuildID(), "🦶  Miembro expulsado", discord.ColorError, user, ctx.User().ID, reason)
	discord.Footer(e, ctx.User(), ctx.ActorName(), "Moderación")
	if err := ctx.ReplyEmbed(e); err != nil {
		return err
	}

	common.Log(ctx, "Kick", fmt.Sprintf("%s expulsado — %s", common.UserTag(user), reason))
	return nil
}
