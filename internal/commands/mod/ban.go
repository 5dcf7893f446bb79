// Package mod - /mod ban and /mod unban commands
package mod

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/bwmarrin/discordgo"
)

// maxDeleteDays is the most message history a ban can remove
const maxDeleteDays = 7

// createBanCommand creates the /mod ban subcommand
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"🔨 Banea a un miembro del servidor",
		"mod",
		banHandler,
	).WithOptions(
		userOption("Miembro a banear"),
		reasonOption("Razón del ban"),
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "dias",
			Description: "Días de mensajes a eliminar (0-7)",
			Required:    false,
			MinValue:    common.Ptr(0.0),
			MaxValue:    maxDeleteDays,
		},
	).ModOnly().
		WithBotPermissions(discordgo.PermissionBanMembers)
}

// clampDays keeps the deleted history between 0 and 7 days
func clampDays(days int64) int {
	switch {
	case days < 0:
		return 0
	case days > maxDeleteDays:
		return maxDeleteDays
	}
	return int(days)
}

// banHandler handles the /mod ban command
func banHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	if msg := checkTarget(user.ID, ctx.User().ID, ownerID(ctx), "banear"); msg != "" {
		return ctx.ReplyEphemeral(msg)
	}

	reason := reasonOrDefault(ctx.GetStringOption("razon"))
	days := clampDays(ctx.GetIntOption("dias"))

	err := ctx.Session.GuildBanCreateWithReason(
		ctx.Interaction.GuildID,
		user.ID,
		reason,
		days,
	)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No tengo permisos para banear: %v", err))
	}

	e := sanctionEmbed(ctx.GuildID(), "🔨  Miembro baneado", discord.ColorError, user, ctx.User().ID, reason)
	discord.Footer(e, ctx.User(), ctx.ActorName(), "Moderación")
	if err := ctx.ReplyEmbed(e); err != nil {
		return err
	}

	common.Log(ctx, "Ban", fmt.Sprintf("%s baneado — %s", common.UserTag(user), reason))
	return nil
}

// createUnbanCommand creates the /mod unban subcommand
func createUnbanCommand() *discord.Command {
	return discord.NewCommand(
		"unban",
		"🔓 Desbanea a un usuario por ID",
		"mod",
		unbanHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "ID del usuario",
			Required:    true,
			MaxLength:   20,
		},
	).ModOnly().
		WithBotPermissions(discordgo.PermissionBanMembers)
}

// unban lifts the ban of userID. An unknown user or a user that is not
// banned is a NotFoundError.
func unban(s *discordgo.Session, guildID, userID string) (*discordgo.User, error) {
	user, err := s.User(userID)
	if err != nil {
		return nil, notFound(err, "user", userID)
	}
	if err := s.GuildBanDelete(guildID, userID); err != nil {
		return nil, notFound(err, "ban", userID)
	}
	return user, nil
}

// unbanHandler handles the /mod unban command
func unbanHandler(ctx *discord.CommandContext) error {
	userID := ctx.GetStringOption("id")
	if _, err := strconv.ParseUint(userID, 10, 64); err != nil {
		return ctx.ReplyEphemeral("❌ Error. Revisa el ID.")
	}

	user, err := unban(ctx.Session, ctx.GuildID(), userID)
	if err != nil {
		var nf *guild.NotFoundError
		if errors.As(err, &nf) {
			return ctx.ReplyEphemeral("❌ No encontrado o no está baneado.")
		}
		return ctx.ReplyEphemeral("❌ Error. Revisa el ID.")
	}

	e := common.Embed(ctx.GuildID(), "🔓  Desbaneado", fmt.Sprintf("**%s** ha sido desbaneado.", common.UserTag(user)))
	e.Color = discord.ColorSuccess
	discord.AddField(e, "Moderador", "<@"+ctx.User().ID+">", true)
	discord.Footer(e, ctx.User(), ctx.ActorName(), "Moderación")
	if err := ctx.ReplyEmbed(e); err != nil {
		return err
	}

	common.Log(ctx, "Unban", fmt.Sprintf("%s desbaneado", common.UserTag(user)))
	return nil
}
