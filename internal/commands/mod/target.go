package mod

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/bwmarrin/discordgo"
)

// DefaultReason is used when a moderation action has no reason
const DefaultReason = "No especificada"

func userOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "usuario",
		Description: description,
		Required:    true,
	}
}

func reasonOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "razon",
		Description: description,
		MaxLength:   500,
	}
}

// checkTarget returns the refusal message when a member may not be the
// target of verb, or "" when the action can proceed
func checkTarget(targetID, actorID, ownerID, verb string) string {
	switch {
	case targetID == actorID:
		return fmt.Sprintf("❌ No puedes %ste a ti mismo.", verb)
	case ownerID != "" && targetID == ownerID:
		return fmt.Sprintf("❌ No puedes %s al propietario.", verb)
	}
	return ""
}

func reasonOrDefault(reason string) string {
	if reason == "" {
		return DefaultReason
	}
	return reason
}

func ownerID(ctx *discord.CommandContext) string {
	if g := ctx.Guild(); g != nil {
		return g.OwnerID
	}
	return ""
}

// sanctionEmbed is the public embed of kick, ban and warn
func sanctionEmbed(guildID, title string, color int, target *discordgo.User, moderatorID, reason string) *discordgo.MessageEmbed {
	e := common.Embed(guildID, title, "")
	e.Color = color
	discord.AddField(e, "Miembro", fmt.Sprintf("<@%s> (`%s`)", target.ID, common.UserTag(target)), true)
	discord.AddField(e, "Moderador", "<@"+moderatorID+">", true)
	discord.AddField(e, "Motivo", ">>> "+reason, false)
	return e
}

// notFound maps a 404 from the Discord API to a NotFoundError
func notFound(err error, kind, id string) error {
	var rest *discordgo.RESTError
	if errors.As(err, &rest) && rest.Response != nil && rest.Response.StatusCode == http.StatusNotFound {
		return &guild.NotFoundError{Kind: kind, ID: id}
	}
	return err
}
