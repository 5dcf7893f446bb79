package utils

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

var pollReactions = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣"}

func createPollCommand() *discord.Command {
	opts := []*discordgo.ApplicationCommandOption{{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "pregunta",
		Description: "Pregunta de la encuesta",
		Required:    true,
		MaxLength:   256,
	}}
	for i := range pollReactions {
		opts = append(opts, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        fmt.Sprintf("opcion%d", i+1),
			Description: fmt.Sprintf("Opción %d", i+1),
			Required:    i < 2,
			MaxLength:   100,
		})
	}

	return discord.NewCommand(
		"poll",
		"📊 Crea una encuesta",
		"mod",
		pollHandler,
	).WithOptions(opts...).
		ModOnly().
		WithBotPermissions(discordgo.PermissionAddReactions)
}

// PollEmbed lists the options of a poll next to their reactions
func PollEmbed(guildID, question string, options []string) *discordgo.MessageEmbed {
	lines := make([]string, len(options))
	for i, o := range options {
		lines[i] = pollReactions[i] + "  " + o
	}
	return common.Embed(guildID, "📊  "+question, strings.Join(lines, "\n\n"))
}

func pollOptions(ctx *discord.CommandContext) []string {
	var options []string
	for i := range pollReactions {
		if o := strings.TrimSpace(ctx.GetStringOption(fmt.Sprintf("opcion%d", i+1))); o != "" {
			options = append(options, o)
		}
	}
	return options
}

func pollHandler(ctx *discord.CommandContext) error {
	options := pollOptions(ctx)
	if len(options) < 2 {
		return ctx.ReplyEphemeral("❌ Una encuesta necesita al menos 2 opciones.")
	}

	e := PollEmbed(ctx.GuildID(), ctx.GetStringOption("pregunta"), options)
	discord.Footer(e, ctx.User(), ctx.ActorName(), "Encuesta")
	msg, err := ctx.Session.ChannelMessageSendEmbed(ctx.Interaction.ChannelID, e)
	if err != nil {
		return err
	}

	for i := range options {
		if err := ctx.Session.MessageReactionAdd(msg.ChannelID, msg.ID, pollReactions[i]); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo reaccionar a la encuesta %s: %v", msg.ID, err), "CMD-Poll")
		}
	}

	if err := ctx.ReplyEphemeral("✅ Encuesta publicada."); err != nil {
		return err
	}
	common.Log(ctx, "Poll", fmt.Sprintf("Encuesta en <#%s>: %s", msg.ChannelID, ctx.GetStringOption("pregunta")))
	return nil
}
