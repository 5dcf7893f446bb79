package admin

import (
	"fmt"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/bwmarrin/discordgo"
)

func targetChannelOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionChannel,
		Name:         "canal",
		Description:  "Canal",
		Required:     true,
		ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews},
	}
}

func imageOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "imagen",
		Description: "URL de la imagen",
	}
}

// createAnnounceCommand creates the /announce command
func createAnnounceCommand() *discord.Command {
	return discord.NewCommand(
		"announce",
		"📢 Publica un anuncio",
		"admin",
		announceHandler,
	).WithOptions(
		targetChannelOption(),
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "titulo",
			Description: "Título",
			Required:    true,
			MaxLength:   250,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "mensaje",
			Description: "Texto",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "ping",
			Description: "¿Mencionar a @everyone?",
		},
		imageOption(),
	).AdminOnly().
		WithBotPermissions(discordgo.PermissionSendMessages | discordgo.PermissionMentionEveryone)
}

// AnnouncementMessage builds the message posted by /announce
func AnnouncementMessage(title, message, image string, ping bool) *discordgo.MessageSend {
	e := discord.NewEmbed("📢  "+title, message, discord.ColorAnnounce)
	if image != "" {
		e.Image = &discordgo.MessageEmbedImage{URL: image}
	}

	msg := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{e}}
	if ping {
		msg.Content = "@everyone"
		msg.AllowedMentions = &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeEveryone},
		}
	}
	return msg
}

func announceHandler(ctx *discord.CommandContext) error {
	opt := ctx.GetOption("canal")
	if opt == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un canal.")
	}
	channelID, _ := opt.Value.(string)
	title := ctx.GetStringOption("titulo")

	msg := AnnouncementMessage(title, ctx.GetStringOption("mensaje"), ctx.GetStringOption("imagen"), ctx.GetBoolOption("ping"))
	e := msg.Embeds[0]
	discord.Thumbnail(e, common.GuildIcon(ctx.Guild()))
	discord.Footer(e, ctx.User(), ctx.ActorName(), "Anuncio")

	if _, err := ctx.Session.ChannelMessageSendComplex(channelID, msg); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo enviar el anuncio: %v", err))
	}

	if err := ctx.ReplyEphemeral("✅ Enviado → " + discord.ChannelMention(channelID, "")); err != nil {
		return err
	}
	common.Log(ctx, "Announce", fmt.Sprintf("Anuncio en %s: %s", discord.ChannelMention(channelID, ""), title))
	return nil
}

// createEmbedCommand creates the /embed command
func createEmbedCommand() *discord.Command {
	return discord.NewCommand(
		"embed",
		"🎨 Envía un embed personalizado",
		"admin",
		embedHandler,
	).WithOptions(
		targetChannelOption(),
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "titulo",
			Description: "Título",
			Required:    true,
			MaxLength:   256,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "descripcion",
			Description: "Descripción",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "color",
			Description: "Color HEX",
		},
		imageOption(),
	).AdminOnly()
}

// CustomEmbed builds the embed of /embed. An empty color uses the default
// one; a malformed color is a ValidationError.
func CustomEmbed(title, description, color, image string) (*discordgo.MessageEmbed, error) {
	c := discord.ColorMain
	if color != "" {
		hex, err := guild.ValidateColor(color)
		if err != nil {
			return nil, err
		}
		c = guild.ParseColor(hex)
	}

	e := discord.NewEmbed(title, description, c)
	if image != "" {
		e.Image = &discordgo.MessageEmbedImage{URL: image}
	}
	return e, nil
}

func embedHandler(ctx *discord.CommandContext) error {
	opt := ctx.GetOption("canal")
	if opt == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un canal.")
	}
	channelID, _ := opt.Value.(string)

	e, err := CustomEmbed(ctx.GetStringOption("titulo"), ctx.GetStringOption("descripcion"),
		ctx.GetStringOption("color"), ctx.GetStringOption("imagen"))
	if err != nil {
		return replyValidation(ctx, err, "❌ HEX inválido.")
	}
	discord.Footer(e, ctx.User(), ctx.ActorName(), "")

	if _, err := ctx.Session.ChannelMessageSendEmbed(channelID, e); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo enviar el embed: %v", err))
	}
	return ctx.ReplyEphemeral("✅ Embed → " + discord.ChannelMention(channelID, ""))
}
