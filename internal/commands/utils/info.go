package utils

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/PancyStudios/PancyServerManager/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

func optionalUser(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "usuario",
		Description: description,
	}
}

func createServerInfoCommand() *discord.Command {
	return discord.NewCommand(
		"serverinfo",
		"🏠 Información del servidor",
		"utils",
		serverInfoHandler,
	)
}

func createUserInfoCommand() *discord.Command {
	return discord.NewCommand(
		"userinfo",
		"👤 Información de un miembro",
		"utils",
		userInfoHandler,
	).WithOptions(optionalUser("Miembro a consultar"))
}

func createAvatarCommand() *discord.Command {
	return discord.NewCommand(
		"avatar",
		"🖼️ Muestra el avatar de un miembro",
		"utils",
		avatarHandler,
	).WithOptions(optionalUser("Miembro"))
}

// discordTimestamp renders an id's creation time as a relative timestamp
func discordTimestamp(id string) string {
	created, err := discordgo.SnowflakeTimestamp(id)
	if err != nil {
		return common.NotSet
	}
	return fmt.Sprintf("<t:%d:R>", created.Unix())
}

// channelCounts splits the channels of a guild into text, voice and categories
func channelCounts(channels []*discordgo.Channel) (text, voice, categories int) {
	for _, c := range channels {
		switch c.Type {
		case discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews, discordgo.ChannelTypeGuildForum:
			text++
		case discordgo.ChannelTypeGuildVoice, discordgo.ChannelTypeGuildStageVoice:
			voice++
		case discordgo.ChannelTypeGuildCategory:
			categories++
		}
	}
	return text, voice, categories
}

// ServerInfoEmbed describes a guild
func ServerInfoEmbed(g *discordgo.Guild) *discordgo.MessageEmbed {
	text, voice, categories := channelCounts(g.Channels)

	e := common.Embed(g.ID, "🏠  "+g.Name, "")
	discord.Thumbnail(e, common.GuildIcon(g))
	discord.AddField(e, "Propietario", "<@"+g.OwnerID+">", true)
	discord.AddField(e, "Miembros", fmt.Sprintf("```%d```", g.MemberCount), true)
	discord.AddField(e, "Roles", fmt.Sprintf("```%d```", len(g.Roles)), true)
	discord.AddField(e, "Canales", fmt.Sprintf("💬 %d │ 🔊 %d │ 📁 %d", text, voice, categories), true)
	discord.AddField(e, "Mejoras", fmt.Sprintf("Nivel %d (%d boosts)", g.PremiumTier, g.PremiumSubscriptionCount), true)
	discord.AddField(e, "Creado", discordTimestamp(g.ID), true)
	e.Footer = &discordgo.MessageEmbedFooter{Text: "ID: " + g.ID}
	return e
}

func serverInfoHandler(ctx *discord.CommandContext) error {
	g := ctx.Guild()
	if g == nil {
		return ctx.ReplyEphemeral("❌ No se pudo obtener la información del servidor.")
	}
	return ctx.ReplyEmbed(ServerInfoEmbed(g))
}

// UserInfoEmbed describes a member. member may be nil for users outside
// the guild.
func UserInfoEmbed(guildID string, user *discordgo.User, member *discordgo.Member, warnCount int) *discordgo.MessageEmbed {
	e := common.Embed(guildID, "👤  "+discord.DisplayName(member, user), "")
	discord.Thumbnail(e, common.Avatar(member, user))
	discord.AddField(e, "Usuario", fmt.Sprintf("<@%s> (`%s`)", user.ID, common.UserTag(user)), true)
	discord.AddField(e, "Cuenta creada", discordTimestamp(user.ID), true)

	if member != nil {
		joined := common.NotSet
		if !member.JoinedAt.IsZero() {
			joined = fmt.Sprintf("<t:%d:R>", member.JoinedAt.Unix())
		}
		discord.AddField(e, "Se unió", joined, true)

		roles := common.NotSet
		if len(member.Roles) > 0 {
			mentions := make([]string, len(member.Roles))
			for i, id := range member.Roles {
				mentions[i] = discord.RoleMention(id, "")
			}
			roles = strings.Join(mentions, " ")
		}
		discord.AddField(e, fmt.Sprintf("Roles (%d)", len(member.Roles)), roles, false)
	}

	discord.AddField(e, "Advertencias", fmt.Sprintf("```%d```", warnCount), true)
	if user.Bot {
		discord.AddField(e, "Bot", "🤖 Sí", true)
	}
	e.Footer = &discordgo.MessageEmbedFooter{Text: "ID: " + user.ID}
	return e
}

func userInfoHandler(ctx *discord.CommandContext) error {
	user, member := targetOrSelf(ctx)

	warnCount := 0
	if warns, err := guild.Get().Warns(ctx.GuildID(), user.ID); err != nil {
		logger.Warn(fmt.Sprintf("No se pudieron leer las advertencias de %s: %v", user.ID, err), "CMD-UserInfo")
	} else {
		warnCount = len(warns)
	}

	return ctx.ReplyEmbed(UserInfoEmbed(ctx.GuildID(), user, member, warnCount))
}

func avatarHandler(ctx *discord.CommandContext) error {
	user, member := targetOrSelf(ctx)

	url := common.Avatar(member, user)
	e := common.Embed(ctx.GuildID(), "🖼️  Avatar de "+discord.DisplayName(member, user), "[Abrir en el navegador]("+url+")")
	e.Image = &discordgo.MessageEmbedImage{URL: url}
	discord.Footer(e, ctx.User(), ctx.ActorName(), "")
	return ctx.ReplyEmbed(e)
}

// targetOrSelf returns the user option, or the caller when it was omitted
func targetOrSelf(ctx *discord.CommandContext) (*discordgo.User, *discordgo.Member) {
	if user := ctx.GetUserOption("usuario"); user != nil {
		return user, ctx.GetMemberOption("usuario")
	}
	return ctx.User(), ctx.Member()
}
