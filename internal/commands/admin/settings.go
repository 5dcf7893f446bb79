package admin

import (
	"fmt"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/bwmarrin/discordgo"
)

func channelOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionChannel,
		Name:         "canal",
		Description:  description,
		Required:     true,
		ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
	}
}

// createSettingsCommands creates the /settings subcommands
func createSettingsCommands() []*discord.Command {
	return []*discord.Command{
		discord.NewCommand("logs", "📝 Canal de logs", "admin",
			channelSetter((*guild.Manager).SetLogChannel, "✅ Canal de logs", "Logs → %s"),
		).WithOptions(channelOption("Canal para los logs")).AdminOnly(),

		discord.NewCommand("status-channel", "📊 Canal de estado", "admin",
			channelSetter((*guild.Manager).SetStatusChannel, "✅ Canal de estado", "Notificaciones → %s"),
		).WithOptions(channelOption("Canal para el estado")).AdminOnly(),

		discord.NewCommand("welcome-channel", "👋 Canal de bienvenidas", "admin",
			channelSetter((*guild.Manager).SetWelcomeChannel, "✅ Canal de bienvenidas", "Bienvenidas → %s"),
		).WithOptions(channelOption("Canal para las bienvenidas")).AdminOnly(),

		discord.NewCommand("autorole", "🎭 Rol automático para nuevos miembros", "admin", autoroleHandler).
			WithOptions(&discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "rol",
				Description: "Rol",
				Required:    true,
			}).AdminOnly(),

		discord.NewCommand("color", "🎨 Color de los embeds", "admin", func(ctx *discord.CommandContext) error {
			return setColor(ctx, ctx.GetStringOption("hex"))
		}).WithOptions(&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "hex",
			Description: "Color HEX, por ejemplo 5865F2",
			Required:    true,
			MinLength:   common.Ptr(6),
			MaxLength:   7,
		}).AdminOnly(),

		discord.NewCommand("welcome-message", "👋 Mensaje de bienvenida", "admin", welcomeMessageHandler).
			WithOptions(&discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "texto",
				Description: "Admite {user}, {server} y {count}",
				Required:    true,
				MaxLength:   guild.MaxWelcomeLength,
			}).AdminOnly(),
	}
}

// channelSetter builds the handler of a channel setting
func channelSetter(set func(m *guild.Manager, guildID, channelID string) error, title, format string) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		opt := ctx.GetOption("canal")
		if opt == nil {
			return ctx.ReplyEphemeral("❌ Debes especificar un canal.")
		}
		channelID, _ := opt.Value.(string)

		if err := set(guild.Get(), ctx.GuildID(), channelID); err != nil {
			return err
		}

		e := discord.NewEmbed(title, fmt.Sprintf(format, discord.ChannelMention(channelID, "")), discord.ColorSuccess)
		discord.Footer(e, ctx.User(), ctx.ActorName(), "")
		return ctx.ReplyEphemeralEmbed(e)
	}
}

func autoroleHandler(ctx *discord.CommandContext) error {
	opt := ctx.GetOption("rol")
	if opt == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un rol.")
	}
	roleID, _ := opt.Value.(string)

	if err := guild.Get().SetAutorole(ctx.GuildID(), roleID); err != nil {
		return err
	}

	e := discord.NewEmbed("✅ Autorol", "Nuevos miembros → "+discord.RoleMention(roleID, ""), discord.ColorSuccess)
	discord.Footer(e, ctx.User(), ctx.ActorName(), "")
	return ctx.ReplyEphemeralEmbed(e)
}

func welcomeMessageHandler(ctx *discord.CommandContext) error {
	message := ctx.GetStringOption("texto")
	if err := guild.Get().SetWelcomeMessage(ctx.GuildID(), message); err != nil {
		return replyValidation(ctx, err, fmt.Sprintf("❌ El mensaje no puede superar %d caracteres.", guild.MaxWelcomeLength))
	}

	e := discord.NewEmbed("✅ Bienvenida actualizada", "", discord.ColorSuccess)
	discord.AddField(e, "Texto", message, false)
	discord.AddField(e, "Variables", welcomeVariables, false)
	discord.Footer(e, ctx.User(), ctx.ActorName(), "")
	return ctx.ReplyEphemeralEmbed(e)
}
