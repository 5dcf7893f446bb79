// Package admin provides the server management commands: the setup panel,
// /settings, the status panel, announcements, custom embeds and notes.
package admin

import (
	"errors"
	"fmt"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/PancyStudios/PancyServerManager/pkg/models"
	"github.com/bwmarrin/discordgo"
)

const (
	welcomeModalID = "setup:welcome_modal"
	colorModalID   = "setup:color_modal"
)

// welcomeVariables documents the placeholders of the welcome message
const welcomeVariables = "`{user}` — mención\n`{server}` — nombre del servidor\n`{count}` — número de miembro"

// createSetupCommand creates the /setup command
func createSetupCommand() *discord.Command {
	return discord.NewCommand(
		"setup",
		"⚙️ Panel de configuración del bot",
		"admin",
		setupHandler,
	).AdminOnly()
}

func setupHandler(ctx *discord.CommandContext) error {
	settings, err := guild.Get().Settings(ctx.GuildID())
	if err != nil {
		return err
	}

	e := SettingsPanel(ctx.GuildID(), settings)
	discord.Thumbnail(e, common.GuildIcon(ctx.Guild()))
	discord.Footer(e, ctx.User(), ctx.ActorName(), "Configuración")

	return ctx.ReplyPanel(e, setupComponents(), true)
}

// SettingsPanel renders the current settings of a guild
func SettingsPanel(guildID string, s models.Settings) *discordgo.MessageEmbed {
	e := common.Embed(guildID, "⚙️  Panel de configuración",
		"Configura el bot para tu servidor.\nUsa los botones o el comando `/settings`.")

	discord.AddField(e, "📝 Canal de logs", discord.ChannelMention(s.LogChannel.String(), common.NotSet), true)
	discord.AddField(e, "📊 Canal de estado", discord.ChannelMention(s.StatusChannel.String(), common.NotSet), true)
	discord.AddField(e, "👋 Bienvenidas", discord.ChannelMention(s.WelcomeChannel.String(), common.NotSet), true)
	discord.AddField(e, "🎭 Autorol", discord.RoleMention(s.Autorole.String(), "`No configurado`"), true)
	discord.AddField(e, "🎨 Color", fmt.Sprintf("`#%s`", s.Color), true)
	discord.AddField(e, "\u200b", "\u200b", true)
	return e
}

func setupComponents() []discordgo.MessageComponent {
	button := func(label, id string) discordgo.Button {
		return discordgo.Button{Label: label, Style: discordgo.SecondaryButton, CustomID: "setup:" + id}
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			button("📝 Logs", "logs"),
			button("📊 Canal de estado", "status"),
			button("👋 Bienvenida", "welcome"),
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			button("🎨 Color", "color"),
			button("🎭 Autorol", "autorole"),
		}},
	}
}

// setupButtonHandler handles the buttons of the setup panel
func setupButtonHandler(ctx *discord.CommandContext) error {
	switch discord.CustomIDArg(ctx.CustomID()) {
	case "logs":
		return ctx.ReplyEphemeral("Usa `/settings logs #canal`")
	case "status":
		return ctx.ReplyEphemeral("Usa `/settings status-channel #canal`")
	case "autorole":
		return ctx.ReplyEphemeral("Usa `/settings autorole @rol`")
	case "welcome":
		settings, err := guild.Get().Settings(ctx.GuildID())
		if err != nil {
			return err
		}
		return ctx.RespondModal(welcomeModalID, "👋 Mensaje de bienvenida", discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    "message",
					Label:       "Texto de bienvenida",
					Style:       discordgo.TextInputParagraph,
					Placeholder: "¡Hola, {user}! Bienvenido a {server} 🎉",
					Value:       settings.WelcomeMessage,
					Required:    true,
					MaxLength:   guild.MaxWelcomeLength,
				},
			},
		})
	case "color":
		return ctx.RespondModal(colorModalID, "🎨 Color del bot", discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    "color",
					Label:       "Color HEX (sin #)",
					Style:       discordgo.TextInputShort,
					Placeholder: models.DefaultColor,
					Required:    true,
					MinLength:   6,
					MaxLength:   7,
				},
			},
		})
	}
	return nil
}

// welcomeModalHandler stores the welcome message submitted from the panel
func welcomeModalHandler(ctx *discord.CommandContext) error {
	message := ctx.ModalValue("message")
	if err := guild.Get().SetWelcomeMessage(ctx.GuildID(), message); err != nil {
		return replyValidation(ctx, err, fmt.Sprintf("❌ El mensaje no puede superar %d caracteres.", guild.MaxWelcomeLength))
	}

	e := common.Embed(ctx.GuildID(), "✅ Bienvenida actualizada", "")
	e.Color = discord.ColorSuccess
	discord.AddField(e, "Texto", message, false)
	discord.AddField(e, "Variables", welcomeVariables, false)
	discord.Footer(e, ctx.User(), ctx.ActorName(), "")
	return ctx.ReplyEphemeralEmbed(e)
}

// colorModalHandler stores the color submitted from the panel
func colorModalHandler(ctx *discord.CommandContext) error {
	return setColor(ctx, ctx.ModalValue("color"))
}

func setColor(ctx *discord.CommandContext, input string) error {
	color, err := guild.Get().SetColor(ctx.GuildID(), input)
	if err != nil {
		return replyValidation(ctx, err, "❌ HEX inválido. Usa 6 dígitos, por ejemplo `5865F2`.")
	}

	e := discord.NewEmbed("🎨 ¡Color actualizado!", fmt.Sprintf("Nuevo color: `#%s`", color), guild.ParseColor(color))
	discord.Footer(e, ctx.User(), ctx.ActorName(), "")
	return ctx.ReplyEphemeralEmbed(e)
}

// replyValidation answers a ValidationError with message; other errors are
// returned to the dispatcher
func replyValidation(ctx *discord.CommandContext, err error, message string) error {
	var verr *guild.ValidationError
	if errors.As(err, &verr) {
		return ctx.ReplyEphemeral(message)
	}
	return err
}
