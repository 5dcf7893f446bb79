package utils

import (
	"strings"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

const helpSelectID = "help:select"

// helpCategory is one page of /utils help
type helpCategory struct {
	Value    string
	Label    string
	Emoji    string
	Commands []string
}

var helpCategories = []helpCategory{
	{"admin", "Administración", "⚙️", []string{
		"`/setup` Panel de configuración",
		"`/settings logs|status-channel|welcome-channel|autorole|color|welcome-message`",
		"`/status` Cambia el estado del servidor",
		"`/announce` Publica un anuncio",
		"`/embed` Crea un embed personalizado",
		"`/note` y `/notes` Notas del staff",
	}},
	{"mod", "Moderación", "🛡️", []string{
		"`/mod kick` Expulsa a un miembro",
		"`/mod ban` y `/mod unban`",
		"`/mod warn`, `/mod warns` y `/mod clearwarns`",
		"`/mod clear` Borra mensajes",
		"`/mod slowmode` Modo lento",
		"`/poll` Crea una encuesta",
	}},
	{"tickets", "Tickets", "🎫", []string{
		"`/ticket setup` Publica el panel de tickets",
		"Botón **Abrir ticket** crea un canal privado",
		"Botón **Cerrar ticket** elimina el canal",
	}},
	{"utils", "Utilidades", "🧰", []string{
		"`/serverstatus` Estado del servidor",
		"`/utils serverinfo` y `/utils userinfo`",
		"`/utils avatar` Avatar de un miembro",
		"`/utils botinfo` y `/utils ping`",
		"`/utils help` Esta ayuda",
	}},
}

func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"📖 Muestra los comandos disponibles",
		"utils",
		helpHandler,
	)
}

func findHelpCategory(value string) (helpCategory, bool) {
	for _, c := range helpCategories {
		if c.Value == value {
			return c, true
		}
	}
	return helpCategory{}, false
}

// HelpEmbed is the overview page, or the page of a category when value
// names one
func HelpEmbed(guildID, value string) *discordgo.MessageEmbed {
	if c, ok := findHelpCategory(value); ok {
		return common.Embed(guildID, c.Emoji+"  "+c.Label, "• "+strings.Join(c.Commands, "\n• "))
	}

	e := common.Embed(guildID, "📖  Ayuda", "Elige una categoría en el menú para ver sus comandos.")
	for _, c := range helpCategories {
		discord.AddField(e, c.Emoji+" "+c.Label, "```"+c.Value+"```", true)
	}
	return e
}

func helpMenu() []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, len(helpCategories))
	for i, c := range helpCategories {
		options[i] = discordgo.SelectMenuOption{
			Label: c.Label,
			Value: c.Value,
			Emoji: &discordgo.ComponentEmoji{Name: c.Emoji},
		}
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    helpSelectID,
				Placeholder: "Elige una categoría...",
				Options:     options,
			},
		}},
	}
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	return ctx.ReplyPanel(HelpEmbed(ctx.GuildID(), ""), helpMenu(), true)
}

func helpSelectHandler(ctx *discord.CommandContext) error {
	value := ""
	if values := ctx.SelectedValues(); len(values) > 0 {
		value = values[0]
	}
	return ctx.UpdatePanel(HelpEmbed(ctx.GuildID(), value), helpMenu())
}
