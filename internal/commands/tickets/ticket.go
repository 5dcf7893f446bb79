package tickets

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/config"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/bwmarrin/discordgo"
)

// Component ids
const (
	CreateButtonID = "ticket_create"
	CloseButtonID  = "ticket_close"
)

// createSetupCommand creates the /ticket setup subcommand
func createSetupCommand() *discord.Command {
	return discord.NewCommand(
		"setup",
		"🎫 Publica el panel de tickets",
		"tickets",
		setupHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "canal",
			Description:  "Canal donde se publica el panel",
			Required:     true,
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
		},
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "categoria",
			Description:  "Categoría donde se crean los tickets",
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildCategory},
		},
	).AdminOnly().
		WithBotPermissions(discordgo.PermissionManageChannels)
}

// PanelMessage is the message carrying the persistent create button
func PanelMessage(guildID, guildName string) *discordgo.MessageSend {
	e := common.Embed(guildID, "🎫  Soporte", "¿Necesitas ayuda del staff de **"+guildName+"**?\nPulsa el botón para abrir un ticket privado.")
	discord.Footer(e, nil, "", "Tickets")
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{e},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Abrir ticket",
					Style:    discordgo.PrimaryButton,
					CustomID: CreateButtonID,
					Emoji:    &discordgo.ComponentEmoji{Name: "📩"},
				},
			}},
		},
	}
}

// applyCategory stores option as the ticket category when one was given and
// returns the category now in effect
func applyCategory(m *guild.Manager, guildID, option string) (string, error) {
	if option == "" {
		return m.TicketCategory(guildID)
	}
	if err := m.SetTicketCategory(guildID, option); err != nil {
		return "", err
	}
	return option, nil
}

func setupHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("canal")
	if channel == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un canal.")
	}

	option := ""
	if c := ctx.GetChannelOption("categoria"); c != nil {
		option = c.ID
	}
	category, err := applyCategory(guild.Get(), ctx.GuildID(), option)
	if err != nil {
		return err
	}

	name := ""
	if g := ctx.Guild(); g != nil {
		name = g.Name
	}
	if _, err := ctx.Session.ChannelMessageSendComplex(channel.ID, PanelMessage(ctx.GuildID(), name)); err != nil {
		return err
	}

	e := common.Embed(ctx.GuildID(), "✅  Panel publicado", fmt.Sprintf("Canal: <#%s>\nCategoría: %s", channel.ID, discord.ChannelMention(category, common.NotSet)))
	e.Color = discord.ColorSuccess
	if err := ctx.ReplyEphemeralEmbed(e); err != nil {
		return err
	}

	common.Log(ctx, "Tickets", "Panel de tickets publicado en <#"+channel.ID+">")
	return nil
}

// WelcomeMessage is posted inside a freshly opened ticket
func WelcomeMessage(guildID string, t *guild.Ticket) *discordgo.MessageSend {
	e := common.Embed(guildID, "🎫  Ticket #"+guild.DisplayNumber(t.Number),
		fmt.Sprintf("Hola <@%s>, describe tu problema y el staff te atenderá pronto.", t.RequesterID))
	discord.Footer(e, nil, "", "Tickets")
	return &discordgo.MessageSend{
		Content: "<@" + t.RequesterID + ">",
		Embeds:  []*discordgo.MessageEmbed{e},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Cerrar ticket",
					Style:    discordgo.DangerButton,
					CustomID: CloseButtonID,
					Emoji:    &discordgo.ComponentEmoji{Name: "🔒"},
				},
			}},
		},
	}
}

func createHandler(ctx *discord.CommandContext) error {
	user := ctx.User()
	t, err := guild.Get().OpenTicket(ctx.GuildID(), user.ID, common.UserTag(user), NewProvisioner(ctx.Session))
	if err != nil {
		return err
	}

	if _, err := ctx.Session.ChannelMessageSendComplex(t.ChannelID, WelcomeMessage(ctx.GuildID(), t)); err != nil {
		return err
	}

	if err := ctx.ReplyEphemeral(fmt.Sprintf("✅ Ticket creado: <#%s>", t.ChannelID)); err != nil {
		return err
	}

	common.Log(ctx, "Ticket", fmt.Sprintf("Ticket #%s abierto por %s", guild.DisplayNumber(t.Number), common.UserTag(user)))
	return nil
}

// ClosingEmbed announces that the ticket channel is about to be removed
func ClosingEmbed(guildID, closerID string, seconds int) *discordgo.MessageEmbed {
	e := common.Embed(guildID, "🔒  Ticket cerrado", fmt.Sprintf("Cerrado por <@%s>. El canal se eliminará en **%ds**.", closerID, seconds))
	e.Color = discord.ColorError
	return e
}

var ticketChannelName = regexp.MustCompile(`^ticket-\d{4,}$`)

// IsTicketChannel reports whether a channel name was given by OpenTicket
func IsTicketChannel(name string) bool {
	return ticketChannelName.MatchString(name)
}

// closeGuard keeps one pending deletion per channel
type closeGuard struct {
	mu      sync.Mutex
	pending map[string]bool
}

var closing = &closeGuard{pending: make(map[string]bool)}

// begin marks channelID as closing; false means a close is already pending
func (g *closeGuard) begin(channelID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending[channelID] {
		return false
	}
	g.pending[channelID] = true
	return true
}

func (g *closeGuard) end(channelID string) {
	g.mu.Lock()
	delete(g.pending, channelID)
	g.mu.Unlock()
}

// guardedProvisioner releases the channel once its deletion was attempted
type guardedProvisioner struct {
	guild.Provisioner
	guard *closeGuard
}

func (p guardedProvisioner) DeleteTicketChannel(channelID string) error {
	defer p.guard.end(channelID)
	return p.Provisioner.DeleteTicketChannel(channelID)
}

// resolveChannel reads the state cache first and the API on a miss
func resolveChannel(ctx *discord.CommandContext, channelID string) (*discordgo.Channel, error) {
	if ch := ctx.Channel(); ch != nil {
		return ch, nil
	}
	return ctx.Session.Channel(channelID)
}

func closeHandler(ctx *discord.CommandContext) error {
	channelID := ctx.Interaction.ChannelID
	ch, err := resolveChannel(ctx, channelID)
	if err != nil {
		return err
	}
	if !IsTicketChannel(ch.Name) {
		return ctx.ReplyEphemeral("❌ Este canal no es un ticket.")
	}
	if !closing.begin(channelID) {
		return ctx.ReplyEphemeral("⏳ Este ticket ya se está cerrando.")
	}

	t := guild.OpenTicketFromChannel(ctx.GuildID(), channelID)
	delay := config.Get().TicketCloseDelay

	if err := ctx.ReplyEmbed(ClosingEmbed(ctx.GuildID(), ctx.User().ID, int(delay.Seconds()))); err != nil {
		closing.end(channelID)
		return err
	}

	guild.Get().CloseTicket(t, guardedProvisioner{Provisioner: NewProvisioner(ctx.Session), guard: closing}, delay)

	common.Log(ctx, "Ticket", "Ticket "+ch.Name+" cerrado")
	return nil
}
