package admin

import (
	"fmt"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/PancyStudios/PancyServerManager/pkg/models"
	"github.com/bwmarrin/discordgo"
)

const (
	statusSelectID     = "status:select"
	offlineModalID     = "status:offline"
	maintenanceModalID = "status:maintenance"
	statusFooter       = "Actualización de estado"
)

// StateEmoji returns the emoji shown for a state
func StateEmoji(state models.StatusState) string {
	switch state {
	case models.StateOnline:
		return "🟢"
	case models.StateOffline:
		return "🔴"
	case models.StateMaintenance:
		return "🟠"
	}
	return "⚪"
}

// StateLabel returns the label shown for a state
func StateLabel(state models.StatusState) string {
	switch state {
	case models.StateOnline:
		return "ONLINE"
	case models.StateOffline:
		return "OFFLINE"
	case models.StateMaintenance:
		return "MANTENIMIENTO"
	}
	return "SIN ESTABLECER"
}

// StateColor returns the embed color of a state
func StateColor(state models.StatusState) int {
	switch state {
	case models.StateOnline:
		return discord.ColorOnline
	case models.StateOffline:
		return discord.ColorOffline
	case models.StateMaintenance:
		return discord.ColorMaint
	}
	return discord.ColorDark
}

func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"📊 Gestiona el estado del servidor",
		"admin",
		statusPanelHandler,
	).AdminOnly()
}

func createServerStatusCommand() *discord.Command {
	return discord.NewCommand(
		"serverstatus",
		"📡 Estado actual del servidor",
		"admin",
		serverStatusHandler,
	)
}

// StatusPanel renders the admin view of the current status
func StatusPanel(st models.Status) *discordgo.MessageEmbed {
	e := discord.NewEmbed("📊  Gestión de estado",
		fmt.Sprintf("```\nEstado actual: %s %s\n```\nElige un nuevo estado en el menú.", StateEmoji(st.State), StateLabel(st.State)),
		StateColor(st.State))

	if st.Reason != "" && st.Reason != guild.Sentinel {
		discord.AddField(e, "📝 Motivo", st.Reason, false)
	}
	if st.UpdatedAt != "" {
		discord.AddField(e, "🕐 Actualizado", fmt.Sprintf("`%s`", st.UpdatedAt), true)
	}
	if st.UpdatedBy != "" {
		discord.AddField(e, "👤 Por", st.UpdatedBy, true)
	}
	return e
}

func statusPanelHandler(ctx *discord.CommandContext) error {
	st, err := guild.Get().Status(ctx.GuildID())
	if err != nil {
		return err
	}

	e := StatusPanel(st)
	discord.Thumbnail(e, common.GuildIcon(ctx.Guild()))
	discord.Footer(e, ctx.User(), ctx.ActorName(), "Server Manager")

	menu := discordgo.SelectMenu{
		CustomID:    statusSelectID,
		Placeholder: "Elige el estado del servidor...",
		Options: []discordgo.SelectMenuOption{
			{Label: "Online", Description: "El servidor funciona", Emoji: &discordgo.ComponentEmoji{Name: "🟢"}, Value: string(models.StateOnline)},
			{Label: "Apagado", Description: "El servidor no funciona", Emoji: &discordgo.ComponentEmoji{Name: "🔴"}, Value: string(models.StateOffline)},
			{Label: "Mantenimiento", Description: "Trabajos técnicos", Emoji: &discordgo.ComponentEmoji{Name: "🟠"}, Value: string(models.StateMaintenance)},
		},
	}

	return ctx.ReplyPanel(e, []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{menu}},
	}, true)
}

// statusSelectHandler applies online directly and opens a modal for the
// states that need a reason
func statusSelectHandler(ctx *discord.CommandContext) error {
	values := ctx.SelectedValues()
	if len(values) == 0 {
		return nil
	}

	state, ok := guild.ParseState(values[0])
	if !ok {
		return ctx.ReplyEphemeral("❌ Estado desconocido.")
	}

	switch state {
	case models.StateOffline:
		return ctx.RespondModal(offlineModalID, "🔴 Servidor apagado",
			textRow("reason", "Motivo", "Trabajos técnicos, actualización...", discordgo.TextInputParagraph, true, 500),
			textRow("estimated", "¿Cuándo vuelve?", "En 2 horas, mañana por la mañana...", discordgo.TextInputShort, false, 100),
			textRow("info", "Información adicional", "Notas para los miembros...", discordgo.TextInputParagraph, false, 300),
		)
	case models.StateMaintenance:
		return ctx.RespondModal(maintenanceModalID, "🟠 Mantenimiento",
			textRow("reason", "¿Qué está pasando?", "Actualización, optimización...", discordgo.TextInputParagraph, true, 500),
			textRow("estimated", "¿Cuándo termina?", "~30 minutos, por la tarde...", discordgo.TextInputShort, false, 100),
		)
	}

	return applyStatus(ctx, guild.StatusUpdate{State: models.StateOnline})
}

// statusModalHandler applies the offline and maintenance modals
func statusModalHandler(ctx *discord.CommandContext) error {
	state, ok := guild.ParseState(discord.CustomIDArg(ctx.CustomID()))
	if !ok {
		return nil
	}
	return applyStatus(ctx, guild.StatusUpdate{
		State:          state,
		Reason:         ctx.ModalValue("reason"),
		EstimatedTime:  ctx.ModalValue("estimated"),
		AdditionalInfo: ctx.ModalValue("info"),
	})
}

func applyStatus(ctx *discord.CommandContext, update guild.StatusUpdate) error {
	st, err := guild.Get().SetStatus(ctx.GuildID(), update, common.UserTag(ctx.User()))
	if err != nil {
		return err
	}

	e := StatusChangeEmbed(st, "<@"+ctx.User().ID+">")
	discord.Footer(e, ctx.User(), ctx.ActorName(), statusFooter)

	if err := ctx.ReplyEmbed(e); err != nil {
		return err
	}

	common.NotifyStatus(ctx.Session, ctx.GuildID(), st, e)

	description := fmt.Sprintf("Estado → **%s**", StateLabel(st.State))
	if st.State != models.StateOnline {
		description += " — " + st.Reason
	}
	common.Log(ctx, "Status", description)
	return nil
}

// StatusChangeEmbed announces a transition
func StatusChangeEmbed(st models.Status, actorMention string) *discordgo.MessageEmbed {
	e := discord.NewEmbed(fmt.Sprintf("%s  Servidor — %s", StateEmoji(st.State), StateLabel(st.State)), "", StateColor(st.State))

	switch st.State {
	case models.StateOnline:
		e.Description = "```\n✅ Todo funciona con normalidad\n```"
		discord.AddField(e, "👤 Actualizado por", actorMention, true)
	case models.StateOffline:
		e.Description = "```\n⛔ El servidor ha sido apagado\n```"
		discord.AddField(e, "📝 Motivo", ">>> "+st.Reason, false)
		discord.AddField(e, "⏰ Regreso", fmt.Sprintf("`%s`", st.EstimatedTime), true)
		discord.AddField(e, "👤 Actualizado por", actorMention, true)
		if st.AdditionalInfo != guild.Sentinel {
			discord.AddField(e, "ℹ️ Información adicional", st.AdditionalInfo, false)
		}
	case models.StateMaintenance:
		e.Description = "```\n🔧 Se están realizando trabajos técnicos\n```"
		discord.AddField(e, "🔧 Descripción", ">>> "+st.Reason, false)
		discord.AddField(e, "⏰ Finalización", fmt.Sprintf("`%s`", st.EstimatedTime), true)
		discord.AddField(e, "👤 Actualizado por", actorMention, true)
	}
	return e
}

// PublicStatusEmbed is the view shown by /serverstatus
func PublicStatusEmbed(st models.Status) *discordgo.MessageEmbed {
	var e *discordgo.MessageEmbed

	switch st.State {
	case models.StateOnline:
		e = discord.NewEmbed("🟢  El servidor funciona", "```\n✅ ¡Todo en orden, el servidor está online!\n```", discord.ColorOnline)
	case models.StateOffline:
		e = discord.NewEmbed("🔴  Servidor apagado", "```\n⛔ El servidor no está disponible temporalmente\n```", discord.ColorOffline)
		discord.AddField(e, "📝 Motivo", ">>> "+st.Reason, false)
		discord.AddField(e, "⏰ Regreso", fmt.Sprintf("`%s`", st.EstimatedTime), true)
		if st.AdditionalInfo != "" && st.AdditionalInfo != guild.Sentinel {
			discord.AddField(e, "ℹ️ Información adicional", st.AdditionalInfo, false)
		}
	case models.StateMaintenance:
		e = discord.NewEmbed("🟠  Mantenimiento", "```\n🔧 Se están realizando trabajos técnicos\n```", discord.ColorMaint)
		discord.AddField(e, "🔧 Descripción", ">>> "+st.Reason, false)
		discord.AddField(e, "⏰ Finalización", fmt.Sprintf("`%s`", st.EstimatedTime), true)
	default:
		e = discord.NewEmbed("⚪  Estado sin establecer", "Un administrador todavía no ha indicado el estado.", discord.ColorDark)
	}

	if st.UpdatedAt != "" {
		discord.Footer(e, nil, "", "Actualizado: "+st.UpdatedAt)
	}
	return e
}

func serverStatusHandler(ctx *discord.CommandContext) error {
	st, err := guild.Get().Status(ctx.GuildID())
	if err != nil {
		return err
	}
	return ctx.ReplyEmbed(PublicStatusEmbed(st))
}

func textRow(id, label, placeholder string, style discordgo.TextInputStyle, required bool, maxLength int) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.TextInput{
			CustomID:    id,
			Label:       label,
			Placeholder: placeholder,
			Style:       style,
			Required:    required,
			MaxLength:   maxLength,
		},
	}}
}
