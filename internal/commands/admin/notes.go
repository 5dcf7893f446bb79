package admin

import (
	"fmt"

	"github.com/PancyStudios/PancyServerManager/internal/commands/common"
	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/PancyStudios/PancyServerManager/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// shownNotes is how many notes /notes lists
const shownNotes = 10

func createNoteCommand() *discord.Command {
	return discord.NewCommand(
		"note",
		"📝 Añade una nota del servidor",
		"admin",
		noteHandler,
	).WithOptions(&discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "texto",
		Description: "Texto",
		Required:    true,
		MaxLength:   1000,
	}).AdminOnly()
}

func createNotesCommand() *discord.Command {
	return discord.NewCommand(
		"notes",
		"📋 Notas del servidor",
		"admin",
		notesHandler,
	).AdminOnly()
}

func noteHandler(ctx *discord.CommandContext) error {
	note, err := guild.Get().AddNote(ctx.GuildID(), ctx.GetStringOption("texto"), common.UserTag(ctx.User()))
	if err != nil {
		return err
	}

	e := discord.NewEmbed("📝  Nota añadida", ">>> "+note.Text, discord.ColorSuccess)
	discord.Footer(e, ctx.User(), ctx.ActorName(), "")
	return ctx.ReplyEphemeralEmbed(e)
}

// NotesEmbed lists the most recent notes of a guild
func NotesEmbed(guildID string, notes []models.Note) *discordgo.MessageEmbed {
	e := common.Embed(guildID, "📋  Notas del servidor", "")
	if len(notes) == 0 {
		e.Description = "```\nVacío. Usa /note\n```"
		return e
	}

	e.Description = fmt.Sprintf("```\nTotal: %d\n```", len(notes))
	for i, n := range guild.RecentNotes(notes, shownNotes) {
		discord.AddField(e, fmt.Sprintf("#%d │ %s", i+1, n.Date), fmt.Sprintf(">>> %s\n*— %s*", n.Text, n.By), false)
	}
	return e
}

func notesHandler(ctx *discord.CommandContext) error {
	notes, err := guild.Get().Notes(ctx.GuildID())
	if err != nil {
		return err
	}

	e := NotesEmbed(ctx.GuildID(), notes)
	discord.Footer(e, ctx.User(), ctx.ActorName(), "")
	return ctx.ReplyEphemeralEmbed(e)
}
