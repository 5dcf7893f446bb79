package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	ColorMain     = 0x5865F2
	ColorSuccess  = 0x57F287
	ColorError    = 0xED4245
	ColorWarning  = 0xFEE75C
	ColorOrange   = 0xE67E22
	ColorAnnounce = 0xF47FFF
	ColorDark     = 0x2F3136

	ColorOnline  = ColorSuccess
	ColorOffline = ColorError
	ColorMaint   = ColorOrange
)

// NewEmbed creates a timestamped embed
func NewEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// AddField appends a field to an embed
func AddField(e *discordgo.MessageEmbed, name, value string, inline bool) {
	e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
}

// Footer sets the "│ text │ user" footer. user may be nil.
func Footer(e *discordgo.MessageEmbed, user *discordgo.User, displayName, text string) {
	switch {
	case user != nil && text != "":
		e.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("│ %s │ %s", text, displayName), IconURL: user.AvatarURL("64")}
	case user != nil:
		e.Footer = &discordgo.MessageEmbedFooter{Text: "│ " + displayName, IconURL: user.AvatarURL("64")}
	case text != "":
		e.Footer = &discordgo.MessageEmbedFooter{Text: "│ " + text}
	}
}

// Thumbnail sets the embed thumbnail when url is not empty
func Thumbnail(e *discordgo.MessageEmbed, url string) {
	if url != "" {
		e.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: url}
	}
}

// DisplayName returns the nickname, global name or username of a user
func DisplayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user == nil && member != nil {
		user = member.User
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// ChannelMention formats a channel mention, or fallback when id is empty
func ChannelMention(id, fallback string) string {
	if id == "" {
		return fallback
	}
	return "<#" + id + ">"
}

// RoleMention formats a role mention, or fallback when id is empty
func RoleMention(id, fallback string) string {
	if id == "" {
		return fallback
	}
	return "<@&" + id + ">"
}
