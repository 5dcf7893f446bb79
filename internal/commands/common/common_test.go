package common

import (
	"testing"

	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

func TestLogEmbed(t *testing.T) {
	user := &discordgo.User{ID: "1", Username: "pancy"}
	e := LogEmbed("Kick", "spammer expulsado", user, "Pancy")

	if e.Description != "**[Kick]** spammer expulsado" {
		t.Errorf("Description = %q", e.Description)
	}
	if e.Color != discord.ColorDark {
		t.Errorf("Color = %x, want %x", e.Color, discord.ColorDark)
	}
	if e.Author == nil || e.Author.Name != "Pancy" {
		t.Errorf("Author = %+v, want Pancy", e.Author)
	}
	if e.Footer == nil || e.Footer.Text != "Log │ Kick" {
		t.Errorf("Footer = %+v, want Log │ Kick", e.Footer)
	}

	anon := LogEmbed("Ticket", "cerrado", nil, "")
	if anon.Author != nil {
		t.Errorf("Author = %+v, want nil", anon.Author)
	}
}

func TestEmbedWithoutManagerUsesDefaultColor(t *testing.T) {
	e := Embed("", "Hola", "")
	if e.Color != discord.ColorMain {
		t.Errorf("Color = %x, want %x", e.Color, discord.ColorMain)
	}
}

func TestUserTag(t *testing.T) {
	tests := []struct {
		user *discordgo.User
		want string
	}{
		{&discordgo.User{Username: "pancy", Discriminator: "0"}, "pancy"},
		{&discordgo.User{Username: "old", Discriminator: "1234"}, "old#1234"},
		{&discordgo.User{Username: "new"}, "new"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := UserTag(tt.user); got != tt.want {
			t.Errorf("UserTag(%+v) = %q, want %q", tt.user, got, tt.want)
		}
	}
}

func TestGuildIcon(t *testing.T) {
	if got := GuildIcon(nil); got != "" {
		t.Errorf("GuildIcon(nil) = %q, want empty", got)
	}
	if got := GuildIcon(&discordgo.Guild{ID: "1"}); got != "" {
		t.Errorf("GuildIcon(no icon) = %q, want empty", got)
	}
	if got := GuildIcon(&discordgo.Guild{ID: "1", Icon: "abc"}); got == "" {
		t.Error("GuildIcon(with icon) is empty")
	}
}
