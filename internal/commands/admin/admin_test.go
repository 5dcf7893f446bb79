package admin

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/PancyStudios/PancyServerManager/pkg/discord"
	"github.com/PancyStudios/PancyServerManager/pkg/guild"
	"github.com/PancyStudios/PancyServerManager/pkg/models"
)

func TestStatePresentation(t *testing.T) {
	tests := []struct {
		state models.StatusState
		emoji string
		label string
		color int
	}{
		{models.StateOnline, "🟢", "ONLINE", discord.ColorOnline},
		{models.StateOffline, "🔴", "OFFLINE", discord.ColorOffline},
		{models.StateMaintenance, "🟠", "MANTENIMIENTO", discord.ColorMaint},
		{models.StateNone, "⚪", "SIN ESTABLECER", discord.ColorDark},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			if got := StateEmoji(tt.state); got != tt.emoji {
				t.Errorf("StateEmoji = %v, want %v", got, tt.emoji)
			}
			if got := StateLabel(tt.state); got != tt.label {
				t.Errorf("StateLabel = %v, want %v", got, tt.label)
			}
			if got := StateColor(tt.state); got != tt.color {
				t.Errorf("StateColor = %x, want %x", got, tt.color)
			}
		})
	}
}

func TestStatusPanelHidesSentinelReason(t *testing.T) {
	online := StatusPanel(models.Status{
		State:     models.StateOnline,
		Reason:    guild.Sentinel,
		UpdatedBy: "pancy",
		UpdatedAt: "05.03.2024 14:07",
	})
	for _, f := range online.Fields {
		if strings.Contains(f.Name, "Motivo") {
			t.Error("online panel shows the sentinel reason")
		}
	}
	if len(online.Fields) != 2 {
		t.Errorf("online panel has %d fields, want 2", len(online.Fields))
	}

	offline := StatusPanel(models.Status{State: models.StateOffline, Reason: "Corte de luz"})
	if len(offline.Fields) != 1 || offline.Fields[0].Value != "Corte de luz" {
		t.Errorf("offline panel fields = %+v", offline.Fields)
	}
}

func TestStatusChangeEmbed(t *testing.T) {
	offline := StatusChangeEmbed(models.Status{
		State:          models.StateOffline,
		Reason:         "Actualización",
		EstimatedTime:  guild.DefaultEstimatedTime,
		AdditionalInfo: guild.Sentinel,
	}, "<@1>")

	if offline.Color != discord.ColorOffline {
		t.Errorf("Color = %x, want %x", offline.Color, discord.ColorOffline)
	}
	if len(offline.Fields) != 3 {
		t.Errorf("offline without info has %d fields, want 3", len(offline.Fields))
	}
	if offline.Fields[1].Value != "`No especificado`" {
		t.Errorf("estimated field = %q", offline.Fields[1].Value)
	}

	withInfo := StatusChangeEmbed(models.Status{
		State:          models.StateOffline,
		Reason:         "Actualización",
		EstimatedTime:  "2h",
		AdditionalInfo: "Seguid el canal de avisos",
	}, "<@1>")
	if len(withInfo.Fields) != 4 {
		t.Errorf("offline with info has %d fields, want 4", len(withInfo.Fields))
	}

	online := StatusChangeEmbed(models.Status{State: models.StateOnline}, "<@1>")
	if !strings.Contains(online.Title, "ONLINE") || len(online.Fields) != 1 {
		t.Errorf("online embed = %q with %d fields", online.Title, len(online.Fields))
	}
}

func TestPublicStatusEmbed(t *testing.T) {
	none := PublicStatusEmbed(models.Status{State: models.StateNone})
	if none.Color != discord.ColorDark {
		t.Errorf("none Color = %x, want %x", none.Color, discord.ColorDark)
	}
	if none.Footer != nil {
		t.Errorf("none Footer = %+v, want nil", none.Footer)
	}

	maint := PublicStatusEmbed(models.Status{
		State:         models.StateMaintenance,
		Reason:        "Base de datos",
		EstimatedTime: "30m",
		UpdatedAt:     "05.03.2024 14:07",
	})
	if maint.Footer == nil || maint.Footer.Text != "│ Actualizado: 05.03.2024 14:07" {
		t.Errorf("maintenance Footer = %+v", maint.Footer)
	}
	if len(maint.Fields) != 2 || maint.Fields[0].Value != ">>> Base de datos" {
		t.Errorf("maintenance fields = %+v", maint.Fields)
	}
}

func TestSettingsPanel(t *testing.T) {
	s := models.Settings{Color: "FF0000", LogChannel: "10", Autorole: "20"}
	e := SettingsPanel("1", s)

	want := map[string]string{
		"📝 Canal de logs":    "<#10>",
		"📊 Canal de estado":  "`No configurado`",
		"🎭 Autorol":          "<@&20>",
		"🎨 Color":            "`#FF0000`",
	}
	for _, f := range e.Fields {
		if v, ok := want[f.Name]; ok && f.Value != v {
			t.Errorf("field %s = %q, want %q", f.Name, f.Value, v)
		}
	}
	if len(e.Fields) != 6 {
		t.Errorf("panel has %d fields, want 6", len(e.Fields))
	}
}

func TestCustomEmbed(t *testing.T) {
	e, err := CustomEmbed("Hola", "Mundo", "#00ff00", "https://example.com/a.png")
	if err != nil {
		t.Fatalf("CustomEmbed returned error: %v", err)
	}
	if e.Color != 0x00FF00 {
		t.Errorf("Color = %x, want 00FF00", e.Color)
	}
	if e.Image == nil || e.Image.URL != "https://example.com/a.png" {
		t.Errorf("Image = %+v", e.Image)
	}

	def, err := CustomEmbed("Hola", "Mundo", "", "")
	if err != nil {
		t.Fatalf("CustomEmbed returned error: %v", err)
	}
	if def.Color != discord.ColorMain || def.Image != nil {
		t.Errorf("default embed = %x / %+v", def.Color, def.Image)
	}

	_, err = CustomEmbed("Hola", "Mundo", "ZZZZZZ", "")
	var verr *guild.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("CustomEmbed(ZZZZZZ) error = %v, want ValidationError", err)
	}
}

func TestAnnouncementMessage(t *testing.T) {
	quiet := AnnouncementMessage("Evento", "Sábado", "", false)
	if quiet.Content != "" || quiet.AllowedMentions != nil {
		t.Errorf("quiet announcement = %q / %+v", quiet.Content, quiet.AllowedMentions)
	}
	if quiet.Embeds[0].Title != "📢  Evento" || quiet.Embeds[0].Color != discord.ColorAnnounce {
		t.Errorf("embed = %q / %x", quiet.Embeds[0].Title, quiet.Embeds[0].Color)
	}

	loud := AnnouncementMessage("Evento", "Sábado", "https://example.com/b.png", true)
	if loud.Content != "@everyone" || loud.AllowedMentions == nil {
		t.Errorf("ping announcement = %q / %+v", loud.Content, loud.AllowedMentions)
	}
	if loud.Embeds[0].Image == nil {
		t.Error("image is missing")
	}
}

func TestNotesEmbed(t *testing.T) {
	empty := NotesEmbed("", nil)
	if !strings.Contains(empty.Description, "/note") || len(empty.Fields) != 0 {
		t.Errorf("empty notes = %q with %d fields", empty.Description, len(empty.Fields))
	}

	var notes []models.Note
	for i := 1; i <= 12; i++ {
		notes = append(notes, models.Note{Text: fmt.Sprintf("nota %d", i), By: "pancy", Date: "05.03.2024 14:07"})
	}
	e := NotesEmbed("", notes)
	if len(e.Fields) != shownNotes {
		t.Fatalf("notes embed has %d fields, want %d", len(e.Fields), shownNotes)
	}
	if !strings.Contains(e.Description, "Total: 12") {
		t.Errorf("Description = %q, want Total: 12", e.Description)
	}
	if !strings.Contains(e.Fields[0].Value, "nota 3") || !strings.Contains(e.Fields[9].Value, "nota 12") {
		t.Errorf("fields = %q ... %q, want nota 3 ... nota 12", e.Fields[0].Value, e.Fields[9].Value)
	}
}
