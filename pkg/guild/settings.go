package guild

import (
	"strconv"
	"strings"

	"github.com/PancyStudios/PancyServerManager/pkg/models"
	"github.com/go-playground/validator/v10"
)

// MaxWelcomeLength is the longest welcome template accepted, in characters
const MaxWelcomeLength = 1000

var validate = validator.New()

// ValidateColor normalizes a 6-digit hex color. A leading # is accepted.
func ValidateColor(input string) (string, error) {
	color := strings.TrimPrefix(strings.TrimSpace(input), "#")
	if err := validate.Var(color, "len=6,hexadecimal,excludesall=xX"); err != nil {
		return "", &ValidationError{Field: "color", Reason: "must be 6 hexadecimal digits"}
	}
	return strings.ToUpper(color), nil
}

// ParseColor converts a stored color to an embed color, falling back to the
// default color
func ParseColor(color string) int {
	v, err := strconv.ParseInt(color, 16, 32)
	if err != nil {
		def, _ := strconv.ParseInt(models.DefaultColor, 16, 32)
		return int(def)
	}
	return int(v)
}

// Settings returns the settings of a guild
func (m *Manager) Settings(guildID string) (models.Settings, error) {
	rec, err := m.store.GetOrCreate(guildID)
	if err != nil {
		return models.Settings{}, err
	}
	return rec.Settings, nil
}

// Color returns the embed color configured for a guild
func (m *Manager) Color(guildID string) int {
	s, err := m.Settings(guildID)
	if err != nil {
		return ParseColor(models.DefaultColor)
	}
	return ParseColor(s.Color)
}

// SetColor validates and stores the guild color
func (m *Manager) SetColor(guildID, input string) (string, error) {
	color, err := ValidateColor(input)
	if err != nil {
		return "", err
	}
	_, err = m.store.Update(guildID, func(rec *models.GuildRecord) error {
		rec.Settings.Color = color
		return nil
	})
	return color, err
}

// SetLogChannel stores the channel receiving the action log
func (m *Manager) SetLogChannel(guildID, channelID string) error {
	return m.setID(guildID, func(s *models.Settings) { s.LogChannel = models.ID(channelID) })
}

// SetStatusChannel stores the channel receiving status notifications
func (m *Manager) SetStatusChannel(guildID, channelID string) error {
	return m.setID(guildID, func(s *models.Settings) { s.StatusChannel = models.ID(channelID) })
}

// SetWelcomeChannel stores the channel receiving welcome messages
func (m *Manager) SetWelcomeChannel(guildID, channelID string) error {
	return m.setID(guildID, func(s *models.Settings) { s.WelcomeChannel = models.ID(channelID) })
}

// SetAutorole stores the role granted to new members
func (m *Manager) SetAutorole(guildID, roleID string) error {
	return m.setID(guildID, func(s *models.Settings) { s.Autorole = models.ID(roleID) })
}

// SetWelcomeMessage stores the welcome template. Placeholders are not checked.
func (m *Manager) SetWelcomeMessage(guildID, message string) error {
	if err := validate.Var(message, "max=1000"); err != nil {
		return &ValidationError{Field: "welcome_message", Reason: "must be at most 1000 characters"}
	}
	_, err := m.store.Update(guildID, func(rec *models.GuildRecord) error {
		rec.Settings.WelcomeMessage = message
		return nil
	})
	return err
}

func (m *Manager) setID(guildID string, set func(s *models.Settings)) error {
	_, err := m.store.Update(guildID, func(rec *models.GuildRecord) error {
		set(&rec.Settings)
		return nil
	})
	return err
}

// RenderWelcome fills the {user}, {server} and {count} placeholders.
// Anything else is left as written.
func RenderWelcome(template, user, server string, count int) string {
	r := strings.NewReplacer(
		"{user}", user,
		"{server}", server,
		"{count}", strconv.Itoa(count),
	)
	return r.Replace(template)
}
