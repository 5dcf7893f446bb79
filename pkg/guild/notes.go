package guild

import (
	"github.com/PancyStudios/PancyServerManager/pkg/models"
)

// MaxNotes is how many notes a guild keeps
const MaxNotes = 25

// AddNote appends a note, dropping the oldest ones past MaxNotes
func (m *Manager) AddNote(guildID, text, actor string) (models.Note, error) {
	note := models.Note{Text: text, By: actor, Date: m.timestamp()}

	_, err := m.store.Update(guildID, func(rec *models.GuildRecord) error {
		rec.Notes = append(rec.Notes, note)
		if len(rec.Notes) > MaxNotes {
			rec.Notes = append([]models.Note(nil), rec.Notes[len(rec.Notes)-MaxNotes:]...)
		}
		return nil
	})
	if err != nil {
		return models.Note{}, err
	}
	return note, nil
}

// Notes returns the stored notes, oldest first
func (m *Manager) Notes(guildID string) ([]models.Note, error) {
	rec, err := m.store.GetOrCreate(guildID)
	if err != nil {
		return nil, err
	}
	return rec.Notes, nil
}

// RecentNotes returns the last n notes for display
func RecentNotes(list []models.Note, n int) []models.Note {
	if n <= 0 {
		return nil
	}
	if len(list) <= n {
		return list
	}
	return list[len(list)-n:]
}
