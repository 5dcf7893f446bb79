package guild

import (
	"github.com/PancyStudios/PancyServerManager/pkg/models"
)

// DefaultWarnReason is used when a warn is given without a reason
const DefaultWarnReason = "No especificada"

// AddWarn appends a warn to a member and returns their new total
func (m *Manager) AddWarn(guildID, memberID, reason, actor string) (int, error) {
	if reason == "" {
		reason = DefaultWarnReason
	}

	warn := models.Warn{Reason: reason, By: actor, Date: m.timestamp()}

	var count int
	_, err := m.store.Update(guildID, func(rec *models.GuildRecord) error {
		rec.Warns[memberID] = append(rec.Warns[memberID], warn)
		count = len(rec.Warns[memberID])
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Warns returns every warn of a member, oldest first
func (m *Manager) Warns(guildID, memberID string) ([]models.Warn, error) {
	rec, err := m.store.GetOrCreate(guildID)
	if err != nil {
		return nil, err
	}
	list := rec.Warns[memberID]
	if list == nil {
		return []models.Warn{}, nil
	}
	return list, nil
}

// ClearWarns empties the warn list of a member and returns how many it held
func (m *Manager) ClearWarns(guildID, memberID string) (int, error) {
	var previous int
	_, err := m.store.Update(guildID, func(rec *models.GuildRecord) error {
		previous = len(rec.Warns[memberID])
		rec.Warns[memberID] = []models.Warn{}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return previous, nil
}

// RecentWarns returns the last n entries of list for display
func RecentWarns(list []models.Warn, n int) []models.Warn {
	if n <= 0 {
		return nil
	}
	if len(list) <= n {
		return list
	}
	return list[len(list)-n:]
}
