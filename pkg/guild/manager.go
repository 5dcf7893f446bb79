// Package guild implements the per-guild operations on top of the record
// store: settings, server status, warns, notes and tickets.
package guild

import (
	"sync"
	"time"

	"github.com/PancyStudios/PancyServerManager/pkg/models"
)

// RecordStore is the part of the store the manager needs
type RecordStore interface {
	GetOrCreate(guildID string) (*models.GuildRecord, error)
	Update(guildID string, fn func(rec *models.GuildRecord) error) (*models.GuildRecord, error)
}

// Manager exposes every guild operation used by the command layer
type Manager struct {
	store RecordStore
	now   func() time.Time
}

var (
	manager *Manager
	once    sync.Once
)

// Init initializes the global manager
func Init(store RecordStore) *Manager {
	once.Do(func() {
		manager = NewManager(store)
	})
	return manager
}

// Get returns the global manager
func Get() *Manager {
	return manager
}

// NewManager creates a Manager backed by store
func NewManager(store RecordStore) *Manager {
	return &Manager{store: store, now: time.Now}
}

// Record returns the full record of a guild, creating it on first access
func (m *Manager) Record(guildID string) (*models.GuildRecord, error) {
	return m.store.GetOrCreate(guildID)
}

func (m *Manager) timestamp() string {
	return m.now().Format(models.TimestampLayout)
}
