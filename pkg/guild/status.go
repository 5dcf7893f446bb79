package guild

import (
	"fmt"

	"github.com/PancyStudios/PancyServerManager/pkg/metrics"
	"github.com/PancyStudios/PancyServerManager/pkg/models"
)

const (
	// Sentinel is stored in status fields that carry no value
	Sentinel = "—"

	// DefaultEstimatedTime is stored when no return time is given
	DefaultEstimatedTime = "No especificado"
)

// StatusUpdate is the input of a status transition
type StatusUpdate struct {
	State          models.StatusState
	Reason         string
	EstimatedTime  string
	AdditionalInfo string
}

// Status returns the current status of a guild
func (m *Manager) Status(guildID string) (models.Status, error) {
	rec, err := m.store.GetOrCreate(guildID)
	if err != nil {
		return models.Status{}, err
	}
	return rec.Status, nil
}

// Snapshot reads the stored document without creating records
type Snapshot interface {
	LoadAll() models.Document
}

// StoredStatus returns the status of a guild that already has a record.
// Unknown guilds are a NotFoundError and nothing is written.
func StoredStatus(src Snapshot, guildID string) (models.Status, error) {
	rec, ok := src.LoadAll()[guildID]
	if !ok || rec == nil {
		return models.Status{}, &NotFoundError{Kind: "guild", ID: guildID}
	}
	return rec.Status, nil
}

// SetStatus replaces the whole status struct. Any state can follow any other;
// only the initial none state cannot be set.
func (m *Manager) SetStatus(guildID string, update StatusUpdate, actor string) (models.Status, error) {
	status := models.Status{
		State:     update.State,
		UpdatedBy: actor,
		UpdatedAt: m.timestamp(),
	}

	switch update.State {
	case models.StateOnline:
		status.Reason = Sentinel
		status.EstimatedTime = Sentinel
		status.AdditionalInfo = Sentinel
	case models.StateOffline:
		status.Reason = update.Reason
		status.EstimatedTime = orDefault(update.EstimatedTime, DefaultEstimatedTime)
		status.AdditionalInfo = orDefault(update.AdditionalInfo, Sentinel)
	case models.StateMaintenance:
		status.Reason = update.Reason
		status.EstimatedTime = orDefault(update.EstimatedTime, DefaultEstimatedTime)
		status.AdditionalInfo = Sentinel
	default:
		return models.Status{}, &ValidationError{Field: "state", Reason: fmt.Sprintf("unknown state %q", update.State)}
	}

	_, err := m.store.Update(guildID, func(rec *models.GuildRecord) error {
		rec.Status = status
		return nil
	})
	if err != nil {
		return models.Status{}, err
	}

	metrics.StatusTransitions.WithLabelValues(string(status.State)).Inc()
	return status, nil
}

// ParseState maps a select value to a state
func ParseState(value string) (models.StatusState, bool) {
	switch s := models.StatusState(value); s {
	case models.StateOnline, models.StateOffline, models.StateMaintenance:
		return s, true
	}
	return "", false
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
