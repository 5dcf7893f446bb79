package mqtt

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyServerManager/pkg/logger"
	"github.com/PancyStudios/PancyServerManager/pkg/models"
	"github.com/google/uuid"
)

const (
	requestPrefix  = "pancy/request/"
	responsePrefix = "pancy/response/"

	// GuildStatusRequest is the request topic answered with a guild status
	GuildStatusRequest = "guild.status"
)

// StatusTopic is where status changes of a guild are published
func StatusTopic(guildID string) string {
	return "pancy/status/" + guildID
}

// AuditTopic is where logged actions of a guild are published
func AuditTopic(guildID string) string {
	return "pancy/audit/" + guildID
}

func responseTopicFor(topic, correlationID string) string {
	return fmt.Sprintf("%s%s/%s", responsePrefix, topic, correlationID)
}

// StatusEvent is the payload of the status feed
type StatusEvent struct {
	ID      string        `json:"id"`
	GuildID string        `json:"guildId"`
	Status  models.Status `json:"status"`
}

// AuditEvent is the payload of the audit feed
type AuditEvent struct {
	ID          string    `json:"id"`
	GuildID     string    `json:"guildId"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	UserID      string    `json:"userId,omitempty"`
	UserName    string    `json:"userName,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewAuditEvent stamps an audit event with an id and the current time
func NewAuditEvent(guildID, action, description, userID, userName string) AuditEvent {
	return AuditEvent{
		ID:          uuid.New().String(),
		GuildID:     guildID,
		Action:      action,
		Description: description,
		UserID:      userID,
		UserName:    userName,
		Timestamp:   time.Now().UTC(),
	}
}

// PublishStatus publishes a status change. It does nothing while
// disconnected or when MQTT is disabled.
func (mc *MqttCommunicator) PublishStatus(guildID string, status models.Status) {
	if !mc.IsConnected() {
		return
	}
	event := StatusEvent{ID: uuid.New().String(), GuildID: guildID, Status: status}
	if err := mc.Publish(StatusTopic(guildID), event); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo publicar el estado de %s: %v", guildID, err), "MQTT")
	}
}

// PublishAudit publishes a logged action. It does nothing while
// disconnected or when MQTT is disabled.
func (mc *MqttCommunicator) PublishAudit(event AuditEvent) {
	if !mc.IsConnected() {
		return
	}
	if err := mc.Publish(AuditTopic(event.GuildID), event); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo publicar la auditoría de %s: %v", event.GuildID, err), "MQTT")
	}
}

// StatusLookup returns the status stored for a guild
type StatusLookup func(guildID string) (models.Status, error)

// GuildStatusHandler answers guild.status requests. The payload must carry
// a guildId.
func GuildStatusHandler(lookup StatusLookup) RequestHandler {
	return func(payload map[string]interface{}) (interface{}, error) {
		guildID, _ := payload["guildId"].(string)
		if guildID == "" {
			return nil, fmt.Errorf("guildId is required")
		}
		status, err := lookup(guildID)
		if err != nil {
			return nil, err
		}
		return StatusEvent{ID: uuid.New().String(), GuildID: guildID, Status: status}, nil
	}
}

// ServeGuildStatus registers the guild.status request handler
func (mc *MqttCommunicator) ServeGuildStatus(lookup StatusLookup) {
	mc.On(GuildStatusRequest, GuildStatusHandler(lookup))
}
