package mqtt

import (
	"errors"
	"testing"

	"github.com/PancyStudios/PancyServerManager/pkg/models"
)

func TestTopicMatch(t *testing.T) {
	tests := []struct {
		pattern string
		topic   string
		want    bool
	}{
		{"pancy/status/1", "pancy/status/1", true},
		{"pancy/status/+", "pancy/status/42", true},
		{"pancy/status/+", "pancy/status/42/extra", false},
		{"pancy/#", "pancy/audit/42", true},
		{"pancy/#", "pancy", true},
		{"pancy/audit/+", "pancy/status/42", false},
		{"pancy/+/42", "pancy/audit/42", true},
		{"pancy/status", "pancy/status/42", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.topic, func(t *testing.T) {
			if got := topicMatch(tt.pattern, tt.topic); got != tt.want {
				t.Errorf("topicMatch(%q, %q) = %v, want %v", tt.pattern, tt.topic, got, tt.want)
			}
		})
	}
}

func TestFeedTopics(t *testing.T) {
	if got := StatusTopic("123"); got != "pancy/status/123" {
		t.Errorf("StatusTopic = %v, want pancy/status/123", got)
	}
	if got := AuditTopic("123"); got != "pancy/audit/123" {
		t.Errorf("AuditTopic = %v, want pancy/audit/123", got)
	}
	if got := responseTopicFor("guild.status", "abc"); got != "pancy/response/guild.status/abc" {
		t.Errorf("responseTopicFor = %v, want pancy/response/guild.status/abc", got)
	}
}

func TestNewAuditEvent(t *testing.T) {
	a := NewAuditEvent("1", "Kick", "user kicked", "2", "mod")
	b := NewAuditEvent("1", "Kick", "user kicked", "2", "mod")

	if a.ID == "" || a.ID == b.ID {
		t.Errorf("audit ids = %q, %q, want distinct non-empty ids", a.ID, b.ID)
	}
	if a.GuildID != "1" || a.Action != "Kick" || a.UserName != "mod" {
		t.Errorf("audit event = %+v", a)
	}
	if a.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}
}

func TestPublishWithoutBrokerIsNoop(t *testing.T) {
	var mc *MqttCommunicator

	if mc.IsConnected() {
		t.Fatal("nil communicator reports connected")
	}
	mc.PublishStatus("1", models.Status{State: models.StateOnline})
	mc.PublishAudit(NewAuditEvent("1", "Warn", "x", "", ""))
}

func TestGuildStatusHandler(t *testing.T) {
	lookup := func(guildID string) (models.Status, error) {
		if guildID == "404" {
			return models.Status{}, errors.New("read failed")
		}
		return models.Status{State: models.StateMaintenance, Reason: "db"}, nil
	}
	handler := GuildStatusHandler(lookup)

	data, err := handler(map[string]interface{}{"guildId": "7"})
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	event, ok := data.(StatusEvent)
	if !ok {
		t.Fatalf("handler returned %T, want StatusEvent", data)
	}
	if event.GuildID != "7" || event.Status.State != models.StateMaintenance {
		t.Errorf("event = %+v", event)
	}

	if _, err := handler(map[string]interface{}{}); err == nil {
		t.Error("handler without guildId returned nil error")
	}
	if _, err := handler(map[string]interface{}{"guildId": "404"}); err == nil {
		t.Error("handler with failing lookup returned nil error")
	}
}

func TestHandleRequest(t *testing.T) {
	raw := []byte(`{"correlationId":"c1","payload":{"guildId":"9"}}`)

	var seen map[string]interface{}
	resp, topic, err := handleRequest("pancy/request/guild.status", raw, func(payload map[string]interface{}) (interface{}, error) {
		seen = payload
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("handleRequest returned error: %v", err)
	}
	if topic != "guild.status" {
		t.Errorf("topic = %v, want guild.status", topic)
	}
	if resp.CorrelationID != "c1" || resp.Data != "ok" || resp.Error != "" {
		t.Errorf("response = %+v", resp)
	}
	if seen["guildId"] != "9" || seen["_topic"] != "guild.status" {
		t.Errorf("payload = %v", seen)
	}

	resp, _, err = handleRequest("pancy/request/guild.status", raw, func(map[string]interface{}) (interface{}, error) {
		return nil, errors.New("boom")
	})
	if err != nil {
		t.Fatalf("handleRequest returned error: %v", err)
	}
	if resp.Error != "boom" {
		t.Errorf("response error = %q, want boom", resp.Error)
	}

	if _, _, err := handleRequest("pancy/request/x", []byte("{"), nil); err == nil {
		t.Error("handleRequest with bad json returned nil error")
	}
}
