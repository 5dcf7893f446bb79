// Package models defines the persisted per-guild record and its defaults.
package models

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

const (
	// DefaultColor is the embed color of a freshly created guild (Discord blurple)
	DefaultColor = "5865F2"

	// DefaultWelcomeMessage supports the {user}, {server} and {count} placeholders
	DefaultWelcomeMessage = "¡Bienvenido al servidor, {user}! 🎉"

	// TimestampLayout is the format of every audit date stored in a record
	TimestampLayout = "02.01.2006 15:04"
)

// ID is a Discord snowflake. Older documents stored ids as JSON numbers,
// so both numbers and strings decode. The empty ID encodes as null.
type ID string

// IsSet reports whether the id holds a value
func (id ID) IsSet() bool {
	return id != ""
}

// String returns the raw snowflake
func (id ID) String() string {
	return string(id)
}

// MarshalJSON implements json.Marshaler
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON implements json.Unmarshaler
func (id *ID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		*id = ""
		return nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	if _, err := strconv.ParseUint(raw, 10, 64); err != nil {
		return err
	}
	*id = ID(raw)
	return nil
}

// StatusState is the server-availability flag
type StatusState string

const (
	StateNone        StatusState = "none"
	StateOnline      StatusState = "online"
	StateOffline     StatusState = "offline"
	StateMaintenance StatusState = "maintenance"
)

// Settings holds the configurable values of a guild
type Settings struct {
	Color          string `json:"color"`
	LogChannel     ID     `json:"log_channel"`
	StatusChannel  ID     `json:"status_channel"`
	WelcomeChannel ID     `json:"welcome_channel"`
	WelcomeMessage string `json:"welcome_message"`
	Autorole       ID     `json:"autorole"`
}

// Status is the last availability update. It is always replaced as a whole.
type Status struct {
	State          StatusState `json:"state"`
	Reason         string      `json:"reason"`
	EstimatedTime  string      `json:"estimated_time"`
	AdditionalInfo string      `json:"additional_info"`
	UpdatedBy      string      `json:"updated_by"`
	UpdatedAt      string      `json:"updated_at"`
}

// Warn is a single disciplinary entry. By is a display-name snapshot.
type Warn struct {
	Reason string `json:"reason"`
	By     string `json:"by"`
	Date   string `json:"date"`
}

// Tickets holds the ticket counter and the category new tickets go into
type Tickets struct {
	Counter  int `json:"counter"`
	Category ID  `json:"category"`
}

// Note is a free-form admin note
type Note struct {
	Text string `json:"text"`
	By   string `json:"by"`
	Date string `json:"date"`
}

// GuildRecord is everything persisted for a single guild
type GuildRecord struct {
	Settings Settings          `json:"settings"`
	Status   Status            `json:"status"`
	Warns    map[string][]Warn `json:"warns"`
	Tickets  Tickets           `json:"tickets"`
	Notes    []Note            `json:"notes"`
}

// Document is the whole persisted store keyed by guild id
type Document map[string]*GuildRecord

// DefaultGuildRecord returns the record materialized on first access
func DefaultGuildRecord() *GuildRecord {
	return &GuildRecord{
		Settings: Settings{
			Color:          DefaultColor,
			WelcomeMessage: DefaultWelcomeMessage,
		},
		Status: Status{
			State: StateNone,
		},
		Warns: map[string][]Warn{},
		Notes: []Note{},
	}
}

// Normalize replaces nil collections left behind by explicit JSON nulls
func (r *GuildRecord) Normalize() {
	if r.Warns == nil {
		r.Warns = map[string][]Warn{}
	}
	if r.Notes == nil {
		r.Notes = []Note{}
	}
	if r.Status.State == "" {
		r.Status.State = StateNone
	}
	if r.Settings.Color == "" {
		r.Settings.Color = DefaultColor
	}
}
