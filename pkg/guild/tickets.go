package guild

import (
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/PancyServerManager/pkg/logger"
	"github.com/PancyStudios/PancyServerManager/pkg/metrics"
	"github.com/PancyStudios/PancyServerManager/pkg/models"
)

// TicketState is the lifecycle position of a ticket
type TicketState string

const (
	TicketRequested TicketState = "requested"
	TicketOpen      TicketState = "open"
	TicketClosed    TicketState = "closed"
)

// Ticket is a support conversation backed by a private channel.
// Closed tickets are not persisted; the channel is the source of truth.
type Ticket struct {
	GuildID       string
	Number        int
	RequesterID   string
	RequesterName string
	ChannelID     string

	mu    sync.Mutex
	state TicketState
}

// State returns the current lifecycle state
func (t *Ticket) State() TicketState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Ticket) setState(s TicketState) {
	t.mu.Lock()
	t.state = s
	t.mu.Unlock()
}

// Name is the channel name of the ticket
func (t *Ticket) Name() string {
	return TicketName(t.Number)
}

// Topic is the channel topic of the ticket
func (t *Ticket) Topic() string {
	return fmt.Sprintf("Ticket #%d | %s", t.Number, t.RequesterName)
}

// Provisioner creates and removes the channel backing a ticket
type Provisioner interface {
	CreateTicketChannel(guildID string, t *Ticket, categoryID string) (string, error)
	DeleteTicketChannel(channelID string) error
}

// TicketName formats the channel name for a ticket number
func TicketName(n int) string {
	return "ticket-" + DisplayNumber(n)
}

// DisplayNumber zero-pads a ticket number to at least four digits
func DisplayNumber(n int) string {
	return fmt.Sprintf("%04d", n)
}

// NextTicketNumber increments and persists the ticket counter of a guild.
// Numbers are never handed out twice.
func (m *Manager) NextTicketNumber(guildID string) (int, error) {
	var number int
	_, err := m.store.Update(guildID, func(rec *models.GuildRecord) error {
		rec.Tickets.Counter++
		number = rec.Tickets.Counter
		return nil
	})
	if err != nil {
		return 0, err
	}
	return number, nil
}

// SetTicketCategory sets where future tickets are created
func (m *Manager) SetTicketCategory(guildID, categoryID string) error {
	_, err := m.store.Update(guildID, func(rec *models.GuildRecord) error {
		rec.Tickets.Category = models.ID(categoryID)
		return nil
	})
	return err
}

// TicketCategory returns the category new tickets go into, if any
func (m *Manager) TicketCategory(guildID string) (string, error) {
	rec, err := m.store.GetOrCreate(guildID)
	if err != nil {
		return "", err
	}
	return rec.Tickets.Category.String(), nil
}

// OpenTicket allocates a number and provisions the ticket channel. If
// provisioning fails the number stays consumed.
func (m *Manager) OpenTicket(guildID, requesterID, requesterName string, p Provisioner) (*Ticket, error) {
	rec, err := m.store.GetOrCreate(guildID)
	if err != nil {
		return nil, err
	}
	category := rec.Tickets.Category.String()

	number, err := m.NextTicketNumber(guildID)
	if err != nil {
		return nil, err
	}

	t := &Ticket{
		GuildID:       guildID,
		Number:        number,
		RequesterID:   requesterID,
		RequesterName: requesterName,
		state:         TicketRequested,
	}

	channelID, err := p.CreateTicketChannel(guildID, t, category)
	if err != nil {
		metrics.TicketsFailed.Inc()
		logger.Warn(fmt.Sprintf("No se pudo crear el canal del ticket #%s en %s: %v", DisplayNumber(number), guildID, err), "Tickets")
		return nil, fmt.Errorf("provision ticket %s: %w", DisplayNumber(number), err)
	}

	t.ChannelID = channelID
	t.setState(TicketOpen)
	metrics.TicketsOpened.Inc()
	return t, nil
}

// CloseTicket schedules removal of the ticket channel after delay. The
// returned timer can be stopped to cancel. If the removal fails the ticket
// stays open.
func (m *Manager) CloseTicket(t *Ticket, p Provisioner, delay time.Duration) *time.Timer {
	return time.AfterFunc(delay, func() {
		if err := p.DeleteTicketChannel(t.ChannelID); err != nil {
			metrics.TicketsClosed.WithLabelValues("error").Inc()
			logger.Error(fmt.Sprintf("No se pudo eliminar el canal %s del ticket: %v", t.ChannelID, err), "Tickets")
			return
		}
		t.setState(TicketClosed)
		metrics.TicketsClosed.WithLabelValues("ok").Inc()
	})
}

// OpenTicketFromChannel rebuilds an open ticket from its channel, as the close
// button only carries the channel
func OpenTicketFromChannel(guildID, channelID string) *Ticket {
	return &Ticket{GuildID: guildID, ChannelID: channelID, state: TicketOpen}
}
