// Package errors counts recovered failures, posts them to the error webhook
// and stops the process when too many land close together.
package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PancyStudios/PancyServerManager/pkg/database"
	"github.com/PancyStudios/PancyServerManager/pkg/logger"
	"github.com/bwmarrin/discordgo"
	"github.com/goccy/go-json"
)

const (
	defaultLimit  = 15
	defaultWindow = 5 * time.Second
	reportColor   = 0xED4245
)

// Guard trips once more than limit failures are recorded inside one window
type Guard struct {
	webhook string
	limit   int32
	window  time.Duration
	client  *http.Client

	count   atomic.Int32
	tripped sync.Once
	onTrip  func()
	exit    func(code int)
	done    chan struct{}
}

var (
	guard    *Guard
	initOnce sync.Once
)

// Init creates the process guard. shutdown runs before the process exits.
func Init(webhookURL string, shutdown func()) *Guard {
	initOnce.Do(func() {
		guard = NewGuard(webhookURL, shutdown)
	})
	return guard
}

// NewGuard returns a running guard; Close stops its window timer
func NewGuard(webhookURL string, shutdown func()) *Guard {
	g := &Guard{
		webhook: webhookURL,
		limit:   defaultLimit,
		window:  defaultWindow,
		client:  &http.Client{Timeout: 10 * time.Second},
		onTrip:  shutdown,
		exit:    os.Exit,
		done:    make(chan struct{}),
	}
	go g.resetEachWindow()
	return g
}

func (g *Guard) resetEachWindow() {
	ticker := time.NewTicker(g.window)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			g.count.Store(0)
		case <-g.done:
			return
		}
	}
}

// Close stops the window timer
func (g *Guard) Close() {
	close(g.done)
}

// Record counts one failure from scope
func (g *Guard) Record(scope string, detail any) {
	n := g.count.Add(1)
	logger.Error(fmt.Sprintf("Fallo %d/%d en %s: %v", n, g.limit, scope, detail), "AntiCrash")
	if n > g.limit {
		g.tripped.Do(g.trip)
	}
}

func (g *Guard) trip() {
	started := time.Now()
	logger.Warn(fmt.Sprintf("Más de %d fallos en %v, apagando...", g.limit, g.window), "CRITICAL")
	g.Report("Apagado de emergencia", fmt.Sprintf("Se superaron %d fallos en %v.", g.limit, g.window))
	if g.onTrip != nil {
		g.onTrip()
	}
	logger.Warn(fmt.Sprintf("Proceso detenido tras %v", time.Since(started)), "CRITICAL")
	g.exit(1)
}

// Report posts one embed to the error webhook. Without a webhook it does
// nothing.
func (g *Guard) Report(title, message string) {
	if g.webhook == "" {
		return
	}

	body, err := json.Marshal(&discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "❌  " + title,
			Description: message,
			Color:       reportColor,
			Timestamp:   time.Now().Format(time.RFC3339),
			Footer:      &discordgo.MessageEmbedFooter{Text: "Pancy Server Manager"},
		}},
	})
	if err != nil {
		logger.Error(fmt.Sprintf("No se pudo codificar el reporte: %v", err), "AntiCrash")
		return
	}

	resp, err := g.client.Post(g.webhook, "application/json", bytes.NewReader(body))
	if err != nil {
		logger.Error(fmt.Sprintf("No se pudo enviar el reporte: %v", err), "AntiCrash")
		return
	}
	resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warn(fmt.Sprintf("El webhook de errores respondió %d", resp.StatusCode), "AntiCrash")
	}
}

// Escalate reports err if it is a storage write failure and reports whether
// it did. Other errors are left to the caller.
func Escalate(guildID string, err error) bool {
	var writeErr *database.StorageWriteError
	if !stderrors.As(err, &writeErr) {
		return false
	}
	logger.Critical(fmt.Sprintf("No se pudo guardar el documento (guild %s): %v", guildID, writeErr), "Store")
	if g := guard; g != nil {
		go func() {
			g.Record("Store", writeErr)
			g.Report("Escritura fallida", fmt.Sprintf("Guild `%s`\n```%v```", guildID, writeErr))
		}()
	}
	return true
}

// Recover must be deferred directly; it swallows a panic and counts it
func Recover() {
	r := recover()
	if r == nil {
		return
	}
	if guard == nil {
		logger.Error(fmt.Sprintf("Panic recuperado: %v", r), "AntiCrash")
		return
	}
	guard.Record("panic", r)
}
