// Package database persists the multi-guild document.
// Every operation performs a full load-modify-save cycle under a single
// in-process lock; nothing is cached between calls.
package database

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/PancyServerManager/pkg/logger"
	"github.com/PancyStudios/PancyServerManager/pkg/metrics"
	"github.com/PancyStudios/PancyServerManager/pkg/models"
	"github.com/goccy/go-json"
)

// Backend is the durable medium holding the serialized document
type Backend interface {
	Name() string
	Read() ([]byte, error)
	Write(data []byte) error
	Status() (string, bool)
}

// quarantiner is implemented by backends able to move a corrupt document aside
type quarantiner interface {
	Quarantine() (string, error)
}

// Store owns the persisted document
type Store struct {
	backend Backend
	mu      sync.Mutex
}

var (
	store     *Store
	storeOnce sync.Once
)

// Init initializes the global store
func Init(backend Backend) *Store {
	storeOnce.Do(func() {
		store = NewStore(backend)
	})
	return store
}

// Get returns the global store
func Get() *Store {
	return store
}

// NewStore creates a Store on top of a backend
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Backend returns the underlying backend
func (s *Store) Backend() Backend {
	return s.backend
}

// Status reports backend availability for the status endpoints and /botinfo
func (s *Store) Status() (string, bool) {
	return s.backend.Status()
}

// LoadAll reads the whole document. An absent or corrupt document yields an
// empty one.
func (s *Store) LoadAll() models.Document {
	defer observe("load_all", time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadAll()
	metrics.StoreOperations.WithLabelValues("load_all", "ok").Inc()
	return doc
}

// SaveAll overwrites the whole document
func (s *Store) SaveAll(doc models.Document) error {
	defer observe("save_all", time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	return record("save_all", s.saveAll(doc))
}

// GetOrCreate returns the record of a guild. A guild seen for the first time
// gets the default record, which is persisted before returning.
func (s *Store) GetOrCreate(guildID string) (*models.GuildRecord, error) {
	defer observe("get_or_create", time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadAll()
	if rec, ok := doc[guildID]; ok {
		metrics.StoreOperations.WithLabelValues("get_or_create", "ok").Inc()
		return rec, nil
	}

	rec := models.DefaultGuildRecord()
	doc[guildID] = rec
	if err := s.saveAll(doc); err != nil {
		return nil, record("get_or_create", err)
	}

	logger.Debug(fmt.Sprintf("Registro creado para el servidor %s", guildID), "Store")
	metrics.StoreOperations.WithLabelValues("get_or_create", "ok").Inc()
	return rec, nil
}

// Put reloads the document, replaces one guild entry and saves everything
func (s *Store) Put(guildID string, rec *models.GuildRecord) error {
	defer observe("put", time.Now())

	if rec == nil {
		return record("put", fmt.Errorf("record for guild %s is nil", guildID))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadAll()
	doc[guildID] = rec
	return record("put", s.saveAll(doc))
}

// Update runs fn on the current record of a guild and persists the result in
// one locked cycle. If fn returns an error nothing is written.
func (s *Store) Update(guildID string, fn func(rec *models.GuildRecord) error) (*models.GuildRecord, error) {
	defer observe("update", time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadAll()
	rec, ok := doc[guildID]
	if !ok {
		rec = models.DefaultGuildRecord()
		doc[guildID] = rec
	}

	if err := fn(rec); err != nil {
		metrics.StoreOperations.WithLabelValues("update", "rejected").Inc()
		return nil, err
	}
	rec.Normalize()

	if err := s.saveAll(doc); err != nil {
		return nil, record("update", err)
	}
	metrics.StoreOperations.WithLabelValues("update", "ok").Inc()
	return rec, nil
}

// loadAll must be called with the lock held
func (s *Store) loadAll() models.Document {
	data, err := s.backend.Read()
	if errors.Is(err, ErrNotExist) {
		return models.Document{}
	}
	if err != nil {
		logger.Warn(fmt.Sprintf("No se pudo leer %s, se usara un documento vacio: %v", s.backend.Name(), err), "Store")
		metrics.StoreRecoveries.Inc()
		return models.Document{}
	}

	doc, err := decodeDocument(data)
	if err != nil {
		logger.Warn(fmt.Sprintf("Documento corrupto en %s, se usara uno vacio: %v", s.backend.Name(), err), "Store")
		metrics.StoreRecoveries.Inc()
		if q, ok := s.backend.(quarantiner); ok {
			if target, qerr := q.Quarantine(); qerr == nil {
				logger.Warn(fmt.Sprintf("Copia del documento corrupto guardada en %s", target), "Store")
			}
		}
		return models.Document{}
	}
	return doc
}

// saveAll must be called with the lock held
func (s *Store) saveAll(doc models.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return &StorageWriteError{Target: s.backend.Name(), Err: err}
	}
	if err := s.backend.Write(data); err != nil {
		return &StorageWriteError{Target: s.backend.Name(), Err: err}
	}
	return nil
}

// decodeDocument decodes each guild entry on top of the default record so
// older documents missing newer fields still load
func decodeDocument(data []byte) (models.Document, error) {
	if len(data) == 0 {
		return models.Document{}, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	doc := make(models.Document, len(raw))
	for guildID, entry := range raw {
		rec := models.DefaultGuildRecord()
		if err := json.Unmarshal(entry, rec); err != nil {
			return nil, fmt.Errorf("guild %s: %w", guildID, err)
		}
		rec.Normalize()
		doc[guildID] = rec
	}
	return doc, nil
}

func encodeDocument(doc models.Document) ([]byte, error) {
	if doc == nil {
		doc = models.Document{}
	}
	return json.MarshalIndent(doc, "", "  ")
}

func observe(op string, start time.Time) {
	metrics.StoreDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func record(op string, err error) error {
	if err == nil {
		metrics.StoreOperations.WithLabelValues(op, "ok").Inc()
		return nil
	}
	metrics.StoreOperations.WithLabelValues(op, "error").Inc()
	logger.Error(fmt.Sprintf("Operacion %s fallida: %v", op, err), "Store")
	return err
}
