package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/PancyStudios/PancyServerManager/pkg/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database.json")
	backend, err := NewFileBackend(path)
	if err != nil {
		t.Fatalf("NewFileBackend() error = %v", err)
	}
	return NewStore(backend), path
}

type failingBackend struct {
	data []byte
}

func (f *failingBackend) Name() string { return "failing" }

func (f *failingBackend) Read() ([]byte, error) {
	if f.data == nil {
		return nil, ErrNotExist
	}
	return f.data, nil
}

func (f *failingBackend) Write([]byte) error { return errors.New("disk full") }

func (f *failingBackend) Status() (string, bool) { return "down", false }

func TestLoadAllMissingFile(t *testing.T) {
	s, _ := newTestStore(t)

	doc := s.LoadAll()
	if len(doc) != 0 {
		t.Errorf("LoadAll() len = %d, want 0", len(doc))
	}
}

func TestGetOrCreateMaterializesDefault(t *testing.T) {
	s, path := newTestStore(t)

	rec, err := s.GetOrCreate("100")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if !reflect.DeepEqual(rec, models.DefaultGuildRecord()) {
		t.Errorf("GetOrCreate() = %+v, want default record", rec)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("document not written: %v", err)
	}

	doc := s.LoadAll()
	stored, ok := doc["100"]
	if !ok {
		t.Fatal("default record was not persisted")
	}
	if !reflect.DeepEqual(stored, models.DefaultGuildRecord()) {
		t.Errorf("persisted record = %+v, want default record", stored)
	}
}

func TestPutReplacesOnlyOneGuild(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.GetOrCreate("1"); err != nil {
		t.Fatal(err)
	}
	rec := models.DefaultGuildRecord()
	rec.Settings.Color = "00FF00"
	if err := s.Put("2", rec); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	doc := s.LoadAll()
	if len(doc) != 2 {
		t.Fatalf("LoadAll() len = %d, want 2", len(doc))
	}
	if doc["2"].Settings.Color != "00FF00" {
		t.Errorf("guild 2 color = %q, want %q", doc["2"].Settings.Color, "00FF00")
	}
	if doc["1"].Settings.Color != models.DefaultColor {
		t.Errorf("guild 1 color = %q, want %q", doc["1"].Settings.Color, models.DefaultColor)
	}
}

func TestUpdateRejectedWritesNothing(t *testing.T) {
	s, path := newTestStore(t)

	_, err := s.Update("1", func(rec *models.GuildRecord) error {
		rec.Settings.Color = "000000"
		return errors.New("nope")
	})
	if err == nil {
		t.Fatal("Update() error = nil, want error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("document exists after rejected update, stat err = %v", err)
	}
}

func TestCorruptDocumentRecovers(t *testing.T) {
	s, path := newTestStore(t)

	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	doc := s.LoadAll()
	if len(doc) != 0 {
		t.Errorf("LoadAll() len = %d, want 0", len(doc))
	}

	matches, _ := filepath.Glob(path + ".corrupt.*")
	if len(matches) != 1 {
		t.Errorf("quarantined copies = %d, want 1", len(matches))
	}

	if _, err := s.GetOrCreate("1"); err != nil {
		t.Fatalf("GetOrCreate() after recovery error = %v", err)
	}
}

func TestWriteFailureSurfaces(t *testing.T) {
	s := NewStore(&failingBackend{})

	_, err := s.GetOrCreate("1")
	if err == nil {
		t.Fatal("GetOrCreate() error = nil, want StorageWriteError")
	}

	var writeErr *StorageWriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("error = %T, want *StorageWriteError", err)
	}
	if writeErr.Target != "failing" {
		t.Errorf("Target = %q, want %q", writeErr.Target, "failing")
	}
	if !IsWriteError(err) {
		t.Error("IsWriteError() = false, want true")
	}

	if err := s.SaveAll(models.Document{}); !IsWriteError(err) {
		t.Errorf("SaveAll() error = %v, want StorageWriteError", err)
	}
}

func TestLegacyDocumentGetsDefaults(t *testing.T) {
	s, path := newTestStore(t)

	legacy := `{
  "42": {
    "settings": {"color": "ff0000", "log_channel": 123456789012345678},
    "warns": {"7": [{"reason": "spam", "by": "mod", "date": "01.01.2024 10:00"}]}
  }
}`
	if err := os.WriteFile(path, []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}

	rec, err := s.GetOrCreate("42")
	if err != nil {
		t.Fatal(err)
	}

	if rec.Settings.LogChannel != "123456789012345678" {
		t.Errorf("LogChannel = %q, want numeric id as string", rec.Settings.LogChannel)
	}
	if rec.Settings.WelcomeMessage != models.DefaultWelcomeMessage {
		t.Errorf("WelcomeMessage = %q, want default", rec.Settings.WelcomeMessage)
	}
	if rec.Status.State != models.StateNone {
		t.Errorf("Status.State = %q, want %q", rec.Status.State, models.StateNone)
	}
	if rec.Notes == nil {
		t.Error("Notes = nil, want empty slice")
	}
	if got := len(rec.Warns["7"]); got != 1 {
		t.Errorf("len(Warns[7]) = %d, want 1", got)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	rec := models.DefaultGuildRecord()
	rec.Settings.StatusChannel = "555"
	rec.Status = models.Status{State: models.StateOffline, Reason: "R", EstimatedTime: "1h", AdditionalInfo: "—", UpdatedBy: "admin", UpdatedAt: "01.02.2024 12:30"}
	rec.Warns["9"] = []models.Warn{{Reason: "a", By: "b", Date: "c"}}
	rec.Notes = append(rec.Notes, models.Note{Text: "hola", By: "x", Date: "y"})
	rec.Tickets = models.Tickets{Counter: 3, Category: "77"}

	if err := s.SaveAll(models.Document{"1": rec, "2": models.DefaultGuildRecord()}); err != nil {
		t.Fatal(err)
	}

	first := s.LoadAll()
	if err := s.SaveAll(first); err != nil {
		t.Fatal(err)
	}
	second := s.LoadAll()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip mismatch:\n first = %+v\nsecond = %+v", first, second)
	}
	if !reflect.DeepEqual(second["1"], rec) {
		t.Errorf("LoadAll()[1] = %+v, want %+v", second["1"], rec)
	}
}

func TestSavedDocumentIsIndented(t *testing.T) {
	s, path := newTestStore(t)

	if _, err := s.GetOrCreate("1"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  \"1\"") {
		t.Errorf("document is not indented:\n%s", data)
	}
}

func TestConcurrentUpdatesAreSerialized(t *testing.T) {
	s, _ := newTestStore(t)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			guildID := fmt.Sprintf("%d", i%4)
			_, err := s.Update(guildID, func(rec *models.GuildRecord) error {
				rec.Tickets.Counter++
				return nil
			})
			if err != nil {
				t.Errorf("Update() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	doc := s.LoadAll()
	total := 0
	for _, rec := range doc {
		total += rec.Tickets.Counter
	}
	if total != workers {
		t.Errorf("total counter = %d, want %d", total, workers)
	}
}
