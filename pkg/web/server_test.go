package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PancyStudios/PancyServerManager/pkg/database"
	"github.com/PancyStudios/PancyServerManager/pkg/models"
	"github.com/goccy/go-json"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "pancy-web")
	if err != nil {
		panic(err)
	}

	backend, err := database.NewFileBackend(filepath.Join(dir, "database.json"))
	if err != nil {
		panic(err)
	}
	store := database.Init(backend)

	rec := models.DefaultGuildRecord()
	rec.Status = models.Status{State: models.StateMaintenance, Reason: "Migración", EstimatedTime: "30m"}
	if err := store.Put("111", rec); err != nil {
		panic(err)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func do(s *Server, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := NewServer("", "")
	w := do(s, http.MethodGet, "/api/health")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want %v", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("body = %s, want healthy", w.Body.String())
	}
}

func TestStatus(t *testing.T) {
	s := NewServer("", "")
	w := do(s, http.MethodGet, "/api/status")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want %v", w.Code, http.StatusOK)
	}

	var body struct {
		Database struct {
			IsOnline bool `json:"isOnline"`
		} `json:"database"`
		Bot struct {
			IsOnline bool `json:"isOnline"`
		} `json:"bot"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Database.IsOnline {
		t.Error("database.isOnline = false, want true")
	}
	if body.Bot.IsOnline {
		t.Error("bot.isOnline = true, want false without a client")
	}
}

func TestGuildStatus(t *testing.T) {
	s := NewServer("", "")

	w := do(s, http.MethodGet, "/api/guilds/111/status")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want %v", w.Code, http.StatusOK)
	}

	var body struct {
		GuildID string        `json:"guildId"`
		Status  models.Status `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.GuildID != "111" {
		t.Errorf("guildId = %v, want 111", body.GuildID)
	}
	if body.Status.State != models.StateMaintenance || body.Status.Reason != "Migración" {
		t.Errorf("status = %+v", body.Status)
	}
}

func TestGuildStatusUnknownGuild(t *testing.T) {
	s := NewServer("", "")

	w := do(s, http.MethodGet, "/api/guilds/999/status")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %v, want %v", w.Code, http.StatusNotFound)
	}

	if _, ok := database.Get().LoadAll()["999"]; ok {
		t.Error("looking up an unknown guild created a record")
	}
}

func TestMetrics(t *testing.T) {
	s := NewServer("", "")
	w := do(s, http.MethodGet, "/metrics")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want %v", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "pancy_store_operations_total") {
		t.Error("metrics output is missing pancy_store_operations_total")
	}
}

func TestNotFound(t *testing.T) {
	s := NewServer("", "")
	w := do(s, http.MethodGet, "/nope")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestAllowedHosts(t *testing.T) {
	s := NewServer("", `^(.+\.)?pancy\.dev$`)

	w := do(s, http.MethodGet, "/api/health")
	if w.Code != http.StatusForbidden {
		t.Errorf("status for example.com = %v, want %v", w.Code, http.StatusForbidden)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Host = "api.pancy.dev"
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status for api.pancy.dev = %v, want %v", rec.Code, http.StatusOK)
	}
}

func TestRateLimit(t *testing.T) {
	s := NewServer("", "")

	var last int
	for i := 0; i < 101; i++ {
		last = do(s, http.MethodGet, "/api/health").Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("status after 101 requests = %v, want %v", last, http.StatusTooManyRequests)
	}
}
