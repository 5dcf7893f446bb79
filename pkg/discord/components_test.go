package discord

import "testing"

func TestComponentRouterMatch(t *testing.T) {
	r := NewComponentRouter()
	noop := func(ctx *CommandContext) error { return nil }

	r.Handle("ticket_create", AccessEveryone, noop)
	r.Handle("setup", AccessAdmin, noop)
	r.Handle("setup:color_modal", AccessAdmin, noop)

	tests := []struct {
		customID string
		wantID   string
		wantOK   bool
	}{
		{"ticket_create", "ticket_create", true},
		{"setup:logs", "setup", true},
		{"setup:color_modal", "setup:color_modal", true},
		{"ticket_close", "", false},
		{"unknown:thing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.customID, func(t *testing.T) {
			c, ok := r.Match(tt.customID)
			if ok != tt.wantOK {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.customID, ok, tt.wantOK)
			}
			if ok && c.ID != tt.wantID {
				t.Errorf("Match(%q) = %v, want %v", tt.customID, c.ID, tt.wantID)
			}
		})
	}

	if r.Size() != 3 {
		t.Errorf("Size() = %v, want %v", r.Size(), 3)
	}
}

func TestComponentRouterKeepsAccess(t *testing.T) {
	r := NewComponentRouter()
	r.Handle("status", AccessAdmin, func(ctx *CommandContext) error { return nil })

	c, ok := r.Match("status:select")
	if !ok {
		t.Fatal("Match(status:select) found nothing")
	}
	if c.Access != AccessAdmin {
		t.Errorf("Access = %v, want %v", c.Access, AccessAdmin)
	}
}

func TestCustomIDArg(t *testing.T) {
	tests := map[string]string{
		"setup:logs":    "logs",
		"ticket_create": "",
		"a:b:c":         "b:c",
	}
	for in, want := range tests {
		if got := CustomIDArg(in); got != want {
			t.Errorf("CustomIDArg(%q) = %q, want %q", in, got, want)
		}
	}
}
