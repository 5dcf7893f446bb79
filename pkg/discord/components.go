package discord

import (
	"strings"
	"sync"
)

// ComponentFunc handles a button, select menu or modal submit
type ComponentFunc func(ctx *CommandContext) error

// Component is a registered custom_id handler
type Component struct {
	ID     string
	Access AccessLevel
	Run    ComponentFunc
}

// ComponentRouter maps custom ids to handlers. An id is matched exactly
// first, then by the part before the first ':' so ids can carry arguments.
type ComponentRouter struct {
	routes map[string]*Component
	mu     sync.RWMutex
}

// NewComponentRouter creates an empty router
func NewComponentRouter() *ComponentRouter {
	return &ComponentRouter{routes: make(map[string]*Component)}
}

// Handle registers a handler for a custom id or id prefix
func (r *ComponentRouter) Handle(id string, access AccessLevel, fn ComponentFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[id] = &Component{ID: id, Access: access, Run: fn}
}

// Match finds the handler for a custom id
func (r *ComponentRouter) Match(customID string) (*Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.routes[customID]; ok {
		return c, true
	}
	if prefix, _, found := strings.Cut(customID, ":"); found {
		if c, ok := r.routes[prefix]; ok {
			return c, true
		}
	}
	return nil, false
}

// Size returns the number of routes
func (r *ComponentRouter) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.routes)
}

// CustomIDArg returns what follows the first ':' in a custom id
func CustomIDArg(customID string) string {
	_, arg, _ := strings.Cut(customID, ":")
	return arg
}
