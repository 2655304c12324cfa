// Package notify publishes manga change events for other services.
package notify

import (
	"context"
	"time"
)

type EventType string

const (
	MangaCreated EventType = "manga.created"
	MangaUpdated EventType = "manga.updated"
	MangaDeleted EventType = "manga.deleted"
)

// Event is the JSON payload published on every committed manga change.
type Event struct {
	Type    EventType `json:"type"`
	MangaID int64     `json:"id"`
	Name    string    `json:"nombre"`
	At      time.Time `json:"at"`
}

func NewEvent(t EventType, mangaID int64, name string) Event {
	return Event{Type: t, MangaID: mangaID, Name: name, At: time.Now().UTC()}
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Noop drops every event. Used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
