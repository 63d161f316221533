package events

import (
	"time"

	"github.com/spec-kit/hrdesk/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	// EventTicketRecorded fires after every completed chat turn.
	EventTicketRecorded EventType = "ticket_recorded"
	// EventTicketEscalated fires only for tickets needing human follow-up.
	EventTicketEscalated EventType = "ticket_escalated"
)

// Event represents a ticket pipeline event.
type Event struct {
	ID        string              `json:"id"`
	Type      EventType           `json:"type"`
	Timestamp time.Time           `json:"timestamp"`
	Record    domain.TicketRecord `json:"record"`
}
