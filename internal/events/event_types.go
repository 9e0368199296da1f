package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventGrievanceSubmitted EventType = "grievance_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// GrievanceSubmittedPayload carries no identity fields.
type GrievanceSubmittedPayload struct {
	Anonymous     bool `json:"anonymous"`
	MessageLength int  `json:"message_length"`
}
