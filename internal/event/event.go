package event

import (
	"context"
	"time"
)

// Event is a published message.
type Event struct {
	// Topic is the hierarchical event type.
	Topic Topic

	// Payload carries the event-specific data; handlers type-assert it.
	Payload any

	// Source names the component that published the event.
	Source string

	// Timestamp is when the event was created.
	Timestamp time.Time
}

// New creates an event stamped with the current time.
func New(topic Topic, payload any, source string) Event {
	return Event{
		Topic:     topic,
		Payload:   payload,
		Source:    source,
		Timestamp: time.Now(),
	}
}

// HandlerFunc handles a delivered event.
type HandlerFunc func(ctx context.Context, ev Event) error

// Priority determines handler execution order. Lower values run first.
type Priority int

const (
	// PriorityCritical is for handlers that must observe state first.
	PriorityCritical Priority = 0

	// PriorityNormal is the default priority.
	PriorityNormal Priority = 200

	// PriorityLow is for logging handlers that run last.
	PriorityLow Priority = 300
)
