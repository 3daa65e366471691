// Package events defines the domain event contract shared by aggregates.
// Aggregates record events while they change; the unit of work drains them
// into the outbox in the same transaction as the state change.
package events

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// Event is a fact that happened to an aggregate.
type Event interface {
	EventID() kernel.UUID
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// Source is implemented by aggregates that record events.
type Source interface {
	DomainEvents() []Event
	ClearDomainEvents()
}

// Base carries the envelope fields of an event. It is embedded by concrete
// events, whose exported fields form the payload.
type Base struct {
	id          kernel.UUID
	name        string
	aggregateID string
	occurredAt  time.Time
}

func NewBase(name, aggregateID string, occurredAt time.Time) Base {
	return Base{
		id:          kernel.NewUUID(),
		name:        name,
		aggregateID: aggregateID,
		occurredAt:  occurredAt.UTC(),
	}
}

func (b Base) EventID() kernel.UUID  { return b.id }
func (b Base) EventName() string     { return b.name }
func (b Base) AggregateID() string   { return b.aggregateID }
func (b Base) OccurredAt() time.Time { return b.occurredAt }

// Recorder is embedded by aggregates to collect pending events.
type Recorder struct {
	pending []Event
}

func (r *Recorder) Record(e Event) {
	r.pending = append(r.pending, e)
}

func (r *Recorder) DomainEvents() []Event {
	out := make([]Event, len(r.pending))
	copy(out, r.pending)
	return out
}

func (r *Recorder) ClearDomainEvents() {
	r.pending = nil
}
