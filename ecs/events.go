package ecs

// EventKind identifies gameplay events.
type EventKind string

const (
	EventEnemyStomped  EventKind = "enemy_stomped"
	EventPlayerDamaged EventKind = "player_damaged"
	EventCollected     EventKind = "collected"
	EventLifeLost      EventKind = "life_lost"
	EventGameOver      EventKind = "game_over"
)

// Event is a gameplay event. Value carries points awarded or lives left.
type Event struct {
	Kind   EventKind
	Entity Entity
	Value  int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
