package employee

import "github.com/aanand-mishra/employee-dashboard/internal/types"

// EventKind says what happened to the collection.
type EventKind string

const (
	EventLoaded  EventKind = "loaded"
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

// Event is delivered to subscribers after a change has been persisted.
// Employee is the zero value for EventLoaded.
type Event struct {
	Kind     EventKind
	Employee types.Employee
}

// Subscribe registers fn to be called synchronously after every
// successful Load and mutation. The returned func removes it again.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// notify must be called without s.mu held so observers may read the store.
func (s *Store) notify(ev Event) {
	s.mu.Lock()
	fns := make([]func(Event), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
