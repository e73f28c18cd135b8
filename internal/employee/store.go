// Package employee owns the employee roster.
//
// Store is the single source of truth for the collection. The whole
// collection is written to storage.KeyEmployees after every mutation and
// read back once by Load. Observers learn about changes through
// Subscribe rather than by polling.
package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/aanand-mishra/employee-dashboard/internal/storage"
	"github.com/aanand-mishra/employee-dashboard/internal/types"
)

// ErrNotFound is returned when no employee has the requested id.
var ErrNotFound = errors.New("employee not found")

// Seed is written and used when no collection has been persisted yet.
func Seed() []types.Employee {
	return []types.Employee{
		{
			ID:       "1",
			FullName: "Suresh Raina",
			Email:    "suresh@example.com",
			Gender:   types.GenderMale,
			DOB:      "1986-11-27",
			State:    "Uttar Pradesh",
			Image:    "https://api.dicebear.com/7.x/avataaars/svg?seed=Suresh",
			Active:   true,
		},
		{
			ID:       "2",
			FullName: "Mithali Raj",
			Email:    "mithali@example.com",
			Gender:   types.GenderFemale,
			DOB:      "1982-12-03",
			State:    "Rajasthan",
			Image:    "https://api.dicebear.com/7.x/avataaars/svg?seed=Mithali",
			Active:   true,
		},
	}
}

type Store struct {
	store storage.Storage
	log   *slog.Logger
	newID func() string

	mu        sync.Mutex
	employees []types.Employee
	observers map[int]func(Event)
	nextSub   int
}

// New returns an empty Store. Call Load before serving reads.
func New(store storage.Storage, log *slog.Logger) *Store {
	return &Store{
		store:     store,
		log:       log,
		newID:     uuid.NewString,
		employees: []types.Employee{},
		observers: make(map[int]func(Event)),
	}
}

// Load reads the persisted collection. When nothing is stored yet the
// seed dataset is written and used instead.
func (s *Store) Load(ctx context.Context) error {
	raw, err := s.store.Get(ctx, storage.KeyEmployees)
	if err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		return fmt.Errorf("employee.Load: %w", err)
	}

	var employees []types.Employee
	if errors.Is(err, storage.ErrKeyNotFound) {
		employees = Seed()
		if err := s.persist(ctx, employees); err != nil {
			return fmt.Errorf("employee.Load: seed: %w", err)
		}
		s.log.Info("seeded employee collection", slog.Int("count", len(employees)))
	} else {
		if err := json.Unmarshal([]byte(raw), &employees); err != nil {
			return fmt.Errorf("employee.Load: decode: %w", err)
		}
		if employees == nil {
			employees = []types.Employee{}
		}
	}

	s.mu.Lock()
	s.employees = employees
	s.mu.Unlock()

	s.log.Debug("employee collection loaded", slog.Int("count", len(employees)))
	s.notify(Event{Kind: EventLoaded})
	return nil
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []types.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.employees)
}

// Get returns the employee with the given id.
func (s *Store) Get(id string) (types.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return types.Employee{}, ErrNotFound
	}
	return s.employees[i], nil
}

// Create appends a new employee with a freshly assigned id. Fields are
// stored as given; validation belongs to the caller.
func (s *Store) Create(ctx context.Context, fields types.EmployeeFields) (types.Employee, error) {
	s.mu.Lock()

	id := s.newID()
	for s.indexOf(id) >= 0 {
		id = s.newID()
	}
	created := fields.WithID(id)

	next := append(slices.Clone(s.employees), created)
	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		return types.Employee{}, fmt.Errorf("employee.Create: %w", err)
	}
	s.employees = next
	s.mu.Unlock()

	s.log.Info("employee created", slog.String("id", id))
	s.notify(Event{Kind: EventCreated, Employee: created})
	return created, nil
}

// Update replaces every mutable field of the employee with the given id.
// The id and the record's position in the collection are kept.
func (s *Store) Update(ctx context.Context, id string, fields types.EmployeeFields) (types.Employee, error) {
	s.mu.Lock()

	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return types.Employee{}, ErrNotFound
	}
	updated := fields.WithID(id)

	next := slices.Clone(s.employees)
	next[i] = updated
	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		return types.Employee{}, fmt.Errorf("employee.Update: %w", err)
	}
	s.employees = next
	s.mu.Unlock()

	s.log.Info("employee updated", slog.String("id", id))
	s.notify(Event{Kind: EventUpdated, Employee: updated})
	return updated, nil
}

// ToggleStatus flips the active flag of the employee with the given id.
func (s *Store) ToggleStatus(ctx context.Context, id string) (types.Employee, error) {
	current, err := s.Get(id)
	if err != nil {
		return types.Employee{}, err
	}

	fields := current.Fields()
	fields.Active = !fields.Active
	return s.Update(ctx, id, fields)
}

// Delete removes the employee with the given id. An unknown id is not an
// error; the collection is persisted either way.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()

	var removed *types.Employee
	next := make([]types.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if e.ID == id {
			removed = &e
			continue
		}
		next = append(next, e)
	}

	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("employee.Delete: %w", err)
	}
	s.employees = next
	s.mu.Unlock()

	if removed != nil {
		s.log.Info("employee deleted", slog.String("id", id))
		s.notify(Event{Kind: EventDeleted, Employee: *removed})
	}
	return nil
}

// Stats returns the dashboard counters for the current collection.
func (s *Store) Stats() types.Stats {
	return ComputeStats(s.List())
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.employees, func(e types.Employee) bool {
		return e.ID == id
	})
}

func (s *Store) persist(ctx context.Context, employees []types.Employee) error {
	raw, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return s.store.Set(ctx, storage.KeyEmployees, string(raw))
}
