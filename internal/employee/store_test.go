package employee

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/employee-dashboard/internal/storage"
	"github.com/aanand-mishra/employee-dashboard/internal/storage/memory"
	"github.com/aanand-mishra/employee-dashboard/internal/types"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// flakyStorage fails Set once failSet is true.
type flakyStorage struct {
	*memory.Memory
	failSet bool
}

var errWrite = errors.New("write failed")

func (f *flakyStorage) Set(ctx context.Context, key, value string) error {
	if f.failSet {
		return errWrite
	}
	return f.Memory.Set(ctx, key, value)
}

func newLoadedStore(t *testing.T, st storage.Storage) *Store {
	t.Helper()
	s := New(st, discard)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func sampleFields() types.EmployeeFields {
	return types.EmployeeFields{
		FullName: "Harmanpreet Kaur",
		Email:    "harman@example.com",
		Gender:   types.GenderFemale,
		DOB:      "1989-03-08",
		State:    "Delhi",
		Active:   true,
	}
}

func persisted(t *testing.T, st storage.Storage) []types.Employee {
	t.Helper()
	raw, err := st.Get(context.Background(), storage.KeyEmployees)
	require.NoError(t, err)

	var out []types.Employee
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func TestStore_LoadSeedsEmptyStorage(t *testing.T) {
	mem := memory.New()
	s := newLoadedStore(t, mem)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Suresh Raina", list[0].FullName)
	assert.Equal(t, "Mithali Raj", list[1].FullName)
	assert.True(t, list[0].Active)
	assert.True(t, list[1].Active)

	assert.Equal(t, Seed(), persisted(t, mem))
}

func TestStore_LoadKeepsExistingCollection(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	require.NoError(t, mem.Set(ctx, storage.KeyEmployees, `[]`))

	s := newLoadedStore(t, mem)
	assert.Empty(t, s.List())
	assert.NotNil(t, s.List())
}

func TestStore_LoadRejectsCorruptCollection(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	require.NoError(t, mem.Set(ctx, storage.KeyEmployees, `{not json`))

	err := New(mem, discard).Load(ctx)
	assert.Error(t, err)
}

func TestStore_CreateThenListAndReload(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	s := newLoadedStore(t, mem)

	fields := sampleFields()
	created, err := s.Create(ctx, fields)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, fields, created.Fields())

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, created, list[2], "create appends")

	reloaded := newLoadedStore(t, mem)
	assert.Equal(t, list, reloaded.List())
}

func TestStore_CreateRedrawsCollidingID(t *testing.T) {
	ctx := context.Background()
	s := newLoadedStore(t, memory.New())

	ids := []string{"1", "2", "fresh"}
	s.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	created, err := s.Create(ctx, sampleFields())
	require.NoError(t, err)
	assert.Equal(t, "fresh", created.ID)
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	s := newLoadedStore(t, mem)

	fields := Seed()[0].Fields()
	fields.FullName = "Suresh K. Raina"
	fields.Active = false

	updated, err := s.Update(ctx, "1", fields)
	require.NoError(t, err)
	assert.Equal(t, "1", updated.ID)

	list := s.List()
	assert.Equal(t, updated, list[0], "position is kept")
	assert.Equal(t, list, persisted(t, mem))
}

func TestStore_UpdateMissingID(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	s := newLoadedStore(t, mem)
	before := s.List()

	_, err := s.Update(ctx, "missing-id", sampleFields())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, s.List())
	assert.Equal(t, before, persisted(t, mem))
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newLoadedStore(t, memory.New())

	require.NoError(t, s.Delete(ctx, "1"))
	once := s.List()

	require.NoError(t, s.Delete(ctx, "1"))
	assert.Equal(t, once, s.List())
	require.Len(t, once, 1)
	assert.Equal(t, "2", once[0].ID)
}

func TestStore_FailedWriteLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	st := &flakyStorage{Memory: memory.New()}
	s := newLoadedStore(t, st)
	before := s.List()

	st.failSet = true

	_, err := s.Create(ctx, sampleFields())
	assert.ErrorIs(t, err, errWrite)
	_, err = s.Update(ctx, "1", sampleFields())
	assert.ErrorIs(t, err, errWrite)
	assert.ErrorIs(t, s.Delete(ctx, "1"), errWrite)

	assert.Equal(t, before, s.List())
}

func TestStore_ListIsACopy(t *testing.T) {
	s := newLoadedStore(t, memory.New())

	list := s.List()
	list[0].FullName = "mutated"

	assert.Equal(t, "Suresh Raina", s.List()[0].FullName)
}

func TestStore_Get(t *testing.T) {
	s := newLoadedStore(t, memory.New())

	e, err := s.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Mithali Raj", e.FullName)

	_, err = s.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ToggleThenFilterScenario(t *testing.T) {
	ctx := context.Background()
	s := newLoadedStore(t, memory.New())

	inactive := Filter(s.List(), Criteria{Status: types.StatusInactive})
	assert.Empty(t, inactive)

	toggled, err := s.ToggleStatus(ctx, "2")
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	active := Filter(s.List(), Criteria{Status: types.StatusActive})
	require.Len(t, active, 1)
	assert.Equal(t, "Suresh Raina", active[0].FullName)

	assert.Equal(t, types.Stats{Total: 2, Active: 1, Inactive: 1}, s.Stats())

	_, err = s.ToggleStatus(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	s := New(memory.New(), discard)

	var got []EventKind
	unsubscribe := s.Subscribe(func(ev Event) {
		got = append(got, ev.Kind)
		// observers may read the store while being notified
		_ = s.Stats()
	})

	require.NoError(t, s.Load(ctx))
	created, err := s.Create(ctx, sampleFields())
	require.NoError(t, err)
	_, err = s.ToggleStatus(ctx, created.ID)
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, created.ID))
	require.NoError(t, s.Delete(ctx, created.ID))

	assert.Equal(t, []EventKind{EventLoaded, EventCreated, EventUpdated, EventDeleted}, got)

	unsubscribe()
	_, err = s.Create(ctx, sampleFields())
	require.NoError(t, err)
	assert.Len(t, got, 4)
}
