package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/repository"
)

type fakeEventStore struct {
	events map[uint]domain.Event
	nextID uint
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: make(map[uint]domain.Event)}
}

func (f *fakeEventStore) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	f.nextID++
	event.ID = f.nextID
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeEventStore) FindAll(_ context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventStore) FindByID(_ context.Context, id uint) (domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}
	return e, nil
}

func (f *fakeEventStore) Update(ctx context.Context, id uint, update domain.EventUpdate) (domain.Event, error) {
	e, err := f.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}
	if update.Name != nil {
		e.Name = *update.Name
	}
	if update.Stage != nil {
		e.Stage = *update.Stage
	}
	if update.StartsAt != nil {
		e.StartsAt = *update.StartsAt
	}
	if update.EndsAt != nil {
		e.EndsAt = *update.EndsAt
	}
	f.events[id] = e
	return e, nil
}

func (f *fakeEventStore) GetStage(ctx context.Context, id uint) (domain.EventStage, error) {
	e, err := f.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return e.Stage, nil
}

func TestCreateEvent(t *testing.T) {
	svc := NewEventService(newFakeEventStore())

	t.Run("defaults to pre-registration", func(t *testing.T) {
		created, err := svc.CreateEvent(context.Background(), domain.Event{Name: "Spring Cup"})
		require.NoError(t, err)
		assert.Equal(t, domain.StagePreRegistration, created.Stage)
	})

	t.Run("explicit stage is kept", func(t *testing.T) {
		created, err := svc.CreateEvent(context.Background(), domain.Event{
			Name:  "Autumn Cup",
			Stage: domain.StageRegistrationOpen,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StageRegistrationOpen, created.Stage)
	})
}

func TestUpdateEvent(t *testing.T) {
	store := newFakeEventStore()
	svc := NewEventService(store)

	created, err := svc.CreateEvent(context.Background(), domain.Event{Name: "Spring Cup"})
	require.NoError(t, err)

	t.Run("stage edit applies directly", func(t *testing.T) {
		stage := domain.StageFinalized
		updated, err := svc.UpdateEvent(context.Background(), created.ID, domain.EventUpdate{Stage: &stage})
		require.NoError(t, err)
		assert.Equal(t, domain.StageFinalized, updated.Stage)
		assert.Equal(t, "Spring Cup", updated.Name)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := svc.UpdateEvent(context.Background(), 99, domain.EventUpdate{})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}
