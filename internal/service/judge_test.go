package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/repository"
)

type fakeJudgeRepo struct {
	judges map[uint]domain.Judge
	nextID uint
}

func newFakeJudgeRepo() *fakeJudgeRepo {
	return &fakeJudgeRepo{judges: make(map[uint]domain.Judge)}
}

func (f *fakeJudgeRepo) Create(_ context.Context, judge domain.Judge) (domain.Judge, error) {
	f.nextID++
	judge.ID = f.nextID
	f.judges[judge.ID] = judge
	return judge, nil
}

func (f *fakeJudgeRepo) FindByEventID(_ context.Context, eventID uint) ([]domain.Judge, error) {
	var out []domain.Judge
	for _, j := range f.judges {
		if j.EventID == eventID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJudgeRepo) FindByID(_ context.Context, eventID, id uint) (domain.Judge, error) {
	j, ok := f.judges[id]
	if !ok || j.EventID != eventID {
		return domain.Judge{}, repository.ErrJudgeNotFound
	}
	return j, nil
}

func (f *fakeJudgeRepo) Update(ctx context.Context, eventID, id uint, update domain.JudgeUpdate) (domain.Judge, error) {
	j, err := f.FindByID(ctx, eventID, id)
	if err != nil {
		return domain.Judge{}, err
	}
	if update.Name != nil {
		j.Name = *update.Name
	}
	if update.Description != nil {
		j.Description = *update.Description
	}
	if update.Country != nil {
		j.Country = *update.Country
	}
	if update.City != nil {
		j.City = *update.City
	}
	if update.EventID != nil {
		j.EventID = *update.EventID
	}
	f.judges[id] = j
	return j, nil
}

func (f *fakeJudgeRepo) Delete(ctx context.Context, eventID, id uint) error {
	if _, err := f.FindByID(ctx, eventID, id); err != nil {
		return err
	}
	delete(f.judges, id)
	return nil
}

func newJudgeService(repo *fakeJudgeRepo) *JudgeService {
	events := &fakeEventRepo{stages: map[uint]domain.EventStage{
		1: domain.StageRegistrationOpen,
		2: domain.StagePreRegistration,
	}}
	return NewJudgeService(repo, events)
}

func TestCreateJudge(t *testing.T) {
	svc := newJudgeService(newFakeJudgeRepo())

	created, err := svc.CreateJudge(context.Background(), domain.Judge{
		EventID: 1,
		UserID:  10,
		Name:    "Nadia Petrova",
		Country: "BG",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, uint(1), created.EventID)

	t.Run("unknown event", func(t *testing.T) {
		_, err := svc.CreateJudge(context.Background(), domain.Judge{EventID: 99, UserID: 10, Name: "X"})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestGetJudge(t *testing.T) {
	repo := newFakeJudgeRepo()
	svc := newJudgeService(repo)

	created, err := svc.CreateJudge(context.Background(), domain.Judge{EventID: 1, UserID: 10, Name: "Nadia Petrova"})
	require.NoError(t, err)

	t.Run("own event", func(t *testing.T) {
		got, err := svc.GetJudge(context.Background(), 1, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Nadia Petrova", got.Name)
	})

	t.Run("another event's id reads as missing", func(t *testing.T) {
		_, err := svc.GetJudge(context.Background(), 2, created.ID)
		assert.ErrorIs(t, err, ErrJudgeNotFound)
	})
}

func TestUpdateJudge(t *testing.T) {
	repo := newFakeJudgeRepo()
	svc := newJudgeService(repo)

	created, err := svc.CreateJudge(context.Background(), domain.Judge{EventID: 1, UserID: 10, Name: "Nadia Petrova"})
	require.NoError(t, err)

	t.Run("partial profile edit", func(t *testing.T) {
		city := "Sofia"
		updated, err := svc.UpdateJudge(context.Background(), 1, created.ID, domain.JudgeUpdate{City: &city})
		require.NoError(t, err)
		assert.Equal(t, "Sofia", updated.City)
		assert.Equal(t, "Nadia Petrova", updated.Name)
	})

	t.Run("panel move to an existing event", func(t *testing.T) {
		target := uint(2)
		updated, err := svc.UpdateJudge(context.Background(), 1, created.ID, domain.JudgeUpdate{EventID: &target})
		require.NoError(t, err)
		assert.Equal(t, uint(2), updated.EventID)
		t.Cleanup(func() {
			back := uint(1)
			_, err := svc.UpdateJudge(context.Background(), 2, created.ID, domain.JudgeUpdate{EventID: &back})
			require.NoError(t, err)
		})
	})

	t.Run("panel move to an unknown event", func(t *testing.T) {
		target := uint(99)
		_, err := svc.UpdateJudge(context.Background(), 1, created.ID, domain.JudgeUpdate{EventID: &target})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestDeleteJudge(t *testing.T) {
	repo := newFakeJudgeRepo()
	svc := newJudgeService(repo)

	created, err := svc.CreateJudge(context.Background(), domain.Judge{EventID: 1, UserID: 10, Name: "Nadia Petrova"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteJudge(context.Background(), 1, created.ID))

	err = svc.DeleteJudge(context.Background(), 1, created.ID)
	assert.ErrorIs(t, err, ErrJudgeNotFound)
}
