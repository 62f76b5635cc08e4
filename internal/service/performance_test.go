package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/repository"
)

type fakePerformanceRepo struct {
	performances map[uint]domain.Performance
	categories   map[uint]domain.DanceCategory
	ageGroups    map[uint]domain.AgeGroup
	formats      map[uint]domain.DanceFormat
	nextID       uint
	deleted      []uint
}

func newFakePerformanceRepo() *fakePerformanceRepo {
	return &fakePerformanceRepo{
		performances: make(map[uint]domain.Performance),
		categories:   make(map[uint]domain.DanceCategory),
		ageGroups:    make(map[uint]domain.AgeGroup),
		formats:      make(map[uint]domain.DanceFormat),
	}
}

func (f *fakePerformanceRepo) Create(_ context.Context, performance domain.Performance, dancerIDs []uint) (domain.Performance, error) {
	f.nextID++
	performance.ID = f.nextID
	f.performances[performance.ID] = performance
	return performance, nil
}

func (f *fakePerformanceRepo) FindByID(_ context.Context, id uint) (domain.Performance, error) {
	performance, ok := f.performances[id]
	if !ok {
		return domain.Performance{}, repository.ErrPerformanceNotFound
	}
	return performance, nil
}

func (f *fakePerformanceRepo) FindByStudioID(_ context.Context, studioID uint) ([]domain.Performance, error) {
	var out []domain.Performance
	for _, p := range f.performances {
		if p.StudioID == studioID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePerformanceRepo) Update(_ context.Context, id uint, update domain.PerformanceUpdate) (domain.Performance, error) {
	performance := f.performances[id]
	if update.Title != nil {
		performance.Title = *update.Title
	}
	f.performances[id] = performance
	return performance, nil
}

func (f *fakePerformanceRepo) Delete(_ context.Context, id uint) error {
	f.deleted = append(f.deleted, id)
	delete(f.performances, id)
	return nil
}

func (f *fakePerformanceRepo) FindCategory(_ context.Context, eventID, id uint) (domain.DanceCategory, error) {
	category, ok := f.categories[id]
	if !ok || category.EventID != eventID {
		return domain.DanceCategory{}, repository.ErrReferenceNotFound
	}
	return category, nil
}

func (f *fakePerformanceRepo) FindAgeGroup(_ context.Context, eventID, id uint) (domain.AgeGroup, error) {
	group, ok := f.ageGroups[id]
	if !ok || group.EventID != eventID {
		return domain.AgeGroup{}, repository.ErrReferenceNotFound
	}
	return group, nil
}

func (f *fakePerformanceRepo) FindFormat(_ context.Context, eventID, id uint) (domain.DanceFormat, error) {
	format, ok := f.formats[id]
	if !ok || format.EventID != eventID {
		return domain.DanceFormat{}, repository.ErrReferenceNotFound
	}
	return format, nil
}

func performanceFixture() (*fakePerformanceRepo, *fakeDancerRepo, *fakeAccessResolver) {
	repo := newFakePerformanceRepo()
	repo.categories[1] = domain.DanceCategory{ID: 1, EventID: 1, Name: "Ballet"}
	repo.ageGroups[1] = domain.AgeGroup{ID: 1, EventID: 1, Name: "Juniors", MinAge: 8, MaxAge: 12}
	repo.formats[1] = domain.DanceFormat{ID: 1, EventID: 1, Name: "Solo"}
	repo.categories[9] = domain.DanceCategory{ID: 9, EventID: 2, Name: "Other Event"}

	dancers := newFakeDancerRepo()
	dancers.dancers[1] = domain.Dancer{ID: 1, StudioID: 1}
	dancers.dancers[2] = domain.Dancer{ID: 2, StudioID: 1}
	dancers.dancers[3] = domain.Dancer{ID: 3, StudioID: 99}

	resolver := &fakeAccessResolver{access: map[uint]domain.StudioAccess{
		1: approvedStudioAccess(1, 7, domain.StageRegistrationOpen),
	}}

	return repo, dancers, resolver
}

func TestCreatePerformance(t *testing.T) {
	t.Run("binds the studio's event and participants", func(t *testing.T) {
		repo, dancers, resolver := performanceFixture()
		svc := NewPerformanceService(repo, dancers, resolver)

		created, err := svc.CreatePerformance(context.Background(), actorFor(7), domain.Performance{
			StudioID:   1,
			Title:      "Swan Lake",
			CategoryID: 1,
			AgeGroupID: 1,
			FormatID:   1,
		}, []uint{1, 2})

		require.NoError(t, err)
		assert.Equal(t, uint(1), created.EventID)
	})

	t.Run("reference from another event is rejected", func(t *testing.T) {
		repo, dancers, resolver := performanceFixture()
		svc := NewPerformanceService(repo, dancers, resolver)

		_, err := svc.CreatePerformance(context.Background(), actorFor(7), domain.Performance{
			StudioID:   1,
			Title:      "Swan Lake",
			CategoryID: 9,
			AgeGroupID: 1,
			FormatID:   1,
		}, []uint{1})

		assert.ErrorIs(t, err, ErrReferenceNotFound)
	})

	t.Run("participant outside the studio is rejected", func(t *testing.T) {
		repo, dancers, resolver := performanceFixture()
		svc := NewPerformanceService(repo, dancers, resolver)

		_, err := svc.CreatePerformance(context.Background(), actorFor(7), domain.Performance{
			StudioID:   1,
			Title:      "Swan Lake",
			CategoryID: 1,
			AgeGroupID: 1,
			FormatID:   1,
		}, []uint{1, 3})

		assert.ErrorIs(t, err, ErrDancerNotInStudio)
	})

	t.Run("outsider is denied", func(t *testing.T) {
		repo, dancers, resolver := performanceFixture()
		svc := NewPerformanceService(repo, dancers, resolver)

		_, err := svc.CreatePerformance(context.Background(), actorFor(42), domain.Performance{
			StudioID:   1,
			CategoryID: 1,
			AgeGroupID: 1,
			FormatID:   1,
		}, []uint{1})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetPerformance(t *testing.T) {
	repo, dancers, resolver := performanceFixture()
	resolver.access[2] = approvedStudioAccess(2, 8, domain.StageRegistrationOpen)
	svc := NewPerformanceService(repo, dancers, resolver)

	created, err := svc.CreatePerformance(context.Background(), actorFor(7), domain.Performance{
		StudioID:   1,
		Title:      "Swan Lake",
		CategoryID: 1,
		AgeGroupID: 1,
		FormatID:   1,
	}, []uint{1})
	require.NoError(t, err)

	got, err := svc.GetPerformance(context.Background(), actorFor(7), 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Swan Lake", got.Title)

	// Reaching through another studio's path reads as not found.
	_, err = svc.GetPerformance(context.Background(), adminActor(), 2, created.ID)
	assert.ErrorIs(t, err, ErrPerformanceNotFound)
}

func TestUpdatePerformance(t *testing.T) {
	newTitle := "Giselle"

	repo, dancers, resolver := performanceFixture()
	svc := NewPerformanceService(repo, dancers, resolver)

	created, err := svc.CreatePerformance(context.Background(), actorFor(7), domain.Performance{
		StudioID:   1,
		Title:      "Swan Lake",
		CategoryID: 1,
		AgeGroupID: 1,
		FormatID:   1,
	}, []uint{1})
	require.NoError(t, err)

	t.Run("partial update leaves participants untouched", func(t *testing.T) {
		updated, err := svc.UpdatePerformance(context.Background(), actorFor(7), 1, created.ID, domain.PerformanceUpdate{
			Title: &newTitle,
		})
		require.NoError(t, err)
		assert.Equal(t, newTitle, updated.Title)
	})

	t.Run("swapping in a foreign dancer is rejected", func(t *testing.T) {
		_, err := svc.UpdatePerformance(context.Background(), actorFor(7), 1, created.ID, domain.PerformanceUpdate{
			DancerIDs: []uint{3},
		})
		assert.ErrorIs(t, err, ErrDancerNotInStudio)
	})
}

func TestDeletePerformance(t *testing.T) {
	repo, dancers, resolver := performanceFixture()
	svc := NewPerformanceService(repo, dancers, resolver)

	created, err := svc.CreatePerformance(context.Background(), actorFor(7), domain.Performance{
		StudioID:   1,
		CategoryID: 1,
		AgeGroupID: 1,
		FormatID:   1,
	}, []uint{1})
	require.NoError(t, err)

	err = svc.DeletePerformance(context.Background(), actorFor(7), 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{created.ID}, repo.deleted)

	err = svc.DeletePerformance(context.Background(), actorFor(7), 1, created.ID)
	assert.ErrorIs(t, err, ErrPerformanceNotFound)
}
