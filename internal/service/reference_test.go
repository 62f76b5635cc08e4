package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/repository"
)

type fakeReferenceRepo struct {
	categories map[uint]domain.DanceCategory
	ageGroups  map[uint]domain.AgeGroup
	formats    map[uint]domain.DanceFormat
	inUse      map[uint]bool
	nextID     uint
}

func newFakeReferenceRepo() *fakeReferenceRepo {
	return &fakeReferenceRepo{
		categories: make(map[uint]domain.DanceCategory),
		ageGroups:  make(map[uint]domain.AgeGroup),
		formats:    make(map[uint]domain.DanceFormat),
		inUse:      make(map[uint]bool),
	}
}

func (f *fakeReferenceRepo) CreateCategory(_ context.Context, category domain.DanceCategory) (domain.DanceCategory, error) {
	for _, c := range f.categories {
		if c.EventID == category.EventID && c.Name == category.Name {
			return domain.DanceCategory{}, repository.ErrReferenceNameExists
		}
	}
	f.nextID++
	category.ID = f.nextID
	f.categories[category.ID] = category
	return category, nil
}

func (f *fakeReferenceRepo) FindCategories(_ context.Context, eventID uint) ([]domain.DanceCategory, error) {
	var out []domain.DanceCategory
	for _, c := range f.categories {
		if c.EventID == eventID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeReferenceRepo) FindCategory(_ context.Context, eventID, id uint) (domain.DanceCategory, error) {
	c, ok := f.categories[id]
	if !ok || c.EventID != eventID {
		return domain.DanceCategory{}, repository.ErrReferenceNotFound
	}
	return c, nil
}

func (f *fakeReferenceRepo) UpdateCategory(ctx context.Context, eventID, id uint, name string) (domain.DanceCategory, error) {
	c, err := f.FindCategory(ctx, eventID, id)
	if err != nil {
		return domain.DanceCategory{}, err
	}
	c.Name = name
	f.categories[id] = c
	return c, nil
}

func (f *fakeReferenceRepo) DeleteCategory(ctx context.Context, eventID, id uint) error {
	if _, err := f.FindCategory(ctx, eventID, id); err != nil {
		return err
	}
	if f.inUse[id] {
		return repository.ErrReferenceInUse
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeReferenceRepo) CreateAgeGroup(_ context.Context, group domain.AgeGroup) (domain.AgeGroup, error) {
	f.nextID++
	group.ID = f.nextID
	f.ageGroups[group.ID] = group
	return group, nil
}

func (f *fakeReferenceRepo) FindAgeGroups(_ context.Context, eventID uint) ([]domain.AgeGroup, error) {
	var out []domain.AgeGroup
	for _, g := range f.ageGroups {
		if g.EventID == eventID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeReferenceRepo) FindAgeGroup(_ context.Context, eventID, id uint) (domain.AgeGroup, error) {
	g, ok := f.ageGroups[id]
	if !ok || g.EventID != eventID {
		return domain.AgeGroup{}, repository.ErrReferenceNotFound
	}
	return g, nil
}

func (f *fakeReferenceRepo) UpdateAgeGroup(ctx context.Context, eventID, id uint, name *string, minAge, maxAge *int) (domain.AgeGroup, error) {
	g, err := f.FindAgeGroup(ctx, eventID, id)
	if err != nil {
		return domain.AgeGroup{}, err
	}
	if name != nil {
		g.Name = *name
	}
	if minAge != nil {
		g.MinAge = *minAge
	}
	if maxAge != nil {
		g.MaxAge = *maxAge
	}
	f.ageGroups[id] = g
	return g, nil
}

func (f *fakeReferenceRepo) DeleteAgeGroup(ctx context.Context, eventID, id uint) error {
	if _, err := f.FindAgeGroup(ctx, eventID, id); err != nil {
		return err
	}
	delete(f.ageGroups, id)
	return nil
}

func (f *fakeReferenceRepo) CreateFormat(_ context.Context, format domain.DanceFormat) (domain.DanceFormat, error) {
	f.nextID++
	format.ID = f.nextID
	f.formats[format.ID] = format
	return format, nil
}

func (f *fakeReferenceRepo) FindFormats(_ context.Context, eventID uint) ([]domain.DanceFormat, error) {
	var out []domain.DanceFormat
	for _, fm := range f.formats {
		if fm.EventID == eventID {
			out = append(out, fm)
		}
	}
	return out, nil
}

func (f *fakeReferenceRepo) FindFormat(_ context.Context, eventID, id uint) (domain.DanceFormat, error) {
	fm, ok := f.formats[id]
	if !ok || fm.EventID != eventID {
		return domain.DanceFormat{}, repository.ErrReferenceNotFound
	}
	return fm, nil
}

func (f *fakeReferenceRepo) UpdateFormat(ctx context.Context, eventID, id uint, name string) (domain.DanceFormat, error) {
	fm, err := f.FindFormat(ctx, eventID, id)
	if err != nil {
		return domain.DanceFormat{}, err
	}
	fm.Name = name
	f.formats[id] = fm
	return fm, nil
}

func (f *fakeReferenceRepo) DeleteFormat(ctx context.Context, eventID, id uint) error {
	if _, err := f.FindFormat(ctx, eventID, id); err != nil {
		return err
	}
	delete(f.formats, id)
	return nil
}

func newReferenceService(repo *fakeReferenceRepo) *ReferenceService {
	events := &fakeEventRepo{stages: map[uint]domain.EventStage{
		1: domain.StageRegistrationOpen,
	}}
	return NewReferenceService(repo, events)
}

func TestCreateCategory(t *testing.T) {
	repo := newFakeReferenceRepo()
	svc := newReferenceService(repo)

	created, err := svc.CreateCategory(context.Background(), domain.DanceCategory{EventID: 1, Name: "Hip-Hop"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	t.Run("duplicate name in the same event", func(t *testing.T) {
		_, err := svc.CreateCategory(context.Background(), domain.DanceCategory{EventID: 1, Name: "Hip-Hop"})
		assert.ErrorIs(t, err, ErrReferenceNameExists)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := svc.CreateCategory(context.Background(), domain.DanceCategory{EventID: 99, Name: "Ballet"})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestGetCategory(t *testing.T) {
	repo := newFakeReferenceRepo()
	svc := newReferenceService(repo)

	created, err := svc.CreateCategory(context.Background(), domain.DanceCategory{EventID: 1, Name: "Jazz"})
	require.NoError(t, err)

	t.Run("own event", func(t *testing.T) {
		got, err := svc.GetCategory(context.Background(), 1, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jazz", got.Name)
	})

	t.Run("another event's id reads as missing", func(t *testing.T) {
		_, err := svc.GetCategory(context.Background(), 2, created.ID)
		assert.ErrorIs(t, err, ErrReferenceNotFound)
	})
}

func TestDeleteCategory(t *testing.T) {
	repo := newFakeReferenceRepo()
	svc := newReferenceService(repo)

	free, err := svc.CreateCategory(context.Background(), domain.DanceCategory{EventID: 1, Name: "Jazz"})
	require.NoError(t, err)
	bound, err := svc.CreateCategory(context.Background(), domain.DanceCategory{EventID: 1, Name: "Ballet"})
	require.NoError(t, err)
	repo.inUse[bound.ID] = true

	assert.NoError(t, svc.DeleteCategory(context.Background(), 1, free.ID))

	t.Run("referenced by a performance", func(t *testing.T) {
		err := svc.DeleteCategory(context.Background(), 1, bound.ID)
		assert.ErrorIs(t, err, ErrReferenceInUse)
	})
}

func TestUpdateAgeGroup(t *testing.T) {
	repo := newFakeReferenceRepo()
	svc := newReferenceService(repo)

	created, err := svc.CreateAgeGroup(context.Background(), domain.AgeGroup{EventID: 1, Name: "Juniors", MinAge: 8, MaxAge: 12})
	require.NoError(t, err)

	maxAge := 13
	updated, err := svc.UpdateAgeGroup(context.Background(), 1, created.ID, nil, nil, &maxAge)
	require.NoError(t, err)
	assert.Equal(t, "Juniors", updated.Name)
	assert.Equal(t, 8, updated.MinAge)
	assert.Equal(t, 13, updated.MaxAge)
}
