package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dancefest/api/internal/authz"
	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/repository"
)

type fakeStudioRepo struct {
	studios       map[uint]domain.Studio
	registrations map[uint]domain.StudioEventRegistration
	reps          map[uint]domain.StudioRepresentative

	createdStatus  domain.RegistrationStatus
	deleted        []uint
	statusCalls    int
	deletedRegs    int
	updatedStudios []uint
	logoPaths      map[uint]string
}

func newFakeStudioRepo() *fakeStudioRepo {
	return &fakeStudioRepo{
		studios:       make(map[uint]domain.Studio),
		registrations: make(map[uint]domain.StudioEventRegistration),
		reps:          make(map[uint]domain.StudioRepresentative),
		logoPaths:     make(map[uint]string),
	}
}

func (f *fakeStudioRepo) Create(_ context.Context, studio domain.Studio, rep *domain.StudioRepresentative, status domain.RegistrationStatus) (domain.Studio, error) {
	f.createdStatus = status
	studio.ID = uint(len(f.studios) + 1)
	if rep != nil {
		rep.StudioID = studio.ID
		rep.Active = true
		studio.Representatives = []domain.StudioRepresentative{*rep}
	}
	f.studios[studio.ID] = studio
	f.registrations[studio.ID] = domain.StudioEventRegistration{
		StudioID: studio.ID,
		EventID:  studio.EventID,
		Status:   status,
	}
	return studio, nil
}

func (f *fakeStudioRepo) FindByID(_ context.Context, id uint) (domain.Studio, error) {
	studio, ok := f.studios[id]
	if !ok {
		return domain.Studio{}, repository.ErrStudioNotFound
	}
	return studio, nil
}

func (f *fakeStudioRepo) FindByEventID(_ context.Context, eventID uint) ([]domain.Studio, error) {
	var out []domain.Studio
	for _, s := range f.studios {
		if s.EventID == eventID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudioRepo) FindByEventIDForUser(_ context.Context, eventID, userID uint) ([]domain.Studio, error) {
	var out []domain.Studio
	for _, s := range f.studios {
		if s.EventID != eventID {
			continue
		}
		for _, rep := range s.Representatives {
			if rep.Active && rep.UserID == userID {
				out = append(out, s)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStudioRepo) Update(_ context.Context, id uint, update domain.StudioUpdate) (domain.Studio, error) {
	studio, ok := f.studios[id]
	if !ok {
		return domain.Studio{}, repository.ErrStudioNotFound
	}
	if update.Name != nil {
		studio.Name = *update.Name
	}
	f.studios[id] = studio
	f.updatedStudios = append(f.updatedStudios, id)
	return studio, nil
}

func (f *fakeStudioRepo) SetLogoPath(_ context.Context, id uint, path string) error {
	f.logoPaths[id] = path
	return nil
}

func (f *fakeStudioRepo) SoftDelete(_ context.Context, id uint) error {
	f.deleted = append(f.deleted, id)
	delete(f.studios, id)
	return nil
}

func (f *fakeStudioRepo) SetRegistrationStatus(_ context.Context, studioID, eventID uint, status domain.RegistrationStatus, canEditDuringReview *bool) (domain.StudioEventRegistration, error) {
	f.statusCalls++
	reg := f.registrations[studioID]
	reg.StudioID = studioID
	reg.EventID = eventID
	reg.Status = status
	if canEditDuringReview != nil {
		reg.CanEditDuringReview = *canEditDuringReview
	}
	f.registrations[studioID] = reg
	return reg, nil
}

func (f *fakeStudioRepo) FindRegistration(_ context.Context, studioID, _ uint) (domain.StudioEventRegistration, error) {
	reg, ok := f.registrations[studioID]
	if !ok {
		return domain.StudioEventRegistration{}, repository.ErrRegistrationNotFound
	}
	return reg, nil
}

func (f *fakeStudioRepo) DeleteRegistration(_ context.Context, studioID, _ uint) error {
	f.deletedRegs++
	delete(f.registrations, studioID)
	return nil
}

func (f *fakeStudioRepo) FindRepresentative(_ context.Context, id uint) (domain.StudioRepresentative, error) {
	rep, ok := f.reps[id]
	if !ok {
		return domain.StudioRepresentative{}, repository.ErrRepresentativeNotFound
	}
	return rep, nil
}

func (f *fakeStudioRepo) UpdateRepresentative(_ context.Context, id uint, name, email *string) (domain.StudioRepresentative, error) {
	rep := f.reps[id]
	if name != nil {
		rep.Name = *name
	}
	if email != nil {
		rep.Email = *email
	}
	f.reps[id] = rep
	return rep, nil
}

type fakeEventRepo struct {
	stages map[uint]domain.EventStage
}

func (f *fakeEventRepo) GetStage(_ context.Context, id uint) (domain.EventStage, error) {
	stage, ok := f.stages[id]
	if !ok {
		return "", repository.ErrEventNotFound
	}
	return stage, nil
}

type fakeStorage struct {
	saved []string
}

func (f *fakeStorage) Save(name string, _ io.Reader) (string, error) {
	f.saved = append(f.saved, name)
	return name, nil
}

func actorFor(userID uint, assignments ...authz.Assignment) authz.Context {
	return authz.Resolve(userID, assignments)
}

func adminActor() authz.Context {
	return authz.Resolve(99, []authz.Assignment{{RoleKey: domain.RoleAdmin, Scope: authz.Global()}})
}

func TestRegisterStudio(t *testing.T) {
	tests := []struct {
		name       string
		stage      domain.EventStage
		actor      authz.Context
		wantStatus domain.RegistrationStatus
		wantStage  bool
	}{
		{
			name:       "non-admin during open registration starts pending",
			stage:      domain.StageRegistrationOpen,
			actor:      actorFor(7),
			wantStatus: domain.RegistrationPending,
		},
		{
			name:      "non-admin before registration opens is blocked",
			stage:     domain.StagePreRegistration,
			actor:     actorFor(7),
			wantStage: true,
		},
		{
			name:      "non-admin after finalization is blocked",
			stage:     domain.StageFinalized,
			actor:     actorFor(7),
			wantStage: true,
		},
		{
			name:       "admin skips the gate and starts approved",
			stage:      domain.StagePreRegistration,
			actor:      adminActor(),
			wantStatus: domain.RegistrationApproved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeStudioRepo()
			events := &fakeEventRepo{stages: map[uint]domain.EventStage{1: tt.stage}}
			svc := NewStudioService(repo, events, &fakeStorage{})

			created, err := svc.RegisterStudio(context.Background(), tt.actor, domain.Studio{
				EventID: 1,
				Name:    "Ballet Hall",
			}, &domain.StudioRepresentative{UserID: tt.actor.UserID, Name: "Ann", Email: "ann@example.com"})

			if tt.wantStage {
				var stageErr *StageError
				require.ErrorAs(t, err, &stageErr)
				assert.Equal(t, tt.stage, stageErr.Stage)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, repo.createdStatus)
			assert.NotZero(t, created.ID)
		})
	}
}

func TestRegisterStudio_EventNotFound(t *testing.T) {
	svc := NewStudioService(newFakeStudioRepo(), &fakeEventRepo{stages: map[uint]domain.EventStage{}}, &fakeStorage{})

	_, err := svc.RegisterStudio(context.Background(), actorFor(7), domain.Studio{EventID: 404}, nil)

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestListStudios(t *testing.T) {
	repo := newFakeStudioRepo()
	events := &fakeEventRepo{stages: map[uint]domain.EventStage{1: domain.StageRegistrationOpen}}
	svc := NewStudioService(repo, events, &fakeStorage{})

	_, err := svc.RegisterStudio(context.Background(), actorFor(7), domain.Studio{EventID: 1, Name: "Mine"},
		&domain.StudioRepresentative{UserID: 7})
	require.NoError(t, err)
	_, err = svc.RegisterStudio(context.Background(), actorFor(8), domain.Studio{EventID: 1, Name: "Theirs"},
		&domain.StudioRepresentative{UserID: 8})
	require.NoError(t, err)

	mine, err := svc.ListStudios(context.Background(), actorFor(7), 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Name)

	all, err := svc.ListStudios(context.Background(), adminActor(), 1)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateStudio(t *testing.T) {
	newName := "Renamed"

	tests := []struct {
		name    string
		stage   domain.EventStage
		status  domain.RegistrationStatus
		canEdit bool
		actor   func(repID uint) authz.Context
		wantErr error
	}{
		{
			name:   "representative edits while registration is open",
			stage:  domain.StageRegistrationOpen,
			status: domain.RegistrationApproved,
			actor:  func(uint) authz.Context { return actorFor(7) },
		},
		{
			name:    "rejected registration is locked",
			stage:   domain.StageRegistrationOpen,
			status:  domain.RegistrationRejected,
			actor:   func(uint) authz.Context { return actorFor(7) },
			wantErr: ErrRegistrationRejected,
		},
		{
			name:   "non-representative is denied",
			stage:  domain.StageRegistrationOpen,
			status: domain.RegistrationApproved,
			actor:  func(uint) authz.Context { return actorFor(42) },
			wantErr: ErrAccessDenied,
		},
		{
			name:   "review stage blocks edits without the review flag",
			stage:  domain.StageDataReview,
			status: domain.RegistrationApproved,
			actor:  func(uint) authz.Context { return actorFor(7) },
			wantErr: &StageError{},
		},
		{
			name:    "review stage allows edits with the review flag",
			stage:   domain.StageDataReview,
			status:  domain.RegistrationApproved,
			canEdit: true,
			actor:   func(uint) authz.Context { return actorFor(7) },
		},
		{
			name:   "admin bypasses every gate",
			stage:  domain.StageEnded,
			status: domain.RegistrationRejected,
			actor:  func(uint) authz.Context { return adminActor() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeStudioRepo()
			events := &fakeEventRepo{stages: map[uint]domain.EventStage{1: domain.StageRegistrationOpen}}
			svc := NewStudioService(repo, events, &fakeStorage{})

			created, err := svc.RegisterStudio(context.Background(), actorFor(7), domain.Studio{EventID: 1, Name: "Old"},
				&domain.StudioRepresentative{UserID: 7})
			require.NoError(t, err)

			events.stages[1] = tt.stage
			reg := repo.registrations[created.ID]
			reg.Status = tt.status
			reg.CanEditDuringReview = tt.canEdit
			repo.registrations[created.ID] = reg

			updated, err := svc.UpdateStudio(context.Background(), tt.actor(0), created.ID, domain.StudioUpdate{Name: &newName})

			if tt.wantErr != nil {
				if _, ok := tt.wantErr.(*StageError); ok {
					var stageErr *StageError
					assert.ErrorAs(t, err, &stageErr)
				} else {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, newName, updated.Name)
		})
	}
}

func TestSetRegistrationStatus(t *testing.T) {
	repo := newFakeStudioRepo()
	events := &fakeEventRepo{stages: map[uint]domain.EventStage{1: domain.StageRegistrationOpen}}
	svc := NewStudioService(repo, events, &fakeStorage{})

	created, err := svc.RegisterStudio(context.Background(), actorFor(7), domain.Studio{EventID: 1, Name: "S"},
		&domain.StudioRepresentative{UserID: 7})
	require.NoError(t, err)

	t.Run("approves a pending registration", func(t *testing.T) {
		reg, err := svc.SetRegistrationStatus(context.Background(), 1, created.ID, domain.RegistrationApproved, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.RegistrationApproved, reg.Status)
	})

	t.Run("re-approval is idempotent", func(t *testing.T) {
		before := repo.registrations[created.ID]
		reg, err := svc.SetRegistrationStatus(context.Background(), 1, created.ID, domain.RegistrationApproved, nil)
		require.NoError(t, err)
		assert.Equal(t, before.Status, reg.Status)
	})

	t.Run("event mismatch reads as studio not found", func(t *testing.T) {
		_, err := svc.SetRegistrationStatus(context.Background(), 2, created.ID, domain.RegistrationApproved, nil)
		assert.ErrorIs(t, err, ErrStudioNotFound)
	})

	t.Run("unknown studio", func(t *testing.T) {
		_, err := svc.SetRegistrationStatus(context.Background(), 1, 404, domain.RegistrationApproved, nil)
		assert.ErrorIs(t, err, ErrStudioNotFound)
	})
}

func TestCancelRegistration(t *testing.T) {
	setup := func(t *testing.T) (*StudioService, *fakeStudioRepo, domain.Studio) {
		repo := newFakeStudioRepo()
		events := &fakeEventRepo{stages: map[uint]domain.EventStage{1: domain.StageRegistrationOpen}}
		svc := NewStudioService(repo, events, &fakeStorage{})

		created, err := svc.RegisterStudio(context.Background(), actorFor(7), domain.Studio{EventID: 1, Name: "S"},
			&domain.StudioRepresentative{UserID: 7})
		require.NoError(t, err)
		return svc, repo, created
	}

	t.Run("representative withdraws a pending registration", func(t *testing.T) {
		svc, repo, created := setup(t)
		err := svc.CancelRegistration(context.Background(), actorFor(7), 1, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, repo.deletedRegs)
	})

	t.Run("approved registration cannot be withdrawn", func(t *testing.T) {
		svc, repo, created := setup(t)
		reg := repo.registrations[created.ID]
		reg.Status = domain.RegistrationApproved
		repo.registrations[created.ID] = reg

		err := svc.CancelRegistration(context.Background(), actorFor(7), 1, created.ID)
		assert.ErrorIs(t, err, ErrRegistrationNotPending)
	})

	t.Run("outsider is denied", func(t *testing.T) {
		svc, _, created := setup(t)
		err := svc.CancelRegistration(context.Background(), actorFor(42), 1, created.ID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestUpdateRepresentative(t *testing.T) {
	name := "New Name"

	repo := newFakeStudioRepo()
	repo.reps[5] = domain.StudioRepresentative{ID: 5, StudioID: 3, UserID: 7, Name: "Ann", Active: true}
	events := &fakeEventRepo{stages: map[uint]domain.EventStage{}}
	svc := NewStudioService(repo, events, &fakeStorage{})

	t.Run("self edit", func(t *testing.T) {
		rep, err := svc.UpdateRepresentative(context.Background(), actorFor(7), 3, 5, &name, nil)
		require.NoError(t, err)
		assert.Equal(t, name, rep.Name)
	})

	t.Run("someone else is denied", func(t *testing.T) {
		_, err := svc.UpdateRepresentative(context.Background(), actorFor(8), 3, 5, &name, nil)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin edits anyone", func(t *testing.T) {
		_, err := svc.UpdateRepresentative(context.Background(), adminActor(), 3, 5, &name, nil)
		assert.NoError(t, err)
	})

	t.Run("studio mismatch reads as not found", func(t *testing.T) {
		_, err := svc.UpdateRepresentative(context.Background(), adminActor(), 99, 5, &name, nil)
		assert.ErrorIs(t, err, ErrRepresentativeNotFound)
	})
}

func TestUploadLogo(t *testing.T) {
	repo := newFakeStudioRepo()
	events := &fakeEventRepo{stages: map[uint]domain.EventStage{1: domain.StageRegistrationOpen}}
	store := &fakeStorage{}
	svc := NewStudioService(repo, events, store)

	created, err := svc.RegisterStudio(context.Background(), actorFor(7), domain.Studio{EventID: 1, Name: "S"},
		&domain.StudioRepresentative{UserID: 7})
	require.NoError(t, err)

	path, err := svc.UploadLogo(context.Background(), actorFor(7), created.ID, "logo.png", strings.NewReader("img"))
	require.NoError(t, err)
	assert.Equal(t, "logo.png", path)
	assert.Equal(t, "logo.png", repo.logoPaths[created.ID])

	_, err = svc.UploadLogo(context.Background(), actorFor(42), created.ID, "logo.png", strings.NewReader("img"))
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestResolveAccess(t *testing.T) {
	repo := newFakeStudioRepo()
	events := &fakeEventRepo{stages: map[uint]domain.EventStage{1: domain.StageDataReview}}
	svc := NewStudioService(repo, events, &fakeStorage{})

	repo.studios[1] = domain.Studio{
		ID:      1,
		EventID: 1,
		Representatives: []domain.StudioRepresentative{
			{UserID: 7, Active: true},
			{UserID: 8, Active: false},
		},
	}

	t.Run("missing registration never counts as approved", func(t *testing.T) {
		access, err := svc.ResolveAccess(context.Background(), 1, actorFor(7))
		require.NoError(t, err)
		assert.True(t, access.IsRepresentative)
		assert.False(t, access.Approved())
		assert.Equal(t, domain.StageDataReview, access.EventStage)
	})

	t.Run("inactive representative does not count", func(t *testing.T) {
		access, err := svc.ResolveAccess(context.Background(), 1, actorFor(8))
		require.NoError(t, err)
		assert.False(t, access.IsRepresentative)
	})

	t.Run("unknown studio", func(t *testing.T) {
		_, err := svc.ResolveAccess(context.Background(), 404, actorFor(7))
		assert.ErrorIs(t, err, ErrStudioNotFound)
	})
}
