package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dancefest/api/internal/authz"
	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/pkg/storage"
	"github.com/dancefest/api/internal/repository"
)

var (
	ErrStudioNotFound         = repository.ErrStudioNotFound
	ErrRegistrationNotFound   = repository.ErrRegistrationNotFound
	ErrRepresentativeNotFound = repository.ErrRepresentativeNotFound

	// ErrAccessDenied: the caller holds the route's permission but the target
	// entity does not belong to them.
	ErrAccessDenied = errors.New("access denied")

	ErrRegistrationNotPending = errors.New("registration is no longer pending")
	ErrRegistrationRejected   = errors.New("registration was rejected")
)

// StageError reports a mutation blocked by the owning event's current stage.
type StageError struct {
	Stage  domain.EventStage
	Action authz.Action
}

func (e *StageError) Error() string {
	return fmt.Sprintf("action %q is not allowed while the event is in stage %s", e.Action, e.Stage)
}

type StudioRepository interface {
	Create(ctx context.Context, studio domain.Studio, rep *domain.StudioRepresentative, status domain.RegistrationStatus) (domain.Studio, error)
	FindByID(ctx context.Context, id uint) (domain.Studio, error)
	FindByEventID(ctx context.Context, eventID uint) ([]domain.Studio, error)
	FindByEventIDForUser(ctx context.Context, eventID, userID uint) ([]domain.Studio, error)
	Update(ctx context.Context, id uint, update domain.StudioUpdate) (domain.Studio, error)
	SetLogoPath(ctx context.Context, id uint, path string) error
	SoftDelete(ctx context.Context, id uint) error
	SetRegistrationStatus(ctx context.Context, studioID, eventID uint, status domain.RegistrationStatus, canEditDuringReview *bool) (domain.StudioEventRegistration, error)
	FindRegistration(ctx context.Context, studioID, eventID uint) (domain.StudioEventRegistration, error)
	DeleteRegistration(ctx context.Context, studioID, eventID uint) error
	FindRepresentative(ctx context.Context, id uint) (domain.StudioRepresentative, error)
	UpdateRepresentative(ctx context.Context, id uint, name, email *string) (domain.StudioRepresentative, error)
}

type StudioEventRepository interface {
	GetStage(ctx context.Context, id uint) (domain.EventStage, error)
}

type StudioService struct {
	repo    StudioRepository
	events  StudioEventRepository
	storage storage.Storage
}

func NewStudioService(repo StudioRepository, events StudioEventRepository, storage storage.Storage) *StudioService {
	return &StudioService{
		repo:    repo,
		events:  events,
		storage: storage,
	}
}

// RegisterStudio creates a studio under an event. A non-admin caller goes
// through the registration stage gate, becomes the studio's representative
// and starts PENDING. Admin-created studios skip the gate and start APPROVED.
func (s *StudioService) RegisterStudio(ctx context.Context, actor authz.Context, studio domain.Studio, rep *domain.StudioRepresentative) (domain.Studio, error) {
	stage, err := s.events.GetStage(ctx, studio.EventID)
	if err != nil {
		return domain.Studio{}, fmt.Errorf("s.events.GetStage -> %w", err)
	}

	status := domain.RegistrationApproved
	if !actor.IsAdmin {
		if !authz.IsActionAllowed(stage, authz.ActionStudioRegister, false) {
			return domain.Studio{}, &StageError{Stage: stage, Action: authz.ActionStudioRegister}
		}
		status = domain.RegistrationPending
	}

	created, err := s.repo.Create(ctx, studio, rep, status)
	if err != nil {
		return domain.Studio{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ListStudios returns every studio of the event for admins, and only the
// studios the caller actively represents otherwise.
func (s *StudioService) ListStudios(ctx context.Context, actor authz.Context, eventID uint) ([]domain.Studio, error) {
	if _, err := s.events.GetStage(ctx, eventID); err != nil {
		return nil, fmt.Errorf("s.events.GetStage -> %w", err)
	}

	if actor.IsAdmin {
		studios, err := s.repo.FindByEventID(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindByEventID -> %w", err)
		}

		return studios, nil
	}

	studios, err := s.repo.FindByEventIDForUser(ctx, eventID, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventIDForUser -> %w", err)
	}

	return studios, nil
}

func (s *StudioService) GetStudio(ctx context.Context, actor authz.Context, studioID uint) (domain.Studio, error) {
	access, err := s.ResolveAccess(ctx, studioID, actor)
	if err != nil {
		return domain.Studio{}, err
	}

	if !actor.IsAdmin && !access.IsRepresentative {
		return domain.Studio{}, ErrAccessDenied
	}

	return access.Studio, nil
}

// UpdateStudio applies a partial update. Non-admins must actively represent
// the studio, pass the studio.edit stage gate and hold a registration that
// was not rejected.
func (s *StudioService) UpdateStudio(ctx context.Context, actor authz.Context, studioID uint, update domain.StudioUpdate) (domain.Studio, error) {
	access, err := s.ResolveAccess(ctx, studioID, actor)
	if err != nil {
		return domain.Studio{}, err
	}

	if !actor.IsAdmin {
		if !access.IsRepresentative {
			return domain.Studio{}, ErrAccessDenied
		}
		if access.Status == domain.RegistrationRejected {
			return domain.Studio{}, ErrRegistrationRejected
		}
		if !authz.IsActionAllowed(access.EventStage, authz.ActionStudioEdit, access.CanEditDuringReview) {
			return domain.Studio{}, &StageError{Stage: access.EventStage, Action: authz.ActionStudioEdit}
		}
	}

	updated, err := s.repo.Update(ctx, studioID, update)
	if err != nil {
		return domain.Studio{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *StudioService) DeleteStudio(ctx context.Context, studioID uint) error {
	if _, err := s.repo.FindByID(ctx, studioID); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.repo.SoftDelete(ctx, studioID); err != nil {
		return fmt.Errorf("s.repo.SoftDelete -> %w", err)
	}

	return nil
}

// SetRegistrationStatus drives the review workflow. Approval grants the
// representative role to the studio's active representatives inside the same
// transaction; re-approval leaves existing grants untouched.
func (s *StudioService) SetRegistrationStatus(ctx context.Context, eventID, studioID uint, status domain.RegistrationStatus, canEditDuringReview *bool) (domain.StudioEventRegistration, error) {
	studio, err := s.repo.FindByID(ctx, studioID)
	if err != nil {
		return domain.StudioEventRegistration{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if studio.EventID != eventID {
		return domain.StudioEventRegistration{}, ErrStudioNotFound
	}

	registration, err := s.repo.SetRegistrationStatus(ctx, studioID, eventID, status, canEditDuringReview)
	if err != nil {
		return domain.StudioEventRegistration{}, fmt.Errorf("s.repo.SetRegistrationStatus -> %w", err)
	}

	return registration, nil
}

// CancelRegistration lets a representative withdraw a registration that is
// still PENDING. Approved or rejected registrations can only be changed by
// an admin through the review workflow.
func (s *StudioService) CancelRegistration(ctx context.Context, actor authz.Context, eventID, studioID uint) error {
	access, err := s.ResolveAccess(ctx, studioID, actor)
	if err != nil {
		return err
	}
	if access.Studio.EventID != eventID {
		return ErrStudioNotFound
	}

	if !actor.IsAdmin && !access.IsRepresentative {
		return ErrAccessDenied
	}

	registration, err := s.repo.FindRegistration(ctx, studioID, eventID)
	if err != nil {
		return fmt.Errorf("s.repo.FindRegistration -> %w", err)
	}
	if registration.Status != domain.RegistrationPending {
		return ErrRegistrationNotPending
	}

	if err := s.repo.DeleteRegistration(ctx, studioID, eventID); err != nil {
		return fmt.Errorf("s.repo.DeleteRegistration -> %w", err)
	}

	return nil
}

// UpdateRepresentative edits a representative's contact details. Callers may
// edit themselves; admins may edit anyone.
func (s *StudioService) UpdateRepresentative(ctx context.Context, actor authz.Context, studioID, repID uint, name, email *string) (domain.StudioRepresentative, error) {
	rep, err := s.repo.FindRepresentative(ctx, repID)
	if err != nil {
		return domain.StudioRepresentative{}, fmt.Errorf("s.repo.FindRepresentative -> %w", err)
	}
	if rep.StudioID != studioID {
		return domain.StudioRepresentative{}, ErrRepresentativeNotFound
	}

	if !actor.IsAdmin && rep.UserID != actor.UserID {
		return domain.StudioRepresentative{}, ErrAccessDenied
	}

	updated, err := s.repo.UpdateRepresentative(ctx, repID, name, email)
	if err != nil {
		return domain.StudioRepresentative{}, fmt.Errorf("s.repo.UpdateRepresentative -> %w", err)
	}

	return updated, nil
}

// UploadLogo stores the file through the configured storage backend and
// records the resulting path on the studio.
func (s *StudioService) UploadLogo(ctx context.Context, actor authz.Context, studioID uint, filename string, file io.Reader) (string, error) {
	access, err := s.ResolveAccess(ctx, studioID, actor)
	if err != nil {
		return "", err
	}

	if !actor.IsAdmin && !access.IsRepresentative {
		return "", ErrAccessDenied
	}

	path, err := s.storage.Save(filename, file)
	if err != nil {
		return "", fmt.Errorf("s.storage.Save -> %w", err)
	}

	if err := s.repo.SetLogoPath(ctx, studioID, path); err != nil {
		return "", fmt.Errorf("s.repo.SetLogoPath -> %w", err)
	}

	return path, nil
}

// ResolveAccess loads the studio and answers the access questions shared by
// every studio-scoped operation: does the caller actively represent it, what
// stage is the owning event in, and where does its registration stand. A
// missing registration resolves to an empty status, which never counts as
// approved.
func (s *StudioService) ResolveAccess(ctx context.Context, studioID uint, actor authz.Context) (domain.StudioAccess, error) {
	studio, err := s.repo.FindByID(ctx, studioID)
	if err != nil {
		return domain.StudioAccess{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	stage, err := s.events.GetStage(ctx, studio.EventID)
	if err != nil {
		return domain.StudioAccess{}, fmt.Errorf("s.events.GetStage -> %w", err)
	}

	access := domain.StudioAccess{
		Studio:     studio,
		EventStage: stage,
	}

	for _, rep := range studio.Representatives {
		if rep.Active && rep.UserID == actor.UserID {
			access.IsRepresentative = true
			break
		}
	}

	registration, err := s.repo.FindRegistration(ctx, studioID, studio.EventID)
	switch {
	case err == nil:
		access.Status = registration.Status
		access.CanEditDuringReview = registration.CanEditDuringReview
	case errors.Is(err, repository.ErrRegistrationNotFound):
	default:
		return domain.StudioAccess{}, fmt.Errorf("s.repo.FindRegistration -> %w", err)
	}

	return access, nil
}
