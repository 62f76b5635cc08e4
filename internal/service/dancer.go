package service

import (
	"context"
	"fmt"

	"github.com/dancefest/api/internal/authz"
	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/repository"
)

var ErrDancerNotFound = repository.ErrDancerNotFound

type DancerRepository interface {
	Create(ctx context.Context, dancer domain.Dancer) (domain.Dancer, error)
	FindByID(ctx context.Context, id uint) (domain.Dancer, error)
	FindByStudioID(ctx context.Context, studioID uint) ([]domain.Dancer, error)
	Update(ctx context.Context, id uint, update domain.DancerUpdate) (domain.Dancer, error)
	SoftDelete(ctx context.Context, id uint) error
}

// StudioAccessResolver answers studio-scoped access questions for services
// that operate on a studio's children.
type StudioAccessResolver interface {
	ResolveAccess(ctx context.Context, studioID uint, actor authz.Context) (domain.StudioAccess, error)
}

type DancerService struct {
	repo    DancerRepository
	studios StudioAccessResolver
}

func NewDancerService(repo DancerRepository, studios StudioAccessResolver) *DancerService {
	return &DancerService{
		repo:    repo,
		studios: studios,
	}
}

func (s *DancerService) CreateDancer(ctx context.Context, actor authz.Context, dancer domain.Dancer) (domain.Dancer, error) {
	if err := s.guardMutation(ctx, actor, dancer.StudioID); err != nil {
		return domain.Dancer{}, err
	}

	created, err := s.repo.Create(ctx, dancer)
	if err != nil {
		return domain.Dancer{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *DancerService) ListDancers(ctx context.Context, actor authz.Context, studioID uint) ([]domain.Dancer, error) {
	access, err := s.studios.ResolveAccess(ctx, studioID, actor)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin && !access.IsRepresentative {
		return nil, ErrAccessDenied
	}

	dancers, err := s.repo.FindByStudioID(ctx, studioID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStudioID -> %w", err)
	}

	return dancers, nil
}

func (s *DancerService) UpdateDancer(ctx context.Context, actor authz.Context, dancerID uint, update domain.DancerUpdate) (domain.Dancer, error) {
	dancer, err := s.repo.FindByID(ctx, dancerID)
	if err != nil {
		return domain.Dancer{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.guardMutation(ctx, actor, dancer.StudioID); err != nil {
		return domain.Dancer{}, err
	}

	updated, err := s.repo.Update(ctx, dancerID, update)
	if err != nil {
		return domain.Dancer{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *DancerService) DeleteDancer(ctx context.Context, actor authz.Context, dancerID uint) error {
	dancer, err := s.repo.FindByID(ctx, dancerID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.guardMutation(ctx, actor, dancer.StudioID); err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, dancerID); err != nil {
		return fmt.Errorf("s.repo.SoftDelete -> %w", err)
	}

	return nil
}

// guardMutation enforces the roster rules for non-admins: the caller must
// actively represent an approved studio and the owning event's stage must
// permit roster changes.
func (s *DancerService) guardMutation(ctx context.Context, actor authz.Context, studioID uint) error {
	access, err := s.studios.ResolveAccess(ctx, studioID, actor)
	if err != nil {
		return err
	}

	if actor.IsAdmin {
		return nil
	}

	if !access.IsRepresentative || !access.Approved() {
		return ErrAccessDenied
	}

	if !authz.IsActionAllowed(access.EventStage, authz.ActionDancerManage, access.CanEditDuringReview) {
		return &StageError{Stage: access.EventStage, Action: authz.ActionDancerManage}
	}

	return nil
}
