package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dancefest/api/internal/authz"
	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/repository"
)

var (
	ErrPerformanceNotFound = repository.ErrPerformanceNotFound

	// ErrDancerNotInStudio: a requested participant is not a live dancer of
	// the performance's studio.
	ErrDancerNotInStudio = errors.New("dancer does not belong to the studio")
)

type PerformanceRepository interface {
	Create(ctx context.Context, performance domain.Performance, dancerIDs []uint) (domain.Performance, error)
	FindByID(ctx context.Context, id uint) (domain.Performance, error)
	FindByStudioID(ctx context.Context, studioID uint) ([]domain.Performance, error)
	Update(ctx context.Context, id uint, update domain.PerformanceUpdate) (domain.Performance, error)
	Delete(ctx context.Context, id uint) error
	FindCategory(ctx context.Context, eventID, id uint) (domain.DanceCategory, error)
	FindAgeGroup(ctx context.Context, eventID, id uint) (domain.AgeGroup, error)
	FindFormat(ctx context.Context, eventID, id uint) (domain.DanceFormat, error)
}

type PerformanceDancerRepository interface {
	FindLiveByIDs(ctx context.Context, studioID uint, ids []uint) ([]domain.Dancer, error)
}

type PerformanceService struct {
	repo    PerformanceRepository
	dancers PerformanceDancerRepository
	studios StudioAccessResolver
}

func NewPerformanceService(repo PerformanceRepository, dancers PerformanceDancerRepository, studios StudioAccessResolver) *PerformanceService {
	return &PerformanceService{
		repo:    repo,
		dancers: dancers,
		studios: studios,
	}
}

func (s *PerformanceService) CreatePerformance(ctx context.Context, actor authz.Context, performance domain.Performance, dancerIDs []uint) (domain.Performance, error) {
	access, err := s.guardMutation(ctx, actor, performance.StudioID)
	if err != nil {
		return domain.Performance{}, err
	}

	performance.EventID = access.Studio.EventID

	if err := s.checkReferences(ctx, performance.EventID, &performance.CategoryID, &performance.AgeGroupID, &performance.FormatID); err != nil {
		return domain.Performance{}, err
	}
	if err := s.checkParticipants(ctx, performance.StudioID, dancerIDs); err != nil {
		return domain.Performance{}, err
	}

	created, err := s.repo.Create(ctx, performance, dancerIDs)
	if err != nil {
		return domain.Performance{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PerformanceService) ListPerformances(ctx context.Context, actor authz.Context, studioID uint) ([]domain.Performance, error) {
	access, err := s.studios.ResolveAccess(ctx, studioID, actor)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin && !access.IsRepresentative {
		return nil, ErrAccessDenied
	}

	performances, err := s.repo.FindByStudioID(ctx, studioID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStudioID -> %w", err)
	}

	return performances, nil
}

func (s *PerformanceService) GetPerformance(ctx context.Context, actor authz.Context, studioID, performanceID uint) (domain.Performance, error) {
	access, err := s.studios.ResolveAccess(ctx, studioID, actor)
	if err != nil {
		return domain.Performance{}, err
	}
	if !actor.IsAdmin && !access.IsRepresentative {
		return domain.Performance{}, ErrAccessDenied
	}

	performance, err := s.findInStudio(ctx, studioID, performanceID)
	if err != nil {
		return domain.Performance{}, err
	}

	return performance, nil
}

func (s *PerformanceService) UpdatePerformance(ctx context.Context, actor authz.Context, studioID, performanceID uint, update domain.PerformanceUpdate) (domain.Performance, error) {
	access, err := s.guardMutation(ctx, actor, studioID)
	if err != nil {
		return domain.Performance{}, err
	}

	if _, err := s.findInStudio(ctx, studioID, performanceID); err != nil {
		return domain.Performance{}, err
	}

	if err := s.checkReferences(ctx, access.Studio.EventID, update.CategoryID, update.AgeGroupID, update.FormatID); err != nil {
		return domain.Performance{}, err
	}
	if update.DancerIDs != nil {
		if err := s.checkParticipants(ctx, studioID, update.DancerIDs); err != nil {
			return domain.Performance{}, err
		}
	}

	updated, err := s.repo.Update(ctx, performanceID, update)
	if err != nil {
		return domain.Performance{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *PerformanceService) DeletePerformance(ctx context.Context, actor authz.Context, studioID, performanceID uint) error {
	if _, err := s.guardMutation(ctx, actor, studioID); err != nil {
		return err
	}

	if _, err := s.findInStudio(ctx, studioID, performanceID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, performanceID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *PerformanceService) findInStudio(ctx context.Context, studioID, performanceID uint) (domain.Performance, error) {
	performance, err := s.repo.FindByID(ctx, performanceID)
	if err != nil {
		return domain.Performance{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if performance.StudioID != studioID {
		return domain.Performance{}, ErrPerformanceNotFound
	}

	return performance, nil
}

func (s *PerformanceService) guardMutation(ctx context.Context, actor authz.Context, studioID uint) (domain.StudioAccess, error) {
	access, err := s.studios.ResolveAccess(ctx, studioID, actor)
	if err != nil {
		return domain.StudioAccess{}, err
	}

	if actor.IsAdmin {
		return access, nil
	}

	if !access.IsRepresentative || !access.Approved() {
		return domain.StudioAccess{}, ErrAccessDenied
	}

	if !authz.IsActionAllowed(access.EventStage, authz.ActionPerformanceManage, access.CanEditDuringReview) {
		return domain.StudioAccess{}, &StageError{Stage: access.EventStage, Action: authz.ActionPerformanceManage}
	}

	return access, nil
}

// checkReferences verifies that any referenced category, age group and format
// belong to the performance's event. Nil ids are left unchecked.
func (s *PerformanceService) checkReferences(ctx context.Context, eventID uint, categoryID, ageGroupID, formatID *uint) error {
	if categoryID != nil {
		if _, err := s.repo.FindCategory(ctx, eventID, *categoryID); err != nil {
			return fmt.Errorf("s.repo.FindCategory -> %w", err)
		}
	}
	if ageGroupID != nil {
		if _, err := s.repo.FindAgeGroup(ctx, eventID, *ageGroupID); err != nil {
			return fmt.Errorf("s.repo.FindAgeGroup -> %w", err)
		}
	}
	if formatID != nil {
		if _, err := s.repo.FindFormat(ctx, eventID, *formatID); err != nil {
			return fmt.Errorf("s.repo.FindFormat -> %w", err)
		}
	}

	return nil
}

// checkParticipants verifies every requested dancer is a live member of the
// studio's roster.
func (s *PerformanceService) checkParticipants(ctx context.Context, studioID uint, dancerIDs []uint) error {
	found, err := s.dancers.FindLiveByIDs(ctx, studioID, dancerIDs)
	if err != nil {
		return fmt.Errorf("s.dancers.FindLiveByIDs -> %w", err)
	}
	if len(found) != len(dancerIDs) {
		return ErrDancerNotInStudio
	}

	return nil
}
