package service

import (
	"context"
	"fmt"

	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/repository"
)

var (
	ErrReferenceNotFound   = repository.ErrReferenceNotFound
	ErrReferenceNameExists = repository.ErrReferenceNameExists
	ErrReferenceInUse      = repository.ErrReferenceInUse
)

// ReferenceRepository covers the event-scoped reference data backing
// performances: dance categories, age groups and formats.
type ReferenceRepository interface {
	CreateCategory(ctx context.Context, category domain.DanceCategory) (domain.DanceCategory, error)
	FindCategories(ctx context.Context, eventID uint) ([]domain.DanceCategory, error)
	FindCategory(ctx context.Context, eventID, id uint) (domain.DanceCategory, error)
	UpdateCategory(ctx context.Context, eventID, id uint, name string) (domain.DanceCategory, error)
	DeleteCategory(ctx context.Context, eventID, id uint) error
	CreateAgeGroup(ctx context.Context, group domain.AgeGroup) (domain.AgeGroup, error)
	FindAgeGroups(ctx context.Context, eventID uint) ([]domain.AgeGroup, error)
	FindAgeGroup(ctx context.Context, eventID, id uint) (domain.AgeGroup, error)
	UpdateAgeGroup(ctx context.Context, eventID, id uint, name *string, minAge, maxAge *int) (domain.AgeGroup, error)
	DeleteAgeGroup(ctx context.Context, eventID, id uint) error
	CreateFormat(ctx context.Context, format domain.DanceFormat) (domain.DanceFormat, error)
	FindFormats(ctx context.Context, eventID uint) ([]domain.DanceFormat, error)
	FindFormat(ctx context.Context, eventID, id uint) (domain.DanceFormat, error)
	UpdateFormat(ctx context.Context, eventID, id uint, name string) (domain.DanceFormat, error)
	DeleteFormat(ctx context.Context, eventID, id uint) error
}

type ReferenceEventRepository interface {
	GetStage(ctx context.Context, id uint) (domain.EventStage, error)
}

type ReferenceService struct {
	repo   ReferenceRepository
	events ReferenceEventRepository
}

func NewReferenceService(repo ReferenceRepository, events ReferenceEventRepository) *ReferenceService {
	return &ReferenceService{
		repo:   repo,
		events: events,
	}
}

func (s *ReferenceService) checkEvent(ctx context.Context, eventID uint) error {
	if _, err := s.events.GetStage(ctx, eventID); err != nil {
		return fmt.Errorf("s.events.GetStage -> %w", err)
	}

	return nil
}

func (s *ReferenceService) CreateCategory(ctx context.Context, category domain.DanceCategory) (domain.DanceCategory, error) {
	if err := s.checkEvent(ctx, category.EventID); err != nil {
		return domain.DanceCategory{}, err
	}

	created, err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		return domain.DanceCategory{}, fmt.Errorf("s.repo.CreateCategory -> %w", err)
	}

	return created, nil
}

func (s *ReferenceService) ListCategories(ctx context.Context, eventID uint) ([]domain.DanceCategory, error) {
	if err := s.checkEvent(ctx, eventID); err != nil {
		return nil, err
	}

	categories, err := s.repo.FindCategories(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindCategories -> %w", err)
	}

	return categories, nil
}

func (s *ReferenceService) GetCategory(ctx context.Context, eventID, id uint) (domain.DanceCategory, error) {
	category, err := s.repo.FindCategory(ctx, eventID, id)
	if err != nil {
		return domain.DanceCategory{}, fmt.Errorf("s.repo.FindCategory -> %w", err)
	}

	return category, nil
}

func (s *ReferenceService) UpdateCategory(ctx context.Context, eventID, id uint, name string) (domain.DanceCategory, error) {
	updated, err := s.repo.UpdateCategory(ctx, eventID, id, name)
	if err != nil {
		return domain.DanceCategory{}, fmt.Errorf("s.repo.UpdateCategory -> %w", err)
	}

	return updated, nil
}

func (s *ReferenceService) DeleteCategory(ctx context.Context, eventID, id uint) error {
	if err := s.repo.DeleteCategory(ctx, eventID, id); err != nil {
		return fmt.Errorf("s.repo.DeleteCategory -> %w", err)
	}

	return nil
}

func (s *ReferenceService) CreateAgeGroup(ctx context.Context, group domain.AgeGroup) (domain.AgeGroup, error) {
	if err := s.checkEvent(ctx, group.EventID); err != nil {
		return domain.AgeGroup{}, err
	}

	created, err := s.repo.CreateAgeGroup(ctx, group)
	if err != nil {
		return domain.AgeGroup{}, fmt.Errorf("s.repo.CreateAgeGroup -> %w", err)
	}

	return created, nil
}

func (s *ReferenceService) ListAgeGroups(ctx context.Context, eventID uint) ([]domain.AgeGroup, error) {
	if err := s.checkEvent(ctx, eventID); err != nil {
		return nil, err
	}

	groups, err := s.repo.FindAgeGroups(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAgeGroups -> %w", err)
	}

	return groups, nil
}

func (s *ReferenceService) GetAgeGroup(ctx context.Context, eventID, id uint) (domain.AgeGroup, error) {
	group, err := s.repo.FindAgeGroup(ctx, eventID, id)
	if err != nil {
		return domain.AgeGroup{}, fmt.Errorf("s.repo.FindAgeGroup -> %w", err)
	}

	return group, nil
}

func (s *ReferenceService) UpdateAgeGroup(ctx context.Context, eventID, id uint, name *string, minAge, maxAge *int) (domain.AgeGroup, error) {
	updated, err := s.repo.UpdateAgeGroup(ctx, eventID, id, name, minAge, maxAge)
	if err != nil {
		return domain.AgeGroup{}, fmt.Errorf("s.repo.UpdateAgeGroup -> %w", err)
	}

	return updated, nil
}

func (s *ReferenceService) DeleteAgeGroup(ctx context.Context, eventID, id uint) error {
	if err := s.repo.DeleteAgeGroup(ctx, eventID, id); err != nil {
		return fmt.Errorf("s.repo.DeleteAgeGroup -> %w", err)
	}

	return nil
}

func (s *ReferenceService) CreateFormat(ctx context.Context, format domain.DanceFormat) (domain.DanceFormat, error) {
	if err := s.checkEvent(ctx, format.EventID); err != nil {
		return domain.DanceFormat{}, err
	}

	created, err := s.repo.CreateFormat(ctx, format)
	if err != nil {
		return domain.DanceFormat{}, fmt.Errorf("s.repo.CreateFormat -> %w", err)
	}

	return created, nil
}

func (s *ReferenceService) ListFormats(ctx context.Context, eventID uint) ([]domain.DanceFormat, error) {
	if err := s.checkEvent(ctx, eventID); err != nil {
		return nil, err
	}

	formats, err := s.repo.FindFormats(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindFormats -> %w", err)
	}

	return formats, nil
}

func (s *ReferenceService) GetFormat(ctx context.Context, eventID, id uint) (domain.DanceFormat, error) {
	format, err := s.repo.FindFormat(ctx, eventID, id)
	if err != nil {
		return domain.DanceFormat{}, fmt.Errorf("s.repo.FindFormat -> %w", err)
	}

	return format, nil
}

func (s *ReferenceService) UpdateFormat(ctx context.Context, eventID, id uint, name string) (domain.DanceFormat, error) {
	updated, err := s.repo.UpdateFormat(ctx, eventID, id, name)
	if err != nil {
		return domain.DanceFormat{}, fmt.Errorf("s.repo.UpdateFormat -> %w", err)
	}

	return updated, nil
}

func (s *ReferenceService) DeleteFormat(ctx context.Context, eventID, id uint) error {
	if err := s.repo.DeleteFormat(ctx, eventID, id); err != nil {
		return fmt.Errorf("s.repo.DeleteFormat -> %w", err)
	}

	return nil
}
