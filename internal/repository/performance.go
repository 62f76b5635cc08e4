package repository

import (
	"context"
	"fmt"

	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/repository/dao"
)

var (
	ErrPerformanceNotFound = dao.ErrPerformanceNotFound
	ErrReferenceNotFound   = dao.ErrReferenceNotFound
	ErrReferenceNameExists = dao.ErrReferenceNameExists
	ErrReferenceInUse      = dao.ErrReferenceInUse
)

type PerformanceDAO interface {
	Insert(ctx context.Context, performance dao.Performance, dancerIDs []uint) (dao.Performance, error)
	FindByID(ctx context.Context, id uint) (dao.Performance, error)
	FindByStudioID(ctx context.Context, studioID uint) ([]dao.Performance, error)
	Update(ctx context.Context, id uint, update domain.PerformanceUpdate) (dao.Performance, error)
	Delete(ctx context.Context, id uint) error
}

type ReferenceDAO interface {
	InsertCategory(ctx context.Context, category dao.DanceCategory) (dao.DanceCategory, error)
	FindCategories(ctx context.Context, eventID uint) ([]dao.DanceCategory, error)
	FindCategory(ctx context.Context, eventID, id uint) (dao.DanceCategory, error)
	UpdateCategory(ctx context.Context, eventID, id uint, name string) (dao.DanceCategory, error)
	DeleteCategory(ctx context.Context, eventID, id uint) error
	InsertAgeGroup(ctx context.Context, group dao.AgeGroup) (dao.AgeGroup, error)
	FindAgeGroups(ctx context.Context, eventID uint) ([]dao.AgeGroup, error)
	FindAgeGroup(ctx context.Context, eventID, id uint) (dao.AgeGroup, error)
	UpdateAgeGroup(ctx context.Context, eventID, id uint, name *string, minAge, maxAge *int) (dao.AgeGroup, error)
	DeleteAgeGroup(ctx context.Context, eventID, id uint) error
	InsertFormat(ctx context.Context, format dao.DanceFormat) (dao.DanceFormat, error)
	FindFormats(ctx context.Context, eventID uint) ([]dao.DanceFormat, error)
	FindFormat(ctx context.Context, eventID, id uint) (dao.DanceFormat, error)
	UpdateFormat(ctx context.Context, eventID, id uint, name string) (dao.DanceFormat, error)
	DeleteFormat(ctx context.Context, eventID, id uint) error
}

type PerformanceRepository struct {
	performances PerformanceDAO
	references   ReferenceDAO
}

func NewPerformanceRepository(performances PerformanceDAO, references ReferenceDAO) *PerformanceRepository {
	return &PerformanceRepository{
		performances: performances,
		references:   references,
	}
}

func (r *PerformanceRepository) Create(ctx context.Context, performance domain.Performance, dancerIDs []uint) (domain.Performance, error) {
	created, err := r.performances.Insert(ctx, dao.Performance{
		EventID:      performance.EventID,
		StudioID:     performance.StudioID,
		Title:        performance.Title,
		DurationSec:  performance.DurationSec,
		OrderOnStage: performance.OrderOnStage,
		CategoryID:   performance.CategoryID,
		AgeGroupID:   performance.AgeGroupID,
		FormatID:     performance.FormatID,
	}, dancerIDs)
	if err != nil {
		return domain.Performance{}, fmt.Errorf("r.performances.Insert -> %w", err)
	}

	return performanceDAOToDomain(created), nil
}

func (r *PerformanceRepository) FindByID(ctx context.Context, id uint) (domain.Performance, error) {
	found, err := r.performances.FindByID(ctx, id)
	if err != nil {
		return domain.Performance{}, fmt.Errorf("r.performances.FindByID -> %w", err)
	}

	return performanceDAOToDomain(found), nil
}

func (r *PerformanceRepository) FindByStudioID(ctx context.Context, studioID uint) ([]domain.Performance, error) {
	found, err := r.performances.FindByStudioID(ctx, studioID)
	if err != nil {
		return nil, fmt.Errorf("r.performances.FindByStudioID -> %w", err)
	}

	performances := make([]domain.Performance, 0, len(found))
	for _, p := range found {
		performances = append(performances, performanceDAOToDomain(p))
	}

	return performances, nil
}

func (r *PerformanceRepository) Update(ctx context.Context, id uint, update domain.PerformanceUpdate) (domain.Performance, error) {
	updated, err := r.performances.Update(ctx, id, update)
	if err != nil {
		return domain.Performance{}, fmt.Errorf("r.performances.Update -> %w", err)
	}

	return performanceDAOToDomain(updated), nil
}

func (r *PerformanceRepository) Delete(ctx context.Context, id uint) error {
	if err := r.performances.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.performances.Delete -> %w", err)
	}

	return nil
}

func (r *PerformanceRepository) CreateCategory(ctx context.Context, category domain.DanceCategory) (domain.DanceCategory, error) {
	created, err := r.references.InsertCategory(ctx, dao.DanceCategory{EventID: category.EventID, Name: category.Name})
	if err != nil {
		return domain.DanceCategory{}, fmt.Errorf("r.references.InsertCategory -> %w", err)
	}

	return domain.DanceCategory(created), nil
}

func (r *PerformanceRepository) FindCategories(ctx context.Context, eventID uint) ([]domain.DanceCategory, error) {
	found, err := r.references.FindCategories(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.references.FindCategories -> %w", err)
	}

	categories := make([]domain.DanceCategory, 0, len(found))
	for _, c := range found {
		categories = append(categories, domain.DanceCategory(c))
	}

	return categories, nil
}

func (r *PerformanceRepository) FindCategory(ctx context.Context, eventID, id uint) (domain.DanceCategory, error) {
	found, err := r.references.FindCategory(ctx, eventID, id)
	if err != nil {
		return domain.DanceCategory{}, fmt.Errorf("r.references.FindCategory -> %w", err)
	}

	return domain.DanceCategory(found), nil
}

func (r *PerformanceRepository) UpdateCategory(ctx context.Context, eventID, id uint, name string) (domain.DanceCategory, error) {
	updated, err := r.references.UpdateCategory(ctx, eventID, id, name)
	if err != nil {
		return domain.DanceCategory{}, fmt.Errorf("r.references.UpdateCategory -> %w", err)
	}

	return domain.DanceCategory(updated), nil
}

func (r *PerformanceRepository) DeleteCategory(ctx context.Context, eventID, id uint) error {
	if err := r.references.DeleteCategory(ctx, eventID, id); err != nil {
		return fmt.Errorf("r.references.DeleteCategory -> %w", err)
	}

	return nil
}

func (r *PerformanceRepository) CreateAgeGroup(ctx context.Context, group domain.AgeGroup) (domain.AgeGroup, error) {
	created, err := r.references.InsertAgeGroup(ctx, dao.AgeGroup{
		EventID: group.EventID,
		Name:    group.Name,
		MinAge:  group.MinAge,
		MaxAge:  group.MaxAge,
	})
	if err != nil {
		return domain.AgeGroup{}, fmt.Errorf("r.references.InsertAgeGroup -> %w", err)
	}

	return domain.AgeGroup(created), nil
}

func (r *PerformanceRepository) FindAgeGroups(ctx context.Context, eventID uint) ([]domain.AgeGroup, error) {
	found, err := r.references.FindAgeGroups(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.references.FindAgeGroups -> %w", err)
	}

	groups := make([]domain.AgeGroup, 0, len(found))
	for _, g := range found {
		groups = append(groups, domain.AgeGroup(g))
	}

	return groups, nil
}

func (r *PerformanceRepository) FindAgeGroup(ctx context.Context, eventID, id uint) (domain.AgeGroup, error) {
	found, err := r.references.FindAgeGroup(ctx, eventID, id)
	if err != nil {
		return domain.AgeGroup{}, fmt.Errorf("r.references.FindAgeGroup -> %w", err)
	}

	return domain.AgeGroup(found), nil
}

func (r *PerformanceRepository) UpdateAgeGroup(ctx context.Context, eventID, id uint, name *string, minAge, maxAge *int) (domain.AgeGroup, error) {
	updated, err := r.references.UpdateAgeGroup(ctx, eventID, id, name, minAge, maxAge)
	if err != nil {
		return domain.AgeGroup{}, fmt.Errorf("r.references.UpdateAgeGroup -> %w", err)
	}

	return domain.AgeGroup(updated), nil
}

func (r *PerformanceRepository) DeleteAgeGroup(ctx context.Context, eventID, id uint) error {
	if err := r.references.DeleteAgeGroup(ctx, eventID, id); err != nil {
		return fmt.Errorf("r.references.DeleteAgeGroup -> %w", err)
	}

	return nil
}

func (r *PerformanceRepository) CreateFormat(ctx context.Context, format domain.DanceFormat) (domain.DanceFormat, error) {
	created, err := r.references.InsertFormat(ctx, dao.DanceFormat{EventID: format.EventID, Name: format.Name})
	if err != nil {
		return domain.DanceFormat{}, fmt.Errorf("r.references.InsertFormat -> %w", err)
	}

	return domain.DanceFormat(created), nil
}

func (r *PerformanceRepository) FindFormats(ctx context.Context, eventID uint) ([]domain.DanceFormat, error) {
	found, err := r.references.FindFormats(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.references.FindFormats -> %w", err)
	}

	formats := make([]domain.DanceFormat, 0, len(found))
	for _, f := range found {
		formats = append(formats, domain.DanceFormat(f))
	}

	return formats, nil
}

func (r *PerformanceRepository) FindFormat(ctx context.Context, eventID, id uint) (domain.DanceFormat, error) {
	found, err := r.references.FindFormat(ctx, eventID, id)
	if err != nil {
		return domain.DanceFormat{}, fmt.Errorf("r.references.FindFormat -> %w", err)
	}

	return domain.DanceFormat(found), nil
}

func (r *PerformanceRepository) UpdateFormat(ctx context.Context, eventID, id uint, name string) (domain.DanceFormat, error) {
	updated, err := r.references.UpdateFormat(ctx, eventID, id, name)
	if err != nil {
		return domain.DanceFormat{}, fmt.Errorf("r.references.UpdateFormat -> %w", err)
	}

	return domain.DanceFormat(updated), nil
}

func (r *PerformanceRepository) DeleteFormat(ctx context.Context, eventID, id uint) error {
	if err := r.references.DeleteFormat(ctx, eventID, id); err != nil {
		return fmt.Errorf("r.references.DeleteFormat -> %w", err)
	}

	return nil
}

func performanceDAOToDomain(p dao.Performance) domain.Performance {
	performance := domain.Performance{
		ID:           p.ID,
		EventID:      p.EventID,
		StudioID:     p.StudioID,
		Title:        p.Title,
		DurationSec:  p.DurationSec,
		OrderOnStage: p.OrderOnStage,
		CategoryID:   p.CategoryID,
		AgeGroupID:   p.AgeGroupID,
		FormatID:     p.FormatID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	for _, participant := range p.Participants {
		performance.Dancers = append(performance.Dancers, dancerDAOToDomain(participant.Dancer))
	}

	return performance
}
