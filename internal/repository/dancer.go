package repository

import (
	"context"
	"fmt"

	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/repository/dao"
)

var ErrDancerNotFound = dao.ErrDancerNotFound

type DancerDAO interface {
	Insert(ctx context.Context, dancer dao.Dancer) (dao.Dancer, error)
	FindByID(ctx context.Context, id uint) (dao.Dancer, error)
	FindByStudioID(ctx context.Context, studioID uint) ([]dao.Dancer, error)
	FindLiveByIDs(ctx context.Context, studioID uint, ids []uint) ([]dao.Dancer, error)
	Update(ctx context.Context, id uint, update domain.DancerUpdate) (dao.Dancer, error)
	SoftDelete(ctx context.Context, id uint) error
}

type DancerRepository struct {
	dao DancerDAO
}

func NewDancerRepository(dao DancerDAO) *DancerRepository {
	return &DancerRepository{
		dao: dao,
	}
}

func (r *DancerRepository) Create(ctx context.Context, dancer domain.Dancer) (domain.Dancer, error) {
	created, err := r.dao.Insert(ctx, dao.Dancer{
		StudioID:  dancer.StudioID,
		FirstName: dancer.FirstName,
		LastName:  dancer.LastName,
		BirthDate: dancer.BirthDate,
	})
	if err != nil {
		return domain.Dancer{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return dancerDAOToDomain(created), nil
}

func (r *DancerRepository) FindByID(ctx context.Context, id uint) (domain.Dancer, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Dancer{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return dancerDAOToDomain(found), nil
}

func (r *DancerRepository) FindByStudioID(ctx context.Context, studioID uint) ([]domain.Dancer, error) {
	found, err := r.dao.FindByStudioID(ctx, studioID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStudioID -> %w", err)
	}

	dancers := make([]domain.Dancer, 0, len(found))
	for _, d := range found {
		dancers = append(dancers, dancerDAOToDomain(d))
	}

	return dancers, nil
}

func (r *DancerRepository) FindLiveByIDs(ctx context.Context, studioID uint, ids []uint) ([]domain.Dancer, error) {
	found, err := r.dao.FindLiveByIDs(ctx, studioID, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindLiveByIDs -> %w", err)
	}

	dancers := make([]domain.Dancer, 0, len(found))
	for _, d := range found {
		dancers = append(dancers, dancerDAOToDomain(d))
	}

	return dancers, nil
}

func (r *DancerRepository) Update(ctx context.Context, id uint, update domain.DancerUpdate) (domain.Dancer, error) {
	updated, err := r.dao.Update(ctx, id, update)
	if err != nil {
		return domain.Dancer{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return dancerDAOToDomain(updated), nil
}

func (r *DancerRepository) SoftDelete(ctx context.Context, id uint) error {
	if err := r.dao.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.SoftDelete -> %w", err)
	}

	return nil
}

func dancerDAOToDomain(d dao.Dancer) domain.Dancer {
	return domain.Dancer{
		ID:        d.ID,
		StudioID:  d.StudioID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		BirthDate: d.BirthDate,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
