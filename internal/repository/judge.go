package repository

import (
	"context"
	"fmt"

	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/repository/dao"
)

var ErrJudgeNotFound = dao.ErrJudgeNotFound

type JudgeDAO interface {
	Insert(ctx context.Context, judge dao.Judge) (dao.Judge, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.Judge, error)
	FindByID(ctx context.Context, eventID, id uint) (dao.Judge, error)
	Update(ctx context.Context, eventID, id uint, update domain.JudgeUpdate) (dao.Judge, error)
	Delete(ctx context.Context, eventID, id uint) error
}

type JudgeRepository struct {
	dao JudgeDAO
}

func NewJudgeRepository(dao JudgeDAO) *JudgeRepository {
	return &JudgeRepository{
		dao: dao,
	}
}

func (r *JudgeRepository) Create(ctx context.Context, judge domain.Judge) (domain.Judge, error) {
	created, err := r.dao.Insert(ctx, dao.Judge{
		EventID:     judge.EventID,
		UserID:      judge.UserID,
		Name:        judge.Name,
		Description: judge.Description,
		Country:     judge.Country,
		City:        judge.City,
	})
	if err != nil {
		return domain.Judge{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return judgeDAOToDomain(created), nil
}

func (r *JudgeRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.Judge, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	judges := make([]domain.Judge, 0, len(found))
	for _, j := range found {
		judges = append(judges, judgeDAOToDomain(j))
	}

	return judges, nil
}

func (r *JudgeRepository) FindByID(ctx context.Context, eventID, id uint) (domain.Judge, error) {
	found, err := r.dao.FindByID(ctx, eventID, id)
	if err != nil {
		return domain.Judge{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return judgeDAOToDomain(found), nil
}

func (r *JudgeRepository) Update(ctx context.Context, eventID, id uint, update domain.JudgeUpdate) (domain.Judge, error) {
	updated, err := r.dao.Update(ctx, eventID, id, update)
	if err != nil {
		return domain.Judge{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return judgeDAOToDomain(updated), nil
}

func (r *JudgeRepository) Delete(ctx context.Context, eventID, id uint) error {
	if err := r.dao.Delete(ctx, eventID, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func judgeDAOToDomain(j dao.Judge) domain.Judge {
	return domain.Judge{
		ID:          j.ID,
		EventID:     j.EventID,
		UserID:      j.UserID,
		Name:        j.Name,
		Description: j.Description,
		Country:     j.Country,
		City:        j.City,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}
