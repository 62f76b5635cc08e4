package service

import (
	"context"
	"fmt"

	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/repository"
)

var ErrJudgeNotFound = repository.ErrJudgeNotFound

type JudgeRepository interface {
	Create(ctx context.Context, judge domain.Judge) (domain.Judge, error)
	FindByEventID(ctx context.Context, eventID uint) ([]domain.Judge, error)
	FindByID(ctx context.Context, eventID, id uint) (domain.Judge, error)
	Update(ctx context.Context, eventID, id uint, update domain.JudgeUpdate) (domain.Judge, error)
	Delete(ctx context.Context, eventID, id uint) error
}

type JudgeEventRepository interface {
	GetStage(ctx context.Context, id uint) (domain.EventStage, error)
}

type JudgeService struct {
	repo   JudgeRepository
	events JudgeEventRepository
}

func NewJudgeService(repo JudgeRepository, events JudgeEventRepository) *JudgeService {
	return &JudgeService{
		repo:   repo,
		events: events,
	}
}

func (s *JudgeService) checkEvent(ctx context.Context, eventID uint) error {
	if _, err := s.events.GetStage(ctx, eventID); err != nil {
		return fmt.Errorf("s.events.GetStage -> %w", err)
	}

	return nil
}

func (s *JudgeService) CreateJudge(ctx context.Context, judge domain.Judge) (domain.Judge, error) {
	if err := s.checkEvent(ctx, judge.EventID); err != nil {
		return domain.Judge{}, err
	}

	created, err := s.repo.Create(ctx, judge)
	if err != nil {
		return domain.Judge{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *JudgeService) ListJudges(ctx context.Context, eventID uint) ([]domain.Judge, error) {
	if err := s.checkEvent(ctx, eventID); err != nil {
		return nil, err
	}

	judges, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventID -> %w", err)
	}

	return judges, nil
}

func (s *JudgeService) GetJudge(ctx context.Context, eventID, id uint) (domain.Judge, error) {
	judge, err := s.repo.FindByID(ctx, eventID, id)
	if err != nil {
		return domain.Judge{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return judge, nil
}

// UpdateJudge applies a partial update. A panel move to another event checks
// the target event first.
func (s *JudgeService) UpdateJudge(ctx context.Context, eventID, id uint, update domain.JudgeUpdate) (domain.Judge, error) {
	if update.EventID != nil && *update.EventID != eventID {
		if err := s.checkEvent(ctx, *update.EventID); err != nil {
			return domain.Judge{}, err
		}
	}

	judge, err := s.repo.Update(ctx, eventID, id, update)
	if err != nil {
		return domain.Judge{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return judge, nil
}

func (s *JudgeService) DeleteJudge(ctx context.Context, eventID, id uint) error {
	if err := s.repo.Delete(ctx, eventID, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
