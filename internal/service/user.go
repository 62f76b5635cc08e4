package service

import (
	"context"
	"fmt"

	"github.com/dancefest/api/internal/authz"
	"github.com/dancefest/api/internal/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindRoleAssignments(ctx context.Context, userID uint) ([]domain.RoleAssignment, error)
	GrantRole(ctx context.Context, userID uint, roleKey string, eventID *uint) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) GetRoleAssignments(ctx context.Context, userID uint) ([]domain.RoleAssignment, error) {
	assignments, err := s.repo.FindRoleAssignments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindRoleAssignments -> %w", err)
	}

	return assignments, nil
}

// ResolveContext loads the user's role assignments and folds them into the
// authorization context every request-scoped permission check runs against.
func (s *UserService) ResolveContext(ctx context.Context, userID uint) (authz.Context, error) {
	assignments, err := s.repo.FindRoleAssignments(ctx, userID)
	if err != nil {
		return authz.Context{}, fmt.Errorf("s.repo.FindRoleAssignments -> %w", err)
	}

	return authz.Resolve(userID, authz.FromAssignments(assignments)), nil
}
