package repository

import (
	"context"
	"fmt"

	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
	ErrRoleNotFound    = dao.ErrRoleNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	SetActive(ctx context.Context, id uint, active bool) error
}

type RoleDAO interface {
	FindByKey(ctx context.Context, key string) (dao.Role, error)
	FindAssignments(ctx context.Context, userID uint) ([]dao.UserRole, error)
	Grant(ctx context.Context, userID, roleID uint, eventID *uint) error
}

type UserRepository struct {
	users UserDAO
	roles RoleDAO
}

func NewUserRepository(users UserDAO, roles RoleDAO) *UserRepository {
	return &UserRepository{
		users: users,
		roles: roles,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	record := dao.User{
		Email:  user.Email,
		Name:   user.Name,
		Active: true,
	}
	if user.Password != "" {
		record.Password = &user.Password
	}

	created, err := r.users.Insert(ctx, record)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.users.Insert -> %w", err)
	}

	return userDAOToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.users.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.users.FindByID -> %w", err)
	}

	return userDAOToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.users.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.users.FindByEmail -> %w", err)
	}

	return userDAOToDomain(found), nil
}

func (r *UserRepository) SetActive(ctx context.Context, id uint, active bool) error {
	if err := r.users.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("r.users.SetActive -> %w", err)
	}

	return nil
}

// FindRoleAssignments returns every role the user holds together with the
// permission keys that role grants and its optional event scope.
func (r *UserRepository) FindRoleAssignments(ctx context.Context, userID uint) ([]domain.RoleAssignment, error) {
	rows, err := r.roles.FindAssignments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.roles.FindAssignments -> %w", err)
	}

	assignments := make([]domain.RoleAssignment, 0, len(rows))
	for _, row := range rows {
		permissions := make([]string, 0, len(row.Role.Permissions))
		for _, p := range row.Role.Permissions {
			permissions = append(permissions, p.Key)
		}

		assignments = append(assignments, domain.RoleAssignment{
			RoleKey:     row.Role.Key,
			RoleName:    row.Role.Name,
			EventID:     row.EventID,
			Permissions: permissions,
		})
	}

	return assignments, nil
}

func (r *UserRepository) GrantRole(ctx context.Context, userID uint, roleKey string, eventID *uint) error {
	role, err := r.roles.FindByKey(ctx, roleKey)
	if err != nil {
		return fmt.Errorf("r.roles.FindByKey -> %w", err)
	}

	if err := r.roles.Grant(ctx, userID, role.ID, eventID); err != nil {
		return fmt.Errorf("r.roles.Grant -> %w", err)
	}

	return nil
}

func userDAOToDomain(u dao.User) domain.User {
	user := domain.User{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Active:        u.Active,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
	if u.Password != nil {
		user.Password = *u.Password
	}

	return user
}
