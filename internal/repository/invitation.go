package repository

import (
	"context"
	"fmt"

	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/repository/dao"
)

var ErrInvitationNotFound = dao.ErrInvitationNotFound

type InvitationDAO interface {
	Insert(ctx context.Context, invitation dao.Invitation) (dao.Invitation, error)
	FindByToken(ctx context.Context, token string) (dao.Invitation, error)
	FindActive(ctx context.Context, email, roleKey string, eventID *uint) (dao.Invitation, error)
	FindAll(ctx context.Context) ([]dao.Invitation, error)
	Accept(ctx context.Context, invitation dao.Invitation, name, passwordHash string) (dao.User, error)
}

type InvitationRepository struct {
	dao InvitationDAO
}

func NewInvitationRepository(dao InvitationDAO) *InvitationRepository {
	return &InvitationRepository{
		dao: dao,
	}
}

func (r *InvitationRepository) Create(ctx context.Context, invitation domain.Invitation) (domain.Invitation, error) {
	created, err := r.dao.Insert(ctx, dao.Invitation{
		Email:     invitation.Email,
		RoleKey:   invitation.RoleKey,
		EventID:   invitation.EventID,
		Token:     invitation.Token,
		CreatedBy: invitation.CreatedBy,
		ExpiresAt: invitation.ExpiresAt,
	})
	if err != nil {
		return domain.Invitation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return invitationDAOToDomain(created), nil
}

func (r *InvitationRepository) FindByToken(ctx context.Context, token string) (domain.Invitation, error) {
	found, err := r.dao.FindByToken(ctx, token)
	if err != nil {
		return domain.Invitation{}, fmt.Errorf("r.dao.FindByToken -> %w", err)
	}

	return invitationDAOToDomain(found), nil
}

// FindActive returns the pending invitation for the email/role/event tuple,
// or ErrInvitationNotFound when none is outstanding.
func (r *InvitationRepository) FindActive(ctx context.Context, email, roleKey string, eventID *uint) (domain.Invitation, error) {
	found, err := r.dao.FindActive(ctx, email, roleKey, eventID)
	if err != nil {
		return domain.Invitation{}, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	return invitationDAOToDomain(found), nil
}

func (r *InvitationRepository) FindAll(ctx context.Context) ([]domain.Invitation, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	invitations := make([]domain.Invitation, 0, len(found))
	for _, i := range found {
		invitations = append(invitations, invitationDAOToDomain(i))
	}

	return invitations, nil
}

// Accept consumes the invitation and returns the user it resolved to,
// creating the account when the invited email is unknown.
func (r *InvitationRepository) Accept(ctx context.Context, invitation domain.Invitation, name, passwordHash string) (domain.User, error) {
	user, err := r.dao.Accept(ctx, dao.Invitation{
		ID:        invitation.ID,
		Email:     invitation.Email,
		RoleKey:   invitation.RoleKey,
		EventID:   invitation.EventID,
		Token:     invitation.Token,
		CreatedBy: invitation.CreatedBy,
		ExpiresAt: invitation.ExpiresAt,
	}, name, passwordHash)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Accept -> %w", err)
	}

	return userDAOToDomain(user), nil
}

func invitationDAOToDomain(i dao.Invitation) domain.Invitation {
	return domain.Invitation{
		ID:        i.ID,
		Email:     i.Email,
		RoleKey:   i.RoleKey,
		EventID:   i.EventID,
		Token:     i.Token,
		CreatedBy: i.CreatedBy,
		ExpiresAt: i.ExpiresAt,
		UsedAt:    i.UsedAt,
		CreatedAt: i.CreatedAt,
	}
}
