package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/pkg/mailer"
	"github.com/dancefest/api/internal/repository"
)

const invitationTTL = 14 * 24 * time.Hour

var (
	ErrInvitationNotFound = repository.ErrInvitationNotFound
	ErrInvitationExists   = errors.New("an active invitation already exists")
	ErrInvitationUsed     = errors.New("invitation already used")
	ErrInvitationExpired  = errors.New("invitation expired")
)

type InvitationRepository interface {
	Create(ctx context.Context, invitation domain.Invitation) (domain.Invitation, error)
	FindByToken(ctx context.Context, token string) (domain.Invitation, error)
	FindActive(ctx context.Context, email, roleKey string, eventID *uint) (domain.Invitation, error)
	FindAll(ctx context.Context) ([]domain.Invitation, error)
	Accept(ctx context.Context, invitation domain.Invitation, name, passwordHash string) (domain.User, error)
}

type InvitationEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type InvitationService struct {
	repo   InvitationRepository
	events InvitationEventRepository
	mailer mailer.Mailer
}

func NewInvitationService(repo InvitationRepository, events InvitationEventRepository, mailer mailer.Mailer) *InvitationService {
	return &InvitationService{
		repo:   repo,
		events: events,
		mailer: mailer,
	}
}

// CreateInvitation issues a one-time token binding an email to a role. At
// most one unused, unexpired invitation may exist per (email, role, event)
// tuple.
func (s *InvitationService) CreateInvitation(ctx context.Context, createdBy uint, email, roleKey string, eventID *uint) (domain.Invitation, error) {
	var eventName string
	if eventID != nil {
		event, err := s.events.FindByID(ctx, *eventID)
		if err != nil {
			return domain.Invitation{}, fmt.Errorf("s.events.FindByID -> %w", err)
		}
		eventName = event.Name
	}

	_, err := s.repo.FindActive(ctx, email, roleKey, eventID)
	switch {
	case err == nil:
		return domain.Invitation{}, ErrInvitationExists
	case errors.Is(err, repository.ErrInvitationNotFound):
	default:
		return domain.Invitation{}, fmt.Errorf("s.repo.FindActive -> %w", err)
	}

	invitation, err := s.repo.Create(ctx, domain.Invitation{
		Email:     email,
		RoleKey:   roleKey,
		EventID:   eventID,
		Token:     uuid.NewString(),
		CreatedBy: createdBy,
		ExpiresAt: time.Now().Add(invitationTTL),
	})
	if err != nil {
		return domain.Invitation{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	// Delivery failure does not void the invitation; the token can be resent.
	err = s.mailer.SendInvitation(ctx, mailer.Invitation{
		To:        invitation.Email,
		Token:     invitation.Token,
		RoleKey:   invitation.RoleKey,
		EventName: eventName,
	})
	if err != nil {
		zap.L().Warn("failed to send invitation email",
			zap.String("email", invitation.Email),
			zap.Error(err),
		)
	}

	return invitation, nil
}

func (s *InvitationService) ListInvitations(ctx context.Context) ([]domain.Invitation, error) {
	invitations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return invitations, nil
}

func (s *InvitationService) GetInvitation(ctx context.Context, token string) (domain.Invitation, error) {
	invitation, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return domain.Invitation{}, fmt.Errorf("s.repo.FindByToken -> %w", err)
	}

	return invitation, nil
}

// AcceptInvitation consumes the token: the invited account is created or
// activated and the bound role assignment granted, all in one transaction.
// A used or expired token is rejected before any write.
func (s *InvitationService) AcceptInvitation(ctx context.Context, token, name, password string) (domain.User, error) {
	invitation, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByToken -> %w", err)
	}

	if invitation.Used() {
		return domain.User{}, ErrInvitationUsed
	}
	if invitation.Expired(time.Now()) {
		return domain.User{}, ErrInvitationExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.repo.Accept(ctx, invitation, name, string(hash))
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Accept -> %w", err)
	}

	return user, nil
}
