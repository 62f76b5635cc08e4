package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/pkg/mailer"
	"github.com/dancefest/api/internal/repository"
)

type fakeInvitationRepo struct {
	invitations map[string]domain.Invitation
	accepted    []string
	nextID      uint
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: make(map[string]domain.Invitation)}
}

func (f *fakeInvitationRepo) Create(_ context.Context, invitation domain.Invitation) (domain.Invitation, error) {
	f.nextID++
	invitation.ID = f.nextID
	f.invitations[invitation.Token] = invitation
	return invitation, nil
}

func (f *fakeInvitationRepo) FindByToken(_ context.Context, token string) (domain.Invitation, error) {
	invitation, ok := f.invitations[token]
	if !ok {
		return domain.Invitation{}, repository.ErrInvitationNotFound
	}
	return invitation, nil
}

func (f *fakeInvitationRepo) FindActive(_ context.Context, email, roleKey string, eventID *uint) (domain.Invitation, error) {
	now := time.Now()
	for _, inv := range f.invitations {
		if inv.Email != email || inv.RoleKey != roleKey || inv.Used() || inv.Expired(now) {
			continue
		}
		if (inv.EventID == nil) != (eventID == nil) {
			continue
		}
		if inv.EventID != nil && *inv.EventID != *eventID {
			continue
		}
		return inv, nil
	}
	return domain.Invitation{}, repository.ErrInvitationNotFound
}

func (f *fakeInvitationRepo) FindAll(_ context.Context) ([]domain.Invitation, error) {
	out := make([]domain.Invitation, 0, len(f.invitations))
	for _, inv := range f.invitations {
		out = append(out, inv)
	}
	return out, nil
}

func (f *fakeInvitationRepo) Accept(_ context.Context, invitation domain.Invitation, name, passwordHash string) (domain.User, error) {
	now := time.Now()
	invitation.UsedAt = &now
	f.invitations[invitation.Token] = invitation
	f.accepted = append(f.accepted, invitation.Token)
	return domain.User{
		ID:       1,
		Email:    invitation.Email,
		Name:     name,
		Password: passwordHash,
		Active:   true,
	}, nil
}

type fakeInvitationEvents struct {
	events map[uint]domain.Event
}

func (f *fakeInvitationEvents) FindByID(_ context.Context, id uint) (domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}
	return event, nil
}

type fakeMailer struct {
	sent []mailer.Invitation
	err  error
}

func (f *fakeMailer) SendInvitation(_ context.Context, invitation mailer.Invitation) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, invitation)
	return nil
}

func TestCreateInvitation(t *testing.T) {
	eventID := uint(1)

	t.Run("issues a token and mails it", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		mail := &fakeMailer{}
		svc := NewInvitationService(repo, &fakeInvitationEvents{events: map[uint]domain.Event{1: {ID: 1, Name: "Spring Cup"}}}, mail)

		invitation, err := svc.CreateInvitation(context.Background(), 99, "judge@example.com", domain.RoleJudge, &eventID)
		require.NoError(t, err)
		assert.NotEmpty(t, invitation.Token)
		assert.Equal(t, uint(99), invitation.CreatedBy)
		assert.WithinDuration(t, time.Now().Add(invitationTTL), invitation.ExpiresAt, time.Minute)

		require.Len(t, mail.sent, 1)
		assert.Equal(t, "judge@example.com", mail.sent[0].To)
		assert.Equal(t, "Spring Cup", mail.sent[0].EventName)
	})

	t.Run("active duplicate is rejected", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		svc := NewInvitationService(repo, &fakeInvitationEvents{events: map[uint]domain.Event{1: {ID: 1}}}, &fakeMailer{})

		_, err := svc.CreateInvitation(context.Background(), 99, "judge@example.com", domain.RoleJudge, &eventID)
		require.NoError(t, err)

		_, err = svc.CreateInvitation(context.Background(), 99, "judge@example.com", domain.RoleJudge, &eventID)
		assert.ErrorIs(t, err, ErrInvitationExists)
	})

	t.Run("same email may hold different roles", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		svc := NewInvitationService(repo, &fakeInvitationEvents{events: map[uint]domain.Event{1: {ID: 1}}}, &fakeMailer{})

		_, err := svc.CreateInvitation(context.Background(), 99, "multi@example.com", domain.RoleJudge, &eventID)
		require.NoError(t, err)

		_, err = svc.CreateInvitation(context.Background(), 99, "multi@example.com", domain.RoleModerator, &eventID)
		assert.NoError(t, err)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc := NewInvitationService(newFakeInvitationRepo(), &fakeInvitationEvents{events: map[uint]domain.Event{}}, &fakeMailer{})

		_, err := svc.CreateInvitation(context.Background(), 99, "judge@example.com", domain.RoleJudge, &eventID)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("mail failure does not void the invitation", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		mail := &fakeMailer{err: errors.New("smtp down")}
		svc := NewInvitationService(repo, &fakeInvitationEvents{events: map[uint]domain.Event{}}, mail)

		invitation, err := svc.CreateInvitation(context.Background(), 99, "admin@example.com", domain.RoleAdmin, nil)
		require.NoError(t, err)
		assert.NotEmpty(t, invitation.Token)
	})
}

func TestAcceptInvitation(t *testing.T) {
	issue := func(t *testing.T, repo *fakeInvitationRepo, mutate func(*domain.Invitation)) domain.Invitation {
		invitation := domain.Invitation{
			Email:     "rep@example.com",
			RoleKey:   domain.RoleRepresentative,
			Token:     "token-1",
			ExpiresAt: time.Now().Add(time.Hour),
		}
		if mutate != nil {
			mutate(&invitation)
		}
		created, err := repo.Create(context.Background(), invitation)
		require.NoError(t, err)
		return created
	}

	t.Run("creates the account with a usable password", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		svc := NewInvitationService(repo, &fakeInvitationEvents{}, &fakeMailer{})
		issue(t, repo, nil)

		user, err := svc.AcceptInvitation(context.Background(), "token-1", "Rita", "Sup3rSecret")
		require.NoError(t, err)
		assert.Equal(t, "rep@example.com", user.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Sup3rSecret")))
	})

	t.Run("second use is rejected", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		svc := NewInvitationService(repo, &fakeInvitationEvents{}, &fakeMailer{})
		issue(t, repo, nil)

		_, err := svc.AcceptInvitation(context.Background(), "token-1", "Rita", "Sup3rSecret")
		require.NoError(t, err)

		_, err = svc.AcceptInvitation(context.Background(), "token-1", "Rita", "Sup3rSecret")
		assert.ErrorIs(t, err, ErrInvitationUsed)
		assert.Len(t, repo.accepted, 1)
	})

	t.Run("expired token is rejected before any write", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		svc := NewInvitationService(repo, &fakeInvitationEvents{}, &fakeMailer{})
		issue(t, repo, func(i *domain.Invitation) {
			i.ExpiresAt = time.Now().Add(-time.Minute)
		})

		_, err := svc.AcceptInvitation(context.Background(), "token-1", "Rita", "Sup3rSecret")
		assert.ErrorIs(t, err, ErrInvitationExpired)
		assert.Empty(t, repo.accepted)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc := NewInvitationService(newFakeInvitationRepo(), &fakeInvitationEvents{}, &fakeMailer{})

		_, err := svc.AcceptInvitation(context.Background(), "nope", "Rita", "Sup3rSecret")
		assert.ErrorIs(t, err, ErrInvitationNotFound)
	})
}
