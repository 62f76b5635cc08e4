package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrInvitationNotFound = errors.New("invitation not found")

type Invitation struct {
	ID uint `gorm:"primaryKey"`

	Email   string `gorm:"not null;index"`
	RoleKey string `gorm:"not null"`
	EventID *uint
	Token   string `gorm:"unique;not null"`

	CreatedBy uint `gorm:"not null"`
	ExpiresAt time.Time
	UsedAt    *time.Time

	CreatedAt time.Time
}

type InvitationDAO struct {
	db *gorm.DB
}

func NewInvitationDAO(db *gorm.DB) *InvitationDAO {
	return &InvitationDAO{
		db: db,
	}
}

func (d *InvitationDAO) Insert(ctx context.Context, invitation Invitation) (Invitation, error) {
	result := d.db.WithContext(ctx).Create(&invitation)
	if result.Error != nil {
		return Invitation{}, result.Error
	}

	return invitation, nil
}

func (d *InvitationDAO) FindByToken(ctx context.Context, token string) (Invitation, error) {
	var invitation Invitation

	result := d.db.WithContext(ctx).First(&invitation, "token = ?", token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Invitation{}, ErrInvitationNotFound
		}

		return Invitation{}, result.Error
	}

	return invitation, nil
}

// FindActive returns the unused, unexpired invitation for the tuple, if any.
func (d *InvitationDAO) FindActive(ctx context.Context, email, roleKey string, eventID *uint) (Invitation, error) {
	var invitation Invitation

	query := d.db.WithContext(ctx).
		Where("email = ? AND role_key = ?", email, roleKey).
		Where("used_at IS NULL AND expires_at > ?", time.Now())
	if eventID == nil {
		query = query.Where("event_id IS NULL")
	} else {
		query = query.Where("event_id = ?", *eventID)
	}

	result := query.First(&invitation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Invitation{}, ErrInvitationNotFound
		}

		return Invitation{}, result.Error
	}

	return invitation, nil
}

func (d *InvitationDAO) FindAll(ctx context.Context) ([]Invitation, error) {
	var invitations []Invitation

	result := d.db.WithContext(ctx).Order("created_at desc").Find(&invitations)
	if result.Error != nil {
		return nil, result.Error
	}

	return invitations, nil
}

// Accept consumes the invitation in one transaction: find or create the
// user, set a password if the account never had one, grant the bound role
// assignment (idempotent) and mark the invitation used.
func (d *InvitationDAO) Accept(ctx context.Context, invitation Invitation, name, passwordHash string) (User, error) {
	var user User

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.First(&user, "email = ?", invitation.Email)
		switch {
		case result.Error == nil:
			if user.Password == nil {
				user.Password = &passwordHash
				user.EmailVerified = true
				user.Active = true
				if err := tx.Save(&user).Error; err != nil {
					return err
				}
			}
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			user = User{
				Email:         invitation.Email,
				Name:          name,
				Password:      &passwordHash,
				EmailVerified: true, // pre-verified via invitation
				Active:        true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		default:
			return result.Error
		}

		var role Role
		if err := tx.First(&role, "key = ?", invitation.RoleKey).Error; err != nil {
			return err
		}

		if err := grantRole(tx, user.ID, role.ID, invitation.EventID); err != nil {
			return err
		}

		now := time.Now()
		return tx.Model(&Invitation{}).Where("id = ?", invitation.ID).Update("used_at", now).Error
	})
	if err != nil {
		return User{}, err
	}

	return user, nil
}
