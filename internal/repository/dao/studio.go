package dao

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dancefest/api/internal/domain"
)

var (
	ErrStudioNotFound         = errors.New("studio not found")
	ErrRegistrationNotFound   = errors.New("registration not found")
	ErrRepresentativeNotFound = errors.New("representative not found")
)

type Studio struct {
	ID      uint `gorm:"primaryKey"`
	EventID uint `gorm:"not null;index"`

	Name           string `gorm:"not null"`
	Country        string
	City           string
	DirectorName   string
	DirectorPhone  string
	InvoiceDetails string
	LogoPath       string

	Representatives []StudioRepresentative    `gorm:"foreignKey:StudioID"`
	Registrations   []StudioEventRegistration `gorm:"foreignKey:StudioID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type StudioRepresentative struct {
	ID       uint `gorm:"primaryKey"`
	StudioID uint `gorm:"not null;index"`
	UserID   uint `gorm:"not null;index"`

	Name   string `gorm:"not null"`
	Email  string `gorm:"not null"`
	Active bool   `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type StudioEventRegistration struct {
	ID       uint `gorm:"primaryKey"`
	StudioID uint `gorm:"not null;uniqueIndex:uni_studio_event"`
	EventID  uint `gorm:"not null;uniqueIndex:uni_studio_event"`

	Status              string `gorm:"not null;default:PENDING"`
	CanEditDuringReview bool   `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type StudioDAO struct {
	db *gorm.DB
}

func NewStudioDAO(db *gorm.DB) *StudioDAO {
	return &StudioDAO{
		db: db,
	}
}

// InsertWithRegistration creates the studio, its first representative (when
// given) and the event registration row in one transaction.
func (d *StudioDAO) InsertWithRegistration(ctx context.Context, studio Studio, rep *StudioRepresentative, status string) (Studio, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&studio).Error; err != nil {
			return err
		}

		if rep != nil {
			rep.StudioID = studio.ID
			rep.Active = true
			if err := tx.Create(rep).Error; err != nil {
				return err
			}
		}

		registration := StudioEventRegistration{
			StudioID: studio.ID,
			EventID:  studio.EventID,
			Status:   status,
		}

		return tx.Create(&registration).Error
	})
	if err != nil {
		return Studio{}, err
	}

	return d.FindByID(ctx, studio.ID)
}

// FindByID returns the live studio with representatives and registrations
// preloaded. Soft-deleted studios are treated as absent.
func (d *StudioDAO) FindByID(ctx context.Context, id uint) (Studio, error) {
	var studio Studio

	result := d.db.WithContext(ctx).
		Preload("Representatives").
		Preload("Registrations").
		First(&studio, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Studio{}, ErrStudioNotFound
		}

		return Studio{}, result.Error
	}

	return studio, nil
}

func (d *StudioDAO) FindByEventID(ctx context.Context, eventID uint) ([]Studio, error) {
	var studios []Studio

	result := d.db.WithContext(ctx).
		Preload("Representatives").
		Preload("Registrations").
		Where("event_id = ?", eventID).
		Order("name asc").
		Find(&studios)
	if result.Error != nil {
		return nil, result.Error
	}

	return studios, nil
}

// FindByEventIDForUser returns the event's studios where the user is an
// active representative.
func (d *StudioDAO) FindByEventIDForUser(ctx context.Context, eventID, userID uint) ([]Studio, error) {
	var studios []Studio

	result := d.db.WithContext(ctx).
		Preload("Representatives").
		Preload("Registrations").
		Where("event_id = ?", eventID).
		Where("id IN (?)", d.db.Model(&StudioRepresentative{}).
			Select("studio_id").
			Where("user_id = ? AND active", userID)).
		Order("name asc").
		Find(&studios)
	if result.Error != nil {
		return nil, result.Error
	}

	return studios, nil
}

func (d *StudioDAO) Update(ctx context.Context, id uint, update domain.StudioUpdate) (Studio, error) {
	studio, err := d.FindByID(ctx, id)
	if err != nil {
		return Studio{}, err
	}

	if update.Name != nil {
		studio.Name = *update.Name
	}
	if update.Country != nil {
		studio.Country = *update.Country
	}
	if update.City != nil {
		studio.City = *update.City
	}
	if update.DirectorName != nil {
		studio.DirectorName = *update.DirectorName
	}
	if update.DirectorPhone != nil {
		studio.DirectorPhone = *update.DirectorPhone
	}
	if update.InvoiceDetails != nil {
		studio.InvoiceDetails = *update.InvoiceDetails
	}

	if err := d.db.WithContext(ctx).Omit("Representatives", "Registrations").Save(&studio).Error; err != nil {
		return Studio{}, err
	}

	return studio, nil
}

func (d *StudioDAO) SetLogoPath(ctx context.Context, id uint, path string) error {
	result := d.db.WithContext(ctx).Model(&Studio{}).Where("id = ?", id).Update("logo_path", path)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStudioNotFound
	}

	return nil
}

// SoftDelete writes the tombstone; the row is never physically removed.
func (d *StudioDAO) SoftDelete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Studio{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStudioNotFound
	}

	return nil
}

// SetRegistrationStatus upserts the registration decision and, when the new
// status is APPROVED, grants the representative role (scoped to the event)
// to every active representative of the studio. The whole step is one
// transaction: either the status change and all grants become visible, or
// none do. Re-approving re-runs the grant step without duplicating
// assignments.
func (d *StudioDAO) SetRegistrationStatus(ctx context.Context, studioID, eventID uint, status string, canEditDuringReview *bool) (StudioEventRegistration, error) {
	var registration StudioEventRegistration

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("studio_id = ? AND event_id = ?", studioID, eventID).First(&registration)
		switch {
		case result.Error == nil:
			registration.Status = status
			if canEditDuringReview != nil {
				registration.CanEditDuringReview = *canEditDuringReview
			}
			if err := tx.Save(&registration).Error; err != nil {
				return err
			}
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			registration = StudioEventRegistration{
				StudioID: studioID,
				EventID:  eventID,
				Status:   status,
			}
			if canEditDuringReview != nil {
				registration.CanEditDuringReview = *canEditDuringReview
			}
			if err := tx.Create(&registration).Error; err != nil {
				return err
			}
		default:
			return result.Error
		}

		if status != string(domain.RegistrationApproved) {
			return nil
		}

		return grantRepresentativeRoles(tx, studioID, eventID)
	})
	if err != nil {
		return StudioEventRegistration{}, err
	}

	return registration, nil
}

func grantRepresentativeRoles(tx *gorm.DB, studioID, eventID uint) error {
	var role Role
	result := tx.First(&role, "key = ?", domain.RoleRepresentative)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// Static role table is incomplete; skip the grant step
			// rather than fail the approval.
			zap.L().Warn("representative role missing, skipping role grants",
				zap.Uint("studio_id", studioID),
				zap.Uint("event_id", eventID))
			return nil
		}

		return result.Error
	}

	var reps []StudioRepresentative
	if err := tx.Where("studio_id = ? AND active", studioID).Find(&reps).Error; err != nil {
		return err
	}

	for _, rep := range reps {
		scopedEventID := eventID
		if err := grantRole(tx, rep.UserID, role.ID, &scopedEventID); err != nil {
			return err
		}
	}

	return nil
}

func (d *StudioDAO) FindRegistration(ctx context.Context, studioID, eventID uint) (StudioEventRegistration, error) {
	var registration StudioEventRegistration

	result := d.db.WithContext(ctx).
		Where("studio_id = ? AND event_id = ?", studioID, eventID).
		First(&registration)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StudioEventRegistration{}, ErrRegistrationNotFound
		}

		return StudioEventRegistration{}, result.Error
	}

	return registration, nil
}

func (d *StudioDAO) DeleteRegistration(ctx context.Context, studioID, eventID uint) error {
	result := d.db.WithContext(ctx).
		Where("studio_id = ? AND event_id = ?", studioID, eventID).
		Delete(&StudioEventRegistration{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}

	return nil
}

func (d *StudioDAO) FindRepresentative(ctx context.Context, id uint) (StudioRepresentative, error) {
	var rep StudioRepresentative

	result := d.db.WithContext(ctx).First(&rep, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StudioRepresentative{}, ErrRepresentativeNotFound
		}

		return StudioRepresentative{}, result.Error
	}

	return rep, nil
}

func (d *StudioDAO) UpdateRepresentative(ctx context.Context, id uint, name, email *string) (StudioRepresentative, error) {
	rep, err := d.FindRepresentative(ctx, id)
	if err != nil {
		return StudioRepresentative{}, err
	}

	if name != nil {
		rep.Name = *name
	}
	if email != nil {
		rep.Email = *email
	}

	if err := d.db.WithContext(ctx).Save(&rep).Error; err != nil {
		return StudioRepresentative{}, err
	}

	return rep, nil
}
