package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dancefest/api/internal/domain"
)

var ErrPerformanceNotFound = errors.New("performance not found")

type Performance struct {
	ID       uint `gorm:"primaryKey"`
	EventID  uint `gorm:"not null;index"`
	StudioID uint `gorm:"not null;index"`

	Title        string `gorm:"not null"`
	DurationSec  int    `gorm:"not null"`
	OrderOnStage int

	CategoryID uint `gorm:"not null"`
	AgeGroupID uint `gorm:"not null"`
	FormatID   uint `gorm:"not null"`

	Participants []PerformanceParticipant `gorm:"foreignKey:PerformanceID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PerformanceParticipant struct {
	PerformanceID uint `gorm:"primaryKey"`
	DancerID      uint `gorm:"primaryKey"`

	Dancer Dancer `gorm:"foreignKey:DancerID"`
}

type PerformanceDAO struct {
	db *gorm.DB
}

func NewPerformanceDAO(db *gorm.DB) *PerformanceDAO {
	return &PerformanceDAO{
		db: db,
	}
}

// Insert creates the performance and its participant rows in one
// transaction.
func (d *PerformanceDAO) Insert(ctx context.Context, performance Performance, dancerIDs []uint) (Performance, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&performance).Error; err != nil {
			return err
		}

		for _, dancerID := range dancerIDs {
			participant := PerformanceParticipant{
				PerformanceID: performance.ID,
				DancerID:      dancerID,
			}
			if err := tx.Create(&participant).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Performance{}, err
	}

	return d.FindByID(ctx, performance.ID)
}

func (d *PerformanceDAO) FindByID(ctx context.Context, id uint) (Performance, error) {
	var performance Performance

	result := d.db.WithContext(ctx).
		Preload("Participants.Dancer").
		First(&performance, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Performance{}, ErrPerformanceNotFound
		}

		return Performance{}, result.Error
	}

	return performance, nil
}

func (d *PerformanceDAO) FindByStudioID(ctx context.Context, studioID uint) ([]Performance, error) {
	var performances []Performance

	result := d.db.WithContext(ctx).
		Preload("Participants.Dancer").
		Where("studio_id = ?", studioID).
		Order("order_on_stage asc").
		Find(&performances)
	if result.Error != nil {
		return nil, result.Error
	}

	return performances, nil
}

// Update applies the set fields; a non-nil DancerIDs replaces the whole
// participant list atomically.
func (d *PerformanceDAO) Update(ctx context.Context, id uint, update domain.PerformanceUpdate) (Performance, error) {
	performance, err := d.FindByID(ctx, id)
	if err != nil {
		return Performance{}, err
	}

	if update.Title != nil {
		performance.Title = *update.Title
	}
	if update.DurationSec != nil {
		performance.DurationSec = *update.DurationSec
	}
	if update.OrderOnStage != nil {
		performance.OrderOnStage = *update.OrderOnStage
	}
	if update.CategoryID != nil {
		performance.CategoryID = *update.CategoryID
	}
	if update.AgeGroupID != nil {
		performance.AgeGroupID = *update.AgeGroupID
	}
	if update.FormatID != nil {
		performance.FormatID = *update.FormatID
	}

	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Participants").Save(&performance).Error; err != nil {
			return err
		}

		if update.DancerIDs == nil {
			return nil
		}

		if err := tx.Where("performance_id = ?", id).Delete(&PerformanceParticipant{}).Error; err != nil {
			return err
		}
		for _, dancerID := range update.DancerIDs {
			participant := PerformanceParticipant{PerformanceID: id, DancerID: dancerID}
			if err := tx.Create(&participant).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Performance{}, err
	}

	return d.FindByID(ctx, id)
}

func (d *PerformanceDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("performance_id = ?", id).Delete(&PerformanceParticipant{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Performance{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPerformanceNotFound
		}

		return nil
	})
}
