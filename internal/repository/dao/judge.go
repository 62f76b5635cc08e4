package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dancefest/api/internal/domain"
)

var ErrJudgeNotFound = errors.New("judge not found")

type Judge struct {
	ID      uint `gorm:"primaryKey"`
	EventID uint `gorm:"not null;index"`
	UserID  uint `gorm:"not null;index"`

	Name        string `gorm:"not null"`
	Description string
	Country     string
	City        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type JudgeDAO struct {
	db *gorm.DB
}

func NewJudgeDAO(db *gorm.DB) *JudgeDAO {
	return &JudgeDAO{
		db: db,
	}
}

func (d *JudgeDAO) Insert(ctx context.Context, judge Judge) (Judge, error) {
	if err := d.db.WithContext(ctx).Create(&judge).Error; err != nil {
		return Judge{}, err
	}

	return judge, nil
}

func (d *JudgeDAO) FindByEventID(ctx context.Context, eventID uint) ([]Judge, error) {
	var judges []Judge

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Order("name asc").Find(&judges)
	if result.Error != nil {
		return nil, result.Error
	}

	return judges, nil
}

func (d *JudgeDAO) FindByID(ctx context.Context, eventID, id uint) (Judge, error) {
	var judge Judge

	result := d.db.WithContext(ctx).Where("id = ? AND event_id = ?", id, eventID).First(&judge)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Judge{}, ErrJudgeNotFound
		}

		return Judge{}, result.Error
	}

	return judge, nil
}

func (d *JudgeDAO) Update(ctx context.Context, eventID, id uint, update domain.JudgeUpdate) (Judge, error) {
	judge, err := d.FindByID(ctx, eventID, id)
	if err != nil {
		return Judge{}, err
	}

	if update.Name != nil {
		judge.Name = *update.Name
	}
	if update.Description != nil {
		judge.Description = *update.Description
	}
	if update.Country != nil {
		judge.Country = *update.Country
	}
	if update.City != nil {
		judge.City = *update.City
	}
	if update.EventID != nil {
		judge.EventID = *update.EventID
	}

	if err := d.db.WithContext(ctx).Save(&judge).Error; err != nil {
		return Judge{}, err
	}

	return judge, nil
}

// Delete removes the panel entry for good; judges carry no soft-delete
// tombstone.
func (d *JudgeDAO) Delete(ctx context.Context, eventID, id uint) error {
	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&Judge{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJudgeNotFound
	}

	return nil
}
