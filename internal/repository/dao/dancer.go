package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dancefest/api/internal/domain"
)

var ErrDancerNotFound = errors.New("dancer not found")

type Dancer struct {
	ID       uint `gorm:"primaryKey"`
	StudioID uint `gorm:"not null;index"`

	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	BirthDate time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type DancerDAO struct {
	db *gorm.DB
}

func NewDancerDAO(db *gorm.DB) *DancerDAO {
	return &DancerDAO{
		db: db,
	}
}

func (d *DancerDAO) Insert(ctx context.Context, dancer Dancer) (Dancer, error) {
	result := d.db.WithContext(ctx).Create(&dancer)
	if result.Error != nil {
		return Dancer{}, result.Error
	}

	return dancer, nil
}

func (d *DancerDAO) FindByID(ctx context.Context, id uint) (Dancer, error) {
	var dancer Dancer

	result := d.db.WithContext(ctx).First(&dancer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Dancer{}, ErrDancerNotFound
		}

		return Dancer{}, result.Error
	}

	return dancer, nil
}

func (d *DancerDAO) FindByStudioID(ctx context.Context, studioID uint) ([]Dancer, error) {
	var dancers []Dancer

	result := d.db.WithContext(ctx).
		Where("studio_id = ?", studioID).
		Order("last_name asc").
		Find(&dancers)
	if result.Error != nil {
		return nil, result.Error
	}

	return dancers, nil
}

// FindLiveByIDs returns the subset of the given dancers that exist, are not
// soft-deleted and belong to the studio.
func (d *DancerDAO) FindLiveByIDs(ctx context.Context, studioID uint, ids []uint) ([]Dancer, error) {
	var dancers []Dancer

	result := d.db.WithContext(ctx).
		Where("studio_id = ? AND id IN ?", studioID, ids).
		Find(&dancers)
	if result.Error != nil {
		return nil, result.Error
	}

	return dancers, nil
}

func (d *DancerDAO) Update(ctx context.Context, id uint, update domain.DancerUpdate) (Dancer, error) {
	dancer, err := d.FindByID(ctx, id)
	if err != nil {
		return Dancer{}, err
	}

	if update.FirstName != nil {
		dancer.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		dancer.LastName = *update.LastName
	}
	if update.BirthDate != nil {
		dancer.BirthDate = *update.BirthDate
	}

	if err := d.db.WithContext(ctx).Save(&dancer).Error; err != nil {
		return Dancer{}, err
	}

	return dancer, nil
}

func (d *DancerDAO) SoftDelete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Dancer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDancerNotFound
	}

	return nil
}
