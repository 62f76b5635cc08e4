package dao

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrReferenceNotFound   = errors.New("reference data not found")
	ErrReferenceNameExists = errors.New("name already exists for this event")
	ErrReferenceInUse      = errors.New("reference data in use by performances")
)

// DanceCategory, AgeGroup and DanceFormat are the event-scoped reference
// tables performances point into. Names are unique per event.
type DanceCategory struct {
	ID      uint   `gorm:"primaryKey"`
	EventID uint   `gorm:"not null;uniqueIndex:uni_category_event_name"`
	Name    string `gorm:"not null;uniqueIndex:uni_category_event_name"`
}

type AgeGroup struct {
	ID      uint   `gorm:"primaryKey"`
	EventID uint   `gorm:"not null;uniqueIndex:uni_age_group_event_name"`
	Name    string `gorm:"not null;uniqueIndex:uni_age_group_event_name"`
	MinAge  int
	MaxAge  int
}

type DanceFormat struct {
	ID      uint   `gorm:"primaryKey"`
	EventID uint   `gorm:"not null;uniqueIndex:uni_format_event_name"`
	Name    string `gorm:"not null;uniqueIndex:uni_format_event_name"`
}

type ReferenceDAO struct {
	db *gorm.DB
}

func NewReferenceDAO(db *gorm.DB) *ReferenceDAO {
	return &ReferenceDAO{
		db: db,
	}
}

func mapReferenceInsertErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, "uni_") {
		return ErrReferenceNameExists
	}

	return err
}

func (d *ReferenceDAO) InsertCategory(ctx context.Context, category DanceCategory) (DanceCategory, error) {
	if err := d.db.WithContext(ctx).Create(&category).Error; err != nil {
		return DanceCategory{}, mapReferenceInsertErr(err)
	}

	return category, nil
}

func (d *ReferenceDAO) FindCategories(ctx context.Context, eventID uint) ([]DanceCategory, error) {
	var categories []DanceCategory

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Order("name asc").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *ReferenceDAO) FindCategory(ctx context.Context, eventID, id uint) (DanceCategory, error) {
	var category DanceCategory

	result := d.db.WithContext(ctx).Where("id = ? AND event_id = ?", id, eventID).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return DanceCategory{}, ErrReferenceNotFound
		}

		return DanceCategory{}, result.Error
	}

	return category, nil
}

func (d *ReferenceDAO) UpdateCategory(ctx context.Context, eventID, id uint, name string) (DanceCategory, error) {
	category, err := d.FindCategory(ctx, eventID, id)
	if err != nil {
		return DanceCategory{}, err
	}

	category.Name = name
	if err := d.db.WithContext(ctx).Save(&category).Error; err != nil {
		return DanceCategory{}, mapReferenceInsertErr(err)
	}

	return category, nil
}

// DeleteCategory rejects the delete while any performance references the
// category.
func (d *ReferenceDAO) DeleteCategory(ctx context.Context, eventID, id uint) error {
	if _, err := d.FindCategory(ctx, eventID, id); err != nil {
		return err
	}

	var count int64
	if err := d.db.WithContext(ctx).Model(&Performance{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrReferenceInUse
	}

	return d.db.WithContext(ctx).Delete(&DanceCategory{}, id).Error
}

func (d *ReferenceDAO) InsertAgeGroup(ctx context.Context, group AgeGroup) (AgeGroup, error) {
	if err := d.db.WithContext(ctx).Create(&group).Error; err != nil {
		return AgeGroup{}, mapReferenceInsertErr(err)
	}

	return group, nil
}

func (d *ReferenceDAO) FindAgeGroups(ctx context.Context, eventID uint) ([]AgeGroup, error) {
	var groups []AgeGroup

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Order("min_age asc").Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}

	return groups, nil
}

func (d *ReferenceDAO) FindAgeGroup(ctx context.Context, eventID, id uint) (AgeGroup, error) {
	var group AgeGroup

	result := d.db.WithContext(ctx).Where("id = ? AND event_id = ?", id, eventID).First(&group)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return AgeGroup{}, ErrReferenceNotFound
		}

		return AgeGroup{}, result.Error
	}

	return group, nil
}

func (d *ReferenceDAO) UpdateAgeGroup(ctx context.Context, eventID, id uint, name *string, minAge, maxAge *int) (AgeGroup, error) {
	group, err := d.FindAgeGroup(ctx, eventID, id)
	if err != nil {
		return AgeGroup{}, err
	}

	if name != nil {
		group.Name = *name
	}
	if minAge != nil {
		group.MinAge = *minAge
	}
	if maxAge != nil {
		group.MaxAge = *maxAge
	}

	if err := d.db.WithContext(ctx).Save(&group).Error; err != nil {
		return AgeGroup{}, mapReferenceInsertErr(err)
	}

	return group, nil
}

func (d *ReferenceDAO) DeleteAgeGroup(ctx context.Context, eventID, id uint) error {
	if _, err := d.FindAgeGroup(ctx, eventID, id); err != nil {
		return err
	}

	var count int64
	if err := d.db.WithContext(ctx).Model(&Performance{}).Where("age_group_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrReferenceInUse
	}

	return d.db.WithContext(ctx).Delete(&AgeGroup{}, id).Error
}

func (d *ReferenceDAO) InsertFormat(ctx context.Context, format DanceFormat) (DanceFormat, error) {
	if err := d.db.WithContext(ctx).Create(&format).Error; err != nil {
		return DanceFormat{}, mapReferenceInsertErr(err)
	}

	return format, nil
}

func (d *ReferenceDAO) FindFormats(ctx context.Context, eventID uint) ([]DanceFormat, error) {
	var formats []DanceFormat

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Order("name asc").Find(&formats)
	if result.Error != nil {
		return nil, result.Error
	}

	return formats, nil
}

func (d *ReferenceDAO) FindFormat(ctx context.Context, eventID, id uint) (DanceFormat, error) {
	var format DanceFormat

	result := d.db.WithContext(ctx).Where("id = ? AND event_id = ?", id, eventID).First(&format)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return DanceFormat{}, ErrReferenceNotFound
		}

		return DanceFormat{}, result.Error
	}

	return format, nil
}

func (d *ReferenceDAO) UpdateFormat(ctx context.Context, eventID, id uint, name string) (DanceFormat, error) {
	format, err := d.FindFormat(ctx, eventID, id)
	if err != nil {
		return DanceFormat{}, err
	}

	format.Name = name
	if err := d.db.WithContext(ctx).Save(&format).Error; err != nil {
		return DanceFormat{}, mapReferenceInsertErr(err)
	}

	return format, nil
}

func (d *ReferenceDAO) DeleteFormat(ctx context.Context, eventID, id uint) error {
	if _, err := d.FindFormat(ctx, eventID, id); err != nil {
		return err
	}

	var count int64
	if err := d.db.WithContext(ctx).Model(&Performance{}).Where("format_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrReferenceInUse
	}

	return d.db.WithContext(ctx).Delete(&DanceFormat{}, id).Error
}
