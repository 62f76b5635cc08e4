package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dancefest/api/internal/domain"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Stage    string `gorm:"not null;default:PRE_REGISTRATION"`
	StartsAt time.Time
	EndsAt   time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Order("starts_at asc").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// Update applies only the fields set in the update struct. The stage is
// edited directly here; there is no transition legality check by design.
func (d *EventDAO) Update(ctx context.Context, id uint, update domain.EventUpdate) (Event, error) {
	event, err := d.FindByID(ctx, id)
	if err != nil {
		return Event{}, err
	}

	if update.Name != nil {
		event.Name = *update.Name
	}
	if update.Stage != nil {
		event.Stage = string(*update.Stage)
	}
	if update.StartsAt != nil {
		event.StartsAt = *update.StartsAt
	}
	if update.EndsAt != nil {
		event.EndsAt = *update.EndsAt
	}

	if err := d.db.WithContext(ctx).Save(&event).Error; err != nil {
		return Event{}, err
	}

	return event, nil
}

// GetStage reads the event's current lifecycle stage.
func (d *EventDAO) GetStage(ctx context.Context, id uint) (string, error) {
	var event Event

	result := d.db.WithContext(ctx).Select("stage").First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrEventNotFound
		}

		return "", result.Error
	}

	return event.Stage, nil
}
