package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrRoleNotFound = errors.New("role not found")

type Role struct {
	ID          uint   `gorm:"primaryKey"`
	Key         string `gorm:"unique;not null"`
	Name        string `gorm:"not null"`
	Description string

	Permissions []Permission `gorm:"many2many:role_permissions;"`
}

type Permission struct {
	ID          uint   `gorm:"primaryKey"`
	Key         string `gorm:"unique;not null"`
	Name        string `gorm:"not null"`
	Description string
}

type RolePermission struct {
	RoleID       uint `gorm:"primaryKey"`
	PermissionID uint `gorm:"primaryKey"`
}

// UserRole ties a user to a role, optionally scoped to one event. The
// (user, role, event) tuple is unique; rows are only created and deleted,
// never updated.
type UserRole struct {
	ID      uint  `gorm:"primaryKey"`
	UserID  uint  `gorm:"not null;uniqueIndex:uni_user_role_event"`
	RoleID  uint  `gorm:"not null;uniqueIndex:uni_user_role_event"`
	EventID *uint `gorm:"uniqueIndex:uni_user_role_event"`

	Role Role `gorm:"foreignKey:RoleID"`

	CreatedAt time.Time
}

type RoleDAO struct {
	db *gorm.DB
}

func NewRoleDAO(db *gorm.DB) *RoleDAO {
	return &RoleDAO{
		db: db,
	}
}

func (d *RoleDAO) FindByKey(ctx context.Context, key string) (Role, error) {
	var role Role

	result := d.db.WithContext(ctx).First(&role, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Role{}, ErrRoleNotFound
		}

		return Role{}, result.Error
	}

	return role, nil
}

// FindAssignments loads every (role, event scope, permission keys) tuple the
// user currently holds, in one consistent read per table.
func (d *RoleDAO) FindAssignments(ctx context.Context, userID uint) ([]UserRole, error) {
	var assignments []UserRole

	result := d.db.WithContext(ctx).
		Preload("Role.Permissions").
		Where("user_id = ?", userID).
		Find(&assignments)
	if result.Error != nil {
		return nil, result.Error
	}

	return assignments, nil
}

// Grant ensures the (user, role, event) assignment exists. Idempotent.
func (d *RoleDAO) Grant(ctx context.Context, userID, roleID uint, eventID *uint) error {
	return grantRole(d.db.WithContext(ctx), userID, roleID, eventID)
}

func grantRole(tx *gorm.DB, userID, roleID uint, eventID *uint) error {
	query := tx.Where("user_id = ? AND role_id = ?", userID, roleID)
	if eventID == nil {
		query = query.Where("event_id IS NULL")
	} else {
		query = query.Where("event_id = ?", *eventID)
	}

	assignment := UserRole{UserID: userID, RoleID: roleID, EventID: eventID}

	return query.FirstOrCreate(&assignment).Error
}
