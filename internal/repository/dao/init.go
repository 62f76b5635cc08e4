package dao

import (
	"gorm.io/gorm"

	"github.com/dancefest/api/internal/domain"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Role{},
		&Permission{},
		&UserRole{},
		&Event{},
		&Studio{},
		&StudioRepresentative{},
		&StudioEventRegistration{},
		&Dancer{},
		&DanceCategory{},
		&AgeGroup{},
		&DanceFormat{},
		&Performance{},
		&PerformanceParticipant{},
		&Judge{},
		&Invitation{},
	)
}

// SeedReferenceData upserts the static roles, permissions and their join
// rows. Safe to run on every startup.
func SeedReferenceData(db *gorm.DB) error {
	permissions := []Permission{
		{Key: domain.PermEventManage, Name: "Manage Events", Description: "Create, edit, and delete events"},
		{Key: domain.PermStudioManage, Name: "Manage Studios", Description: "Manage studio information"},
		{Key: domain.PermDancerManage, Name: "Manage Dancers", Description: "Add, edit, and remove dancers"},
		{Key: domain.PermPerformanceManage, Name: "Manage Performances", Description: "Register and manage performances"},
		{Key: domain.PermEventRegister, Name: "Register for Events", Description: "Register studios for events"},
		{Key: domain.PermScoreSubmit, Name: "Submit Scores", Description: "Submit performance scores"},
	}

	roles := []Role{
		{Key: domain.RoleAdmin, Name: "Administrator", Description: "Full system access"},
		{Key: domain.RoleRepresentative, Name: "Studio Representative", Description: "Manages studio dancers and performances"},
		{Key: domain.RoleJudge, Name: "Judge", Description: "Scores performances"},
		{Key: domain.RoleModerator, Name: "Moderator", Description: "Controls stage flow and validates scores"},
	}

	grants := map[string][]string{
		domain.RoleAdmin: {
			domain.PermEventManage, domain.PermStudioManage, domain.PermDancerManage,
			domain.PermPerformanceManage, domain.PermEventRegister, domain.PermScoreSubmit,
		},
		domain.RoleRepresentative: {
			domain.PermStudioManage, domain.PermDancerManage,
			domain.PermPerformanceManage, domain.PermEventRegister,
		},
		domain.RoleJudge:     {domain.PermScoreSubmit},
		domain.RoleModerator: {domain.PermScoreSubmit},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		byKey := make(map[string]Permission, len(permissions))
		for _, p := range permissions {
			perm := p
			if err := tx.Where(Permission{Key: p.Key}).FirstOrCreate(&perm).Error; err != nil {
				return err
			}
			byKey[perm.Key] = perm
		}

		for _, r := range roles {
			role := r
			if err := tx.Where(Role{Key: r.Key}).FirstOrCreate(&role).Error; err != nil {
				return err
			}

			for _, permKey := range grants[role.Key] {
				rp := RolePermission{RoleID: role.ID, PermissionID: byKey[permKey].ID}
				if err := tx.Where(rp).FirstOrCreate(&rp).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}
