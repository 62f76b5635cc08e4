package domain

// Role and permission keys are static reference data seeded at startup.
// A role's permission set is never mutated at request time.

const (
	RoleAdmin          = "admin"
	RoleRepresentative = "representative"
	RoleJudge          = "judge"
	RoleModerator      = "moderator"
)

const (
	PermEventManage       = "event.manage"
	PermStudioManage      = "studio.manage"
	PermDancerManage      = "dancer.manage"
	PermPerformanceManage = "performance.manage"
	PermEventRegister     = "event.register"
	PermScoreSubmit       = "score.submit"
)

type Role struct {
	ID          uint   `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Permission struct {
	ID          uint   `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
