package response

import "github.com/dancefest/api/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// MeResponse is the authenticated profile: the user plus every role
// assignment and the resolved admin flag.
type MeResponse struct {
	User        domain.User             `json:"user"`
	Assignments []domain.RoleAssignment `json:"assignments"`
	IsAdmin     bool                    `json:"is_admin"`
}

type UploadResponse struct {
	Path string `json:"path"`
}
