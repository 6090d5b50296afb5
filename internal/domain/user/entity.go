package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	RoleCollaborator = "Collaborator"
	RoleLeader       = "Leader"
	RoleHRAdmin      = "HRAdmin"

	StatusActive = "Active"
)

type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
	JobTitle     string
	OpenToWork   bool
	Status       string
	CreatedAt    time.Time
}

// Active treats an empty status as active; only an explicit other value
// blocks login.
func (u User) Active() bool {
	return u.Status == "" || u.Status == StatusActive
}

func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// CanRank reports whether the role may list ranked candidates for an opening.
func CanRank(role string) bool {
	return role == RoleLeader || role == RoleHRAdmin
}
