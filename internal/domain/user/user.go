package user

import "time"

// Role is the fixed set of roles a user can hold. It is set at creation and
// only changes through an explicit profile edit.
type Role string

const (
	RoleListener Role = "Listener"
	RoleHost     Role = "Host"
)

func (r Role) Valid() bool {
	return r == RoleListener || r == RoleHost
}

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUserInput struct {
	Email        string
	PasswordHash string
	Role         Role
}

// UpdateUserInput carries only the fields present in the edit payload.
// A nil PasswordHash means the stored hash must stay untouched.
type UpdateUserInput struct {
	Email        *string
	PasswordHash *string
}
