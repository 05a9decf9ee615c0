package model

// Role represents the access level of a user.
type Role string

const (
	// RoleAdmin has full access, including item management and activity logs.
	RoleAdmin Role = "admin"
	// RoleStaff is a regular warehouse operator with restricted access.
	RoleStaff Role = "staff"
)

// User represents a WMS user account as returned by the backend.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user has admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsStaff reports whether the user has staff role.
func (u *User) IsStaff() bool {
	return u.Role == RoleStaff
}
