package domain

import "time"

// Role is a user's trust tier
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

// User represents an account in the system
type User struct {
	ID        int64
	Username  string
	Role      Role
	CreatedAt time.Time
}

// IsCustomer returns true for regular customer accounts
func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

// IsStaff returns true for staff accounts
func (u *User) IsStaff() bool {
	return u.Role == RoleStaff
}

// IsAdmin returns true for administrator accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole reports whether s is a known role value
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return true
	}
	return false
}
