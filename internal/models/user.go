package models

import "time"

// User is a seeded login. Passwords are stored and compared as plain text.
type User struct {
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user may modify data
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
