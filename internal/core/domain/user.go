package domain

import "strings"

// User represents a registered user of the application.
type User struct {
	UserID       string   `json:"_id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	RoleID       string   `json:"roleId"`
	RoleName     RoleName `json:"role"` // populated from roles.name
	IsActive     bool     `json:"isActive"`
	Phone        string   `json:"phone,omitempty"`
	Address      string   `json:"address,omitempty"`
	Timestamps
}

// FullName joins first and last name the way it is shown to users.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
