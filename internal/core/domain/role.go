package domain

import "strings"

// RoleName identifies one of the seeded roles.
type RoleName string

const (
	RoleAdmin RoleName = "admin"
	RoleUser  RoleName = "user"
)

// Role is a named permission level referenced by users.
type Role struct {
	RoleID      string   `json:"_id"`
	Name        RoleName `json:"name"`
	Description string   `json:"description"`
}

// ForcedRoles maps an email address to a role that always wins over the
// role stored on the user record. Keys are lower-cased.
type ForcedRoles map[string]RoleName

// ParseForcedRoles reads "email=role" pairs separated by commas.
// Malformed pairs and unknown role names are skipped.
func ParseForcedRoles(raw string) ForcedRoles {
	out := ForcedRoles{}
	for _, pair := range strings.Split(raw, ",") {
		email, role, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		email = strings.ToLower(strings.TrimSpace(email))
		name := RoleName(strings.ToLower(strings.TrimSpace(role)))
		if email == "" || (name != RoleAdmin && name != RoleUser) {
			continue
		}
		out[email] = name
	}
	return out
}

// Resolve returns the forced role for email, or stored when none applies.
func (f ForcedRoles) Resolve(email string, stored RoleName) RoleName {
	if forced, ok := f[strings.ToLower(email)]; ok {
		return forced
	}
	return stored
}
