package domain

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	Role   RoleName
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAccess is the single ownership rule for every owned record:
// admins may touch anything, everyone else only their own records.
func (a Actor) CanAccess(ownerID string) bool {
	if a.UserID == "" {
		return false
	}
	return a.IsAdmin() || a.UserID == ownerID
}
