package actor

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Actor is the authenticated caller supplied by the auth collaborator.
// The core never authenticates; it only scopes queries by branch.
type Actor struct {
	UserID   string
	Role     Role
	BranchID string
}

// BranchScope resolves which branch a query should be limited to.
// Staff are pinned to their own branch; admins see everything unless they
// asked for a specific branch. Empty string means "all branches".
func (a Actor) BranchScope(requested string) string {
	if a.Role == RoleStaff && a.BranchID != "" {
		return a.BranchID
	}
	return requested
}
