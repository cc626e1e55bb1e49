package user

// Role of the authenticated principal within its company
type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleManager  Role = "manager"  // Can approve leave, correct attendance and run payroll
	RoleEmployee Role = "employee" // Regular employee
)

func (r Role) IsValid() bool {
	_, ok := RolePermissions[r]
	return ok
}

// Principal is the caller identified by a verified access token.
type Principal struct {
	UserID     string
	EmployeeID *string
	CompanyID  string
	Role       Role
}

func (p Principal) IsOwner() bool {
	return p.Role == RoleOwner
}

func (p Principal) IsManager() bool {
	return p.Role == RoleManager || p.Role == RoleOwner
}

// CanActFor reports whether the principal may act on the given employee's records.
// Managers act for anyone in their company; employees only for themselves.
func (p Principal) CanActFor(employeeID string) bool {
	if p.IsManager() {
		return true
	}
	return p.EmployeeID != nil && *p.EmployeeID == employeeID
}
