package auth

// User roles as stored in the users collection. Roles are mutated
// out-of-band; no endpoint changes them.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super admin"
)

// IsAdminRole reports whether role clears the admin gate.
func IsAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
