package constants

// User types carried in the token's user_type claim.
const (
	RoleListener     = "listener"
	RolePublisher    = "publisher"
	RoleAdmin        = "admin"
	RoleSuperAdmin   = "superadmin"
	RoleSuperUser    = "superuser"
	RoleMaxSuperUser = "maxsuperuser"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	// ElevatedRoles may verify channels.
	ElevatedRoles = []string{
		RoleMaxSuperUser,
		RoleSuperUser,
		RoleSuperAdmin,
		RoleAdmin,
	}
)
