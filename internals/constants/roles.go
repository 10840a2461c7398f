package constants

import "fmt"

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya Admin atau HRAdmin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

const (
	RoleUser    = "User"
	RoleAdmin   = "Admin"
	RoleHRAdmin = "HRAdmin"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleAdmin,
		RoleHRAdmin,
	}

	// ElevatedRoles boleh approve/unapprove/batch-update delegasi
	ElevatedRoles = []string{
		RoleAdmin,
		RoleHRAdmin,
	}
)

// IsElevated: true kalau salah satu role user termasuk ElevatedRoles.
func IsElevated(roles []string) bool {
	for _, r := range roles {
		for _, e := range ElevatedRoles {
			if r == e {
				return true
			}
		}
	}
	return false
}
