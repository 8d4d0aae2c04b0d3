package constants

import (
	"strings"
)

// ==========================
// ✅ Role names
// ==========================
const (
	RoleAdmin    = "admin"
	RolePengurus = "pengurus"
	RoleUstadz   = "ustadz"
	RoleSantri   = "santri"
	RoleOrangtua = "orangtua"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RolePengurus,
		RoleUstadz,
		RoleSantri,
		RoleOrangtua,
	}

	StaffRoles = []string{
		RoleAdmin,
		RolePengurus,
	}
)

// NormalizeRole menyamakan format role dari token (trim + lowercase).
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// ValidRole: role termasuk daftar role yang dikenal aplikasi.
func ValidRole(role string) bool {
	r := NormalizeRole(role)
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

func IsStaff(role string) bool {
	r := NormalizeRole(role)
	for _, s := range StaffRoles {
		if r == s {
			return true
		}
	}
	return false
}

// ==========================
// ✅ Landing page per role
// ==========================

// LandingRoutes memetakan role → halaman awal frontend setelah login.
// Role yang tidak dikenal jatuh ke DefaultLandingRoute.
var LandingRoutes = map[string]string{
	RoleAdmin:    "/admin/dashboard",
	RolePengurus: "/pengurus/dashboard",
	RoleUstadz:   "/ustadz/dashboard",
	RoleSantri:   "/santri/beranda",
	RoleOrangtua: "/orangtua/beranda",
}

const DefaultLandingRoute = "/login"

func LandingRouteFor(role string) string {
	if route, ok := LandingRoutes[NormalizeRole(role)]; ok {
		return route
	}
	return DefaultLandingRoute
}
