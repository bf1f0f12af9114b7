package model

import "fmt"

// Role is the closed set of access levels a user can hold.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// ParseRole converts a raw string into a Role, rejecting anything outside
// the known set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleViewer:
		return RoleViewer, nil
	case RoleEditor:
		return RoleEditor, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleViewer, RoleEditor, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanUpload reports whether the role may add documents to the library.
func (r Role) CanUpload() bool {
	switch r {
	case RoleEditor, RoleAdmin:
		return true
	case RoleViewer:
		return false
	default:
		return false
	}
}

// CanManageUsers reports whether the role may access the user directory listing.
func (r Role) CanManageUsers() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleViewer, RoleEditor:
		return false
	default:
		return false
	}
}
