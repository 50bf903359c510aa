package auth

import "cutlery/internal/model"

// Role is the capability level of a caller.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)

func (r Role) String() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "user"
}

// RoleOf derives the role from the stored admin flag.
func RoleOf(user *model.User) Role {
	if user != nil && user.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// IsAdmin reports whether the caller has the admin role.
func IsAdmin(user *model.User) bool {
	return RoleOf(user) == RoleAdmin
}

func owns(user *model.User, req *model.Requirement) bool {
	return user != nil && req != nil && req.Username == user.Username
}

// CanListAll reports whether the caller sees every requirement.
func CanListAll(user *model.User) bool {
	return IsAdmin(user)
}

// CanView reports whether the caller may read req.
func CanView(user *model.User, req *model.Requirement) bool {
	return IsAdmin(user) || owns(user, req)
}

// CanEdit reports whether the caller may update req.
func CanEdit(user *model.User, req *model.Requirement) bool {
	return IsAdmin(user) || owns(user, req)
}

// CanDelete reports whether the caller may remove req.
func CanDelete(user *model.User, req *model.Requirement) bool {
	return IsAdmin(user) || owns(user, req)
}

// CanAssignOwner reports whether the caller may create requirements for other users.
func CanAssignOwner(user *model.User) bool {
	return IsAdmin(user)
}
