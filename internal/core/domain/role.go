package domain

import "errors"

// PermissionWildcard grants every permission to the holding role.
const PermissionWildcard = "*"

var ErrRoleNotFound = errors.New("role not found")
var ErrRoleExists = errors.New("role already exists")
var ErrUnknownRole = errors.New("role does not exist")

// Role is a persisted copy of a registry role: a unique name plus the set of
// permission grants it carries. The static registry remains the authority on
// which roles may exist at all.
type Role struct {
	ID     string   `json:"id"`
	Name   string   `json:"role_name"`
	Grants []string `json:"grants"`
}
