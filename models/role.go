// models/role.go
package models

// Role is the lookup entity behind the role dropdowns.
type Role struct {
	ID       string `json:"id"`
	RoleName string `json:"roleName"`
}
