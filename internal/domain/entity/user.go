package entity

import "time"

// Roles de usuario. Los permisos efectivos salen de DefaultPermissions.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
)

// User usuario del back-office.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
