package domain

import "time"

// UserRole differentiates citizens from directory administrators.
type UserRole string

const (
	UserRoleCitizen UserRole = "CITIZEN"
	UserRoleAdmin   UserRole = "ADMIN"
)

// User is the domain model for citizens who file complaints.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
