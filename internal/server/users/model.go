package users

import "time"

// Roles assignable to a user record. Registration always produces RoleUser;
// admins are promoted out of band.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the persistent account record. Email is stored lowercased and is
// the sole lookup key; PasswordHash must never leave the service layer.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
