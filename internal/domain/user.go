package domain

import "time"

// Role is a user's role in the system
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a bot user, created on first interaction
type User struct {
	ID         int64
	TelegramID int64
	Username   string
	FirstName  string
	Role       Role
	CreatedAt  time.Time
}
