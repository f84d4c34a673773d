package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	RoleID       int
	RoleName     string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type LoginAttempt struct {
	ID          string
	Email       string
	IPAddress   string
	AttemptTime time.Time
	Successful  bool
}
