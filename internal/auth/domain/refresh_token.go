package domain

import "time"

// TokenStatus is the lifecycle state of a refresh token record. Transitions
// only move forward: an active record becomes rotated or revoked, never the
// other way around.
type TokenStatus string

const (
	TokenStatusActive  TokenStatus = "active"
	TokenStatusRotated TokenStatus = "rotated"
	TokenStatusRevoked TokenStatus = "revoked"
)

// DeviceContext is request metadata captured when a token is issued. It is
// stored for audit only and never feeds into authorization decisions.
type DeviceContext struct {
	Fingerprint string
	IPAddress   string
	UserAgent   string
}

// RefreshTokenRecord is the persisted form of a refresh token. Only the
// SHA-256 hash of the secret handed to the client is ever stored.
type RefreshTokenRecord struct {
	ID           string
	FamilyID     string
	UserID       string
	TokenHash    string
	IssuedAt     time.Time
	ExpiresAt    time.Time
	Status       TokenStatus
	ReplacedByID *string
	Device       DeviceContext
}

func (r *RefreshTokenRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
