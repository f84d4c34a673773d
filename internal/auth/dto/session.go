package dto

import "time"

// SessionResult is what login and refresh hand back to the HTTP layer.
type SessionResult struct {
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
	TokenType       string `json:"token_type"`
	ExpiresInMillis int64  `json:"expires_in"`
}

type SessionOutput struct {
	ID                string    `json:"id"`
	FamilyID          string    `json:"family_id"`
	DeviceFingerprint string    `json:"device_fingerprint"`
	IPAddress         string    `json:"ip_address"`
	UserAgent         string    `json:"user_agent"`
	IssuedAt          time.Time `json:"issued_at"`
	ExpiresAt         time.Time `json:"expires_at"`
}
