package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../../mocks/mock_user_directory.go -package=mocks github.com/lokamarket/auth-service/internal/auth/domain UserDirectory

// UserDirectory is the read/write surface over user records. Lookups return
// (nil, nil) when no row matches.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByIDWithRole(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	GetAllWithRoles(ctx context.Context) ([]*User, error)
	UpdateRole(ctx context.Context, userID string, roleID int) error
}

//go:generate mockgen -destination=../../mocks/mock_refresh_token_store.go -package=mocks github.com/lokamarket/auth-service/internal/auth/domain RefreshTokenStore

// RefreshTokenStore persists refresh token records. Status transitions go
// through CASStatus or Rotate so a record can never leave a terminal state.
type RefreshTokenStore interface {
	Insert(ctx context.Context, record *RefreshTokenRecord) error
	FindByHash(ctx context.Context, tokenHash string) (*RefreshTokenRecord, error)
	// CASStatus flips a record from expected to next in one statement and
	// reports whether the transition won. replacedByID is only set for
	// rotations.
	CASStatus(ctx context.Context, id string, expected, next TokenStatus, replacedByID *string) (bool, error)
	// Rotate marks the old record rotated and inserts its replacement in a
	// single transaction. Returns false without inserting when the old
	// record is no longer active.
	Rotate(ctx context.Context, oldID string, replacement *RefreshTokenRecord) (bool, error)
	RevokeAllActiveInFamily(ctx context.Context, familyID string) error
	RevokeAllActiveByUserID(ctx context.Context, userID string) error
	ListActiveByUserID(ctx context.Context, userID string) ([]*RefreshTokenRecord, error)
	CountActiveByUserID(ctx context.Context, userID string) (int, error)
	RevokeOldestActiveByUserID(ctx context.Context, userID string) error
}

//go:generate mockgen -destination=../../mocks/mock_security_audit_store.go -package=mocks github.com/lokamarket/auth-service/internal/auth/domain SecurityAuditStore

// SecurityAuditStore records login attempts and known devices. Audit rows
// also back the login throttle window.
type SecurityAuditStore interface {
	RecordLoginAttempt(ctx context.Context, email, ip string, success bool) error
	CountRecentFailedAttempts(ctx context.Context, email, ip string, since time.Time) (int, error)
	UpsertTrustedDevice(ctx context.Context, userID, fingerprint, userAgent, ip string) error
}

//go:generate mockgen -destination=../../mocks/mock_password_verifier.go -package=mocks github.com/lokamarket/auth-service/internal/auth/domain PasswordVerifier

// PasswordVerifier compares plaintext passwords against stored hashes.
type PasswordVerifier interface {
	Hash(plain string) (string, error)
	Matches(plain, storedHash string) bool
}
