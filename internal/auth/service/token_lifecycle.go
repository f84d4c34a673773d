package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lokamarket/auth-service/internal/auth/domain"
	autherror "github.com/lokamarket/auth-service/internal/errors"
	"go.uber.org/zap"
)

// RotationResult carries what a successful rotation hands back upstream.
type RotationResult struct {
	RawToken  string
	TokenHash string
	RecordID  string
	UserID    string
}

// RefreshTokenLifecycleManager owns the active → rotated/revoked state
// machine over refresh token records. Raw secrets exist only in the scope of
// the call that minted them; the store sees hashes.
type RefreshTokenLifecycleManager struct {
	store       domain.RefreshTokenStore
	tokenTTL    time.Duration
	secretBytes int
	logger      *zap.Logger
}

func NewRefreshTokenLifecycleManager(store domain.RefreshTokenStore, tokenTTL time.Duration, secretBytes int, logger *zap.Logger) *RefreshTokenLifecycleManager {
	return &RefreshTokenLifecycleManager{
		store:       store,
		tokenTTL:    tokenTTL,
		secretBytes: secretBytes,
		logger:      logger,
	}
}

// Create mints a fresh refresh token for a new login. The record starts a new
// family.
func (m *RefreshTokenLifecycleManager) Create(ctx context.Context, user *domain.User, device domain.DeviceContext) (string, *domain.RefreshTokenRecord, error) {
	raw, hash, err := m.newSecret()
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	rec := &domain.RefreshTokenRecord{
		ID:        uuid.NewString(),
		FamilyID:  uuid.NewString(),
		UserID:    user.ID,
		TokenHash: hash,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.tokenTTL),
		Status:    domain.TokenStatusActive,
		Device:    device,
	}

	if err := m.store.Insert(ctx, rec); err != nil {
		return "", nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return raw, rec, nil
}

// ValidateAndRotate exchanges a still-active refresh token for its successor.
// Presenting a rotated or revoked token is treated as theft of the secret and
// kills every active record in the family before the error surfaces.
func (m *RefreshTokenLifecycleManager) ValidateAndRotate(ctx context.Context, rawToken string, device domain.DeviceContext) (*RotationResult, error) {
	rec, err := m.store.FindByHash(ctx, HashSecret(rawToken))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, autherror.ErrTokenInvalid
	}

	if rec.Expired(time.Now()) {
		return nil, autherror.ErrTokenExpired
	}

	if rec.Status != domain.TokenStatusActive {
		return nil, m.handleReuse(ctx, rec)
	}

	raw, hash, err := m.newSecret()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	replacement := &domain.RefreshTokenRecord{
		ID:        uuid.NewString(),
		FamilyID:  rec.FamilyID,
		UserID:    rec.UserID,
		TokenHash: hash,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.tokenTTL),
		Status:    domain.TokenStatusActive,
		Device:    device,
	}

	ok, err := m.store.Rotate(ctx, rec.ID, replacement)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if !ok {
		// A concurrent call consumed the record between our read and the
		// compare-and-set. Whoever lost the race is holding a replayed
		// secret, so the family dies.
		return nil, m.handleReuse(ctx, rec)
	}

	return &RotationResult{
		RawToken:  raw,
		TokenHash: hash,
		RecordID:  replacement.ID,
		UserID:    rec.UserID,
	}, nil
}

// Revoke retires a single token on explicit logout. Unknown, rotated, and
// already-revoked tokens are silent no-ops: logout never reveals whether a
// token was valid and is safe to repeat.
func (m *RefreshTokenLifecycleManager) Revoke(ctx context.Context, rawToken string) {
	rec, err := m.store.FindByHash(ctx, HashSecret(rawToken))
	if err != nil {
		m.logger.Warn("logout: token lookup failed", zap.Error(err))
		return
	}
	if rec == nil {
		return
	}

	ok, err := m.store.CASStatus(ctx, rec.ID, domain.TokenStatusActive, domain.TokenStatusRevoked, nil)
	if err != nil {
		m.logger.Warn("logout: revoke failed", zap.String("token_id", rec.ID), zap.Error(err))
		return
	}
	if ok {
		m.logger.Info("refresh token revoked on logout",
			zap.String("token_id", rec.ID),
			zap.String("user_id", rec.UserID))
	}
}

func (m *RefreshTokenLifecycleManager) handleReuse(ctx context.Context, rec *domain.RefreshTokenRecord) error {
	m.logger.Warn("refresh token reuse detected, revoking family",
		zap.String("token_id", rec.ID),
		zap.String("family_id", rec.FamilyID),
		zap.String("user_id", rec.UserID),
		zap.String("status", string(rec.Status)))

	if err := m.store.RevokeAllActiveInFamily(ctx, rec.FamilyID); err != nil {
		m.logger.Error("failed to revoke token family",
			zap.String("family_id", rec.FamilyID), zap.Error(err))
		return fmt.Errorf("%w: %v", autherror.ErrTokenReuseDetected, err)
	}

	return autherror.ErrTokenReuseDetected
}

func (m *RefreshTokenLifecycleManager) newSecret() (raw, hash string, err error) {
	buf := make([]byte, m.secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate refresh secret: %w", err)
	}

	raw = base64.RawURLEncoding.EncodeToString(buf)
	return raw, HashSecret(raw), nil
}

// HashSecret maps a raw refresh secret to its stored form.
func HashSecret(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
