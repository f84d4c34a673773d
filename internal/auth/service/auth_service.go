package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lokamarket/auth-service/config"
	"github.com/lokamarket/auth-service/internal/auth/domain"
	"github.com/lokamarket/auth-service/internal/auth/dto"
	autherror "github.com/lokamarket/auth-service/internal/errors"
	"github.com/lokamarket/auth-service/pkg/constant"
	"go.uber.org/zap"
)

// AuthService composes credential checking, access token issuance and the
// refresh token lifecycle into the public session operations.
type AuthService struct {
	authenticator *CredentialAuthenticator
	lifecycle     *RefreshTokenLifecycleManager
	users         domain.UserDirectory
	store         domain.RefreshTokenStore
	audit         domain.SecurityAuditStore
	passwords     domain.PasswordVerifier
	tokens        TokenIssuer
	cfg           *config.Config
	logger        *zap.Logger
}

func NewAuthService(
	authenticator *CredentialAuthenticator,
	lifecycle *RefreshTokenLifecycleManager,
	users domain.UserDirectory,
	store domain.RefreshTokenStore,
	audit domain.SecurityAuditStore,
	passwords domain.PasswordVerifier,
	tokens TokenIssuer,
	cfg *config.Config,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		lifecycle:     lifecycle,
		users:         users,
		store:         store,
		audit:         audit,
		passwords:     passwords,
		tokens:        tokens,
		cfg:           cfg,
		logger:        logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: hash,
		RoleID:       constant.DefaultUserRoleID,
		RoleName:     constant.RoleUser,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.SessionResult, error) {
	since := time.Now().Add(-s.cfg.LoginWindow())
	failures, err := s.audit.CountRecentFailedAttempts(ctx, input.Email, input.IPAddress, since)
	if err != nil {
		return nil, err
	}
	if failures >= s.cfg.LoginMaxAttempts {
		s.logger.Warn("login throttled",
			zap.String("email", input.Email),
			zap.String("ip", input.IPAddress),
			zap.Int("failures", failures))
		return nil, autherror.ErrTooManyLoginAttempts
	}

	user, err := s.authenticator.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			if recErr := s.audit.RecordLoginAttempt(ctx, input.Email, input.IPAddress, false); recErr != nil {
				s.logger.Warn("failed to record login attempt", zap.Error(recErr))
			}
		}
		return nil, err
	}

	accessToken, err := s.tokens.Issue(user.ID, user.Email, user.RoleName)
	if err != nil {
		return nil, err
	}

	device := domain.DeviceContext{
		Fingerprint: input.Fingerprint,
		IPAddress:   input.IPAddress,
		UserAgent:   input.UserAgent,
	}
	refreshToken, _, err := s.lifecycle.Create(ctx, user, device)
	if err != nil {
		return nil, err
	}

	if err := s.audit.UpsertTrustedDevice(ctx, user.ID, input.Fingerprint, input.UserAgent, input.IPAddress); err != nil {
		s.logger.Warn("failed to upsert trusted device", zap.String("user_id", user.ID), zap.Error(err))
	}
	if err := s.audit.RecordLoginAttempt(ctx, input.Email, input.IPAddress, true); err != nil {
		s.logger.Warn("failed to record login attempt", zap.Error(err))
	}

	s.enforceSessionCap(ctx, user.ID)

	return &dto.SessionResult{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		TokenType:       constant.TokenTypeBearer,
		ExpiresInMillis: s.tokens.GetAccessTokenExpiry().Milliseconds(),
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.SessionResult, error) {
	device := domain.DeviceContext{
		Fingerprint: input.Fingerprint,
		IPAddress:   input.IPAddress,
		UserAgent:   input.UserAgent,
	}

	rotation, err := s.lifecycle.ValidateAndRotate(ctx, input.RefreshToken, device)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByIDWithRole(ctx, rotation.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	accessToken, err := s.tokens.Issue(user.ID, user.Email, user.RoleName)
	if err != nil {
		return nil, err
	}

	s.enforceSessionCap(ctx, user.ID)

	return &dto.SessionResult{
		AccessToken:     accessToken,
		RefreshToken:    rotation.RawToken,
		TokenType:       constant.TokenTypeBearer,
		ExpiresInMillis: s.tokens.GetAccessTokenExpiry().Milliseconds(),
	}, nil
}

// Logout always succeeds from the caller's perspective.
func (s *AuthService) Logout(ctx context.Context, input dto.LogoutInput) {
	s.lifecycle.Revoke(ctx, input.RefreshToken)
}

func (s *AuthService) ForceLogout(ctx context.Context, userID string) error {
	return s.store.RevokeAllActiveByUserID(ctx, userID)
}

func (s *AuthService) GetUserSessions(ctx context.Context, userID string) ([]dto.SessionOutput, error) {
	records, err := s.store.ListActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	sessions := make([]dto.SessionOutput, 0, len(records))
	for _, rec := range records {
		sessions = append(sessions, dto.SessionOutput{
			ID:                rec.ID,
			FamilyID:          rec.FamilyID,
			DeviceFingerprint: rec.Device.Fingerprint,
			IPAddress:         rec.Device.IPAddress,
			UserAgent:         rec.Device.UserAgent,
			IssuedAt:          rec.IssuedAt,
			ExpiresAt:         rec.ExpiresAt,
		})
	}

	return sessions, nil
}

func (s *AuthService) GetAllUsers(ctx context.Context) ([]dto.UserOutput, error) {
	users, err := s.users.GetAllWithRoles(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserOutput, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserOutput{
			ID:        u.ID,
			Email:     u.Email,
			RoleID:    u.RoleID,
			RoleName:  u.RoleName,
			Active:    u.Active,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}

	return out, nil
}

func (s *AuthService) UpdateUserRole(ctx context.Context, userID string, input dto.UpdateRoleInput) error {
	return s.users.UpdateRole(ctx, userID, input.RoleID)
}

// enforceSessionCap revokes the oldest active token when a user exceeds the
// configured session limit. Hygiene, not a theft response, so failures only
// warn.
func (s *AuthService) enforceSessionCap(ctx context.Context, userID string) {
	if s.cfg.MaxActiveRefreshTokens <= 0 {
		return
	}

	count, err := s.store.CountActiveByUserID(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to count active tokens", zap.String("user_id", userID), zap.Error(err))
		return
	}
	if count <= s.cfg.MaxActiveRefreshTokens {
		return
	}

	if err := s.store.RevokeOldestActiveByUserID(ctx, userID); err != nil {
		s.logger.Warn("failed to revoke oldest refresh token",
			zap.String("user_id", userID), zap.Error(err))
	}
}
