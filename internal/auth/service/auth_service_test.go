package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/lokamarket/auth-service/config"
	"github.com/lokamarket/auth-service/internal/auth/domain"
	"github.com/lokamarket/auth-service/internal/auth/dto"
	"github.com/lokamarket/auth-service/internal/auth/service"
	autherror "github.com/lokamarket/auth-service/internal/errors"
	"github.com/lokamarket/auth-service/internal/mocks"
	"github.com/lokamarket/auth-service/pkg/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authServiceFixture struct {
	users     *mocks.MockUserDirectory
	store     *mocks.MockRefreshTokenStore
	audit     *mocks.MockSecurityAuditStore
	passwords *mocks.MockPasswordVerifier
	tokens    *mocks.MockTokenIssuer
	svc       *service.AuthService
}

func newAuthServiceFixture(ctrl *gomock.Controller) *authServiceFixture {
	f := &authServiceFixture{
		users:     mocks.NewMockUserDirectory(ctrl),
		store:     mocks.NewMockRefreshTokenStore(ctrl),
		audit:     mocks.NewMockSecurityAuditStore(ctrl),
		passwords: mocks.NewMockPasswordVerifier(ctrl),
		tokens:    mocks.NewMockTokenIssuer(ctrl),
	}

	cfg := &config.Config{
		LoginMaxAttempts:       5,
		LoginWindowMinutes:     15,
		MaxActiveRefreshTokens: 5,
	}
	logger := zap.NewNop()
	authenticator := service.NewCredentialAuthenticator(f.users, f.passwords, logger)
	lifecycle := service.NewRefreshTokenLifecycleManager(f.store, 30*24*time.Hour, 32, logger)
	f.svc = service.NewAuthService(authenticator, lifecycle, f.users, f.store, f.audit, f.passwords, f.tokens, cfg, logger)

	return f
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newAuthServiceFixture(ctrl)

	input := dto.LoginInput{
		Email:       "test@example.com",
		Password:    "password123",
		Fingerprint: "fp-1",
		IPAddress:   "1.2.3.4",
		UserAgent:   "test-agent",
	}
	user := &domain.User{ID: "user-123", Email: input.Email, PasswordHash: "hash", RoleName: "user", Active: true}

	f.audit.EXPECT().CountRecentFailedAttempts(gomock.Any(), input.Email, input.IPAddress, gomock.Any()).Return(0, nil)
	f.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(user, nil)
	f.passwords.EXPECT().Matches(input.Password, "hash").Return(true)
	f.tokens.EXPECT().Issue(user.ID, user.Email, user.RoleName).Return("access-token", nil)

	var stored *domain.RefreshTokenRecord
	f.store.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.RefreshTokenRecord) error {
			stored = rec
			return nil
		})
	f.audit.EXPECT().UpsertTrustedDevice(gomock.Any(), user.ID, input.Fingerprint, input.UserAgent, input.IPAddress).Return(nil)
	f.audit.EXPECT().RecordLoginAttempt(gomock.Any(), input.Email, input.IPAddress, true).Return(nil)
	f.store.EXPECT().CountActiveByUserID(gomock.Any(), user.ID).Return(1, nil)
	f.tokens.EXPECT().GetAccessTokenExpiry().Return(15 * time.Minute)

	result, err := f.svc.Login(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.Equal(t, constant.TokenTypeBearer, result.TokenType)
	assert.Equal(t, (15 * time.Minute).Milliseconds(), result.ExpiresInMillis)

	// The returned secret resolves to the freshly stored active record.
	require.NotNil(t, stored)
	assert.Equal(t, service.HashSecret(result.RefreshToken), stored.TokenHash)
	assert.Equal(t, domain.TokenStatusActive, stored.Status)
	assert.NotEmpty(t, stored.FamilyID)
	assert.Equal(t, "fp-1", stored.Device.Fingerprint)
}

func TestAuthService_Login_InvalidCredentialsRecordsAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newAuthServiceFixture(ctrl)

	input := dto.LoginInput{Email: "test@example.com", Password: "wrong", IPAddress: "1.2.3.4"}

	f.audit.EXPECT().CountRecentFailedAttempts(gomock.Any(), input.Email, input.IPAddress, gomock.Any()).Return(2, nil)
	f.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	f.audit.EXPECT().RecordLoginAttempt(gomock.Any(), input.Email, input.IPAddress, false).Return(nil)

	_, err := f.svc.Login(context.Background(), input)
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
}

func TestAuthService_Login_Throttled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newAuthServiceFixture(ctrl)

	input := dto.LoginInput{Email: "test@example.com", Password: "password123", IPAddress: "1.2.3.4"}

	f.audit.EXPECT().CountRecentFailedAttempts(gomock.Any(), input.Email, input.IPAddress, gomock.Any()).Return(5, nil)

	_, err := f.svc.Login(context.Background(), input)
	assert.ErrorIs(t, err, autherror.ErrTooManyLoginAttempts)
}

func TestAuthService_Login_SessionCapRevokesOldest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newAuthServiceFixture(ctrl)

	input := dto.LoginInput{Email: "test@example.com", Password: "password123", IPAddress: "1.2.3.4"}
	user := &domain.User{ID: "user-123", Email: input.Email, PasswordHash: "hash", RoleName: "user", Active: true}

	f.audit.EXPECT().CountRecentFailedAttempts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
	f.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(user, nil)
	f.passwords.EXPECT().Matches(gomock.Any(), gomock.Any()).Return(true)
	f.tokens.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return("access-token", nil)
	f.store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.audit.EXPECT().UpsertTrustedDevice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.audit.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(nil)
	f.store.EXPECT().CountActiveByUserID(gomock.Any(), user.ID).Return(6, nil)
	f.store.EXPECT().RevokeOldestActiveByUserID(gomock.Any(), user.ID).Return(nil)
	f.tokens.EXPECT().GetAccessTokenExpiry().Return(15 * time.Minute)

	_, err := f.svc.Login(context.Background(), input)
	require.NoError(t, err)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newAuthServiceFixture(ctrl)

	oldRecord := &domain.RefreshTokenRecord{
		ID:        "tok-1",
		FamilyID:  "family-1",
		UserID:    "user-123",
		Status:    domain.TokenStatusActive,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	user := &domain.User{ID: "user-123", Email: "test@example.com", RoleName: "user", Active: true}

	f.store.EXPECT().FindByHash(gomock.Any(), service.HashSecret("old-refresh-token")).Return(oldRecord, nil)
	f.store.EXPECT().Rotate(gomock.Any(), "tok-1", gomock.Any()).Return(true, nil)
	f.users.EXPECT().GetByIDWithRole(gomock.Any(), "user-123").Return(user, nil)
	f.tokens.EXPECT().Issue(user.ID, user.Email, user.RoleName).Return("new-access-token", nil)
	f.store.EXPECT().CountActiveByUserID(gomock.Any(), "user-123").Return(1, nil)
	f.tokens.EXPECT().GetAccessTokenExpiry().Return(15 * time.Minute)

	result, err := f.svc.Refresh(context.Background(), dto.RefreshInput{RefreshToken: "old-refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", result.AccessToken)
	assert.NotEqual(t, "old-refresh-token", result.RefreshToken)
	assert.Equal(t, constant.TokenTypeBearer, result.TokenType)
}

func TestAuthService_Refresh_UserVanished(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newAuthServiceFixture(ctrl)

	oldRecord := &domain.RefreshTokenRecord{
		ID:        "tok-1",
		UserID:    "user-123",
		Status:    domain.TokenStatusActive,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	f.store.EXPECT().FindByHash(gomock.Any(), gomock.Any()).Return(oldRecord, nil)
	f.store.EXPECT().Rotate(gomock.Any(), "tok-1", gomock.Any()).Return(true, nil)
	f.users.EXPECT().GetByIDWithRole(gomock.Any(), "user-123").Return(nil, nil)

	_, err := f.svc.Refresh(context.Background(), dto.RefreshInput{RefreshToken: "some-token"})
	assert.ErrorIs(t, err, autherror.ErrUserNotFound)
}

func TestAuthService_Refresh_PropagatesLifecycleErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newAuthServiceFixture(ctrl)

	f.store.EXPECT().FindByHash(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := f.svc.Refresh(context.Background(), dto.RefreshInput{RefreshToken: "unknown"})
	assert.ErrorIs(t, err, autherror.ErrTokenInvalid)
}

func TestAuthService_Logout_NeverFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newAuthServiceFixture(ctrl)

	// Even a store failure stays internal.
	f.store.EXPECT().FindByHash(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	f.svc.Logout(context.Background(), dto.LogoutInput{RefreshToken: "whatever"})
}

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newAuthServiceFixture(ctrl)

	input := dto.RegisterInput{Email: "new@example.com", Password: "password123"}

	f.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	f.passwords.EXPECT().Hash(input.Password).Return("hashed", nil)
	f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	user, err := f.svc.Register(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, constant.DefaultUserRoleID, user.RoleID)
	assert.True(t, user.Active)
	assert.NotEmpty(t, user.ID)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newAuthServiceFixture(ctrl)

	input := dto.RegisterInput{Email: "taken@example.com", Password: "password123"}
	f.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(&domain.User{ID: "existing"}, nil)

	_, err := f.svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
}

func TestAuthService_ForceLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newAuthServiceFixture(ctrl)

	f.store.EXPECT().RevokeAllActiveByUserID(gomock.Any(), "user-123").Return(nil)

	assert.NoError(t, f.svc.ForceLogout(context.Background(), "user-123"))
}

func TestAuthService_GetUserSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newAuthServiceFixture(ctrl)

	now := time.Now()
	records := []*domain.RefreshTokenRecord{
		{
			ID:        "tok-1",
			FamilyID:  "family-1",
			UserID:    "user-123",
			IssuedAt:  now,
			ExpiresAt: now.Add(time.Hour),
			Device:    domain.DeviceContext{Fingerprint: "fp-1", IPAddress: "1.2.3.4", UserAgent: "agent"},
		},
	}
	f.store.EXPECT().ListActiveByUserID(gomock.Any(), "user-123").Return(records, nil)

	sessions, err := f.svc.GetUserSessions(context.Background(), "user-123")

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "tok-1", sessions[0].ID)
	assert.Equal(t, "family-1", sessions[0].FamilyID)
	assert.Equal(t, "fp-1", sessions[0].DeviceFingerprint)
}
