package service

import (
	"context"

	"github.com/lokamarket/auth-service/internal/auth/domain"
	autherror "github.com/lokamarket/auth-service/internal/errors"
	"go.uber.org/zap"
)

// CredentialAuthenticator checks an email+password pair against the user
// directory. Unknown email, wrong password, and inactive account all fail
// with the same error so callers cannot probe which accounts exist; the
// distinguishing reason only goes to the log.
type CredentialAuthenticator struct {
	users     domain.UserDirectory
	passwords domain.PasswordVerifier
	logger    *zap.Logger
}

func NewCredentialAuthenticator(users domain.UserDirectory, passwords domain.PasswordVerifier, logger *zap.Logger) *CredentialAuthenticator {
	return &CredentialAuthenticator{
		users:     users,
		passwords: passwords,
		logger:    logger,
	}
}

func (a *CredentialAuthenticator) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		a.logger.Info("login rejected: unknown email", zap.String("email", email))
		return nil, autherror.ErrInvalidCredentials
	}

	if !a.passwords.Matches(password, user.PasswordHash) {
		a.logger.Info("login rejected: wrong password", zap.String("user_id", user.ID))
		return nil, autherror.ErrInvalidCredentials
	}

	if !user.Active {
		a.logger.Info("login rejected: inactive account", zap.String("user_id", user.ID))
		return nil, autherror.ErrInvalidCredentials
	}

	return user, nil
}
