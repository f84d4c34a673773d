package service

//go:generate mockgen -destination=../../mocks/mock_token_issuer.go -package=mocks github.com/lokamarket/auth-service/internal/auth/service TokenIssuer

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer mints and verifies short-lived access tokens. Issuance is
// stateless: the token self-encodes its expiry.
type TokenIssuer interface {
	Issue(userID, email, role string) (string, error)
	Verify(tokenString string) (*JWTCustomClaims, error)
	GetAccessTokenExpiry() time.Duration
}

type TokenService struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func NewTokenService(accessSecret string, accessExpiry time.Duration) *TokenService {
	return &TokenService{
		AccessTokenSecret: accessSecret,
		AccessTokenExpiry: accessExpiry,
	}
}

func (ts *TokenService) Issue(userID, email, role string) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.AccessTokenSecret))
	if err != nil {
		return "", err
	}

	return token, nil
}

// Verify parses and validates the given access token string.
func (ts *TokenService) Verify(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.AccessTokenSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}
