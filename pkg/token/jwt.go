// Package token issues and verifies the signed bearer tokens that carry a
// user's identity claims. Tokens are self-contained; no server-side session
// state backs them.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"edu-program/internal/data/entity"
	"edu-program/pkg/apperr"
)

// Claims is the identity payload embedded in every access token.
type Claims struct {
	UserID   string      `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     entity.Role `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	expiry time.Duration
}

// NewService builds a token service from the process-wide signing secret.
// The secret is set at boot and read-only thereafter.
func NewService(secret []byte, expiry time.Duration) *Service {
	return &Service{
		secret: secret,
		expiry: expiry,
	}
}

// Issue signs a token carrying the user's id, username, email, and role.
func (s *Service) Issue(user *entity.User) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and checks a token. Malformed tokens, signature mismatches,
// and expired tokens all return apperr.ErrInvalidToken so a caller probing
// credentials cannot tell which check failed.
func (s *Service) Verify(raw string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.ErrInvalidToken
	}

	return claims, nil
}
