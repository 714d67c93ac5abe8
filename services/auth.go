package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/errs"
)

// Token purposes. A reset token must never pass the session guard.
const (
	PurposeSession       = "session"
	PurposePasswordReset = "password_reset"
)

const resetTokenTTL = time.Hour

// SessionClaims is the JWT payload for both session and reset tokens.
type SessionClaims struct {
	Role    string `json:"role"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies the admin-session and password-reset tokens.
type TokenIssuer struct {
	secret     []byte
	sessionTTL time.Duration
}

func NewTokenIssuer(secret string, sessionTTL time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret must not be empty")
	}
	return &TokenIssuer{secret: []byte(secret), sessionTTL: sessionTTL}, nil
}

// IssueSession returns a signed session token for the profile.
func (t *TokenIssuer) IssueSession(profileID uuid.UUID, role string) (string, error) {
	return t.issue(profileID, role, PurposeSession, t.sessionTTL)
}

// IssueReset returns a short-lived token only valid for password reset.
func (t *TokenIssuer) IssueReset(profileID uuid.UUID) (string, error) {
	return t.issue(profileID, "", PurposePasswordReset, resetTokenTTL)
}

func (t *TokenIssuer) issue(profileID uuid.UUID, role, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Role:    role,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profileID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses and validates a token and checks it was issued for the given
// purpose. Returns an ApiErr suitable for direct response writing.
func (t *TokenIssuer) Verify(tokenString, purpose string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.NewExpiredTokenError()
		}
		return nil, errs.NewInvalidTokenError()
	}
	if !token.Valid || claims.Purpose != purpose {
		return nil, errs.NewInvalidTokenError()
	}
	return claims, nil
}

// HashPassword returns the bcrypt hash stored on a profile.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
