package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/errs"
)

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour)
	assert.Error(t, err)
}

func TestSessionTokenRoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	profileID := uuid.New()
	token, err := issuer.IssueSession(profileID, "admin")
	require.NoError(t, err)

	claims, err := issuer.Verify(token, PurposeSession)
	require.NoError(t, err)
	assert.Equal(t, profileID.String(), claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestResetTokenRejectedAsSession(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := issuer.IssueReset(uuid.New())
	require.NoError(t, err)

	_, err = issuer.Verify(token, PurposeSession)
	assert.Error(t, err)

	_, err = issuer.Verify(token, PurposePasswordReset)
	assert.NoError(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", -time.Minute)
	require.NoError(t, err)

	token, err := issuer.IssueSession(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = issuer.Verify(token, PurposeSession)
	require.Error(t, err)
	assert.True(t, errs.IsExpiredTokenError(err))
}

func TestTokenFromDifferentSecretRejected(t *testing.T) {
	issuerA, err := NewTokenIssuer("secret-a", time.Hour)
	require.NoError(t, err)
	issuerB, err := NewTokenIssuer("secret-b", time.Hour)
	require.NoError(t, err)

	token, err := issuerA.IssueSession(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = issuerB.Verify(token, PurposeSession)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
	assert.False(t, CheckPassword("not a hash", "anything"))
}
