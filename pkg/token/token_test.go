package token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewService("test-secret", time.Minute, time.Hour)

	tok, err := svc.GenerateAccessToken(42, "alice")
	assert.NoError(t, err)

	claims, err := svc.ValidateAccess(tok)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, TypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)
}

func TestExpiredToken(t *testing.T) {
	svc := NewService("test-secret", time.Minute, time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	tok, err := svc.GenerateAccessToken(1, "bob")
	assert.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateAccess(tok)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestTokenTypeConfusion(t *testing.T) {
	svc := NewService("test-secret", time.Minute, time.Hour)

	refresh, err := svc.GenerateRefreshToken(7)
	assert.NoError(t, err)

	t.Run("Refresh token is not accepted as access", func(t *testing.T) {
		_, err := svc.ValidateAccess(refresh)
		assert.ErrorIs(t, err, ErrWrongType)
	})

	t.Run("Access token is not accepted as refresh", func(t *testing.T) {
		access, err := svc.GenerateAccessToken(7, "carol")
		assert.NoError(t, err)
		_, err = svc.ValidateRefresh(access)
		assert.ErrorIs(t, err, ErrWrongType)
	})
}

func TestTamperedToken(t *testing.T) {
	svc := NewService("test-secret", time.Minute, time.Hour)
	other := NewService("other-secret", time.Minute, time.Hour)

	tok, err := other.GenerateAccessToken(9, "mallory")
	assert.NoError(t, err)

	_, err = svc.ValidateAccess(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestMemoryRevocationStore(t *testing.T) {
	store := NewMemoryRevocationStore()
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	assert.NoError(t, err)
	assert.False(t, revoked)

	assert.NoError(t, store.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	assert.NoError(t, err)
	assert.True(t, revoked)

	t.Run("Expired entries fall out", func(t *testing.T) {
		assert.NoError(t, store.Revoke(ctx, "jti-2", time.Now().Add(-time.Second)))
		revoked, err := store.IsRevoked(ctx, "jti-2")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})
}
