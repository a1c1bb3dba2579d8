package auth_test

import (
	"testing"
	"time"

	"github.com/MikeRez0/waiterdesk/internal/adapter/auth"
	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasetoToken_RoundTrip(t *testing.T) {
	ts, err := auth.New(time.Hour)
	require.NoError(t, err)

	token, err := ts.CreateToken(&domain.Waiter{ID: 42, Name: "Rahim"})
	require.NoError(t, err)

	payload, err := ts.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), payload.WaiterID)
	assert.Equal(t, "Rahim", payload.WaiterName)
}

func TestPasetoToken_Rejects(t *testing.T) {
	ts, err := auth.New(time.Hour)
	require.NoError(t, err)
	other, err := auth.New(time.Hour)
	require.NoError(t, err)

	foreign, err := other.CreateToken(&domain.Waiter{ID: 1})
	require.NoError(t, err)

	expired, err := auth.New(-time.Minute)
	require.NoError(t, err)
	stale, err := expired.CreateToken(&domain.Waiter{ID: 1})
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":     "not-a-token",
		"foreign key": foreign,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ts.VerifyToken(token)
			assert.Equal(t, domain.ErrInvalidToken, err)
		})
	}

	t.Run("expired", func(t *testing.T) {
		_, err := expired.VerifyToken(stale)
		assert.Equal(t, domain.ErrInvalidToken, err)
	})
}
