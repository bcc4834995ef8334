package services

import (
	"context"
	"testing"
	"time"

	"github.com/akinalp/parkapp/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSweeper_DeletesExpired(t *testing.T) {
	env := newScopedEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "sweep@example.com")

	require.NoError(t, env.sessions.Create(ctx, &models.Session{
		AccountID:    user.ID,
		RefreshToken: "old",
		ExpiresAt:    time.Now().Add(-time.Hour),
	}))
	require.NoError(t, env.sessions.Create(ctx, &models.Session{
		AccountID:    user.ID,
		RefreshToken: "fresh",
		ExpiresAt:    time.Now().Add(time.Hour),
	}))

	sweeper := NewSessionSweeper(env.sessions, time.Hour)
	sweeper.Start()

	assert.Eventually(t, func() bool {
		_, err := env.sessions.GetByRefreshToken(ctx, "old")
		return err != nil
	}, 2*time.Second, 10*time.Millisecond)

	sweeper.Stop()
	sweeper.Stop()

	_, err := env.sessions.GetByRefreshToken(ctx, "fresh")
	assert.NoError(t, err)
}

func TestSessionSweeper_StopWithoutStart(t *testing.T) {
	env := newScopedEnv(t)
	sweeper := NewSessionSweeper(env.sessions, 0)

	assert.NotPanics(t, sweeper.Stop)
	sweeper.Start() // Stop sonrası başlamaz
}
