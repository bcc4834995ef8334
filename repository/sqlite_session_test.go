package repository

import (
	"context"
	"testing"
	"time"

	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	accounts := NewSQLiteAccountRepo(db.Conn)
	sessions := NewSQLiteSessionRepo(db.Conn)

	user := models.NewUserAccount("a@b.com", "A", "hash")
	require.NoError(t, accounts.Create(ctx, user))

	now := time.Now().UTC()
	live := &models.Session{AccountID: user.ID, RefreshToken: "live", ExpiresAt: now.Add(time.Hour)}
	expired := &models.Session{AccountID: user.ID, RefreshToken: "expired", ExpiresAt: now.Add(-time.Hour)}
	require.NoError(t, sessions.Create(ctx, live))
	require.NoError(t, sessions.Create(ctx, expired))
	assert.Len(t, live.ID, 16)

	got, err := sessions.GetByRefreshToken(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.AccountID)
	assert.WithinDuration(t, live.ExpiresAt, got.ExpiresAt, time.Millisecond)

	n, err := sessions.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = sessions.GetByRefreshToken(ctx, "expired")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	require.NoError(t, sessions.DeleteByAccountID(ctx, user.ID))
	_, err = sessions.GetByRefreshToken(ctx, "live")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}
