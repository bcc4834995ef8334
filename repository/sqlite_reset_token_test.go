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

func TestResetTokenRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	accounts := NewSQLiteAccountRepo(db.Conn)
	tokens := NewSQLiteResetTokenRepo(db.Conn)

	user := models.NewUserAccount("a@b.com", "A", "hash")
	require.NoError(t, accounts.Create(ctx, user))

	now := time.Now().UTC()
	old := &models.PasswordResetToken{
		AccountID: user.ID, TokenHash: "old-hash",
		ExpiresAt: now.Add(-time.Minute), CreatedAt: now.Add(-time.Hour),
	}
	fresh := &models.PasswordResetToken{
		AccountID: user.ID, TokenHash: "fresh-hash",
		ExpiresAt: now.Add(20 * time.Minute), CreatedAt: now,
	}
	require.NoError(t, tokens.Create(ctx, old))
	require.NoError(t, tokens.Create(ctx, fresh))
	assert.Len(t, fresh.ID, 16)

	err := tokens.Create(ctx, &models.PasswordResetToken{AccountID: user.ID, TokenHash: "fresh-hash", ExpiresAt: now})
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)

	latest, err := tokens.GetLatestByAccountID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, latest.ID)

	got, err := tokens.GetByTokenHash(ctx, "fresh-hash")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.AccountID)
	assert.WithinDuration(t, fresh.ExpiresAt, got.ExpiresAt, time.Millisecond)

	n, err := tokens.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = tokens.GetByTokenHash(ctx, "old-hash")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	require.NoError(t, tokens.DeleteByAccountID(ctx, user.ID))
	_, err = tokens.GetLatestByAccountID(ctx, user.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestAccountRepo_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteAccountRepo(newTestDB(t).Conn)

	user := models.NewUserAccount("a@b.com", "A", "old-hash")
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new-hash"))
	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePassword(ctx, "missing", "x"), pkg.ErrNotFound)
}
