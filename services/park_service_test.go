package services

import (
	"context"
	"testing"
	"time"

	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/akinalp/parkapp/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParkService_ListAndCount(t *testing.T) {
	repo := newFlakyAccountRepo()
	stats := NewStatsService(repo, 4, time.Minute)
	defer stats.Close()

	svc := NewParkService(repository.NewStaticParkRepo([]models.Park{
		{ID: "1", Name: "Kernek Parkı", Address: "Kernek"},
		{ID: "2", Name: "İnönü Parkı", Address: "Merkez"},
	}), stats)

	assert.Equal(t, 2, svc.Count())
	assert.Len(t, svc.List(""), 2)

	got := svc.List("inönü")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestParkService_GetCountsUserVisits(t *testing.T) {
	repo := newFlakyAccountRepo()
	stats := NewStatsService(repo, 8, time.Minute)
	svc := NewParkService(repository.NewStaticParkRepo([]models.Park{{ID: "1", Name: "Kernek Parkı"}}), stats)

	dept := models.DeptParks
	user := &models.Account{ID: "u1", Role: models.RoleUser}
	admin := &models.Account{ID: "a1", Role: models.RoleAdmin, Department: &dept}

	_, err := svc.Get(user, "1")
	require.NoError(t, err)
	_, err = svc.Get(admin, "1")
	require.NoError(t, err)
	_, err = svc.Get(nil, "1")
	require.NoError(t, err)

	_, err = svc.Get(user, "404")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	stats.Close()

	ctx := context.Background()
	assert.Equal(t, 1, stats.Load(ctx, "u1").ParksVisited)
	assert.Equal(t, 0, stats.Load(ctx, "a1").ParksVisited)
}
