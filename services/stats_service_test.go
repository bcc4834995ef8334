package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/akinalp/parkapp/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyAccountRepo, sayaç çağrılarını bellekte tutar; failing=true iken
// store hatası döner.
type flakyAccountRepo struct {
	repository.AccountRepository

	mu      sync.Mutex
	failing bool
	stats   map[string]models.AccountStats
	block   chan struct{}
}

func newFlakyAccountRepo() *flakyAccountRepo {
	return &flakyAccountRepo{stats: make(map[string]models.AccountStats)}
}

func (r *flakyAccountRepo) setFailing(v bool) {
	r.mu.Lock()
	r.failing = v
	r.mu.Unlock()
}

func (r *flakyAccountRepo) IncrementStat(_ context.Context, id string, stat models.Stat) error {
	if r.block != nil {
		<-r.block
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failing {
		return fmt.Errorf("%w: disk I/O error", pkg.ErrStoreUnavailable)
	}
	s := r.stats[id]
	switch stat {
	case models.StatComplaintsFiled:
		s.ComplaintsFiled++
	case models.StatParksVisited:
		s.ParksVisited++
	case models.StatComplaintsResolved:
		s.ComplaintsResolved++
	}
	r.stats[id] = s
	return nil
}

func (r *flakyAccountRepo) GetStats(_ context.Context, id string) (*models.AccountStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failing {
		return nil, fmt.Errorf("%w: disk I/O error", pkg.ErrStoreUnavailable)
	}
	s := r.stats[id]
	return &s, nil
}

func TestStats_IncrementAndLoad(t *testing.T) {
	repo := newFlakyAccountRepo()
	stats := NewStatsService(repo, 16, time.Minute)

	stats.IncrementComplaintsFiled("a1")
	stats.IncrementParksVisited("a1")
	stats.IncrementParksVisited("a1")
	stats.IncrementComplaintsResolved("a2")
	stats.Close()

	snap := stats.Load(context.Background(), "a1")
	assert.False(t, snap.Stale)
	assert.Equal(t, models.AccountStats{ComplaintsFiled: 1, ParksVisited: 2}, snap.AccountStats)
}

func TestStats_LoadFallsBackToCache(t *testing.T) {
	repo := newFlakyAccountRepo()
	stats := NewStatsService(repo, 16, time.Minute)
	defer stats.Close()
	ctx := context.Background()

	stats.IncrementComplaintsFiled("a1")
	require.Eventually(t, func() bool {
		return stats.Load(ctx, "a1").ComplaintsFiled == 1
	}, time.Second, 5*time.Millisecond)

	repo.setFailing(true)

	snap := stats.Load(ctx, "a1")
	assert.True(t, snap.Stale)
	assert.Equal(t, 1, snap.ComplaintsFiled)

	snap = stats.Load(ctx, "never-loaded")
	assert.True(t, snap.Stale)
	assert.Equal(t, models.AccountStats{}, snap.AccountStats)
}

func TestStats_FailedWriteDoesNotPanic(t *testing.T) {
	repo := newFlakyAccountRepo()
	repo.setFailing(true)
	stats := NewStatsService(repo, 16, time.Minute)

	stats.IncrementComplaintsFiled("a1")
	stats.Close()

	repo.setFailing(false)
	assert.Equal(t, 0, stats.Load(context.Background(), "a1").ComplaintsFiled)
}

func TestStats_FullQueueDropsIncrement(t *testing.T) {
	repo := newFlakyAccountRepo()
	repo.block = make(chan struct{})
	stats := NewStatsService(repo, 1, time.Minute)

	// Worker ilk işte bloklanır, ikincisi kuyruğa girer, kalanlar düşer.
	for i := 0; i < 5; i++ {
		stats.IncrementParksVisited("a1")
	}

	close(repo.block)
	stats.Close()

	got := stats.Load(context.Background(), "a1").ParksVisited
	assert.GreaterOrEqual(t, got, 1)
	assert.Less(t, got, 5)
}

func TestStats_IncrementAfterCloseIsDropped(t *testing.T) {
	repo := newFlakyAccountRepo()
	stats := NewStatsService(repo, 4, time.Minute)
	stats.Close()
	stats.Close()

	assert.NotPanics(t, func() { stats.IncrementComplaintsFiled("a1") })
	assert.Equal(t, 0, stats.Load(context.Background(), "a1").ComplaintsFiled)
}

func TestStats_WithSQLite(t *testing.T) {
	env := newScopedEnv(t)
	user := env.registerUser(t, "stats@example.com")

	env.stats.IncrementParksVisited(user.ID)
	assert.Eventually(t, func() bool {
		account, err := env.accounts.GetByID(context.Background(), user.ID)
		return err == nil && account.Stats.ParksVisited == 1
	}, 2*time.Second, 10*time.Millisecond)
}
