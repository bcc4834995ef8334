package services

import (
	"context"
	"sync"
	"time"

	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg/cache"
	"github.com/akinalp/parkapp/pkg/logger"
	"github.com/akinalp/parkapp/repository"
	"github.com/rs/zerolog"
)

// statWriteTimeout, tek bir sayaç artırımının DB'de bekleyebileceği süre.
const statWriteTimeout = 5 * time.Second

// StatsService, hesap sayaçlarını best-effort olarak tutar.
//
// Increment* çağrıları bloklamaz ve hata dönmez: iş kuyruğa bırakılır,
// arka plandaki worker DB'ye yazar. Kuyruk doluysa veya yazım başarısızsa
// sadece log düşülür; çağıran operasyon (şikayet oluşturma, çözme) etkilenmez.
type StatsService interface {
	IncrementComplaintsFiled(accountID string)
	IncrementParksVisited(accountID string)
	IncrementComplaintsResolved(accountID string)
	// Load, sayaçları okur. DB erişilemezse son bilinen değerler (veya sıfır)
	// Stale=true ile döner.
	Load(ctx context.Context, accountID string) StatsSnapshot
	// Close, kuyruktaki işleri bitirir ve worker'ı durdurur.
	Close()
}

// StatsSnapshot, API'ye dönen sayaç görünümü.
type StatsSnapshot struct {
	models.AccountStats
	Stale bool `json:"stale"`
}

type statJob struct {
	accountID string
	stat      models.Stat
}

type statsService struct {
	accountRepo repository.AccountRepository
	cache       *cache.TTLCache[string, models.AccountStats]
	log         zerolog.Logger

	jobs   chan statJob
	mu     sync.RWMutex // closed + jobs kanalına yazma
	closed bool
	wg     sync.WaitGroup
}

// NewStatsService, constructor. Worker goroutine'i hemen başlar.
//
// queueSize: bekleyebilecek en fazla artırım sayısı.
// cacheTTL: Load'un fallback olarak kullandığı son bilinen değerlerin ömrü.
func NewStatsService(accountRepo repository.AccountRepository, queueSize int, cacheTTL time.Duration) StatsService {
	if queueSize <= 0 {
		queueSize = 256
	}
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}

	s := &statsService{
		accountRepo: accountRepo,
		cache:       cache.New[string, models.AccountStats](cacheTTL, time.Minute),
		log:         logger.For("stats"),
		jobs:        make(chan statJob, queueSize),
	}

	s.wg.Add(1)
	go s.run()

	return s
}

func (s *statsService) IncrementComplaintsFiled(accountID string) {
	s.enqueue(accountID, models.StatComplaintsFiled)
}

func (s *statsService) IncrementParksVisited(accountID string) {
	s.enqueue(accountID, models.StatParksVisited)
}

func (s *statsService) IncrementComplaintsResolved(accountID string) {
	s.enqueue(accountID, models.StatComplaintsResolved)
}

func (s *statsService) Load(ctx context.Context, accountID string) StatsSnapshot {
	stats, err := s.accountRepo.GetStats(ctx, accountID)
	if err == nil {
		s.cache.Set(accountID, *stats)
		return StatsSnapshot{AccountStats: *stats}
	}

	s.log.Warn().Err(err).Str("account_id", accountID).Msg("stats load failed, serving cached values")

	if cached, ok := s.cache.Get(accountID); ok {
		return StatsSnapshot{AccountStats: cached, Stale: true}
	}
	return StatsSnapshot{Stale: true}
}

func (s *statsService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.jobs)
	s.mu.Unlock()

	s.wg.Wait()
	s.cache.Close()
}

func (s *statsService) enqueue(accountID string, stat models.Stat) {
	if accountID == "" {
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		s.log.Warn().Str("account_id", accountID).Str("stat", string(stat)).Msg("stats closed, increment dropped")
		return
	}

	select {
	case s.jobs <- statJob{accountID: accountID, stat: stat}:
	default:
		s.log.Warn().Str("account_id", accountID).Str("stat", string(stat)).Msg("stats queue full, increment dropped")
	}
}

// run, kuyruk kapanana kadar işleri sırayla DB'ye yazar.
func (s *statsService) run() {
	defer s.wg.Done()

	for job := range s.jobs {
		s.apply(job)
	}
}

func (s *statsService) apply(job statJob) {
	ctx, cancel := context.WithTimeout(context.Background(), statWriteTimeout)
	defer cancel()

	if err := s.accountRepo.IncrementStat(ctx, job.accountID, job.stat); err != nil {
		s.log.Warn().Err(err).Str("account_id", job.accountID).Str("stat", string(job.stat)).Msg("stat increment failed")
		return
	}

	// Fallback değeri de güncel kalsın; cache'te yoksa bir sonraki Load doldurur.
	s.cache.Update(job.accountID, func(cached models.AccountStats) models.AccountStats {
		switch job.stat {
		case models.StatComplaintsFiled:
			cached.ComplaintsFiled++
		case models.StatParksVisited:
			cached.ParksVisited++
		case models.StatComplaintsResolved:
			cached.ComplaintsResolved++
		}
		return cached
	})
}
