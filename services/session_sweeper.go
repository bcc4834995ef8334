package services

import (
	"context"
	"sync"
	"time"

	"github.com/akinalp/parkapp/pkg/logger"
	"github.com/akinalp/parkapp/repository"
	"github.com/rs/zerolog"
)

// SessionSweeper, süresi dolmuş refresh token oturumlarını periyodik olarak siler.
//
// Goroutine pattern: time.NewTicker + select + stopCh (pkg/cache ile aynı).
// main.go graceful shutdown sırasında Stop() çağırır.
type SessionSweeper interface {
	Start()
	Stop()
}

type sessionSweeper struct {
	sessionRepo repository.SessionRepository
	interval    time.Duration
	log         zerolog.Logger

	stopCh  chan struct{}
	mu      sync.Mutex // Start/Stop race koruması
	started bool
	stopped bool
	done    chan struct{}
}

// NewSessionSweeper, constructor. interval <= 0 ise 1 saat kullanılır.
func NewSessionSweeper(sessionRepo repository.SessionRepository, interval time.Duration) SessionSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &sessionSweeper{
		sessionRepo: sessionRepo,
		interval:    interval,
		log:         logger.For("session-sweeper"),
		stopCh:      make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start, ilk temizliği hemen yapar, sonra interval aralığında tekrarlar.
func (s *sessionSweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true

	s.log.Info().Dur("interval", s.interval).Msg("starting")

	go func() {
		defer close(s.done)

		s.sweep()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stopCh:
				s.log.Info().Msg("stopped")
				return
			}
		}
	}()
}

// Stop, goroutine'i durdurur ve bitmesini bekler.
func (s *sessionSweeper) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	started := s.started
	close(s.stopCh)
	s.mu.Unlock()

	if started {
		<-s.done
	}
}

func (s *sessionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := s.sessionRepo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to delete expired sessions")
		return
	}
	if deleted > 0 {
		s.log.Info().Int64("deleted", deleted).Msg("expired sessions deleted")
	}
}
