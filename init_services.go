// Package main: Service katmanı başlatma.
//
// initServices, service'leri ve rate limiter'ları oluşturur.
// Sıralama: stats → policy → sender/notifier → password, complaint.
// Complaint ilk üçüne, password sender'a bağımlıdır.
package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/akinalp/parkapp/config"
	"github.com/akinalp/parkapp/pkg/email"
	"github.com/akinalp/parkapp/pkg/logger"
	"github.com/akinalp/parkapp/pkg/ratelimit"
	"github.com/akinalp/parkapp/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth      services.AuthService
	Password  services.PasswordService
	Policy    services.AccessPolicy
	Complaint services.ComplaintService
	Stats     services.StatsService
	Park      services.ParkService
	Notifier  services.Notifier
	Sweeper   services.SessionSweeper
}

// RateLimiters, tüm rate limiter instance'larını tutan container.
type RateLimiters struct {
	Login  *ratelimit.LoginRateLimiter
	Submit *ratelimit.SubmitRateLimiter
	IPs    *ratelimit.IPResolver
}

// initServices, tüm service'leri ve rate limiter'ları oluşturur.
func initServices(db *sql.DB, repos *Repositories, cfg *config.Config) (*Services, *RateLimiters, error) {
	log := logger.For("main")

	authService := services.NewAuthService(db, repos.Account, repos.Session, services.AuthOptions{
		JWTSecret:         cfg.JWT.Secret,
		AccessExpiry:      time.Duration(cfg.JWT.AccessTokenExpiry) * time.Minute,
		RefreshExpiry:     time.Duration(cfg.JWT.RefreshTokenExpiry) * 24 * time.Hour,
		MinPasswordLength: cfg.Auth.MinPasswordLength,
		BcryptCost:        cfg.Auth.BcryptCost,
	})

	statsService := services.NewStatsService(repos.Account, cfg.Stats.QueueSize, cfg.Stats.CacheTTL)
	policy := services.NewAccessPolicy(repos.Complaint, cfg.Complaints.UserScope)

	// Resend API key yoksa bildirimler kapalı; şikayet akışı etkilenmez.
	var sender email.Sender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromEmail)
		log.Info().Str("from", cfg.Email.FromEmail).Msg("complaint notifications enabled")
	} else {
		log.Warn().Msg("RESEND_API_KEY not set, complaint notifications and password reset emails disabled")
	}
	notifier := services.NewNotifier(sender)

	passwordService := services.NewPasswordService(db, repos.Account, repos.Session, repos.Reset, sender, services.PasswordOptions{
		MinPasswordLength: cfg.Auth.MinPasswordLength,
		BcryptCost:        cfg.Auth.BcryptCost,
		ResetTokenTTL:     cfg.Auth.ResetTokenTTL,
		ResetCooldown:     cfg.Auth.ResetCooldown,
		PublicURL:         cfg.Server.PublicURL,
	})

	svcs := &Services{
		Auth:      authService,
		Password:  passwordService,
		Policy:    policy,
		Complaint: services.NewComplaintService(repos.Complaint, policy, statsService, notifier),
		Stats:     statsService,
		Park:      services.NewParkService(repos.Park, statsService),
		Notifier:  notifier,
		Sweeper:   services.NewSessionSweeper(repos.Session, cfg.Auth.SessionSweepInterval),
	}

	ips, err := ratelimit.NewIPResolver(cfg.Server.TrustedProxies)
	if err != nil {
		return nil, nil, fmt.Errorf("trusted proxies: %w", err)
	}

	limiters := &RateLimiters{
		Login:  ratelimit.NewLoginRateLimiter(cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow),
		Submit: ratelimit.NewSubmitRateLimiter(cfg.Complaints.SubmitMax, cfg.Complaints.SubmitWindow, cfg.Complaints.SubmitCooldown),
		IPs:    ips,
	}

	return svcs, limiters, nil
}

// Close, arka plan goroutine'lerini sırayla durdurur. Stats kuyruğu
// boşaltılır, bekleyen bildirimler gönderilir.
func (s *Services) Close() {
	s.Sweeper.Stop()
	s.Notifier.Close()
	s.Stats.Close()
}

// Close, limiter temizleme goroutine'lerini durdurur.
func (l *RateLimiters) Close() {
	l.Login.Close()
	l.Submit.Close()
}
