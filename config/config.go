// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Config struct'ı tüm ayarları tek bir yerde toplar; her yerde ayrı ayrı
// os.Getenv() çağırmak yerine main.go'da oluşturulan tek bir Config taşınır.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Şikayet görünürlük kapsamı (normal kullanıcılar için).
const (
	UserScopeOwn = "own" // kullanıcı sadece kendi şikayetlerini görür
	UserScopeAll = "all" // kullanıcı sistemdeki tüm şikayetleri görür
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Auth       AuthConfig
	Complaints ComplaintsConfig
	Stats      StatsConfig
	Admin      AdminConfig
	Email      EmailConfig
	CORS       CORSConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
	Env  string // "development" → okunabilir console log, diğerleri JSON
	// PublicURL, frontend'in dış adresi; şifre sıfırlama linkleri buna göre üretilir.
	PublicURL string
	// TrustedProxies, X-Forwarded-For'una güvenilen reverse proxy adresleri
	// (CIDR veya tek IP). Boşsa rate limit her zaman RemoteAddr'a bakar.
	TrustedProxies []string
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/parkapp.db)
}

// JWTConfig, JWT token ayarları.
type JWTConfig struct {
	Secret             string // Token imzalama anahtarı, gizli tutulmalı
	AccessTokenExpiry  int    // Dakika cinsinden (varsayılan: 15)
	RefreshTokenExpiry int    // Gün cinsinden (varsayılan: 7)
}

// AuthConfig, kayıt ve giriş kuralları.
type AuthConfig struct {
	MinPasswordLength    int
	BcryptCost           int
	LoginMaxAttempts     int
	LoginWindow          time.Duration
	SessionSweepInterval time.Duration // süresi dolan refresh token'ların silinme aralığı
	ResetTokenTTL        time.Duration // şifre sıfırlama linkinin geçerlilik süresi
	ResetCooldown        time.Duration // aynı hesaba iki sıfırlama maili arasındaki en kısa süre
}

// ComplaintsConfig, şikayet görünürlüğü.
type ComplaintsConfig struct {
	UserScope      string // UserScopeOwn veya UserScopeAll
	SubmitMax      int    // SubmitWindow içinde izin verilen şikayet sayısı
	SubmitWindow   time.Duration
	SubmitCooldown time.Duration // limit aşılınca bekleme süresi
}

// StatsConfig, istatistik sayaçlarının arka plan kuyruğu.
type StatsConfig struct {
	QueueSize int
	CacheTTL  time.Duration
}

// AdminConfig, birim yetkililerinin başlangıçta oluşturulması.
// SeedPassword boşsa seed atlanır; yetkili cmd/create-admin ile eklenir.
type AdminConfig struct {
	SeedPassword string
}

// EmailConfig, Resend ile birim bildirim mailleri. API key yoksa bildirim kapalıdır.
type EmailConfig struct {
	ResendAPIKey string
	FromEmail    string
}

// CORSConfig, izin verilen origin listesi.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
func Load() (*Config, error) {
	// .env yoksa hata vermez, sessizce devam eder.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "9090"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	accessExpiry, err := strconv.Atoi(getEnv("JWT_ACCESS_EXPIRY_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRY_MINUTES: %w", err)
	}

	refreshExpiry, err := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRY_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_EXPIRY_DAYS: %w", err)
	}

	minPassword, err := strconv.Atoi(getEnv("AUTH_MIN_PASSWORD_LENGTH", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_MIN_PASSWORD_LENGTH: %w", err)
	}

	bcryptCost, err := strconv.Atoi(getEnv("AUTH_BCRYPT_COST", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_BCRYPT_COST: %w", err)
	}

	loginAttempts, err := strconv.Atoi(getEnv("AUTH_LOGIN_MAX_ATTEMPTS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_LOGIN_MAX_ATTEMPTS: %w", err)
	}

	loginWindow, err := time.ParseDuration(getEnv("AUTH_LOGIN_WINDOW", "2m"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_LOGIN_WINDOW: %w", err)
	}

	sweepInterval, err := time.ParseDuration(getEnv("AUTH_SESSION_SWEEP_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_SESSION_SWEEP_INTERVAL: %w", err)
	}

	submitMax, err := strconv.Atoi(getEnv("COMPLAINTS_SUBMIT_MAX", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid COMPLAINTS_SUBMIT_MAX: %w", err)
	}

	submitWindow, err := time.ParseDuration(getEnv("COMPLAINTS_SUBMIT_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid COMPLAINTS_SUBMIT_WINDOW: %w", err)
	}

	submitCooldown, err := time.ParseDuration(getEnv("COMPLAINTS_SUBMIT_COOLDOWN", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid COMPLAINTS_SUBMIT_COOLDOWN: %w", err)
	}

	queueSize, err := strconv.Atoi(getEnv("STATS_QUEUE_SIZE", "256"))
	if err != nil {
		return nil, fmt.Errorf("invalid STATS_QUEUE_SIZE: %w", err)
	}

	resetTTL, err := time.ParseDuration(getEnv("AUTH_RESET_TOKEN_TTL", "20m"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_RESET_TOKEN_TTL: %w", err)
	}

	resetCooldown, err := time.ParseDuration(getEnv("AUTH_RESET_COOLDOWN", "90s"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_RESET_COOLDOWN: %w", err)
	}

	statsTTL, err := time.ParseDuration(getEnv("STATS_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid STATS_CACHE_TTL: %w", err)
	}

	userScope := getEnv("COMPLAINTS_USER_SCOPE", UserScopeOwn)
	if userScope != UserScopeOwn && userScope != UserScopeAll {
		return nil, fmt.Errorf("invalid COMPLAINTS_USER_SCOPE %q: must be %q or %q", userScope, UserScopeOwn, UserScopeAll)
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
			Env:  getEnv("APP_ENV", "development"),

			PublicURL:      strings.TrimRight(getEnv("APP_URL", "http://localhost:3000"), "/"),
			TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/parkapp.db"),
		},
		JWT: JWTConfig{
			Secret:             jwtSecret,
			AccessTokenExpiry:  accessExpiry,
			RefreshTokenExpiry: refreshExpiry,
		},
		Auth: AuthConfig{
			MinPasswordLength:    minPassword,
			BcryptCost:           bcryptCost,
			LoginMaxAttempts:     loginAttempts,
			LoginWindow:          loginWindow,
			SessionSweepInterval: sweepInterval,
			ResetTokenTTL:        resetTTL,
			ResetCooldown:        resetCooldown,
		},
		Complaints: ComplaintsConfig{
			UserScope:      userScope,
			SubmitMax:      submitMax,
			SubmitWindow:   submitWindow,
			SubmitCooldown: submitCooldown,
		},
		Stats: StatsConfig{
			QueueSize: queueSize,
			CacheTTL:  statsTTL,
		},
		Admin: AdminConfig{
			SeedPassword: getEnv("ADMIN_SEED_PASSWORD", ""),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromEmail:    getEnv("RESEND_FROM", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:9090").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// splitList, virgülle ayrılmış listeyi boş elemanları atarak böler.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
