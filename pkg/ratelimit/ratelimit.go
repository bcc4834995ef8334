// Package ratelimit, in-memory rate limiter'ları barındırır.
//
// Tek instance deploy varsayılır; sayaçlar process belleğinde tutulur ve
// arka plandaki bir goroutine süresi dolan kayıtları temizler. Paket proje
// içi hiçbir pakete bağımlı değildir (handlers ve middleware ikisi de kullanır).
package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// window, bir anahtar için sabit pencere sayacı.
type window struct {
	count int
	start time.Time
}

// LoginRateLimiter, IP bazlı login deneme sınırı.
//
//	limiter := ratelimit.NewLoginRateLimiter(5, 2*time.Minute)
//	if !limiter.Allow(ip) { /* 429 */ }
//	// başarılı girişte:
//	limiter.Reset(ip)
type LoginRateLimiter struct {
	mu          sync.Mutex
	windows     map[string]*window
	maxAttempts int
	period      time.Duration
	now         func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewLoginRateLimiter, limiter'ı oluşturur ve temizleme goroutine'ini başlatır.
// Close() ile durdurulmalıdır.
func NewLoginRateLimiter(maxAttempts int, period time.Duration) *LoginRateLimiter {
	rl := &LoginRateLimiter{
		windows:     make(map[string]*window),
		maxAttempts: maxAttempts,
		period:      period,
		now:         time.Now,
		stop:        make(chan struct{}),
	}

	go runCleanup(time.Minute, rl.stop, rl.cleanup)

	return rl
}

// Allow, denemeyi sayar ve pencere içindeki sayı limiti aşmadıysa true döner.
// Başarılı veya başarısız her deneme sayılır.
func (rl *LoginRateLimiter) Allow(key string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) > rl.period {
		rl.windows[key] = &window{count: 1, start: now}
		return true
	}

	w.count++
	return w.count <= rl.maxAttempts
}

// Reset, anahtarın sayacını siler. Başarılı girişten sonra çağrılır; aksi
// halde meşru kullanıcı sonraki girişlerinde bloke olabilir.
func (rl *LoginRateLimiter) Reset(key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.windows, key)
}

// RetryAfterSeconds, pencerenin kapanmasına kalan süreyi (yukarı yuvarlanmış
// saniye) döner. Retry-After header'ı için kullanılır.
func (rl *LoginRateLimiter) RetryAfterSeconds(key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[key]
	if !ok {
		return 0
	}

	remaining := rl.period - rl.now().Sub(w.start)
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1
}

// Close, temizleme goroutine'ini durdurur. Birden fazla çağrı güvenlidir.
func (rl *LoginRateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *LoginRateLimiter) cleanup() {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, w := range rl.windows {
		if now.Sub(w.start) > rl.period {
			delete(rl.windows, key)
		}
	}
}

// runCleanup, stop kapanana kadar her interval'de fn'i çağırır.
func runCleanup(interval time.Duration, stop <-chan struct{}, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fn()
		case <-stop:
			return
		}
	}
}

// FormatRetryMessage, bekleme süresini okunabilir hale getirir ("2 minute(s)").
func FormatRetryMessage(seconds int) string {
	if seconds >= 60 {
		return fmt.Sprintf("%d minute(s)", seconds/60)
	}
	return fmt.Sprintf("%d second(s)", seconds)
}
