package ratelimit

import (
	"sync"
	"time"
)

// submitBucket, bir anahtarın pencere sayacı ve varsa ceza bitiş zamanı.
type submitBucket struct {
	window
	cooldownUntil time.Time
}

// SubmitRateLimiter, anahtar (hesap veya IP) bazlı şikayet gönderme sınırı.
//
// LoginRateLimiter'dan farkı: limit aşıldığında pencere bitimini değil,
// ayrı bir cooldown süresini bekletir. Örneğin 1 dakikada 5 şikayetten
// sonra 6.'sı reddedilir ve anahtar 5 dakika boyunca şikayet gönderemez.
type SubmitRateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*submitBucket
	max      int
	period   time.Duration
	cooldown time.Duration
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewSubmitRateLimiter, limiter'ı oluşturur ve temizleme goroutine'ini başlatır.
func NewSubmitRateLimiter(max int, period, cooldown time.Duration) *SubmitRateLimiter {
	rl := &SubmitRateLimiter{
		buckets:  make(map[string]*submitBucket),
		max:      max,
		period:   period,
		cooldown: cooldown,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	go runCleanup(30*time.Second, rl.stop, rl.cleanup)

	return rl
}

// Allow, gönderimi sayar. Cooldown'daysa veya bu gönderim limiti aşıyorsa false.
func (rl *SubmitRateLimiter) Allow(key string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		rl.buckets[key] = &submitBucket{window: window{count: 1, start: now}}
		return true
	}

	if !b.cooldownUntil.IsZero() {
		if now.Before(b.cooldownUntil) {
			return false
		}
		// Ceza bitti, temiz pencere.
		b.cooldownUntil = time.Time{}
		b.count = 1
		b.start = now
		return true
	}

	if now.Sub(b.start) > rl.period {
		b.count = 1
		b.start = now
		return true
	}

	b.count++
	if b.count > rl.max {
		b.cooldownUntil = now.Add(rl.cooldown)
		return false
	}
	return true
}

// CooldownSeconds, kalan ceza süresini yukarı yuvarlanmış saniye olarak döner.
func (rl *SubmitRateLimiter) CooldownSeconds(key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok || b.cooldownUntil.IsZero() {
		return 0
	}

	remaining := b.cooldownUntil.Sub(rl.now())
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1
}

// Close, temizleme goroutine'ini durdurur. Birden fazla çağrı güvenlidir.
func (rl *SubmitRateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// cleanup, penceresi de cezası da bitmiş kayıtları siler.
func (rl *SubmitRateLimiter) cleanup() {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for id, b := range rl.buckets {
		windowDone := now.Sub(b.start) > rl.period
		cooldownDone := b.cooldownUntil.IsZero() || now.After(b.cooldownUntil)
		if windowDone && cooldownDone {
			delete(rl.buckets, id)
		}
	}
}
