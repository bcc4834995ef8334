// Package cache, DB okunamadığında servis edilen "son bilinen değer"
// kayıtlarını tutar.
//
// Kayıt, DB'den okunduğu anda Set ile yazılır ve ttl boyunca geçerlidir.
// Arka plandaki yazımlar Update ile kaydı günceller ama ömrünü uzatmaz;
// böylece fallback değeri en son DB okumasından ttl'den daha eski olamaz.
package cache

import (
	"sync"
	"time"
)

type item[V any] struct {
	value    V
	loadedAt time.Time
}

// TTLCache, goroutine-safe generic son bilinen değer cache'i.
//
//	c := cache.New[string, models.AccountStats](10*time.Minute, time.Minute)
//	defer c.Close()
//	c.Set(accountID, stats)
//	c.Update(accountID, func(s models.AccountStats) models.AccountStats { s.ParksVisited++; return s })
type TTLCache[K comparable, V any] struct {
	mu    sync.Mutex
	items map[K]item[V]
	ttl   time.Duration
	now   func() time.Time

	done     chan struct{}
	doneOnce sync.Once
}

// New, cache'i oluşturur; süresi dolan kayıtlar her sweepEvery'de silinir.
func New[K comparable, V any](ttl, sweepEvery time.Duration) *TTLCache[K, V] {
	c := &TTLCache[K, V]{
		items: make(map[K]item[V]),
		ttl:   ttl,
		now:   time.Now,
		done:  make(chan struct{}),
	}
	go c.sweepLoop(sweepEvery)
	return c
}

func (c *TTLCache[K, V]) fresh(it item[V]) bool {
	return c.now().Sub(it.loadedAt) <= c.ttl
}

// Get, ömrü dolmamış değeri döner.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[key]
	if !ok || !c.fresh(it) {
		var zero V
		return zero, false
	}
	return it.value, true
}

// Set, DB'den yeni okunan değeri yazar ve ömrünü baştan başlatır.
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = item[V]{value: value, loadedAt: c.now()}
}

// Update, ömrü dolmamış kaydı fn ile atomik olarak değiştirir. Kayıt yoksa
// veya süresi dolmuşsa hiçbir şey yapmaz ve false döner.
func (c *TTLCache[K, V]) Update(key K, fn func(V) V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[key]
	if !ok || !c.fresh(it) {
		return false
	}
	it.value = fn(it.value)
	c.items[key] = it
	return true
}

// Close, temizleme goroutine'ini durdurur. Tekrar çağrılabilir.
func (c *TTLCache[K, V]) Close() {
	c.doneOnce.Do(func() { close(c.done) })
}

func (c *TTLCache[K, V]) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *TTLCache[K, V]) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, it := range c.items {
		if !c.fresh(it) {
			delete(c.items, key)
		}
	}
}
