// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Sabit error değişkenleri sayesinde karşılaştırma string yerine
// referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
package pkg

import "errors"

// Domain-level error'lar.
// Handler katmanı bu error'ları HTTP status code'larına map'ler (bkz. response.go).
// Service ve repository katmanları bunları fmt.Errorf("%w: ...") ile sararak döner.
var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")      // hatalı email / şifre, geçersiz token
	ErrForbidden        = errors.New("forbidden")         // rol veya birim uyuşmazlığı
	ErrAlreadyExists    = errors.New("already exists")    // email zaten kayıtlı
	ErrBadRequest       = errors.New("bad request")       // boş veya geçersiz alan
	ErrWeakPassword     = errors.New("weak password")     // minimum şifre kuralı
	ErrTooManyAttempts  = errors.New("too many attempts") // login brute-force koruması
	ErrStoreUnavailable = errors.New("store unavailable") // veritabanı I/O hatası
	ErrInternal         = errors.New("internal error")
)
