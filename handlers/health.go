package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/akinalp/parkapp/pkg"
)

// Pinger, veritabanı bağlantısını test eden bağımlılık (*database.DB).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler, liveness/readiness endpoint'i.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler, constructor.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check godoc
// GET /api/health
// DB cevap vermezse 503 döner.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		pkg.Error(w, fmt.Errorf("%w: ping: %v", pkg.ErrStoreUnavailable, err))
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
