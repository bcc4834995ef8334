package handlers

import (
	"context"
	"net/http"

	"github.com/akinalp/parkapp/pkg"
)

// AccountCounter, toplam hesap sayısını veren bağımlılık.
// repository.AccountRepository bunu karşılar.
type AccountCounter interface {
	Count(ctx context.Context) (int, error)
}

// ParkCounter, katalogdaki park sayısını verir.
type ParkCounter interface {
	Count() int
}

// StatsResponse, public istatistik endpoint'inin response formatı.
type StatsResponse struct {
	TotalAccounts int `json:"total_accounts"`
	TotalParks    int `json:"total_parks"`
}

// StatsHandler, public (auth gerektirmeyen) istatistikler.
type StatsHandler struct {
	accounts AccountCounter
	parks    ParkCounter
}

// NewStatsHandler, constructor.
func NewStatsHandler(accounts AccountCounter, parks ParkCounter) *StatsHandler {
	return &StatsHandler{accounts: accounts, parks: parks}
}

// GetPublicStats godoc
// GET /api/stats
func (h *StatsHandler) GetPublicStats(w http.ResponseWriter, r *http.Request) {
	count, err := h.accounts.Count(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, StatsResponse{
		TotalAccounts: count,
		TotalParks:    h.parks.Count(),
	})
}
