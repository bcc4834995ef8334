package handlers

import (
	"net/http"

	"github.com/akinalp/parkapp/pkg"
	"github.com/akinalp/parkapp/services"
)

// ParkHandler, park kataloğu endpoint'leri.
type ParkHandler struct {
	parkService services.ParkService
}

// NewParkHandler, constructor.
func NewParkHandler(parkService services.ParkService) *ParkHandler {
	return &ParkHandler{parkService: parkService}
}

// List godoc
// GET /api/parks?q=kernek
func (h *ParkHandler) List(w http.ResponseWriter, r *http.Request) {
	pkg.JSON(w, http.StatusOK, h.parkService.List(r.URL.Query().Get("q")))
}

// Get godoc
// GET /api/parks/{id}
// Optional auth: giriş yapmış vatandaş için ziyaret sayacı artar.
func (h *ParkHandler) Get(w http.ResponseWriter, r *http.Request) {
	viewer, _ := AccountFromContext(r.Context())

	park, err := h.parkService.Get(viewer, r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, park)
}
