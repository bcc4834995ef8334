package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/akinalp/parkapp/pkg/ratelimit"
	"github.com/akinalp/parkapp/services"
)

// ComplaintHandler, şikayet endpoint'leri.
type ComplaintHandler struct {
	complaintService services.ComplaintService
	submitLimiter    *ratelimit.SubmitRateLimiter
	ips              *ratelimit.IPResolver
}

// NewComplaintHandler, constructor. submitLimiter nil ise gönderim sınırı yoktur.
func NewComplaintHandler(
	complaintService services.ComplaintService,
	submitLimiter *ratelimit.SubmitRateLimiter,
	ips *ratelimit.IPResolver,
) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
		submitLimiter:    submitLimiter,
		ips:              ips,
	}
}

// Create godoc
// POST /api/complaints
// Optional auth: giriş yapılmışsa şikayet hesaba bağlanır. Body'de department
// alanı yoktur; birim sorun tipinden hesaplanır.
//
// Gönderim sınırı sadece şekli geçerli isteklerde sayılır; bozuk body veya
// boş alanlar kotayı harcamaz.
func (h *ComplaintHandler) Create(w http.ResponseWriter, r *http.Request) {
	reporter, _ := AccountFromContext(r.Context())

	var req models.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	key := "ip:" + h.ips.ClientIP(r)
	if reporter != nil {
		key = "account:" + reporter.ID
	}
	if h.submitLimiter != nil && !h.submitLimiter.Allow(key) {
		retryAfter := h.submitLimiter.CooldownSeconds(key)
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
		pkg.Error(w, fmt.Errorf("%w: too many complaints, please try again in %s",
			pkg.ErrTooManyAttempts, ratelimit.FormatRetryMessage(retryAfter)))
		return
	}

	complaint, err := h.complaintService.Create(r.Context(), reporter, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, complaint)
}

// List godoc
// GET /api/complaints?department=Yol ve Altyapı
func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "account not found in context")
		return
	}

	dept := models.Department(r.URL.Query().Get("department"))

	complaints, err := h.complaintService.List(r.Context(), account, dept)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, complaints)
}

// Get godoc
// GET /api/complaints/{id}
func (h *ComplaintHandler) Get(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "account not found in context")
		return
	}

	complaint, err := h.complaintService.Get(r.Context(), account, r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, complaint)
}

// UpdateStatus godoc
// PATCH /api/complaints/{id}/status
// Body: { "status": "Çözüldü" }
func (h *ComplaintHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "account not found in context")
		return
	}

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	complaint, err := h.complaintService.UpdateStatus(r.Context(), account, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, complaint)
}

// Summary godoc
// GET /api/complaints/summary
// Sadece birim yetkilisi: kendi biriminin durum bazlı şikayet sayıları.
func (h *ComplaintHandler) Summary(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "account not found in context")
		return
	}

	summary, err := h.complaintService.Summary(r.Context(), account)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, summary)
}
