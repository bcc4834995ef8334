package handlers

import (
	"net/http"

	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/akinalp/parkapp/pkg/i18n"
	"github.com/akinalp/parkapp/routing"
)

// DepartmentInfo, birim listesi satırı.
type DepartmentInfo struct {
	Name       models.Department `json:"name"`
	Label      string            `json:"label"`
	Mailbox    string            `json:"mailbox"`
	IssueTypes []string          `json:"issue_types"`
}

// StatusInfo, durum listesi satırı. Next, bu durumdan izin verilen geçişler.
type StatusInfo struct {
	Value models.ComplaintStatus   `json:"value"`
	Label string                   `json:"label"`
	Next  []models.ComplaintStatus `json:"next"`
}

// MetaHandler, client'ın seçim listelerini dolduran sabit veriler.
// Etiketler Accept-Language'e göre çevrilir, değerler değişmez.
type MetaHandler struct {
	catalog *i18n.Catalog
}

// NewMetaHandler, constructor.
func NewMetaHandler(catalog *i18n.Catalog) *MetaHandler {
	return &MetaHandler{catalog: catalog}
}

func (h *MetaHandler) localizer(r *http.Request) *i18n.Localizer {
	return h.catalog.Localizer(i18n.DetectLanguage(r.Header.Get("Accept-Language")))
}

// Departments godoc
// GET /api/departments
func (h *MetaHandler) Departments(w http.ResponseWriter, r *http.Request) {
	l := h.localizer(r)
	depts := models.Departments()
	out := make([]DepartmentInfo, 0, len(depts))
	for _, d := range depts {
		out = append(out, DepartmentInfo{
			Name:       d,
			Label:      l.T("department." + string(d)),
			Mailbox:    d.Mailbox(),
			IssueTypes: routing.IssueTypesFor(d),
		})
	}

	pkg.JSON(w, http.StatusOK, out)
}

// IssueTypes godoc
// GET /api/issue-types
func (h *MetaHandler) IssueTypes(w http.ResponseWriter, r *http.Request) {
	pkg.JSON(w, http.StatusOK, routing.IssueTypes())
}

// Statuses godoc
// GET /api/statuses
func (h *MetaHandler) Statuses(w http.ResponseWriter, r *http.Request) {
	l := h.localizer(r)
	all := []models.ComplaintStatus{models.StatusPending, models.StatusInProgress, models.StatusResolved}

	out := make([]StatusInfo, 0, len(all))
	for _, s := range all {
		next := []models.ComplaintStatus{}
		for _, n := range all {
			if s.CanTransitionTo(n) {
				next = append(next, n)
			}
		}
		out = append(out, StatusInfo{Value: s, Label: l.T("status." + string(s)), Next: next})
	}

	pkg.JSON(w, http.StatusOK, out)
}
