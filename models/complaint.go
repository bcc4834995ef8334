package models

import (
	"fmt"
	"strings"
	"time"
)

// ComplaintStatus, şikayetin yaşam döngüsündeki durumu.
//
//	Beklemede → İşleme Alındı → Çözüldü
//	Beklemede ──────────────→ Çözüldü
//
// Çözüldü terminal durumdur.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "Beklemede"
	StatusInProgress ComplaintStatus = "İşleme Alındı"
	StatusResolved   ComplaintStatus = "Çözüldü"
)

// Valid, durumun bilinen üç değerden biri olup olmadığını kontrol eder.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// CanTransitionTo, ileri yönlü geçişlere izin verir. Aynı duruma geçiş geçersizdir.
func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusInProgress || next == StatusResolved
	case StatusInProgress:
		return next == StatusResolved
	}
	return false
}

// Complaint, vatandaşın bir park için bildirdiği sorun.
//
// Department oluşturma anında IssueType'tan türetilir ve sonra değişmez.
// ResolvedAt sadece Status == Çözüldü iken doludur.
type Complaint struct {
	ID          string          `json:"id"`
	ParkName    string          `json:"park_name"`
	Department  Department      `json:"department"`
	IssueType   string          `json:"issue_type"`
	Description string          `json:"description"`
	Status      ComplaintStatus `json:"status"`
	ReporterID  *string         `json:"reporter_id,omitempty"`
	ReportedAt  time.Time       `json:"reported_at"`
	ResolvedAt  *time.Time      `json:"resolved_at"`
	ResolvedBy  *string         `json:"resolved_by,omitempty"`
}

// IsResolved, şikayetin terminal durumda olup olmadığını döner.
func (c *Complaint) IsResolved() bool {
	return c.Status == StatusResolved
}

// CreateComplaintRequest, şikayet oluştururken client'tan gelen veri.
// Department alanı yoktur; birim her zaman sorun tipinden hesaplanır.
type CreateComplaintRequest struct {
	ParkName    string `json:"park_name"`
	IssueType   string `json:"issue_type"`
	Description string `json:"description"`
}

// Validate, zorunlu alanların boş olmadığını kontrol eder.
func (r *CreateComplaintRequest) Validate() error {
	r.ParkName = strings.TrimSpace(r.ParkName)
	r.IssueType = strings.TrimSpace(r.IssueType)
	r.Description = strings.TrimSpace(r.Description)

	if r.ParkName == "" {
		return fmt.Errorf("park name is required")
	}
	if r.IssueType == "" {
		return fmt.Errorf("issue type is required")
	}
	if r.Description == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}

// UpdateStatusRequest, şikayet durumunu değiştirme isteği.
type UpdateStatusRequest struct {
	Status ComplaintStatus `json:"status"`
}

// Validate, hedef durumun bilinen bir değer olduğunu kontrol eder.
func (r *UpdateStatusRequest) Validate() error {
	r.Status = ComplaintStatus(strings.TrimSpace(string(r.Status)))
	if !r.Status.Valid() {
		return fmt.Errorf("invalid status %q", r.Status)
	}
	return nil
}

// ComplaintSummary, bir birimin durum bazlı şikayet sayıları.
type ComplaintSummary struct {
	Department Department `json:"department"`
	Total      int        `json:"total"`
	Pending    int        `json:"pending"`
	InProgress int        `json:"in_progress"`
	Resolved   int        `json:"resolved"`
}
