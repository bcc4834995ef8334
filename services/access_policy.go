package services

import (
	"context"
	"fmt"

	"github.com/akinalp/parkapp/config"
	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/akinalp/parkapp/repository"
)

// AccessPolicy, şikayetlerin kim tarafından görülüp değiştirilebileceğini belirler.
//
// Admin sadece kendi biriminin şikayetlerini görür ve çözer. Vatandaşın
// görebildikleri userScope ayarına bağlıdır:
//   - "all": tüm şikayetler (salt okunur)
//   - "own": sadece kendi bildirdikleri
type AccessPolicy interface {
	VisibleComplaints(ctx context.Context, viewer *models.Account) ([]models.Complaint, error)
	CanView(viewer *models.Account, complaint *models.Complaint) bool
	CanResolve(actor *models.Account, complaint *models.Complaint) bool
	// CanTransition, actor'ün complaint'i next durumuna taşıyıp taşıyamayacağını
	// kontrol eder. Yetki yoksa ErrForbidden, geçiş geçersizse ErrBadRequest döner.
	CanTransition(actor *models.Account, complaint *models.Complaint, next models.ComplaintStatus) error
}

type accessPolicy struct {
	complaintRepo repository.ComplaintRepository
	userScope     string
}

// NewAccessPolicy, constructor. userScope config.UserScopeOwn veya config.UserScopeAll.
func NewAccessPolicy(complaintRepo repository.ComplaintRepository, userScope string) AccessPolicy {
	if userScope == "" {
		userScope = config.UserScopeOwn
	}
	return &accessPolicy{
		complaintRepo: complaintRepo,
		userScope:     userScope,
	}
}

func (p *accessPolicy) VisibleComplaints(ctx context.Context, viewer *models.Account) ([]models.Complaint, error) {
	if viewer == nil {
		return nil, fmt.Errorf("%w: authentication required", pkg.ErrUnauthorized)
	}

	if dept, ok := viewer.AdminDepartment(); ok {
		return p.complaintRepo.ListByDepartment(ctx, dept)
	}

	if p.userScope == config.UserScopeOwn {
		return p.complaintRepo.ListByReporter(ctx, viewer.ID)
	}
	return p.complaintRepo.ListAll(ctx)
}

func (p *accessPolicy) CanView(viewer *models.Account, complaint *models.Complaint) bool {
	if viewer == nil || complaint == nil {
		return false
	}

	if dept, ok := viewer.AdminDepartment(); ok {
		return complaint.Department == dept
	}

	if p.userScope == config.UserScopeOwn {
		return complaint.ReporterID != nil && *complaint.ReporterID == viewer.ID
	}
	return true
}

func (p *accessPolicy) CanResolve(actor *models.Account, complaint *models.Complaint) bool {
	return CanResolve(actor, complaint)
}

func (p *accessPolicy) CanTransition(actor *models.Account, complaint *models.Complaint, next models.ComplaintStatus) error {
	if actor == nil {
		return fmt.Errorf("%w: authentication required", pkg.ErrUnauthorized)
	}

	dept, ok := actor.AdminDepartment()
	if !ok {
		return fmt.Errorf("%w: only department admins can change complaint status", pkg.ErrForbidden)
	}
	if complaint.Department != dept {
		return fmt.Errorf("%w: complaint belongs to another department", pkg.ErrForbidden)
	}
	if complaint.IsResolved() {
		return fmt.Errorf("%w: complaint already resolved", pkg.ErrForbidden)
	}
	if !complaint.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: cannot move complaint from %q to %q", pkg.ErrBadRequest, complaint.Status, next)
	}
	return nil
}

// CanResolve, saf yetki kontrolü: actor admin, birimi şikayetinkiyle aynı
// ve şikayet henüz çözülmemiş olmalı.
func CanResolve(actor *models.Account, complaint *models.Complaint) bool {
	if actor == nil || complaint == nil {
		return false
	}
	dept, ok := actor.AdminDepartment()
	if !ok {
		return false
	}
	return complaint.Department == dept && !complaint.IsResolved()
}
