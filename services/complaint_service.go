package services

import (
	"context"
	"fmt"
	"time"

	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/akinalp/parkapp/pkg/logger"
	"github.com/akinalp/parkapp/repository"
	"github.com/akinalp/parkapp/routing"
	"github.com/rs/zerolog"
)

// ComplaintService, şikayet oluşturma, listeleme ve durum yönetimi.
type ComplaintService interface {
	// Create, şikayeti sorun tipine göre birime yönlendirip kaydeder.
	// reporter nil olabilir (anonim bildirim).
	Create(ctx context.Context, reporter *models.Account, req *models.CreateComplaintRequest) (*models.Complaint, error)
	// List, viewer'ın görebildiği şikayetleri döner. deptFilter boş değilse
	// sonuç o birime daraltılır.
	List(ctx context.Context, viewer *models.Account, deptFilter models.Department) ([]models.Complaint, error)
	Get(ctx context.Context, viewer *models.Account, id string) (*models.Complaint, error)
	UpdateStatus(ctx context.Context, actor *models.Account, id string, req *models.UpdateStatusRequest) (*models.Complaint, error)
	// Summary, birim yetkilisinin kendi birimi için durum sayılarını döner.
	Summary(ctx context.Context, admin *models.Account) (*models.ComplaintSummary, error)
}

type complaintService struct {
	complaintRepo repository.ComplaintRepository
	policy        AccessPolicy
	stats         StatsService
	notifier      Notifier
	log           zerolog.Logger
	now           func() time.Time
}

// NewComplaintService, constructor. notifier nil olabilir.
func NewComplaintService(
	complaintRepo repository.ComplaintRepository,
	policy AccessPolicy,
	stats StatsService,
	notifier Notifier,
) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		policy:        policy,
		stats:         stats,
		notifier:      notifier,
		log:           logger.For("complaints"),
		now:           time.Now,
	}
}

func (s *complaintService) Create(ctx context.Context, reporter *models.Account, req *models.CreateComplaintRequest) (*models.Complaint, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if !routing.IsKnown(req.IssueType) {
		s.log.Warn().Str("issue_type", req.IssueType).Str("department", string(routing.DefaultDepartment)).
			Msg("unknown issue type, routed to default department")
	}

	complaint := &models.Complaint{
		ParkName:    req.ParkName,
		Department:  routing.DepartmentFor(req.IssueType),
		IssueType:   req.IssueType,
		Description: req.Description,
		Status:      models.StatusPending,
		ReportedAt:  s.now().UTC(),
	}
	if reporter != nil {
		id := reporter.ID
		complaint.ReporterID = &id
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.log.Info().Str("complaint_id", complaint.ID).Str("department", string(complaint.Department)).Msg("complaint created")

	if reporter != nil {
		s.stats.IncrementComplaintsFiled(reporter.ID)
	}
	if s.notifier != nil {
		s.notifier.ComplaintCreated(complaint)
	}

	return complaint, nil
}

func (s *complaintService) List(ctx context.Context, viewer *models.Account, deptFilter models.Department) ([]models.Complaint, error) {
	if viewer == nil {
		return nil, fmt.Errorf("%w: authentication required", pkg.ErrUnauthorized)
	}
	if deptFilter != "" && !deptFilter.Valid() {
		return nil, fmt.Errorf("%w: unknown department %q", pkg.ErrBadRequest, deptFilter)
	}

	if dept, ok := viewer.AdminDepartment(); ok && deptFilter != "" && deptFilter != dept {
		return nil, fmt.Errorf("%w: cannot list another department's complaints", pkg.ErrForbidden)
	}

	complaints, err := s.policy.VisibleComplaints(ctx, viewer)
	if err != nil {
		return nil, err
	}

	if deptFilter == "" {
		return complaints, nil
	}

	filtered := make([]models.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if c.Department == deptFilter {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *complaintService) Get(ctx context.Context, viewer *models.Account, id string) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.policy.CanView(viewer, complaint) {
		return nil, fmt.Errorf("%w: complaint is not visible to this account", pkg.ErrForbidden)
	}
	return complaint, nil
}

func (s *complaintService) UpdateStatus(ctx context.Context, actor *models.Account, id string, req *models.UpdateStatusRequest) (*models.Complaint, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.policy.CanTransition(actor, complaint, req.Status); err != nil {
		return nil, err
	}

	updated, err := s.complaintRepo.UpdateStatus(ctx, id, req.Status, actor.ID, s.now().UTC())
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("complaint_id", id).Str("status", string(updated.Status)).Str("actor_id", actor.ID).
		Msg("complaint status updated")

	if updated.IsResolved() {
		s.stats.IncrementComplaintsResolved(actor.ID)
	}

	return updated, nil
}

func (s *complaintService) Summary(ctx context.Context, admin *models.Account) (*models.ComplaintSummary, error) {
	if admin == nil {
		return nil, fmt.Errorf("%w: authentication required", pkg.ErrUnauthorized)
	}
	dept, ok := admin.AdminDepartment()
	if !ok {
		return nil, fmt.Errorf("%w: department admin role required", pkg.ErrForbidden)
	}

	counts, err := s.complaintRepo.CountByStatus(ctx, dept)
	if err != nil {
		return nil, err
	}

	summary := &models.ComplaintSummary{
		Department: dept,
		Pending:    counts[models.StatusPending],
		InProgress: counts[models.StatusInProgress],
		Resolved:   counts[models.StatusResolved],
	}
	summary.Total = summary.Pending + summary.InProgress + summary.Resolved
	return summary, nil
}
