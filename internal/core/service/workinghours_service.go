package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
	"github.com/freelancehub/time-tracking-api/internal/core/ports"
)

// WorkingHoursService implements hour logging and the approval workflow.
type WorkingHoursService struct {
	hours    ports.WorkingHoursRepository
	projects ports.ProjectRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewWorkingHoursService(hours ports.WorkingHoursRepository, projects ports.ProjectRepository, users ports.UserRepository, logger zerolog.Logger) *WorkingHoursService {
	return &WorkingHoursService{hours: hours, projects: projects, users: users, logger: logger}
}

// Log records a batch of work entries against a project. Totals are derived
// from the entries and the freelancer's stored hourly rate; the sheet starts
// pending.
func (s *WorkingHoursService) Log(ctx context.Context, in ports.LogHoursInput) (*domain.WorkingHours, error) {
	if len(in.Entries) == 0 {
		return nil, domain.ErrNoWorkEntries
	}
	if _, err := s.projects.FindByID(ctx, in.ProjectID); err != nil {
		return nil, err
	}
	freelancer, err := s.users.FindByID(ctx, in.FreelancerID)
	if err != nil {
		return nil, err
	}

	var totalHours float64
	for _, e := range in.Entries {
		totalHours += e.Hours
	}

	wh := &domain.WorkingHours{
		FreelancerID:   in.FreelancerID,
		ProjectID:      in.ProjectID,
		WorkEntries:    in.Entries,
		HourlyRate:     freelancer.HourlyRate,
		TotalHours:     totalHours,
		TotalAmount:    totalHours * freelancer.HourlyRate,
		ApprovalStatus: domain.ApprovalPending,
	}

	created, err := s.hours.Create(ctx, wh)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("working_hours_id", created.ID).
		Str("freelancer_id", in.FreelancerID).
		Float64("total_hours", totalHours).
		Msg("working hours logged")
	return created, nil
}

func (s *WorkingHoursService) ListOwn(ctx context.Context, freelancerID string) ([]domain.WorkingHours, error) {
	return s.hours.ListByFreelancer(ctx, freelancerID)
}

// ApprovalRequests returns every sheet still awaiting review.
func (s *WorkingHoursService) ApprovalRequests(ctx context.Context) ([]domain.WorkingHours, error) {
	return s.hours.ListByStatus(ctx, domain.ApprovalPending)
}

// ApproveOrReject records a reviewer decision on a pending sheet.
func (s *WorkingHoursService) ApproveOrReject(ctx context.Context, id string, status domain.ApprovalStatus, approvedBy string) (*domain.WorkingHours, error) {
	if !status.IsDecision() {
		return nil, domain.ErrInvalidApprovalStatus
	}

	updated, err := s.hours.SetApproval(ctx, id, status, approvedBy)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("working_hours_id", id).
		Str("status", string(status)).
		Str("approved_by", approvedBy).
		Msg("working hours reviewed")
	return updated, nil
}
