package ports

import (
	"context"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
)

// WorkingHoursRepository persists logged hour sheets.
type WorkingHoursRepository interface {
	Create(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error)
	FindByID(ctx context.Context, id string) (*domain.WorkingHours, error)
	ListByStatus(ctx context.Context, status domain.ApprovalStatus) ([]domain.WorkingHours, error)
	ListByFreelancer(ctx context.Context, freelancerID string) ([]domain.WorkingHours, error)
	SetApproval(ctx context.Context, id string, status domain.ApprovalStatus, approvedBy string) (*domain.WorkingHours, error)
	AppendComment(ctx context.Context, id, commentID string) error
}

// LogHoursInput is a freelancer's submission of work entries for a project.
// The hourly rate comes from the freelancer's user record, not the payload.
type LogHoursInput struct {
	FreelancerID string
	ProjectID    string
	Entries      []domain.WorkEntry
}

type WorkingHoursService interface {
	Log(ctx context.Context, in LogHoursInput) (*domain.WorkingHours, error)
	ListOwn(ctx context.Context, freelancerID string) ([]domain.WorkingHours, error)
	ApprovalRequests(ctx context.Context) ([]domain.WorkingHours, error)
	ApproveOrReject(ctx context.Context, id string, status domain.ApprovalStatus, approvedBy string) (*domain.WorkingHours, error)
}
