package ports

import (
	"context"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
)

// ProjectRepository persists projects and their freelancer assignments.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	AppendFreelancers(ctx context.Context, projectID string, freelancerIDs []string) (*domain.Project, error)
}

// CreateProjectInput is the payload for a new project.
type CreateProjectInput struct {
	ProjectName string
	Description string
}

// FreelancerSummary is the reduced user shape embedded in project listings.
type FreelancerSummary struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// ProjectWithFreelancers is a project joined with its assignees.
type ProjectWithFreelancers struct {
	domain.Project
	Freelancers []FreelancerSummary `json:"freelancers"`
}

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	AssignFreelancers(ctx context.Context, projectID string, freelancerIDs []string) (*domain.Project, error)
	List(ctx context.Context) ([]ProjectWithFreelancers, error)
}
