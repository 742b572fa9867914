package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
	"github.com/freelancehub/time-tracking-api/internal/core/ports"
)

// ProjectService implements project creation, freelancer assignment and
// listing.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, users ports.UserRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, users: users, logger: logger}
}

func (s *ProjectService) Create(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	project := &domain.Project{
		ProjectName: in.ProjectName,
		Description: in.Description,
		Status:      domain.ProjectActive,
	}
	created, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("project_id", created.ID).Str("name", created.ProjectName).Msg("project created")
	return created, nil
}

// AssignFreelancers appends freelancers to a project. Every id must resolve
// to an existing user holding the freelancer role, otherwise nothing is
// written.
func (s *ProjectService) AssignFreelancers(ctx context.Context, projectID string, freelancerIDs []string) (*domain.Project, error) {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return nil, err
	}

	for _, id := range freelancerIDs {
		user, err := s.users.FindByID(ctx, id)
		if err != nil {
			return nil, domain.ErrInvalidFreelancers
		}
		if user.RoleName != domain.RoleFreelancer {
			return nil, domain.ErrInvalidFreelancers
		}
	}

	updated, err := s.projects.AppendFreelancers(ctx, projectID, freelancerIDs)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("project_id", projectID).Int("freelancers", len(freelancerIDs)).Msg("freelancers assigned")
	return updated, nil
}

// List returns all projects with their assigned freelancers resolved to
// name/email summaries. Assignees that vanished are skipped rather than
// failing the whole listing.
func (s *ProjectService) List(ctx context.Context) ([]ports.ProjectWithFreelancers, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ports.ProjectWithFreelancers, 0, len(projects))
	for _, p := range projects {
		item := ports.ProjectWithFreelancers{Project: p}
		for _, id := range p.AssignedFreelancers {
			user, err := s.users.FindByID(ctx, id)
			if err != nil {
				continue
			}
			item.Freelancers = append(item.Freelancers, ports.FreelancerSummary{
				ID:       user.ID,
				FullName: user.FullName,
				Email:    user.Email,
			})
		}
		out = append(out, item)
	}
	return out, nil
}
