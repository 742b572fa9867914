package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
	"github.com/freelancehub/time-tracking-api/internal/core/ports"
)

func newProjectFixture(t *testing.T) (*ProjectService, *stubProjectRepo, *stubUserRepo) {
	t.Helper()
	projects := newStubProjectRepo()
	users := newStubUserRepo()
	return NewProjectService(projects, users, zerolog.Nop()), projects, users
}

func TestProjectService_Create(t *testing.T) {
	svc, _, _ := newProjectFixture(t)

	project, err := svc.Create(context.Background(), ports.CreateProjectInput{
		ProjectName: "Website relaunch",
		Description: "Marketing site rebuild",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if project.ID == "" {
		t.Fatalf("missing project id")
	}
	if project.Status != domain.ProjectActive {
		t.Fatalf("new projects must start active, got %q", project.Status)
	}
}

func TestProjectService_AssignFreelancers(t *testing.T) {
	svc, _, users := newProjectFixture(t)
	ctx := context.Background()

	project, _ := svc.Create(ctx, ports.CreateProjectInput{ProjectName: "P", Description: "d"})
	jane, _ := users.Create(ctx, &domain.User{
		FullName: "Jane", Email: "jane@example.com", RoleName: domain.RoleFreelancer,
	})

	updated, err := svc.AssignFreelancers(ctx, project.ID, []string{jane.ID})
	if err != nil {
		t.Fatalf("AssignFreelancers: %v", err)
	}
	if len(updated.AssignedFreelancers) != 1 || updated.AssignedFreelancers[0] != jane.ID {
		t.Fatalf("assignment not recorded: %+v", updated)
	}
}

func TestProjectService_AssignFreelancers_RejectsNonFreelancers(t *testing.T) {
	svc, _, users := newProjectFixture(t)
	ctx := context.Background()

	project, _ := svc.Create(ctx, ports.CreateProjectInput{ProjectName: "P", Description: "d"})
	pm, _ := users.Create(ctx, &domain.User{
		FullName: "Max", Email: "max@example.com", RoleName: domain.RoleProjectManager,
	})

	if _, err := svc.AssignFreelancers(ctx, project.ID, []string{pm.ID}); !errors.Is(err, domain.ErrInvalidFreelancers) {
		t.Fatalf("expected ErrInvalidFreelancers for non-freelancer, got %v", err)
	}
	if _, err := svc.AssignFreelancers(ctx, project.ID, []string{"ghost"}); !errors.Is(err, domain.ErrInvalidFreelancers) {
		t.Fatalf("expected ErrInvalidFreelancers for unknown id, got %v", err)
	}

	fresh, _ := svc.List(ctx)
	if len(fresh[0].AssignedFreelancers) != 0 {
		t.Fatalf("failed assignment must not write")
	}
}

func TestProjectService_AssignFreelancers_ProjectNotFound(t *testing.T) {
	svc, _, _ := newProjectFixture(t)

	if _, err := svc.AssignFreelancers(context.Background(), "missing", nil); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_List_ResolvesFreelancers(t *testing.T) {
	svc, _, users := newProjectFixture(t)
	ctx := context.Background()

	project, _ := svc.Create(ctx, ports.CreateProjectInput{ProjectName: "P", Description: "d"})
	jane, _ := users.Create(ctx, &domain.User{
		FullName: "Jane Doe", Email: "jane@example.com", RoleName: domain.RoleFreelancer,
	})
	_, _ = svc.AssignFreelancers(ctx, project.ID, []string{jane.ID})

	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one project, got %d", len(listed))
	}
	fl := listed[0].Freelancers
	if len(fl) != 1 || fl[0].FullName != "Jane Doe" || fl[0].Email != "jane@example.com" {
		t.Fatalf("freelancer summary not resolved: %+v", fl)
	}
}
