package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
	"github.com/freelancehub/time-tracking-api/internal/core/ports"
	"github.com/freelancehub/time-tracking-api/internal/core/rbac"
)

// RoleService manages the persisted copies of registry roles. The registry
// stays the authority on which roles may exist; persistence only materialises
// them so users can reference a roleId.
type RoleService struct {
	repo     ports.RoleRepository
	registry *rbac.Registry
	logger   zerolog.Logger
}

func NewRoleService(repo ports.RoleRepository, registry *rbac.Registry, logger zerolog.Logger) *RoleService {
	return &RoleService{repo: repo, registry: registry, logger: logger}
}

// Create materialises a registry role in the database. Unknown names are
// rejected; a second materialisation of the same role is a conflict.
func (s *RoleService) Create(ctx context.Context, name string) (*domain.Role, error) {
	grants, ok := s.registry.GrantsFor(name)
	if !ok {
		return nil, domain.ErrUnknownRole
	}

	created, err := s.repo.Create(ctx, &domain.Role{Name: name, Grants: grants})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("role", name).Msg("role persisted")
	return created, nil
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.repo.List(ctx)
}

func (s *RoleService) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	return s.repo.FindByName(ctx, name)
}

// UpdateGrants rewrites a persisted role's grant set. This is the lever that
// lets a role's capabilities change without touching route definitions.
func (s *RoleService) UpdateGrants(ctx context.Context, name string, grants []string) (*domain.Role, error) {
	updated, err := s.repo.UpdateGrants(ctx, name, grants)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("role", name).Int("grants", len(grants)).Msg("role grants updated")
	return updated, nil
}

func (s *RoleService) Delete(ctx context.Context, name string) (*domain.Role, error) {
	return s.repo.Delete(ctx, name)
}
