package ports

import (
	"context"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
)

// RoleRepository persists the on-demand copies of registry roles.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
	UpdateGrants(ctx context.Context, name string, grants []string) (*domain.Role, error)
	Delete(ctx context.Context, name string) (*domain.Role, error)
}

type RoleService interface {
	Create(ctx context.Context, name string) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	UpdateGrants(ctx context.Context, name string, grants []string) (*domain.Role, error)
	Delete(ctx context.Context, name string) (*domain.Role, error)
}
