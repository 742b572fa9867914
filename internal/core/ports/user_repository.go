package ports

import (
	"context"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
)

// UserUpdate carries a partial profile update. Nil fields are left untouched.
// Password is the already-hashed value; hashing happens in the service.
type UserUpdate struct {
	FullName     *string
	Email        *string
	PasswordHash *string
	Phone        *string
	Address      *string
	HourlyRate   *float64
	Status       *domain.UserStatus
}

// UserRepository defines persistence for user records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	MarkVerified(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)

	// AssignRole atomically rewrites roleId, roleName and the permissions
	// snapshot, but only if the user's current roleName still equals
	// expectRoleName. A concurrent reassignment makes the filter miss and
	// returns domain.ErrConflict so the caller can re-read and retry.
	AssignRole(ctx context.Context, userID, expectRoleName string, role *domain.Role) (*domain.User, error)
}
