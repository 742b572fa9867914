package ports

import (
	"context"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
)

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	FullName   string
	Email      string
	Password   string
	Role       string
	HourlyRate float64
}

// UpdateUserInput is a partial profile update with the plaintext password;
// the service hashes it before it reaches the repository.
type UpdateUserInput struct {
	FullName   *string
	Email      *string
	Password   *string
	Phone      *string
	Address    *string
	HourlyRate *float64
	Status     *domain.UserStatus
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	VerifyEmail(ctx context.Context, verificationToken string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	AssignRole(ctx context.Context, userID, roleName string) (*domain.User, error)
	Update(ctx context.Context, userID string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, userID string) (*domain.User, error)
}
