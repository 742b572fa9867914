package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
	"github.com/freelancehub/time-tracking-api/internal/core/ports"
	"github.com/freelancehub/time-tracking-api/internal/core/rbac"
	"github.com/freelancehub/time-tracking-api/internal/core/token"
)

// bcryptCost matches what the previous system hashed with, so existing
// password hashes keep verifying.
const bcryptCost = 10

// UserService implements registration, login, email verification and user
// administration.
type UserService struct {
	users    ports.UserRepository
	roles    ports.RoleRepository
	registry *rbac.Registry
	tokens   *token.Service
	emailer  ports.Emailer
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, registry *rbac.Registry, tokens *token.Service, emailer ports.Emailer, logger zerolog.Logger) *UserService {
	return &UserService{
		users:    users,
		roles:    roles,
		registry: registry,
		tokens:   tokens,
		emailer:  emailer,
		logger:   logger,
	}
}

// Register creates an unverified account and dispatches the verification
// mail. The role must exist in the static registry and have a persisted
// copy; freelancers additionally need an hourly rate.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if !s.registry.RoleExists(in.Role) {
		return nil, domain.ErrUnknownRole
	}
	if in.Role == domain.RoleFreelancer && in.HourlyRate <= 0 {
		return nil, domain.ErrHourlyRateRequired
	}

	role, err := s.roles.FindByName(ctx, in.Role)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrUnknownRole
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		RoleName:     role.Name,
		Permissions:  role.Grants,
		Verified:     false,
		Status:       domain.StatusActive,
	}
	if in.Role == domain.RoleFreelancer {
		user.HourlyRate = in.HourlyRate
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	verificationToken, err := s.tokens.IssueVerifyEmail(created.Email, created.FullName)
	if err != nil {
		return nil, err
	}
	if err := s.emailer.SendVerification(ctx, created.Email, created.FullName, verificationToken); err != nil {
		// The account exists; a failed mail dispatch is not fatal.
		s.logger.Error().Err(err).Str("email", created.Email).Msg("verification mail dispatch failed")
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.RoleName).Msg("user registered")
	return created, nil
}

// VerifyEmail validates the verification-link token and marks the account
// verified.
func (s *UserService) VerifyEmail(ctx context.Context, verificationToken string) (*domain.User, error) {
	email, res := s.tokens.VerifyEmailToken(verificationToken)
	if !res.Valid {
		if res.Expired {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	return s.users.MarkVerified(ctx, email)
}

// Login authenticates by email and password and issues a bearer token.
// Unverified accounts are rejected before a token is ever minted.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.Verified {
		return "", nil, domain.ErrEmailNotVerified
	}
	if !s.registry.RoleExists(user.RoleName) {
		// Never issue a token for a role the registry does not know.
		return "", nil, domain.ErrUnknownRole
	}

	signed, err := s.tokens.Issue(token.Claims{
		UserID:   user.ID,
		Role:     user.RoleName,
		FullName: user.FullName,
	})
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.RoleName).Msg("login")
	return signed, user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// AssignRole reassigns a user's role with the read-then-conditional-write
// discipline: the conditional update only matches when the user's roleName
// is still the one read here, so two concurrent reassignments cannot leave
// a role name from one role and a permission snapshot from another. On a
// miss the read+write is retried once, then the call fails with Conflict.
func (s *UserService) AssignRole(ctx context.Context, userID, roleName string) (*domain.User, error) {
	role, err := s.roles.FindByName(ctx, roleName)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < 2; attempt++ {
		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}

		updated, err := s.users.AssignRole(ctx, userID, user.RoleName, role)
		if err == nil {
			s.logger.Info().Str("user_id", userID).Str("role", role.Name).Msg("role assigned")
			return updated, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
	}
	return nil, domain.ErrConflict
}

// Update applies a partial profile update, re-hashing the password when one
// is supplied.
func (s *UserService) Update(ctx context.Context, userID string, in ports.UpdateUserInput) (*domain.User, error) {
	update := ports.UserUpdate{
		FullName:   in.FullName,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		HourlyRate: in.HourlyRate,
		Status:     in.Status,
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}
	return s.users.Update(ctx, userID, update)
}

func (s *UserService) Delete(ctx context.Context, userID string) (*domain.User, error) {
	deleted, err := s.users.Delete(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", userID).Msg("user deleted")
	return deleted, nil
}
