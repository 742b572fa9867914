package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
	"github.com/freelancehub/time-tracking-api/internal/core/ports"
	"github.com/freelancehub/time-tracking-api/internal/core/rbac"
	"github.com/freelancehub/time-tracking-api/internal/core/token"
)

func newUserFixture(t *testing.T) (*UserService, *stubUserRepo, *stubRoleRepo, *stubEmailer, *token.Service) {
	t.Helper()

	registry := rbac.NewRegistry()
	roles := newStubRoleRepo(registry.Roles()...)
	users := newStubUserRepo()
	emailer := newStubEmailer()

	tokens, err := token.New("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token.New: %v", err)
	}

	svc := NewUserService(users, roles, registry, tokens, emailer, zerolog.Nop())
	return svc, users, roles, emailer, tokens
}

func TestUserService_Register_Freelancer(t *testing.T) {
	svc, _, _, emailer, _ := newUserFixture(t)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Password:   "Sup3rSecret",
		Role:       domain.RoleFreelancer,
		HourlyRate: 25,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Verified {
		t.Fatalf("new accounts must start unverified")
	}
	if user.Status != domain.StatusActive {
		t.Fatalf("unexpected status %q", user.Status)
	}
	if user.HourlyRate != 25 {
		t.Fatalf("hourly rate not stored")
	}
	if user.RoleName != domain.RoleFreelancer || user.RoleID == "" {
		t.Fatalf("role not linked: %+v", user)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Sup3rSecret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if _, ok := emailer.sent["jane@example.com"]; !ok {
		t.Fatalf("verification mail not dispatched")
	}
}

func TestUserService_Register_Validation(t *testing.T) {
	svc, _, _, _, _ := newUserFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, ports.RegisterInput{
		FullName: "X", Email: "x@example.com", Password: "pw", Role: "superuser",
	}); !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}

	if _, err := svc.Register(ctx, ports.RegisterInput{
		FullName: "X", Email: "x@example.com", Password: "pw", Role: domain.RoleFreelancer,
	}); !errors.Is(err, domain.ErrHourlyRateRequired) {
		t.Fatalf("expected ErrHourlyRateRequired, got %v", err)
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _, _, _ := newUserFixture(t)
	ctx := context.Background()

	in := ports.RegisterInput{
		FullName: "Bob", Email: "bob@example.com", Password: "pw", Role: domain.RoleAdmin,
	}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(ctx, in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

// Covers the full flow: register, login blocked until verified, verify,
// login, decode.
func TestUserService_RegisterVerifyLoginFlow(t *testing.T) {
	svc, _, _, emailer, tokens := newUserFixture(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, ports.RegisterInput{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Password:   "Sup3rSecret",
		Role:       domain.RoleFreelancer,
		HourlyRate: 25,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "jane@example.com", "Sup3rSecret"); !errors.Is(err, domain.ErrEmailNotVerified) {
		t.Fatalf("login before verification must fail with ErrEmailNotVerified, got %v", err)
	}

	verified, err := svc.VerifyEmail(ctx, emailer.sent["jane@example.com"])
	if err != nil {
		t.Fatalf("VerifyEmail: %v", err)
	}
	if !verified.Verified {
		t.Fatalf("user not marked verified")
	}

	signed, user, err := svc.Login(ctx, "jane@example.com", "Sup3rSecret")
	if err != nil {
		t.Fatalf("Login after verification: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("login returned wrong user")
	}

	res := tokens.Verify(signed)
	if !res.Valid {
		t.Fatalf("issued token does not verify")
	}
	if res.Claims.Role != domain.RoleFreelancer || res.Claims.UserID != registered.ID {
		t.Fatalf("unexpected claims: %+v", res.Claims)
	}
}

func TestUserService_VerifyEmail_BadToken(t *testing.T) {
	svc, _, _, _, _ := newUserFixture(t)

	if _, err := svc.VerifyEmail(context.Background(), "garbage"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	svc, users, _, _, _ := newUserFixture(t)
	ctx := context.Background()

	if _, _, err := svc.Login(ctx, "ghost@example.com", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpw"), bcryptCost)
	_, _ = users.Create(ctx, &domain.User{
		FullName: "Carl", Email: "carl@example.com", PasswordHash: string(hash),
		RoleName: domain.RoleAdmin, Verified: true, Status: domain.StatusActive,
	})
	if _, _, err := svc.Login(ctx, "carl@example.com", "wrongpw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("bad password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_UnknownRoleNeverIssuesToken(t *testing.T) {
	svc, users, _, _, _ := newUserFixture(t)
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcryptCost)
	_, _ = users.Create(ctx, &domain.User{
		FullName: "Eve", Email: "eve@example.com", PasswordHash: string(hash),
		RoleName: "retired_role", Verified: true, Status: domain.StatusActive,
	})

	signed, _, err := svc.Login(ctx, "eve@example.com", "pw")
	if !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
	if signed != "" {
		t.Fatalf("no token may be issued for an unregistered role")
	}
}

func TestUserService_AssignRole(t *testing.T) {
	svc, users, _, _, _ := newUserFixture(t)
	ctx := context.Background()

	created, _ := users.Create(ctx, &domain.User{
		FullName: "Jane", Email: "jane@example.com",
		RoleName: domain.RoleFreelancer, Verified: true, Status: domain.StatusActive,
	})

	updated, err := svc.AssignRole(ctx, created.ID, domain.RoleProjectManager)
	if err != nil {
		t.Fatalf("AssignRole: %v", err)
	}
	if updated.RoleName != domain.RoleProjectManager {
		t.Fatalf("role not updated: %+v", updated)
	}
	if len(updated.Permissions) == 0 {
		t.Fatalf("permissions snapshot not refreshed")
	}
	for _, p := range updated.Permissions {
		if p == "hours:create" {
			t.Fatalf("permissions snapshot still carries freelancer grants")
		}
	}
}

func TestUserService_AssignRole_NotFound(t *testing.T) {
	svc, users, _, _, _ := newUserFixture(t)
	ctx := context.Background()

	if _, err := svc.AssignRole(ctx, "missing", domain.RoleAdmin); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	created, _ := users.Create(ctx, &domain.User{
		FullName: "Jane", Email: "jane@example.com", RoleName: domain.RoleFreelancer,
	})
	if _, err := svc.AssignRole(ctx, created.ID, "no_such_role"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

// A concurrent reassignment between read and write makes the first attempt
// miss; the retry re-reads and succeeds, never mixing fields of two roles.
func TestUserService_AssignRole_RetriesOnceOnConflict(t *testing.T) {
	svc, users, roles, _, _ := newUserFixture(t)
	ctx := context.Background()

	created, _ := users.Create(ctx, &domain.User{
		FullName: "Jane", Email: "jane@example.com", RoleName: domain.RoleFreelancer,
	})

	interleaved := false
	users.beforeAssign = func() {
		if interleaved {
			return
		}
		interleaved = true
		admin, _ := roles.FindByName(ctx, domain.RoleAdmin)
		u := users.users[created.ID]
		u.RoleID = admin.ID
		u.RoleName = admin.Name
		u.Permissions = append([]string(nil), admin.Grants...)
	}

	updated, err := svc.AssignRole(ctx, created.ID, domain.RoleProjectManager)
	if err != nil {
		t.Fatalf("AssignRole after one conflict: %v", err)
	}
	if updated.RoleName != domain.RoleProjectManager {
		t.Fatalf("retry did not apply target role: %+v", updated)
	}
}

func TestUserService_AssignRole_ConflictAfterRetry(t *testing.T) {
	svc, users, _, _, _ := newUserFixture(t)
	ctx := context.Background()

	created, _ := users.Create(ctx, &domain.User{
		FullName: "Jane", Email: "jane@example.com", RoleName: domain.RoleFreelancer,
	})

	// Keep flipping the stored role so the conditional write never matches.
	n := 0
	users.beforeAssign = func() {
		n++
		users.users[created.ID].RoleName = "flipping-" + string(rune('a'+n))
	}

	if _, err := svc.AssignRole(ctx, created.ID, domain.RoleAdmin); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict after exhausted retry, got %v", err)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	svc, users, _, _, _ := newUserFixture(t)
	ctx := context.Background()

	created, _ := users.Create(ctx, &domain.User{
		FullName: "Jane", Email: "jane@example.com", RoleName: domain.RoleFreelancer,
	})

	newPassword := "N3wSecret!"
	phone := "555-0101"
	updated, err := svc.Update(ctx, created.ID, ports.UpdateUserInput{
		Password: &newPassword,
		Phone:    &phone,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Phone != "555-0101" {
		t.Fatalf("phone not updated")
	}
	if updated.PasswordHash == newPassword {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(newPassword)); err != nil {
		t.Fatalf("new password does not verify: %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc, users, _, _, _ := newUserFixture(t)
	ctx := context.Background()

	created, _ := users.Create(ctx, &domain.User{FullName: "Jane", Email: "jane@example.com"})

	deleted, err := svc.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("deleted echo mismatch")
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present after delete")
	}
}
