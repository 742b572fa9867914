package handler

import (
	"time"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
)

// errorEnvelope documents the error shape for swagger; the actual rendering
// happens in the central HTTP error handler.
type errorEnvelope struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	FullName   string  `json:"full_name"   validate:"required"`
	Email      string  `json:"email"       validate:"required,email"`
	Password   string  `json:"password"    validate:"required,min=8"`
	Role       string  `json:"role"        validate:"required"`
	HourlyRate float64 `json:"hourly_rate" validate:"omitempty,gt=0"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type assignRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// updateUserRequest uses pointers so absent fields stay untouched.
type updateUserRequest struct {
	FullName   *string  `json:"full_name"`
	Email      *string  `json:"email"      validate:"omitempty,email"`
	Password   *string  `json:"password"   validate:"omitempty,min=8"`
	Phone      *string  `json:"phone"`
	Address    *string  `json:"address"`
	HourlyRate *float64 `json:"hourly_rate" validate:"omitempty,gt=0"`
	Status     *string  `json:"status"     validate:"omitempty,oneof=active inactive"`
}

// --- Response types ---

// userResponse is the public user shape. The password hash never leaves the
// domain struct, and the permissions snapshot is included so clients can
// drive their UI without a second round trip.
type userResponse struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions,omitempty"`
	HourlyRate  float64   `json:"hourly_rate,omitempty"`
	Verified    bool      `json:"verified"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// decodeTokenResponse is the reduced identity echoed back by decode-token.
type decodeTokenResponse struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Name string `json:"name"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Phone:       u.Phone,
		Address:     u.Address,
		Role:        u.RoleName,
		Permissions: u.Permissions,
		HourlyRate:  u.HourlyRate,
		Verified:    u.Verified,
		Status:      string(u.Status),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}
