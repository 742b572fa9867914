package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin          = "admin"
	RoleProjectManager = "project_manager"
	RoleFreelancer     = "freelancer"
)

// UserStatus marks whether an account is usable. Users are never hard-deleted
// in the common path; deactivation flips this flag.
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrEmailNotVerified = errors.New("please verify your email before logging in")
var ErrHourlyRateRequired = errors.New("hourly rate is required for freelancer")
var ErrConflict = errors.New("concurrent update conflict")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token")

// User models a registered actor: freelancer, project manager or admin.
// Permissions is a snapshot of the assigned role's grants, refreshed on
// every role reassignment.
type User struct {
	ID           string     `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Phone        string     `json:"phone,omitempty"`
	Address      string     `json:"address,omitempty"`
	RoleID       string     `json:"role_id"`
	RoleName     string     `json:"role_name"`
	Permissions  []string   `json:"permissions,omitempty"`
	HourlyRate   float64    `json:"hourly_rate,omitempty"`
	Verified     bool       `json:"verified"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
