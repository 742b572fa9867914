package domain

import (
	"errors"
	"time"
)

// ApprovalStatus is the review state of a logged working-hours sheet.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

var ErrWorkingHoursNotFound = errors.New("working hours entry not found")
var ErrInvalidApprovalStatus = errors.New("invalid approval status, must be 'approved' or 'rejected'")
var ErrNoWorkEntries = errors.New("at least one work entry is required")

// IsDecision reports whether s is a terminal reviewer decision.
func (s ApprovalStatus) IsDecision() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}

// WorkEntry is a single day of logged work.
type WorkEntry struct {
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description"`
}

// WorkingHours is a batch of work entries a freelancer submits against a
// project. TotalHours and TotalAmount are derived server-side from the
// entries and the freelancer's hourly rate, never trusted from the client.
type WorkingHours struct {
	ID             string         `json:"id"`
	FreelancerID   string         `json:"freelancer_id"`
	ProjectID      string         `json:"project_id"`
	WorkEntries    []WorkEntry    `json:"work_entries"`
	HourlyRate     float64        `json:"hourly_rate"`
	TotalHours     float64        `json:"total_hours"`
	TotalAmount    float64        `json:"total_amount"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	ApprovedBy     string         `json:"approved_by,omitempty"`
	Comments       []string       `json:"comments"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
