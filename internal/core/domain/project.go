package domain

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrInvalidFreelancers = errors.New("one or more freelancer ids are invalid or not freelancers")

// ProjectStatus mirrors UserStatus: projects are retired, not deleted.
type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectInactive ProjectStatus = "inactive"
)

// Project groups the work freelancers log hours against.
type Project struct {
	ID                  string        `json:"id"`
	ProjectName         string        `json:"project_name"`
	Description         string        `json:"description"`
	AssignedFreelancers []string      `json:"assigned_freelancers"`
	Status              ProjectStatus `json:"status"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}
