package course

import (
	"time"

	"storefront/models"
)

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentCancelled EnrollmentStatus = "CANCELLED"
)

// Enrollment joins a user and a course with progress
type Enrollment struct {
	ID        string           `json:"id"`
	User      *models.User     `json:"user,omitempty"`
	Course    Course           `json:"course"`
	Progress  float64          `json:"progress"` // 0-100
	Status    EnrollmentStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
}
