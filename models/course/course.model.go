package course

import (
	"time"

	"storefront/models"
)

// CourseType distinguishes free from paid courses.
type CourseType string

const (
	TypeFree CourseType = "FREE"
	TypePaid CourseType = "PAID"
)

// Status is the approval state of a course.
type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Course represents a course as returned by the API
type Course struct {
	ID            string              `json:"id"`
	Slug          string              `json:"slug"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Price         float64             `json:"price"`
	Discount      float64             `json:"discount"`
	FinalPrice    float64             `json:"finalPrice"` // computed server side
	Type          CourseType          `json:"type"`
	Tags          []string            `json:"tags"`
	Thumbnail     string              `json:"thumbnail,omitempty"`
	PreviewVideo  string              `json:"previewVideo,omitempty"`
	Status        Status              `json:"status"`
	IsPublished   bool                `json:"isPublished"`
	Instructor    *models.UserSummary `json:"instructor,omitempty"`
	TotalStudents int64               `json:"totalStudents"`
	TotalModules  int                 `json:"totalModules"`
	Modules       []Module            `json:"modules,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// IsFree is true for FREE courses and for paid courses discounted to zero.
func (c Course) IsFree() bool {
	return c.Type == TypeFree || c.FinalPrice <= 0
}

// Purchasable reports whether the storefront may offer the course for checkout.
func (c Course) Purchasable() bool {
	return c.IsPublished && c.Status == StatusApproved
}

// HideVideoSources blanks the playable URLs of every video. The preview video stays public.
func (c *Course) HideVideoSources() {
	for i := range c.Modules {
		for j := range c.Modules[i].Videos {
			c.Modules[i].Videos[j].VideoURL = ""
			c.Modules[i].Videos[j].ExternalURL = ""
		}
	}
}

// OwnedBy reports whether userID is the course instructor.
func (c Course) OwnedBy(userID string) bool {
	return c.Instructor != nil && userID != "" && c.Instructor.ID == userID
}
