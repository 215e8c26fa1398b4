package course

import (
	"testing"

	"storefront/models"

	"github.com/stretchr/testify/assert"
)

func TestCourseFlags(t *testing.T) {
	c := Course{Type: TypePaid, FinalPrice: 20, IsPublished: true, Status: StatusApproved}
	assert.False(t, c.IsFree())
	assert.True(t, c.Purchasable())

	c.FinalPrice = 0
	assert.True(t, c.IsFree())

	c.Status = StatusPending
	assert.False(t, c.Purchasable())
}

func TestHideVideoSources(t *testing.T) {
	c := Course{
		PreviewVideo: "https://cdn/preview.mp4",
		Modules: []Module{{Videos: []Video{
			{VideoURL: "https://cdn/1.mp4"},
			{ExternalURL: "https://youtu.be/x"},
		}}},
	}
	c.HideVideoSources()

	assert.Equal(t, "https://cdn/preview.mp4", c.PreviewVideo)
	for _, v := range c.Modules[0].Videos {
		assert.Empty(t, v.Source())
	}
}

func TestOwnedBy(t *testing.T) {
	c := Course{Instructor: &models.UserSummary{ID: "i1"}}
	assert.True(t, c.OwnedBy("i1"))
	assert.False(t, c.OwnedBy("i2"))
	assert.False(t, Course{}.OwnedBy("i1"))
}
