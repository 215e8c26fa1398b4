package apiclient

// Cache invalidation tags.
const (
	TagCourses = "courses"
	TagModules = "modules"
	TagVideos  = "videos"
	TagUsers   = "users"
	TagStats   = "stats"
)

func TagEnrollments(userID string) string { return "enrollments:" + userID }

func TagMe(userID string) string { return "me:" + userID }
