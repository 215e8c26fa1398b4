package course

// Module is an ordered group of videos within a course
type Module struct {
	ID           string  `json:"id"`
	CourseID     string  `json:"courseId"`
	Title        string  `json:"title"`
	ModuleNumber int     `json:"moduleNumber"`
	Videos       []Video `json:"videos,omitempty"`
}

// Video is a lesson within a module. Exactly one of VideoURL and ExternalURL is set.
type Video struct {
	ID          string `json:"id"`
	ModuleID    string `json:"moduleId"`
	Title       string `json:"title"`
	Duration    int    `json:"duration"` // seconds
	VideoNumber int    `json:"videoNumber"`
	VideoURL    string `json:"videoUrl,omitempty"`
	ExternalURL string `json:"externalUrl,omitempty"`
}

// Source returns whichever playback reference the video carries.
func (v Video) Source() string {
	if v.VideoURL != "" {
		return v.VideoURL
	}
	return v.ExternalURL
}

// TotalDuration sums the durations of all videos in the module.
func (m Module) TotalDuration() int {
	total := 0
	for _, v := range m.Videos {
		total += v.Duration
	}
	return total
}
