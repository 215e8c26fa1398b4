package models

// Point is a single sample of a chart series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type AdminStats struct {
	TotalUsers      int64            `json:"totalUsers"`
	UsersByRole     map[string]int64 `json:"usersByRole"`
	TotalCourses    int64            `json:"totalCourses"`
	CoursesByStatus map[string]int64 `json:"coursesByStatus"`
	TotalRevenue    float64          `json:"totalRevenue"`
	Revenue         []Point          `json:"revenue"`
	Enrollments     []Point          `json:"enrollments"`
}

type InstructorStats struct {
	TotalCourses  int64   `json:"totalCourses"`
	TotalStudents int64   `json:"totalStudents"`
	TotalRevenue  float64 `json:"totalRevenue"`
	Revenue       []Point `json:"revenue"`
	PerCourse     []Point `json:"perCourse"`
}

type StudentStats struct {
	Enrolled        int64   `json:"enrolled"`
	Completed       int64   `json:"completed"`
	AverageProgress float64 `json:"averageProgress"`
}
