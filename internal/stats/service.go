package stats

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sis/internal/apperr"
	"sis/internal/config"
	"sis/internal/metrics"
)

// Service combines the system-wide aggregate reads. The dashboard and
// reports fan their independent queries out concurrently and merge once all
// have returned.
type Service struct {
	repo        *Repository
	departments []config.Department
}

// NewService creates a service backed by a repository. departments is the
// fixed chart set, zero-filled in distributions.
func NewService(repo *Repository, departments []config.Department) *Service {
	return &Service{repo: repo, departments: departments}
}

// DepartmentCount is one slice of the department distribution chart.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
	Color      string `json:"color"`
}

// DashboardStats is the admin landing-page payload.
type DashboardStats struct {
	ActiveStudents         int               `json:"activeStudents"`
	ActiveCourses          int               `json:"activeCourses"`
	FacultyCount           int               `json:"facultyCount"`
	AverageAttendance      float64           `json:"averageAttendance"`
	AverageGPA             float64           `json:"averageGpa"`
	DepartmentDistribution []DepartmentCount `json:"departmentDistribution"`
}

// GPABucket is one distribution range as serialized.
type GPABucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// AverageGPAReport backs the average-gpa endpoint.
type AverageGPAReport struct {
	AverageGPA   float64     `json:"averageGpa"`
	Distribution []GPABucket `json:"distribution"`
}

// WeekdayRate is one day of the weekly attendance series.
type WeekdayRate struct {
	Day  string  `json:"day"`
	Rate float64 `json:"rate"`
}

// ReportsData backs the reports page.
type ReportsData struct {
	GPADistribution        []GPABucket       `json:"gpaDistribution"`
	DepartmentDistribution []DepartmentCount `json:"departmentDistribution"`
	EnrollmentTrend        []TrendPoint      `json:"enrollmentTrend"`
	WeeklyAttendance       []WeekdayRate     `json:"weeklyAttendance"`
}

// Dashboard gathers the admin dashboard numbers.
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var (
		counts          Counts
		attended, total int
		cgpas           []float64
		deptCounts      map[string]int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = s.repo.Counts(gctx)
		return err
	})
	g.Go(func() (err error) {
		attended, total, err = s.repo.AttendanceCounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		cgpas, err = s.repo.StudentCGPAs(gctx)
		return err
	})
	g.Go(func() (err error) {
		deptCounts, err = s.repo.ActiveStudentsByDepartment(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.FromStore(err, "", "")
	}

	rate := 0.0
	if total > 0 {
		rate = float64(attended) / float64(total) * 100
	}
	return &DashboardStats{
		ActiveStudents:         counts.ActiveStudents,
		ActiveCourses:          counts.ActiveCourses,
		FacultyCount:           counts.FacultyCount,
		AverageAttendance:      metrics.Round(rate, 1),
		AverageGPA:             metrics.Round(mean(cgpas), 2),
		DepartmentDistribution: s.departmentDistribution(deptCounts),
	}, nil
}

// AverageGPA returns the overall average CGPA and the bucket distribution.
func (s *Service) AverageGPA(ctx context.Context) (*AverageGPAReport, error) {
	cgpas, err := s.repo.StudentCGPAs(ctx)
	if err != nil {
		return nil, apperr.FromStore(err, "", "")
	}
	return &AverageGPAReport{
		AverageGPA:   metrics.Round(mean(cgpas), 2),
		Distribution: toGPABuckets(metrics.Distribution(cgpas)),
	}, nil
}

// CoursesOverview lists every course with its live enrollment count.
func (s *Service) CoursesOverview(ctx context.Context) ([]CourseOverview, error) {
	out, err := s.repo.CoursesWithEnrollments(ctx)
	if err != nil {
		return nil, apperr.FromStore(err, "", "")
	}
	if out == nil {
		out = []CourseOverview{}
	}
	return out, nil
}

// Reports gathers the reports-page series. The enrollment trend and weekly
// attendance come from real queries over the enrollment and attendance
// tables.
func (s *Service) Reports(ctx context.Context) (*ReportsData, error) {
	var (
		cgpas      []float64
		deptCounts map[string]int
		trend      []TrendPoint
		byWeekday  map[int]weekdayCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cgpas, err = s.repo.StudentCGPAs(gctx)
		return err
	})
	g.Go(func() (err error) {
		deptCounts, err = s.repo.ActiveStudentsByDepartment(gctx)
		return err
	})
	g.Go(func() (err error) {
		trend, err = s.repo.EnrollmentsBySemester(gctx)
		return err
	})
	g.Go(func() (err error) {
		byWeekday, err = s.repo.AttendanceByWeekday(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.FromStore(err, "", "")
	}

	if trend == nil {
		trend = []TrendPoint{}
	}
	return &ReportsData{
		GPADistribution:        toGPABuckets(metrics.Distribution(cgpas)),
		DepartmentDistribution: s.departmentDistribution(deptCounts),
		EnrollmentTrend:        trend,
		WeeklyAttendance:       weeklySeries(byWeekday),
	}, nil
}

// departmentDistribution zero-fills the fixed department set so charts keep
// a stable shape and order.
func (s *Service) departmentDistribution(counts map[string]int) []DepartmentCount {
	out := make([]DepartmentCount, 0, len(s.departments))
	for _, d := range s.departments {
		out = append(out, DepartmentCount{
			Department: d.Name,
			Count:      counts[d.Name],
			Color:      d.Color,
		})
	}
	return out
}

var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// weeklySeries turns per-weekday counts into Monday..Friday rates,
// zero-filled for days without records.
func weeklySeries(counts map[int]weekdayCounts) []WeekdayRate {
	out := make([]WeekdayRate, 0, len(weekdayNames))
	for i, name := range weekdayNames {
		wc := counts[i+1] // ISO weekday, 1 = Monday
		rate := 0.0
		if wc.total > 0 {
			rate = float64(wc.attended) / float64(wc.total) * 100
		}
		out = append(out, WeekdayRate{Day: name, Rate: metrics.Round(rate, 1)})
	}
	return out
}

func toGPABuckets(buckets []metrics.Bucket) []GPABucket {
	out := make([]GPABucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, GPABucket{Range: b.Label, Count: b.Count})
	}
	return out
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
