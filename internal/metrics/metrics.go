// Package metrics computes the derived academic numbers: credit-weighted
// GPA, attendance rates, and distribution buckets. Everything here is pure
// arithmetic over already-fetched rows; no database access.
package metrics

import (
	"math"
	"sort"
	"time"
)

// CourseGrade is one enrollment joined with its course and grade. The grade
// fields stay nil for ungraded enrollments.
type CourseGrade struct {
	EnrollmentID int
	CourseID     string
	CourseName   string
	CreditHours  int
	SemesterID   int
	NumericScore *float64
	LetterGrade  *string
	GPAPoint     *float64
}

// ClassRecord is one attendance entry joined with its course.
type ClassRecord struct {
	CourseID   string
	CourseName string
	SemesterID int
	Status     string
	ClassDate  time.Time
}

// GradeSummary describes one semester's grades.
type GradeSummary struct {
	SGPA          float64
	TotalCredits  int
	CoursesPassed int
	TotalCourses  int
	AverageScore  float64
}

// AttendanceSummary describes a set of attendance records.
type AttendanceSummary struct {
	Rate     float64
	Total    int
	Attended int
	Absences int
}

// CourseAttendance is the per-course attendance breakdown.
type CourseAttendance struct {
	CourseID   string
	CourseName string
	Attended   int
	Total      int
	Rate       float64
}

// Bucket is one range of the GPA distribution.
type Bucket struct {
	Label string
	Min   float64
	Count int
}

// LatestSemester returns the highest semester id among the enrollments, or 0
// when the student has none.
func LatestSemester(rows []CourseGrade) int {
	latest := 0
	for _, r := range rows {
		if r.SemesterID > latest {
			latest = r.SemesterID
		}
	}
	return latest
}

// SemesterGrades filters rows down to one semester.
func SemesterGrades(rows []CourseGrade, semesterID int) []CourseGrade {
	var out []CourseGrade
	for _, r := range rows {
		if r.SemesterID == semesterID {
			out = append(out, r)
		}
	}
	return out
}

// SemesterClasses filters attendance records down to one semester.
func SemesterClasses(recs []ClassRecord, semesterID int) []ClassRecord {
	var out []ClassRecord
	for _, r := range recs {
		if r.SemesterID == semesterID {
			out = append(out, r)
		}
	}
	return out
}

// SGPA is the credit-weighted average of gpa_point over graded rows. A row
// without a grade carries no weight. Zero total credit weight yields 0.
func SGPA(rows []CourseGrade) float64 {
	var weighted, credits float64
	for _, r := range rows {
		if r.GPAPoint == nil {
			continue
		}
		weighted += float64(r.CreditHours) * (*r.GPAPoint)
		credits += float64(r.CreditHours)
	}
	if credits == 0 {
		return 0
	}
	return weighted / credits
}

// CGPA is the plain average of gpa_point over graded rows, any semester.
func CGPA(rows []CourseGrade) float64 {
	var sum float64
	var n int
	for _, r := range rows {
		if r.GPAPoint == nil {
			continue
		}
		sum += *r.GPAPoint
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Grades summarizes one semester's rows. Ungraded enrollments count toward
// total credits but not toward passes, the graded count, or the average
// score. The average is over rows that carry a numeric score; a graded row
// without one stays out of both sum and count.
func Grades(rows []CourseGrade) GradeSummary {
	s := GradeSummary{SGPA: SGPA(rows)}
	var scoreSum float64
	var scored int
	for _, r := range rows {
		s.TotalCredits += r.CreditHours
		if r.GPAPoint == nil {
			continue
		}
		s.TotalCourses++
		if *r.GPAPoint > 0 {
			s.CoursesPassed++
		}
		if r.NumericScore != nil {
			scoreSum += *r.NumericScore
			scored++
		}
	}
	if scored > 0 {
		s.AverageScore = scoreSum / float64(scored)
	}
	return s
}

// Attended reports whether a status counts toward attendance. Late counts;
// Absent does not.
func Attended(status string) bool {
	return status == "Present" || status == "Late"
}

// Attendance summarizes attendance records; rate is attended/total*100, 0
// when there are no records.
func Attendance(recs []ClassRecord) AttendanceSummary {
	s := AttendanceSummary{Total: len(recs)}
	for _, r := range recs {
		if Attended(r.Status) {
			s.Attended++
		} else if r.Status == "Absent" {
			s.Absences++
		}
	}
	if s.Total > 0 {
		s.Rate = float64(s.Attended) / float64(s.Total) * 100
	}
	return s
}

// AttendanceByCourse groups records by course, ordered by course id.
func AttendanceByCourse(recs []ClassRecord) []CourseAttendance {
	byCourse := make(map[string]*CourseAttendance)
	for _, r := range recs {
		ca, ok := byCourse[r.CourseID]
		if !ok {
			ca = &CourseAttendance{CourseID: r.CourseID, CourseName: r.CourseName}
			byCourse[r.CourseID] = ca
		}
		ca.Total++
		if Attended(r.Status) {
			ca.Attended++
		}
	}
	out := make([]CourseAttendance, 0, len(byCourse))
	for _, ca := range byCourse {
		if ca.Total > 0 {
			ca.Rate = float64(ca.Attended) / float64(ca.Total) * 100
		}
		out = append(out, *ca)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseID < out[j].CourseID })
	return out
}

// bucketFloors define the distribution ranges on the 10-point scale, highest
// first. A boundary value belongs to the higher bucket (9.0 is in the top
// one).
var bucketFloors = []struct {
	label string
	min   float64
}{
	{"9.0 - 10.0", 9.0},
	{"8.0 - 8.9", 8.0},
	{"7.0 - 7.9", 7.0},
	{"6.0 - 6.9", 6.0},
	{"5.0 - 5.9", 5.0},
	{"Below 5.0", 0.0},
}

// Distribution buckets each CGPA into the fixed ranges, ordered highest to
// lowest. Every bucket is present even when empty.
func Distribution(cgpas []float64) []Bucket {
	buckets := make([]Bucket, len(bucketFloors))
	for i, b := range bucketFloors {
		buckets[i] = Bucket{Label: b.label, Min: b.min}
	}
	for _, g := range cgpas {
		for i, b := range bucketFloors {
			if g >= b.min {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}

// Round fixes a value to the given number of decimals. Used at the response
// boundary only; intermediate math stays unrounded.
func Round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
