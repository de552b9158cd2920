package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fp(v float64) *float64 { return &v }

func TestSGPAWeightsByCredits(t *testing.T) {
	rows := []CourseGrade{
		{CourseID: "CS101", CreditHours: 4, GPAPoint: fp(9.0)},
		{CourseID: "CS102", CreditHours: 2, GPAPoint: fp(6.0)},
		{CourseID: "CS103", CreditHours: 3}, // ungraded, no weight
	}
	// (4*9 + 2*6) / (4+2) = 48/6
	assert.InDelta(t, 8.0, SGPA(rows), 1e-9)
}

func TestSGPAZeroWhenNothingGraded(t *testing.T) {
	rows := []CourseGrade{
		{CourseID: "CS101", CreditHours: 4},
		{CourseID: "CS102", CreditHours: 3},
	}
	assert.Equal(t, 0.0, SGPA(rows))
	assert.Equal(t, 0.0, SGPA(nil))
}

func TestCGPA(t *testing.T) {
	rows := []CourseGrade{
		{GPAPoint: fp(8.0)},
		{GPAPoint: fp(10.0)},
		{}, // ungraded
	}
	assert.InDelta(t, 9.0, CGPA(rows), 1e-9)
	assert.Equal(t, 0.0, CGPA(nil))
}

func TestLatestSemester(t *testing.T) {
	rows := []CourseGrade{
		{SemesterID: 2}, {SemesterID: 5}, {SemesterID: 3},
	}
	assert.Equal(t, 5, LatestSemester(rows))
	assert.Equal(t, 0, LatestSemester(nil))
}

func TestGradesSummaryCountsUngradedCreditsOnly(t *testing.T) {
	rows := []CourseGrade{
		{CreditHours: 4, GPAPoint: fp(9.0), NumericScore: fp(90)},
		{CreditHours: 3, GPAPoint: fp(0.0), NumericScore: fp(28)}, // failed
		{CreditHours: 2}, // ungraded
	}
	s := Grades(rows)
	assert.Equal(t, 9, s.TotalCredits)
	assert.Equal(t, 2, s.TotalCourses)
	assert.Equal(t, 1, s.CoursesPassed)
	assert.InDelta(t, 59.0, s.AverageScore, 1e-9)
}

func TestGradesSummaryAverageSkipsScorelessRows(t *testing.T) {
	rows := []CourseGrade{
		{CreditHours: 4, GPAPoint: fp(8.0), NumericScore: fp(80)},
		{CreditHours: 3, GPAPoint: fp(7.0)}, // graded by letter only, no numeric score
	}
	s := Grades(rows)
	assert.Equal(t, 2, s.TotalCourses)
	assert.InDelta(t, 80.0, s.AverageScore, 1e-9)
}

func TestGradesSummaryEmpty(t *testing.T) {
	s := Grades(nil)
	assert.Equal(t, 0, s.TotalCredits)
	assert.Equal(t, 0.0, s.SGPA)
	assert.Equal(t, 0.0, s.AverageScore)
}

func TestAttendanceLateCountsAsAttended(t *testing.T) {
	recs := []ClassRecord{
		{CourseID: "CS101", Status: "Present"},
		{CourseID: "CS101", Status: "Late"},
		{CourseID: "CS101", Status: "Absent"},
		{CourseID: "CS102", Status: "Absent"},
	}
	s := Attendance(recs)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Attended)
	assert.Equal(t, 2, s.Absences)
	assert.InDelta(t, 50.0, s.Rate, 1e-9)
}

func TestAttendanceZeroRecords(t *testing.T) {
	s := Attendance(nil)
	assert.Equal(t, 0.0, s.Rate)
	assert.Equal(t, 0, s.Total)
}

func TestAttendanceByCourse(t *testing.T) {
	recs := []ClassRecord{
		{CourseID: "CS102", CourseName: "Algorithms", Status: "Present"},
		{CourseID: "CS101", CourseName: "Programming", Status: "Absent"},
		{CourseID: "CS101", CourseName: "Programming", Status: "Late"},
	}
	out := AttendanceByCourse(recs)
	assert.Len(t, out, 2)
	// ordered by course id
	assert.Equal(t, "CS101", out[0].CourseID)
	assert.Equal(t, 1, out[0].Attended)
	assert.Equal(t, 2, out[0].Total)
	assert.InDelta(t, 50.0, out[0].Rate, 1e-9)
	assert.Equal(t, "CS102", out[1].CourseID)
	assert.InDelta(t, 100.0, out[1].Rate, 1e-9)
}

func TestDistributionBoundaries(t *testing.T) {
	out := Distribution([]float64{9.0, 8.999, 10.0, 5.0, 4.999, 0.0})
	assert.Len(t, out, 6)
	assert.Equal(t, "9.0 - 10.0", out[0].Label)
	assert.Equal(t, 2, out[0].Count) // 9.0 and 10.0
	assert.Equal(t, 1, out[1].Count) // 8.999
	assert.Equal(t, 0, out[2].Count)
	assert.Equal(t, 0, out[3].Count)
	assert.Equal(t, 1, out[4].Count) // 5.0
	assert.Equal(t, 2, out[5].Count) // 4.999 and 0.0
}

func TestDistributionAllBucketsPresentWhenEmpty(t *testing.T) {
	out := Distribution(nil)
	assert.Len(t, out, 6)
	for _, b := range out {
		assert.Equal(t, 0, b.Count)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 8.67, Round(8.666666, 2))
	assert.Equal(t, 66.7, Round(66.66666, 1))
	assert.Equal(t, 0.0, Round(0, 2))
}
