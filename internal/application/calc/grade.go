// Package calc is the academic and financial calculation engine: subject
// grades and GPA, fee structure totals, and payroll computation. Every
// function is pure; the engine owns no state and performs no I/O. Inputs are
// assumed to be domain-valid (scores in range, statuses recognized) because
// the services validate at record time.
package calc

import (
	"math"

	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/internal/domain/enum"
)

// Grade component weights: 50% activities, 40% exams, 10% attendance.
const (
	activityWeight   = 0.5
	examWeight       = 0.4
	attendanceWeight = 0.1
)

// ActivityScore derives the percentage score of one graded activity
func ActivityScore(totalItems, correctAnswers int) float64 {
	if totalItems == 0 {
		return 0
	}
	return float64(correctAnswers) / float64(totalItems) * 100
}

// SubjectGrade computes the final grade for one student-subject record,
// rounded to 2 decimals. Each component averages to 0 when it has no data;
// exam types that were never recorded are excluded rather than counted as
// zero. A record with no data at all grades as 0.0 — the caller is
// responsible for keeping such subjects out of GPA computation.
func SubjectGrade(activityScores []float64, examScores map[enum.ExamType]float64, attendance []entity.AttendanceEntry) float64 {
	activityAvg := 0.0
	if len(activityScores) > 0 {
		sum := 0.0
		for _, s := range activityScores {
			sum += s
		}
		activityAvg = sum / float64(len(activityScores))
	}

	examAvg := 0.0
	if len(examScores) > 0 {
		sum := 0.0
		for _, s := range examScores {
			sum += s
		}
		examAvg = sum / float64(len(examScores))
	}

	attendanceAvg := 0.0
	if len(attendance) > 0 {
		sum := 0.0
		for _, e := range attendance {
			sum += e.Status.Score()
		}
		attendanceAvg = sum / float64(len(attendance))
	}

	grade := activityAvg*activityWeight + examAvg*examWeight + attendanceAvg*attendanceWeight
	return Round2(grade)
}

// GPA averages the given subject grades, rounded to 2 decimals. The second
// return is false when no grades are available, which is distinct from a GPA
// of 0. Exempted subjects must be removed from the map before calling.
func GPA(subjectGrades map[string]float64) (float64, bool) {
	if len(subjectGrades) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, g := range subjectGrades {
		sum += g
	}
	return Round2(sum / float64(len(subjectGrades))), true
}

// Round2 rounds to 2 decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
