package entity

import (
	"time"

	"github.com/registrarhq/registrar/internal/domain/enum"
)

// Student represents an enrolled student and their per-subject academic records
type Student struct {
	ID               string                    `json:"id"`
	Name             string                    `json:"name"`
	Contact          string                    `json:"contact"`
	Section          string                    `json:"section"` // COURSE-YEAR-SECTION
	Status           enum.EnrollmentStatus     `json:"status"`
	Subjects         map[string]*SubjectRecord `json:"subjects"`
	ExemptedSubjects []string                  `json:"exempted_subjects"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

// SubjectRecord holds everything recorded against one student-subject pair:
// attendance marks, term exam scores, and graded activities
type SubjectRecord struct {
	Attendance []AttendanceEntry             `json:"attendance"`
	Exams      map[enum.ExamType]*float64    `json:"exams"`
	Activities []Activity                    `json:"activities"`
}

// AttendanceEntry is one attendance mark on a given date.
// Re-marking the same date replaces the earlier entry.
type AttendanceEntry struct {
	Date   string                `json:"date"` // YYYY-MM-DD
	Status enum.AttendanceStatus `json:"status"`
}

// Activity is a graded classroom activity with its derived percentage score
type Activity struct {
	TotalItems     int     `json:"total_items"`
	CorrectAnswers int     `json:"correct_answers"`
	Score          float64 `json:"score"`
}

// NewSubjectRecord returns an empty record with all exam slots unset
func NewSubjectRecord() *SubjectRecord {
	return &SubjectRecord{
		Attendance: []AttendanceEntry{},
		Exams: map[enum.ExamType]*float64{
			enum.ExamPrelim:  nil,
			enum.ExamMidterm: nil,
			enum.ExamFinals:  nil,
		},
		Activities: []Activity{},
	}
}

// IsExempted reports whether the student is exempted from the subject
func (s *Student) IsExempted(subject string) bool {
	for _, ex := range s.ExemptedSubjects {
		if ex == subject {
			return true
		}
	}
	return false
}

// RecordedExams returns only the exam scores that have actually been entered
func (r *SubjectRecord) RecordedExams() map[enum.ExamType]float64 {
	scores := make(map[enum.ExamType]float64)
	for typ, score := range r.Exams {
		if score != nil {
			scores[typ] = *score
		}
	}
	return scores
}

// ActivityScores returns the derived scores of all recorded activities
func (r *SubjectRecord) ActivityScores() []float64 {
	scores := make([]float64, 0, len(r.Activities))
	for _, a := range r.Activities {
		scores = append(scores, a.Score)
	}
	return scores
}
