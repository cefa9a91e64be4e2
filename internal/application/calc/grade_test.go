package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/internal/domain/enum"
)

func att(pairs ...string) []entity.AttendanceEntry {
	entries := make([]entity.AttendanceEntry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		entries = append(entries, entity.AttendanceEntry{
			Date:   pairs[i],
			Status: enum.AttendanceStatus(pairs[i+1]),
		})
	}
	return entries
}

func TestSubjectGrade(t *testing.T) {
	tests := []struct {
		name       string
		activities []float64
		exams      map[enum.ExamType]float64
		attendance []entity.AttendanceEntry
		want       float64
	}{
		{
			name: "no data at all grades zero",
			want: 0.0,
		},
		{
			name:       "perfect record",
			activities: []float64{100, 100},
			exams:      map[enum.ExamType]float64{enum.ExamPrelim: 100},
			attendance: att("2024-01-01", "present"),
			want:       100.0,
		},
		{
			name:       "mixed components",
			activities: []float64{50},
			exams:      map[enum.ExamType]float64{enum.ExamMidterm: 80},
			attendance: att("2024-01-01", "absent"),
			want:       57.0, // 0.5*50 + 0.4*80 + 0.1*0
		},
		{
			name:       "missing exams excluded not zeroed",
			activities: []float64{80},
			exams:      map[enum.ExamType]float64{enum.ExamPrelim: 90, enum.ExamFinals: 70},
			want:       72.0, // 0.5*80 + 0.4*80 + 0.1*0
		},
		{
			name:       "attendance only",
			attendance: att("2024-01-01", "present", "2024-01-02", "tardy"),
			want:       7.5, // 0.1 * 75
		},
		{
			name:  "exams only",
			exams: map[enum.ExamType]float64{enum.ExamPrelim: 60, enum.ExamMidterm: 70, enum.ExamFinals: 80},
			want:  28.0, // 0.4 * 70
		},
		{
			name:       "rounds to two decimals",
			activities: []float64{33.33, 66.67},
			exams:      map[enum.ExamType]float64{enum.ExamPrelim: 77.77},
			attendance: att("2024-01-01", "tardy"),
			want:       61.11, // 0.5*50 + 0.4*77.77 + 0.1*50
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubjectGrade(tt.activities, tt.exams, tt.attendance)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestSubjectGradeStaysInRange(t *testing.T) {
	// boundary inputs never escape [0,100]
	cases := [][]float64{
		{0},
		{100, 100, 100},
		{0, 100},
	}
	for _, activities := range cases {
		got := SubjectGrade(activities, map[enum.ExamType]float64{enum.ExamFinals: 100}, att("2024-01-01", "present"))
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}

func TestGPA(t *testing.T) {
	gpa, ok := GPA(map[string]float64{"Math": 80, "Science": 90})
	assert.True(t, ok)
	assert.Equal(t, 85.0, gpa)

	gpa, ok = GPA(map[string]float64{"Math": 91.5})
	assert.True(t, ok)
	assert.Equal(t, 91.5, gpa)
}

func TestGPAEmptyIsUnavailable(t *testing.T) {
	gpa, ok := GPA(map[string]float64{})
	assert.False(t, ok, "empty grade map must be unavailable, not zero")
	assert.Equal(t, 0.0, gpa)

	gpa, ok = GPA(nil)
	assert.False(t, ok)
	assert.Equal(t, 0.0, gpa)
}

func TestActivityScore(t *testing.T) {
	assert.Equal(t, 50.0, ActivityScore(10, 5))
	assert.Equal(t, 100.0, ActivityScore(20, 20))
	assert.Equal(t, 0.0, ActivityScore(10, 0))
	assert.Equal(t, 0.0, ActivityScore(0, 0))
}
