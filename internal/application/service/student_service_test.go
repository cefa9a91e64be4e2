package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registrarhq/registrar/internal/domain/enum"
	"github.com/registrarhq/registrar/internal/infrastructure/store"
	"github.com/registrarhq/registrar/pkg/apperror"
)

func newStudentService(t *testing.T) *StudentService {
	t.Helper()
	repo, err := store.NewStudentRepository(t.TempDir())
	require.NoError(t, err)
	return NewStudentService(repo)
}

func TestCreateStudentAssignsSequentialIDs(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	first, err := svc.CreateStudent(ctx, &CreateStudentInput{Name: "Ana Cruz", Contact: "0917", Section: "BSIT-3-1"})
	require.NoError(t, err)
	second, err := svc.CreateStudent(ctx, &CreateStudentInput{Name: "Ben Reyes", Contact: "0918", Section: "BSIT-3-1"})
	require.NoError(t, err)

	assert.Equal(t, "0220000001", first.ID)
	assert.Equal(t, "0220000002", second.ID)
	assert.Equal(t, enum.EnrollmentActive, first.Status)
}

func TestCreateStudentValidation(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateStudentInput
	}{
		{"missing name", CreateStudentInput{Contact: "0917", Section: "BSIT-3-1"}},
		{"short name", CreateStudentInput{Name: "A", Contact: "0917", Section: "BSIT-3-1"}},
		{"bad section", CreateStudentInput{Name: "Ana Cruz", Contact: "0917", Section: "BSIT-5-1"}},
		{"malformed section", CreateStudentInput{Name: "Ana Cruz", Contact: "0917", Section: "BSIT3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateStudent(ctx, &tt.input)
			assert.Error(t, err)
		})
	}
}

func TestMarkAttendanceReplacesSameDate(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	student, err := svc.CreateStudent(ctx, &CreateStudentInput{Name: "Ana Cruz", Contact: "0917", Section: "BSIT-3-1"})
	require.NoError(t, err)
	require.NoError(t, svc.EnrollSubject(ctx, student.ID, "Math"))

	require.NoError(t, svc.MarkAttendance(ctx, student.ID, "Math", "2026-06-01", enum.AttendanceAbsent))
	require.NoError(t, svc.MarkAttendance(ctx, student.ID, "Math", "2026-06-01", enum.AttendancePresent))
	require.NoError(t, svc.MarkAttendance(ctx, student.ID, "Math", "2026-06-02", enum.AttendanceTardy))

	entries, err := svc.Attendance(ctx, student.ID, "Math")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	summary, err := svc.AttendanceSummary(ctx, student.ID, "Math")
	require.NoError(t, err)
	assert.Equal(t, 1, summary[enum.AttendancePresent])
	assert.Equal(t, 1, summary[enum.AttendanceTardy])
	assert.Equal(t, 0, summary[enum.AttendanceAbsent])
}

func TestMarkAttendanceRejectsBadDate(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	student, err := svc.CreateStudent(ctx, &CreateStudentInput{Name: "Ana Cruz", Contact: "0917", Section: "BSIT-3-1"})
	require.NoError(t, err)

	err = svc.MarkAttendance(ctx, student.ID, "Math", "06/01/2026", enum.AttendancePresent)
	assert.Error(t, err)
}

func TestRecordExamBounds(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	student, err := svc.CreateStudent(ctx, &CreateStudentInput{Name: "Ana Cruz", Contact: "0917", Section: "BSIT-3-1"})
	require.NoError(t, err)

	assert.Error(t, svc.RecordExam(ctx, student.ID, "Math", enum.ExamPrelim, -1))
	assert.Error(t, svc.RecordExam(ctx, student.ID, "Math", enum.ExamPrelim, 100.5))
	assert.NoError(t, svc.RecordExam(ctx, student.ID, "Math", enum.ExamPrelim, 0))
	assert.NoError(t, svc.RecordExam(ctx, student.ID, "Math", enum.ExamFinals, 100))
}

func TestAddActivityValidation(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	student, err := svc.CreateStudent(ctx, &CreateStudentInput{Name: "Ana Cruz", Contact: "0917", Section: "BSIT-3-1"})
	require.NoError(t, err)

	_, err = svc.AddActivity(ctx, student.ID, "Math", 0, 0)
	assert.Error(t, err)
	_, err = svc.AddActivity(ctx, student.ID, "Math", 10, 11)
	assert.Error(t, err)

	activity, err := svc.AddActivity(ctx, student.ID, "Math", 20, 17)
	require.NoError(t, err)
	assert.Equal(t, 85.0, activity.Score)
}

func TestSubjectGradeWorkedExample(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	student, err := svc.CreateStudent(ctx, &CreateStudentInput{Name: "Ana Cruz", Contact: "0917", Section: "BSIT-3-1"})
	require.NoError(t, err)
	require.NoError(t, svc.EnrollSubject(ctx, student.ID, "Math"))

	_, err = svc.AddActivity(ctx, student.ID, "Math", 100, 80)
	require.NoError(t, err)
	require.NoError(t, svc.RecordExam(ctx, student.ID, "Math", enum.ExamPrelim, 70))
	require.NoError(t, svc.MarkAttendance(ctx, student.ID, "Math", "2026-06-01", enum.AttendancePresent))
	require.NoError(t, svc.MarkAttendance(ctx, student.ID, "Math", "2026-06-02", enum.AttendanceAbsent))

	grade, err := svc.SubjectGrade(ctx, student.ID, "Math")
	require.NoError(t, err)
	// 0.5*80 + 0.4*70 + 0.1*50
	assert.Equal(t, 73.0, grade)
}

func TestGPAUnavailableWithoutData(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	student, err := svc.CreateStudent(ctx, &CreateStudentInput{Name: "Ana Cruz", Contact: "0917", Section: "BSIT-3-1"})
	require.NoError(t, err)
	require.NoError(t, svc.EnrollSubject(ctx, student.ID, "Math"))

	// enrolled but nothing recorded: no GPA rather than a zero average
	_, ok, err := svc.GPA(ctx, student.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.RecordExam(ctx, student.ID, "Math", enum.ExamPrelim, 90))
	gpa, ok, err := svc.GPA(ctx, student.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 36.0, gpa) // 0.4*90, no activities or attendance yet
}

func TestExemptedSubjectExcludedFromGPA(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	student, err := svc.CreateStudent(ctx, &CreateStudentInput{Name: "Ana Cruz", Contact: "0917", Section: "BSIT-3-1"})
	require.NoError(t, err)
	require.NoError(t, svc.EnrollSubject(ctx, student.ID, "Math"))
	require.NoError(t, svc.EnrollSubject(ctx, student.ID, "PE"))

	require.NoError(t, svc.RecordExam(ctx, student.ID, "Math", enum.ExamPrelim, 90))
	require.NoError(t, svc.RecordExam(ctx, student.ID, "PE", enum.ExamPrelim, 10))
	require.NoError(t, svc.ExemptSubject(ctx, student.ID, "PE"))

	grades, err := svc.SubjectGrades(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Contains(t, grades, "Math")

	gpa, ok, err := svc.GPA(ctx, student.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 36.0, gpa)
}

func TestUnenrollDiscardsRecords(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	student, err := svc.CreateStudent(ctx, &CreateStudentInput{Name: "Ana Cruz", Contact: "0917", Section: "BSIT-3-1"})
	require.NoError(t, err)
	require.NoError(t, svc.EnrollSubject(ctx, student.ID, "Math"))
	require.NoError(t, svc.RecordExam(ctx, student.ID, "Math", enum.ExamPrelim, 90))

	require.NoError(t, svc.UnenrollSubject(ctx, student.ID, "Math"))
	_, err = svc.ExamScores(ctx, student.ID, "Math")
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetStudentNotFound(t *testing.T) {
	svc := newStudentService(t)

	_, err := svc.GetStudent(context.Background(), "0229999999")
	assert.True(t, apperror.IsNotFound(err))
}
