package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registrarhq/registrar/internal/infrastructure/store"
)

type evaluationFixture struct {
	evaluations *EvaluationService
	students    *StudentService
	teachers    *TeacherService
}

func newEvaluationFixture(t *testing.T) *evaluationFixture {
	t.Helper()
	dir := t.TempDir()

	evaluationRepo, err := store.NewEvaluationRepository(dir)
	require.NoError(t, err)
	teacherRepo, err := store.NewTeacherRepository(dir)
	require.NoError(t, err)
	studentRepo, err := store.NewStudentRepository(dir)
	require.NoError(t, err)

	return &evaluationFixture{
		evaluations: NewEvaluationService(evaluationRepo, teacherRepo, studentRepo),
		students:    NewStudentService(studentRepo),
		teachers:    NewTeacherService(teacherRepo),
	}
}

func TestSubmitEvaluation(t *testing.T) {
	f := newEvaluationFixture(t)
	ctx := context.Background()

	student, err := f.students.CreateStudent(ctx, &CreateStudentInput{Name: "Ana Cruz", Contact: "0917", Section: "BSIT-3-1"})
	require.NoError(t, err)
	teacher, err := f.teachers.CreateTeacher(ctx, &CreateTeacherInput{Name: "Liza Moreno", Email: "liza@college.edu", Phone: "0917"})
	require.NoError(t, err)

	_, err = f.evaluations.SubmitEvaluation(ctx, student.ID, teacher.ID, 0, "")
	assert.Error(t, err)
	_, err = f.evaluations.SubmitEvaluation(ctx, student.ID, teacher.ID, 6, "")
	assert.Error(t, err)
	_, err = f.evaluations.SubmitEvaluation(ctx, student.ID, "0119999999", 4, "")
	assert.Error(t, err)

	_, err = f.evaluations.SubmitEvaluation(ctx, student.ID, teacher.ID, 4, "Clear lectures")
	require.NoError(t, err)
	_, err = f.evaluations.SubmitEvaluation(ctx, student.ID, teacher.ID, 5, "")
	require.NoError(t, err)

	listed, err := f.evaluations.TeacherEvaluations(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	avg, ok, err := f.evaluations.AverageRating(ctx, teacher.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4.5, avg)
}

func TestAverageRatingWithoutEvaluations(t *testing.T) {
	f := newEvaluationFixture(t)

	_, ok, err := f.evaluations.AverageRating(context.Background(), "0110000001")
	require.NoError(t, err)
	assert.False(t, ok)
}
