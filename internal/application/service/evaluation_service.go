package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/registrarhq/registrar/internal/application/calc"
	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/internal/domain/repository"
	"github.com/registrarhq/registrar/pkg/apperror"
)

// EvaluationService records student ratings of teachers
type EvaluationService struct {
	evaluationRepo repository.EvaluationRepository
	teacherRepo    repository.TeacherRepository
	studentRepo    repository.StudentRepository
}

// NewEvaluationService creates a new evaluation service
func NewEvaluationService(
	evaluationRepo repository.EvaluationRepository,
	teacherRepo repository.TeacherRepository,
	studentRepo repository.StudentRepository,
) *EvaluationService {
	return &EvaluationService{
		evaluationRepo: evaluationRepo,
		teacherRepo:    teacherRepo,
		studentRepo:    studentRepo,
	}
}

// SubmitEvaluation records one rating of a teacher by a student
func (s *EvaluationService) SubmitEvaluation(ctx context.Context, studentID, teacherID string, rating int, comment string) (*entity.Evaluation, error) {
	if rating < 1 || rating > 5 {
		return nil, apperror.NewInvalidError("Rating must be between 1 and 5")
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}
	teacher, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, apperror.NewNotFoundError("Teacher")
	}

	evaluation := &entity.Evaluation{
		ID:        uuid.New().String(),
		StudentID: studentID,
		TeacherID: teacherID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := s.evaluationRepo.Create(ctx, evaluation); err != nil {
		return nil, err
	}
	return evaluation, nil
}

// TeacherEvaluations returns all evaluations filed against one teacher
func (s *EvaluationService) TeacherEvaluations(ctx context.Context, teacherID string) ([]entity.Evaluation, error) {
	return s.evaluationRepo.ListByTeacher(ctx, teacherID)
}

// AverageRating averages a teacher's ratings. The second return is false when
// no evaluations exist.
func (s *EvaluationService) AverageRating(ctx context.Context, teacherID string) (float64, bool, error) {
	evaluations, err := s.evaluationRepo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return 0, false, err
	}
	if len(evaluations) == 0 {
		return 0, false, nil
	}

	sum := 0
	for _, e := range evaluations {
		sum += e.Rating
	}
	return calc.Round2(float64(sum) / float64(len(evaluations))), true, nil
}
