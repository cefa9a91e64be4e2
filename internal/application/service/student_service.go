package service

import (
	"context"
	"fmt"
	"time"

	"github.com/registrarhq/registrar/internal/application/calc"
	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/internal/domain/enum"
	"github.com/registrarhq/registrar/internal/domain/repository"
	"github.com/registrarhq/registrar/pkg/apperror"
	"github.com/registrarhq/registrar/pkg/utils"
)

// StudentService handles student profiles and their academic records
type StudentService struct {
	studentRepo repository.StudentRepository
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// CreateStudentInput represents the create student input
type CreateStudentInput struct {
	Name    string `validate:"required,min=2"`
	Contact string `validate:"required"`
	Section string `validate:"required"`
}

// CreateStudent registers a new student and assigns the next student ID
func (s *StudentService) CreateStudent(ctx context.Context, input *CreateStudentInput) (*entity.Student, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if !utils.ValidSection(input.Section) {
		return nil, apperror.NewInvalidError("Invalid section format. Use COURSE-YEAR-SECTION (e.g., BSIT-3-1)")
	}

	ids, err := s.studentRepo.IDs(ctx)
	if err != nil {
		return nil, err
	}
	id, err := utils.NextSequenceID(utils.StudentIDPrefix, ids)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	student := &entity.Student{
		ID:               id,
		Name:             input.Name,
		Contact:          input.Contact,
		Section:          input.Section,
		Status:           enum.EnrollmentActive,
		Subjects:         map[string]*entity.SubjectRecord{},
		ExemptedSubjects: []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// GetStudent returns one student by ID
func (s *StudentService) GetStudent(ctx context.Context, id string) (*entity.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}
	return student, nil
}

// ListStudents returns all students
func (s *StudentService) ListStudents(ctx context.Context) ([]entity.Student, error) {
	return s.studentRepo.List(ctx)
}

// ListStudentsBySection returns all students in a COURSE-YEAR-SECTION
func (s *StudentService) ListStudentsBySection(ctx context.Context, section string) ([]entity.Student, error) {
	return s.studentRepo.ListBySection(ctx, section)
}

// UpdateStudentInput represents the optional fields of a student update
type UpdateStudentInput struct {
	Name    string
	Contact string
	Status  enum.EnrollmentStatus
}

// UpdateStudent applies any non-empty fields of the update
func (s *StudentService) UpdateStudent(ctx context.Context, id string, input *UpdateStudentInput) (*entity.Student, error) {
	student, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		student.Name = input.Name
	}
	if input.Contact != "" {
		student.Contact = input.Contact
	}
	if input.Status != "" {
		if !input.Status.Valid() {
			return nil, apperror.NewInvalidError("Invalid enrollment status")
		}
		student.Status = input.Status
	}
	student.UpdatedAt = time.Now()

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteStudent removes a student and all their records
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	if _, err := s.GetStudent(ctx, id); err != nil {
		return err
	}
	return s.studentRepo.Delete(ctx, id)
}

// EnrollSubject enrolls the student in a subject with an empty record
func (s *StudentService) EnrollSubject(ctx context.Context, studentID, subject string) error {
	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return err
	}
	if _, ok := student.Subjects[subject]; ok {
		return apperror.NewConflictError("Student already enrolled in this subject")
	}

	student.Subjects[subject] = entity.NewSubjectRecord()
	student.UpdatedAt = time.Now()
	return s.studentRepo.Update(ctx, student)
}

// UnenrollSubject drops a subject and discards its records
func (s *StudentService) UnenrollSubject(ctx context.Context, studentID, subject string) error {
	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return err
	}
	if _, ok := student.Subjects[subject]; !ok {
		return apperror.NewNotFoundError("Subject enrollment")
	}

	delete(student.Subjects, subject)
	student.UpdatedAt = time.Now()
	return s.studentRepo.Update(ctx, student)
}

// ExemptSubject marks a subject as exempted so it never counts toward GPA
func (s *StudentService) ExemptSubject(ctx context.Context, studentID, subject string) error {
	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return err
	}
	if student.IsExempted(subject) {
		return apperror.NewConflictError("Student is already exempted from this subject")
	}

	student.ExemptedSubjects = append(student.ExemptedSubjects, subject)
	student.UpdatedAt = time.Now()
	return s.studentRepo.Update(ctx, student)
}

// UnexemptSubject removes a subject exemption
func (s *StudentService) UnexemptSubject(ctx context.Context, studentID, subject string) error {
	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return err
	}

	for i, ex := range student.ExemptedSubjects {
		if ex == subject {
			student.ExemptedSubjects = append(student.ExemptedSubjects[:i], student.ExemptedSubjects[i+1:]...)
			student.UpdatedAt = time.Now()
			return s.studentRepo.Update(ctx, student)
		}
	}
	return apperror.NewInvalidError("Student is not exempted from this subject")
}

// Subjects returns the subjects a student is enrolled in
func (s *StudentService) Subjects(ctx context.Context, studentID string) ([]string, error) {
	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	subjects := make([]string, 0, len(student.Subjects))
	for subject := range student.Subjects {
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

// ensureSubject initializes the subject record if the student is not yet
// enrolled, mirroring how grading from the section curriculum behaves
func (s *StudentService) ensureSubject(student *entity.Student, subject string) *entity.SubjectRecord {
	record, ok := student.Subjects[subject]
	if !ok {
		record = entity.NewSubjectRecord()
		student.Subjects[subject] = record
	}
	return record
}

// MarkAttendance records an attendance mark; re-marking a date replaces the
// earlier entry for that date
func (s *StudentService) MarkAttendance(ctx context.Context, studentID, subject, date string, status enum.AttendanceStatus) error {
	if !status.Valid() {
		return apperror.NewInvalidError("Invalid attendance status")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperror.NewInvalidError("Date must be in YYYY-MM-DD format")
	}

	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return err
	}
	record := s.ensureSubject(student, subject)

	kept := record.Attendance[:0]
	for _, e := range record.Attendance {
		if e.Date != date {
			kept = append(kept, e)
		}
	}
	record.Attendance = append(kept, entity.AttendanceEntry{Date: date, Status: status})
	student.UpdatedAt = time.Now()
	return s.studentRepo.Update(ctx, student)
}

// Attendance returns all attendance entries for a student-subject pair
func (s *StudentService) Attendance(ctx context.Context, studentID, subject string) ([]entity.AttendanceEntry, error) {
	record, err := s.subjectRecord(ctx, studentID, subject)
	if err != nil {
		return nil, err
	}
	return record.Attendance, nil
}

// AttendanceSummary counts attendance entries per status
func (s *StudentService) AttendanceSummary(ctx context.Context, studentID, subject string) (map[enum.AttendanceStatus]int, error) {
	record, err := s.subjectRecord(ctx, studentID, subject)
	if err != nil {
		return nil, err
	}

	summary := map[enum.AttendanceStatus]int{
		enum.AttendancePresent: 0,
		enum.AttendanceAbsent:  0,
		enum.AttendanceTardy:   0,
	}
	for _, e := range record.Attendance {
		summary[e.Status]++
	}
	return summary, nil
}

// RecordExam stores one term exam score, validated to [0,100]
func (s *StudentService) RecordExam(ctx context.Context, studentID, subject string, examType enum.ExamType, score float64) error {
	if !examType.Valid() {
		return apperror.NewInvalidError("Invalid exam type")
	}
	if score < 0 || score > 100 {
		return apperror.NewInvalidError("Exam score must be between 0 and 100")
	}

	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return err
	}
	record := s.ensureSubject(student, subject)
	record.Exams[examType] = &score
	student.UpdatedAt = time.Now()
	return s.studentRepo.Update(ctx, student)
}

// ExamScores returns the exam slots for a student-subject pair; unset exams
// are nil
func (s *StudentService) ExamScores(ctx context.Context, studentID, subject string) (map[enum.ExamType]*float64, error) {
	record, err := s.subjectRecord(ctx, studentID, subject)
	if err != nil {
		return nil, err
	}
	return record.Exams, nil
}

// AddActivity records a graded activity and its derived percentage score
func (s *StudentService) AddActivity(ctx context.Context, studentID, subject string, totalItems, correctAnswers int) (*entity.Activity, error) {
	if totalItems <= 0 {
		return nil, apperror.NewInvalidError("Total items must be greater than 0")
	}
	if correctAnswers < 0 || correctAnswers > totalItems {
		return nil, apperror.NewInvalidError("Correct answers must be between 0 and total items")
	}

	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	record := s.ensureSubject(student, subject)

	activity := entity.Activity{
		TotalItems:     totalItems,
		CorrectAnswers: correctAnswers,
		Score:          calc.ActivityScore(totalItems, correctAnswers),
	}
	record.Activities = append(record.Activities, activity)
	student.UpdatedAt = time.Now()
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return &activity, nil
}

// Activities returns the recorded activities for a student-subject pair
func (s *StudentService) Activities(ctx context.Context, studentID, subject string) ([]entity.Activity, error) {
	record, err := s.subjectRecord(ctx, studentID, subject)
	if err != nil {
		return nil, err
	}
	return record.Activities, nil
}

// ActivityAverage averages the activity scores for a student-subject pair.
// The second return is false when no activities exist yet.
func (s *StudentService) ActivityAverage(ctx context.Context, studentID, subject string) (float64, bool, error) {
	record, err := s.subjectRecord(ctx, studentID, subject)
	if err != nil {
		return 0, false, err
	}
	scores := record.ActivityScores()
	if len(scores) == 0 {
		return 0, false, nil
	}
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	return calc.Round2(sum / float64(len(scores))), true, nil
}

// SubjectGrade computes the current grade for one enrolled subject
func (s *StudentService) SubjectGrade(ctx context.Context, studentID, subject string) (float64, error) {
	record, err := s.subjectRecord(ctx, studentID, subject)
	if err != nil {
		return 0, err
	}
	return calc.SubjectGrade(record.ActivityScores(), record.RecordedExams(), record.Attendance), nil
}

// SubjectGrades computes grades for every non-exempted subject that has at
// least some recorded data. Subjects with no data are left out so an empty
// record can never drag the GPA down.
func (s *StudentService) SubjectGrades(ctx context.Context, studentID string) (map[string]float64, error) {
	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	grades := make(map[string]float64)
	for subject, record := range student.Subjects {
		if student.IsExempted(subject) {
			continue
		}
		if len(record.Activities) == 0 && len(record.RecordedExams()) == 0 && len(record.Attendance) == 0 {
			continue
		}
		grades[subject] = calc.SubjectGrade(record.ActivityScores(), record.RecordedExams(), record.Attendance)
	}
	return grades, nil
}

// GPA averages the student's subject grades. The second return is false when
// no subject has any graded data yet.
func (s *StudentService) GPA(ctx context.Context, studentID string) (float64, bool, error) {
	grades, err := s.SubjectGrades(ctx, studentID)
	if err != nil {
		return 0, false, err
	}
	gpa, ok := calc.GPA(grades)
	return gpa, ok, nil
}

func (s *StudentService) subjectRecord(ctx context.Context, studentID, subject string) (*entity.SubjectRecord, error) {
	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	record, ok := student.Subjects[subject]
	if !ok {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Subject %s", subject))
	}
	return record, nil
}
