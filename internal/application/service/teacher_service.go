package service

import (
	"context"
	"fmt"
	"time"

	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/internal/domain/enum"
	"github.com/registrarhq/registrar/internal/domain/repository"
	"github.com/registrarhq/registrar/pkg/apperror"
	"github.com/registrarhq/registrar/pkg/utils"
)

var validDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// TeacherService handles faculty profiles, assignments and schedules
type TeacherService struct {
	teacherRepo repository.TeacherRepository
}

// NewTeacherService creates a new teacher service
func NewTeacherService(teacherRepo repository.TeacherRepository) *TeacherService {
	return &TeacherService{teacherRepo: teacherRepo}
}

// CreateTeacherInput represents the create teacher input
type CreateTeacherInput struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"required,email"`
	Phone string `validate:"required"`
}

// CreateTeacher registers a new teacher and assigns the next teacher ID
func (s *TeacherService) CreateTeacher(ctx context.Context, input *CreateTeacherInput) (*entity.Teacher, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	ids, err := s.teacherRepo.IDs(ctx)
	if err != nil {
		return nil, err
	}
	id, err := utils.NextSequenceID(utils.TeacherIDPrefix, ids)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	teacher := &entity.Teacher{
		ID:             id,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Qualifications: []string{},
		SubjectsTaught: []string{},
		Sections:       []string{},
		Schedules:      map[string][]entity.Schedule{},
		LeaveRequests:  []entity.LeaveRequest{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

// GetTeacher returns one teacher by ID
func (s *TeacherService) GetTeacher(ctx context.Context, id string) (*entity.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, apperror.NewNotFoundError("Teacher")
	}
	return teacher, nil
}

// ListTeachers returns all teachers
func (s *TeacherService) ListTeachers(ctx context.Context) ([]entity.Teacher, error) {
	return s.teacherRepo.List(ctx)
}

// UpdateTeacherInput represents the optional fields of a teacher update
type UpdateTeacherInput struct {
	Name  string
	Email string
	Phone string
}

// UpdateTeacher applies any non-empty fields of the update
func (s *TeacherService) UpdateTeacher(ctx context.Context, id string, input *UpdateTeacherInput) (*entity.Teacher, error) {
	teacher, err := s.GetTeacher(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		teacher.Name = input.Name
	}
	if input.Email != "" {
		teacher.Email = input.Email
	}
	if input.Phone != "" {
		teacher.Phone = input.Phone
	}
	teacher.UpdatedAt = time.Now()

	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

// DeleteTeacher removes a teacher
func (s *TeacherService) DeleteTeacher(ctx context.Context, id string) error {
	if _, err := s.GetTeacher(ctx, id); err != nil {
		return err
	}
	return s.teacherRepo.Delete(ctx, id)
}

// AddQualification appends a qualification once
func (s *TeacherService) AddQualification(ctx context.Context, teacherID, qualification string) error {
	teacher, err := s.GetTeacher(ctx, teacherID)
	if err != nil {
		return err
	}
	for _, q := range teacher.Qualifications {
		if q == qualification {
			return apperror.NewConflictError("Teacher already has this qualification")
		}
	}
	teacher.Qualifications = append(teacher.Qualifications, qualification)
	teacher.UpdatedAt = time.Now()
	return s.teacherRepo.Update(ctx, teacher)
}

// AddSubject appends a taught subject once
func (s *TeacherService) AddSubject(ctx context.Context, teacherID, subject string) error {
	teacher, err := s.GetTeacher(ctx, teacherID)
	if err != nil {
		return err
	}
	if teacher.HasSubject(subject) {
		return apperror.NewConflictError("Teacher already teaches this subject")
	}
	teacher.SubjectsTaught = append(teacher.SubjectsTaught, subject)
	teacher.UpdatedAt = time.Now()
	return s.teacherRepo.Update(ctx, teacher)
}

// AssignSection assigns the teacher to a COURSE-YEAR-SECTION, initializing an
// empty schedule list for it
func (s *TeacherService) AssignSection(ctx context.Context, teacherID, section string) error {
	if !utils.ValidSection(section) {
		return apperror.NewInvalidError("Invalid section format. Use COURSE-YEAR-SECTION")
	}
	teacher, err := s.GetTeacher(ctx, teacherID)
	if err != nil {
		return err
	}

	if !teacher.HasSection(section) {
		teacher.Sections = append(teacher.Sections, section)
	}
	if _, ok := teacher.Schedules[section]; !ok {
		teacher.Schedules[section] = []entity.Schedule{}
	}
	teacher.UpdatedAt = time.Now()
	return s.teacherRepo.Update(ctx, teacher)
}

// UnassignSection removes a section assignment and its schedules
func (s *TeacherService) UnassignSection(ctx context.Context, teacherID, section string) error {
	teacher, err := s.GetTeacher(ctx, teacherID)
	if err != nil {
		return err
	}
	if !teacher.HasSection(section) {
		return apperror.NewInvalidError("Teacher not assigned to this section")
	}

	for i, sec := range teacher.Sections {
		if sec == section {
			teacher.Sections = append(teacher.Sections[:i], teacher.Sections[i+1:]...)
			break
		}
	}
	delete(teacher.Schedules, section)
	teacher.UpdatedAt = time.Now()
	return s.teacherRepo.Update(ctx, teacher)
}

// CheckScheduleConflict reports whether a proposed slot collides with any of
// the teacher's existing schedules across all sections
func (s *TeacherService) CheckScheduleConflict(ctx context.Context, teacherID, day, startTime, endTime string) (bool, string, error) {
	teacher, err := s.GetTeacher(ctx, teacherID)
	if err != nil {
		return false, "", err
	}

	proposed := entity.Schedule{Day: day, StartTime: startTime, EndTime: endTime}
	for section, schedules := range teacher.Schedules {
		for _, existing := range schedules {
			if proposed.OverlapsWith(existing) {
				msg := fmt.Sprintf("Teacher has a conflict: %s in %s at %s-%s on %s",
					existing.Subject, section, existing.StartTime, existing.EndTime, day)
				return true, msg, nil
			}
		}
	}
	return false, "", nil
}

// AddScheduleInput represents one weekly class slot to add
type AddScheduleInput struct {
	Section   string `validate:"required"`
	Subject   string `validate:"required"`
	Day       string `validate:"required"`
	StartTime string `validate:"required"`
	EndTime   string `validate:"required"`
	Room      string
}

// AddSchedule validates and adds a weekly slot, rejecting overlaps
func (s *TeacherService) AddSchedule(ctx context.Context, teacherID string, input *AddScheduleInput) error {
	if err := validateInput(input); err != nil {
		return err
	}
	if err := s.AssignSection(ctx, teacherID, input.Section); err != nil {
		return err
	}

	dayOK := false
	for _, d := range validDays {
		if d == input.Day {
			dayOK = true
			break
		}
	}
	if !dayOK {
		return apperror.NewInvalidError("Invalid day. Must be Monday through Saturday")
	}

	if err := validateTimeRange(input.StartTime, input.EndTime); err != nil {
		return err
	}

	conflict, msg, err := s.CheckScheduleConflict(ctx, teacherID, input.Day, input.StartTime, input.EndTime)
	if err != nil {
		return err
	}
	if conflict {
		return apperror.NewConflictError(msg)
	}

	teacher, err := s.GetTeacher(ctx, teacherID)
	if err != nil {
		return err
	}
	teacher.Schedules[input.Section] = append(teacher.Schedules[input.Section], entity.Schedule{
		Subject:   input.Subject,
		Day:       input.Day,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Room:      input.Room,
	})
	teacher.UpdatedAt = time.Now()
	return s.teacherRepo.Update(ctx, teacher)
}

// Schedules returns a teacher's slots for one section
func (s *TeacherService) Schedules(ctx context.Context, teacherID, section string) ([]entity.Schedule, error) {
	teacher, err := s.GetTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	schedules, ok := teacher.Schedules[section]
	if !ok {
		return nil, apperror.NewNotFoundError("Section")
	}
	return schedules, nil
}

// RemoveSchedule deletes one slot by its index in the section's list
func (s *TeacherService) RemoveSchedule(ctx context.Context, teacherID, section string, index int) error {
	teacher, err := s.GetTeacher(ctx, teacherID)
	if err != nil {
		return err
	}
	schedules, ok := teacher.Schedules[section]
	if !ok {
		return apperror.NewNotFoundError("Section")
	}
	if index < 0 || index >= len(schedules) {
		return apperror.NewInvalidError("Schedule index out of range")
	}

	teacher.Schedules[section] = append(schedules[:index], schedules[index+1:]...)
	teacher.UpdatedAt = time.Now()
	return s.teacherRepo.Update(ctx, teacher)
}

// RequestLeave files a pending leave request for a date range
func (s *TeacherService) RequestLeave(ctx context.Context, teacherID, dateFrom, dateTo, reason string) error {
	teacher, err := s.GetTeacher(ctx, teacherID)
	if err != nil {
		return err
	}

	teacher.LeaveRequests = append(teacher.LeaveRequests, entity.LeaveRequest{
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Reason:   reason,
		Status:   enum.LeavePending,
	})
	teacher.UpdatedAt = time.Now()
	return s.teacherRepo.Update(ctx, teacher)
}

// LeaveRequests returns all of a teacher's leave requests
func (s *TeacherService) LeaveRequests(ctx context.Context, teacherID string) ([]entity.LeaveRequest, error) {
	teacher, err := s.GetTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	return teacher.LeaveRequests, nil
}

func validateTimeRange(start, end string) error {
	st, err1 := time.Parse("15:04", start)
	et, err2 := time.Parse("15:04", end)
	if err1 != nil || err2 != nil {
		return apperror.NewInvalidError("Time must be in HH:MM format")
	}
	if !st.Before(et) {
		return apperror.NewInvalidError("Start time must be before end time")
	}
	return nil
}
