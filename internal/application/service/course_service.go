package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/internal/domain/repository"
	"github.com/registrarhq/registrar/pkg/apperror"
)

// CourseService manages the course catalog and its year-level sections
type CourseService struct {
	courseRepo repository.CourseRepository
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// CreateCourseInput represents the create course input
type CreateCourseInput struct {
	Code        string `validate:"required,min=2,max=10"`
	Name        string `validate:"required,min=2"`
	Description string
}

// CreateCourse adds a course to the catalog. Codes are stored uppercase.
func (s *CourseService) CreateCourse(ctx context.Context, input *CreateCourseInput) (*entity.Course, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	code := strings.ToUpper(input.Code)
	existing, err := s.courseRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Course code already exists")
	}

	course := &entity.Course{
		Code:        code,
		Name:        input.Name,
		Description: input.Description,
		Years:       map[string]map[string]*entity.Section{},
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// GetCourse returns one course by code
func (s *CourseService) GetCourse(ctx context.Context, code string) (*entity.Course, error) {
	course, err := s.courseRepo.GetByCode(ctx, strings.ToUpper(code))
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperror.NewNotFoundError("Course")
	}
	return course, nil
}

// ListCourses returns the whole catalog
func (s *CourseService) ListCourses(ctx context.Context) ([]entity.Course, error) {
	return s.courseRepo.List(ctx)
}

// UpdateCourse applies any non-empty name or description change
func (s *CourseService) UpdateCourse(ctx context.Context, code, name, description string) (*entity.Course, error) {
	course, err := s.GetCourse(ctx, code)
	if err != nil {
		return nil, err
	}

	if name != "" {
		course.Name = name
	}
	if description != "" {
		course.Description = description
	}
	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes a course and all its sections
func (s *CourseService) DeleteCourse(ctx context.Context, code string) error {
	course, err := s.GetCourse(ctx, code)
	if err != nil {
		return err
	}
	return s.courseRepo.Delete(ctx, course.Code)
}

// AddSection creates a numbered section under a course year
func (s *CourseService) AddSection(ctx context.Context, code string, year, sectionNum int) error {
	if year < 1 || year > 4 {
		return apperror.NewInvalidError("Year must be between 1 and 4")
	}
	if sectionNum < 1 {
		return apperror.NewInvalidError("Section number must be at least 1")
	}

	course, err := s.GetCourse(ctx, code)
	if err != nil {
		return err
	}

	yearKey := strconv.Itoa(year)
	secKey := strconv.Itoa(sectionNum)
	if course.Years[yearKey] == nil {
		course.Years[yearKey] = map[string]*entity.Section{}
	}
	if _, ok := course.Years[yearKey][secKey]; ok {
		return apperror.NewConflictError("Section already exists")
	}

	course.Years[yearKey][secKey] = &entity.Section{
		Subjects:  []string{},
		Students:  []string{},
		Schedules: []entity.Schedule{},
	}
	return s.courseRepo.Update(ctx, course)
}

// Sections lists a course's section identifiers (COURSE-YEAR-SECTION), sorted
func (s *CourseService) Sections(ctx context.Context, code string) ([]string, error) {
	course, err := s.GetCourse(ctx, code)
	if err != nil {
		return nil, err
	}

	var out []string
	for year, sections := range course.Years {
		for num := range sections {
			out = append(out, fmt.Sprintf("%s-%s-%s", course.Code, year, num))
		}
	}
	sort.Strings(out)
	return out, nil
}

// section resolves one section of a course, or a not-found error
func (s *CourseService) section(ctx context.Context, code string, year, sectionNum int) (*entity.Course, *entity.Section, error) {
	course, err := s.GetCourse(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	section := course.Section(year, sectionNum)
	if section == nil {
		return nil, nil, apperror.NewNotFoundError("Section")
	}
	return course, section, nil
}

// AddSubjectToSection adds one subject to one section's curriculum
func (s *CourseService) AddSubjectToSection(ctx context.Context, code string, year, sectionNum int, subject string) error {
	course, section, err := s.section(ctx, code, year, sectionNum)
	if err != nil {
		return err
	}
	if section.HasSubject(subject) {
		return apperror.NewConflictError("Subject already in section curriculum")
	}
	section.Subjects = append(section.Subjects, subject)
	return s.courseRepo.Update(ctx, course)
}

// AddSubjectToYear adds a subject to every section of a course year, skipping
// sections that already carry it
func (s *CourseService) AddSubjectToYear(ctx context.Context, code string, year int, subject string) (int, error) {
	course, err := s.GetCourse(ctx, code)
	if err != nil {
		return 0, err
	}
	sections, ok := course.Years[strconv.Itoa(year)]
	if !ok || len(sections) == 0 {
		return 0, apperror.NewNotFoundError("Year")
	}

	added := 0
	for _, section := range sections {
		if !section.HasSubject(subject) {
			section.Subjects = append(section.Subjects, subject)
			added++
		}
	}
	if added == 0 {
		return 0, nil
	}
	return added, s.courseRepo.Update(ctx, course)
}

// RemoveSubjectFromSection removes a subject from one section's curriculum
func (s *CourseService) RemoveSubjectFromSection(ctx context.Context, code string, year, sectionNum int, subject string) error {
	course, section, err := s.section(ctx, code, year, sectionNum)
	if err != nil {
		return err
	}

	for i, sub := range section.Subjects {
		if sub == subject {
			section.Subjects = append(section.Subjects[:i], section.Subjects[i+1:]...)
			return s.courseRepo.Update(ctx, course)
		}
	}
	return apperror.NewNotFoundError("Subject")
}

// SectionSubjects returns one section's curriculum
func (s *CourseService) SectionSubjects(ctx context.Context, code string, year, sectionNum int) ([]string, error) {
	_, section, err := s.section(ctx, code, year, sectionNum)
	if err != nil {
		return nil, err
	}
	return section.Subjects, nil
}

// AddStudentToRoster adds a student ID to a section roster once
func (s *CourseService) AddStudentToRoster(ctx context.Context, code string, year, sectionNum int, studentID string) error {
	course, section, err := s.section(ctx, code, year, sectionNum)
	if err != nil {
		return err
	}
	for _, id := range section.Students {
		if id == studentID {
			return apperror.NewConflictError("Student already on section roster")
		}
	}
	section.Students = append(section.Students, studentID)
	return s.courseRepo.Update(ctx, course)
}

// RemoveStudentFromRoster drops a student ID from a section roster
func (s *CourseService) RemoveStudentFromRoster(ctx context.Context, code string, year, sectionNum int, studentID string) error {
	course, section, err := s.section(ctx, code, year, sectionNum)
	if err != nil {
		return err
	}
	for i, id := range section.Students {
		if id == studentID {
			section.Students = append(section.Students[:i], section.Students[i+1:]...)
			return s.courseRepo.Update(ctx, course)
		}
	}
	return apperror.NewNotFoundError("Student")
}

// AddSectionSchedule adds a room schedule to a section, applying the same
// overlap rule as teacher schedules
func (s *CourseService) AddSectionSchedule(ctx context.Context, code string, year, sectionNum int, schedule entity.Schedule) error {
	dayOK := false
	for _, d := range validDays {
		if d == schedule.Day {
			dayOK = true
			break
		}
	}
	if !dayOK {
		return apperror.NewInvalidError("Invalid day. Must be Monday through Saturday")
	}
	if err := validateTimeRange(schedule.StartTime, schedule.EndTime); err != nil {
		return err
	}

	course, section, err := s.section(ctx, code, year, sectionNum)
	if err != nil {
		return err
	}
	for _, existing := range section.Schedules {
		if schedule.OverlapsWith(existing) {
			return apperror.NewConflictError(fmt.Sprintf(
				"Section has a conflict: %s at %s-%s on %s",
				existing.Subject, existing.StartTime, existing.EndTime, existing.Day))
		}
	}

	section.Schedules = append(section.Schedules, schedule)
	return s.courseRepo.Update(ctx, course)
}

// SectionSchedules returns one section's room schedules
func (s *CourseService) SectionSchedules(ctx context.Context, code string, year, sectionNum int) ([]entity.Schedule, error) {
	_, section, err := s.section(ctx, code, year, sectionNum)
	if err != nil {
		return nil, err
	}
	return section.Schedules, nil
}
