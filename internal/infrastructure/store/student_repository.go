package store

import (
	"context"

	"github.com/registrarhq/registrar/internal/domain/entity"
	domainRepo "github.com/registrarhq/registrar/internal/domain/repository"
)

type studentRepository struct {
	snap *Snapshot[*entity.Student]
}

// NewStudentRepository opens the student snapshot store under dir
func NewStudentRepository(dir string) (domainRepo.StudentRepository, error) {
	snap, err := OpenSnapshot[*entity.Student](dir, "students.json")
	if err != nil {
		return nil, err
	}
	return &studentRepository{snap: snap}, nil
}

func (r *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	return r.snap.Put(student.ID, student)
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*entity.Student, error) {
	student, ok := r.snap.Get(id)
	if !ok {
		return nil, nil
	}
	return student, nil
}

func (r *studentRepository) Update(ctx context.Context, student *entity.Student) error {
	return r.snap.Put(student.ID, student)
}

func (r *studentRepository) Delete(ctx context.Context, id string) error {
	return r.snap.Delete(id)
}

func (r *studentRepository) List(ctx context.Context) ([]entity.Student, error) {
	students := make([]entity.Student, 0, r.snap.Len())
	for _, s := range r.snap.Values() {
		students = append(students, *s)
	}
	return students, nil
}

func (r *studentRepository) ListBySection(ctx context.Context, section string) ([]entity.Student, error) {
	var students []entity.Student
	for _, s := range r.snap.Values() {
		if s.Section == section {
			students = append(students, *s)
		}
	}
	return students, nil
}

func (r *studentRepository) IDs(ctx context.Context) ([]string, error) {
	return r.snap.Keys(), nil
}

type teacherRepository struct {
	snap *Snapshot[*entity.Teacher]
}

// NewTeacherRepository opens the teacher snapshot store under dir
func NewTeacherRepository(dir string) (domainRepo.TeacherRepository, error) {
	snap, err := OpenSnapshot[*entity.Teacher](dir, "teachers.json")
	if err != nil {
		return nil, err
	}
	return &teacherRepository{snap: snap}, nil
}

func (r *teacherRepository) Create(ctx context.Context, teacher *entity.Teacher) error {
	return r.snap.Put(teacher.ID, teacher)
}

func (r *teacherRepository) GetByID(ctx context.Context, id string) (*entity.Teacher, error) {
	teacher, ok := r.snap.Get(id)
	if !ok {
		return nil, nil
	}
	return teacher, nil
}

func (r *teacherRepository) Update(ctx context.Context, teacher *entity.Teacher) error {
	return r.snap.Put(teacher.ID, teacher)
}

func (r *teacherRepository) Delete(ctx context.Context, id string) error {
	return r.snap.Delete(id)
}

func (r *teacherRepository) List(ctx context.Context) ([]entity.Teacher, error) {
	teachers := make([]entity.Teacher, 0, r.snap.Len())
	for _, t := range r.snap.Values() {
		teachers = append(teachers, *t)
	}
	return teachers, nil
}

func (r *teacherRepository) IDs(ctx context.Context) ([]string, error) {
	return r.snap.Keys(), nil
}

type courseRepository struct {
	snap *Snapshot[*entity.Course]
}

// NewCourseRepository opens the course snapshot store under dir
func NewCourseRepository(dir string) (domainRepo.CourseRepository, error) {
	snap, err := OpenSnapshot[*entity.Course](dir, "courses.json")
	if err != nil {
		return nil, err
	}
	return &courseRepository{snap: snap}, nil
}

func (r *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	return r.snap.Put(course.Code, course)
}

func (r *courseRepository) GetByCode(ctx context.Context, code string) (*entity.Course, error) {
	course, ok := r.snap.Get(code)
	if !ok {
		return nil, nil
	}
	return course, nil
}

func (r *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	return r.snap.Put(course.Code, course)
}

func (r *courseRepository) Delete(ctx context.Context, code string) error {
	return r.snap.Delete(code)
}

func (r *courseRepository) List(ctx context.Context) ([]entity.Course, error) {
	courses := make([]entity.Course, 0, r.snap.Len())
	for _, c := range r.snap.Values() {
		courses = append(courses, *c)
	}
	return courses, nil
}
