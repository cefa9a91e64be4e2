package repository

import (
	"context"

	"github.com/registrarhq/registrar/internal/domain/entity"
)

// StudentRepository defines the interface for student record storage
type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) error
	GetByID(ctx context.Context, id string) (*entity.Student, error)
	Update(ctx context.Context, student *entity.Student) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.Student, error)
	ListBySection(ctx context.Context, section string) ([]entity.Student, error)
	IDs(ctx context.Context) ([]string, error)
}

// TeacherRepository defines the interface for teacher record storage
type TeacherRepository interface {
	Create(ctx context.Context, teacher *entity.Teacher) error
	GetByID(ctx context.Context, id string) (*entity.Teacher, error)
	Update(ctx context.Context, teacher *entity.Teacher) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.Teacher, error)
	IDs(ctx context.Context) ([]string, error)
}

// CourseRepository defines the interface for course catalog storage
type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	GetByCode(ctx context.Context, code string) (*entity.Course, error)
	Update(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, code string) error
	List(ctx context.Context) ([]entity.Course, error)
}
