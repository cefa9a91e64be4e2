package repository

import (
	"context"

	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/internal/domain/enum"
)

// AdminRepository defines the interface for admin account storage
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
	Update(ctx context.Context, admin *entity.Admin) error
	Count(ctx context.Context) (int, error)
	IDs(ctx context.Context) ([]string, error)
}

// AccountRepository defines the interface for student/teacher/parent logins
type AccountRepository interface {
	Create(ctx context.Context, account *entity.UserAccount) error
	Get(ctx context.Context, role enum.Role, userID string) (*entity.UserAccount, error)
	Update(ctx context.Context, account *entity.UserAccount) error
}

// ParentRepository defines the interface for parent profile storage
type ParentRepository interface {
	Create(ctx context.Context, parent *entity.Parent) error
	GetByID(ctx context.Context, id string) (*entity.Parent, error)
	GetByEmail(ctx context.Context, email string) (*entity.Parent, error)
	Update(ctx context.Context, parent *entity.Parent) error
	List(ctx context.Context) ([]entity.Parent, error)
	IDs(ctx context.Context) ([]string, error)
}

// NotificationRepository defines the interface for parent notifications
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	Update(ctx context.Context, notification *entity.Notification) error
	List(ctx context.Context) ([]entity.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]entity.Notification, error)
}

// EvaluationRepository defines the interface for faculty evaluations
type EvaluationRepository interface {
	Create(ctx context.Context, evaluation *entity.Evaluation) error
	ListByTeacher(ctx context.Context, teacherID string) ([]entity.Evaluation, error)
}
