package repository

import (
	"context"

	"github.com/registrarhq/registrar/internal/domain/entity"
)

// PayrollRepository defines the interface for teacher payroll records
type PayrollRepository interface {
	Create(ctx context.Context, record *entity.PayrollRecord) error
	GetByID(ctx context.Context, id string) (*entity.PayrollRecord, error)
	GetByTeacherPeriod(ctx context.Context, teacherID, period string) (*entity.PayrollRecord, error)
	Update(ctx context.Context, record *entity.PayrollRecord) error
	List(ctx context.Context) ([]entity.PayrollRecord, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]entity.PayrollRecord, error)
	NextID(ctx context.Context) (string, error)
}

// PayrollConfigRepository defines the interface for payroll configuration:
// per-subject workload rates plus the earnings and deduction settings
type PayrollConfigRepository interface {
	SetWorkloadRate(ctx context.Context, rate entity.WorkloadRate) error
	GetWorkloadRate(ctx context.Context, subject string) (*entity.WorkloadRate, error)
	ListWorkloadRates(ctx context.Context) ([]entity.WorkloadRate, error)
	AllWorkloadRates(ctx context.Context) (map[string]entity.WorkloadRate, error)

	GetEarningsConfig(ctx context.Context) (entity.EarningsConfig, error)
	SaveEarningsConfig(ctx context.Context, cfg entity.EarningsConfig) error
	GetDeductionConfig(ctx context.Context) (entity.DeductionConfig, error)
	SaveDeductionConfig(ctx context.Context, cfg entity.DeductionConfig) error
}
