package repository

import (
	"context"

	"github.com/registrarhq/registrar/internal/domain/entity"
)

// ParticularRepository defines the interface for the named-fee catalog
type ParticularRepository interface {
	Create(ctx context.Context, particular *entity.Particular) error
	GetByName(ctx context.Context, name string) (*entity.Particular, error)
	Update(ctx context.Context, particular *entity.Particular) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]entity.Particular, error)
	// All returns the whole catalog keyed by name for fee aggregation
	All(ctx context.Context) (map[string]entity.Particular, error)
}

// FeeStructureRepository defines the interface for COURSE-YEAR fee structures
type FeeStructureRepository interface {
	Create(ctx context.Context, structure *entity.FeeStructure) error
	GetByKey(ctx context.Context, sectionKey string) (*entity.FeeStructure, error)
	Update(ctx context.Context, structure *entity.FeeStructure) error
	Delete(ctx context.Context, sectionKey string) error
	List(ctx context.Context) ([]entity.FeeStructure, error)
}

// InvoiceRepository defines the interface for the invoice ledger.
// Implementations exist for the JSON snapshot store and for Postgres.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	List(ctx context.Context) ([]entity.Invoice, error)
	ListByStudent(ctx context.Context, studentID string) ([]entity.Invoice, error)
	ListBySection(ctx context.Context, courseCode string, year int) ([]entity.Invoice, error)
	NextID(ctx context.Context) (string, error)
}

// PaymentRepository defines the interface for the payment ledger
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	List(ctx context.Context) ([]entity.Payment, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]entity.Payment, error)
	NextID(ctx context.Context) (string, error)
}
