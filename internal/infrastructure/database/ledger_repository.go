package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/registrarhq/registrar/internal/domain/entity"
	domainRepo "github.com/registrarhq/registrar/internal/domain/repository"
	"github.com/registrarhq/registrar/pkg/utils"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a Postgres-backed invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *invoiceRepository) List(ctx context.Context) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).Order("id ASC").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) ListByStudent(ctx context.Context, studentID string) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Order("id ASC").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) ListBySection(ctx context.Context, courseCode string, year int) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).Where("course_code = ? AND year = ?", courseCode, year).Order("id ASC").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) NextID(ctx context.Context) (string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&entity.Invoice{}).Pluck("id", &ids).Error; err != nil {
		return "", err
	}
	return utils.NextCounterID("INV", ids), nil
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a Postgres-backed payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).Order("id ASC").Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).Where("invoice_id = ?", invoiceID).Order("id ASC").Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) NextID(ctx context.Context) (string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&entity.Payment{}).Pluck("id", &ids).Error; err != nil {
		return "", err
	}
	return utils.NextCounterID("PAY", ids), nil
}
