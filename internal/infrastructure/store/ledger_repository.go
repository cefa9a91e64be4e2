package store

import (
	"context"

	"github.com/registrarhq/registrar/internal/domain/entity"
	domainRepo "github.com/registrarhq/registrar/internal/domain/repository"
	"github.com/registrarhq/registrar/pkg/utils"
)

type invoiceRepository struct {
	snap *Snapshot[*entity.Invoice]
}

// NewInvoiceRepository opens the invoice ledger snapshot under dir
func NewInvoiceRepository(dir string) (domainRepo.InvoiceRepository, error) {
	snap, err := OpenSnapshot[*entity.Invoice](dir, "invoices.json")
	if err != nil {
		return nil, err
	}
	return &invoiceRepository{snap: snap}, nil
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.snap.Put(invoice.ID, invoice)
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, ok := r.snap.Get(id)
	if !ok {
		return nil, nil
	}
	return inv, nil
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.snap.Put(invoice.ID, invoice)
}

func (r *invoiceRepository) List(ctx context.Context) ([]entity.Invoice, error) {
	invoices := make([]entity.Invoice, 0, r.snap.Len())
	for _, inv := range r.snap.Values() {
		invoices = append(invoices, *inv)
	}
	return invoices, nil
}

func (r *invoiceRepository) ListByStudent(ctx context.Context, studentID string) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	for _, inv := range r.snap.Values() {
		if inv.StudentID == studentID {
			invoices = append(invoices, *inv)
		}
	}
	return invoices, nil
}

func (r *invoiceRepository) ListBySection(ctx context.Context, courseCode string, year int) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	for _, inv := range r.snap.Values() {
		if inv.CourseCode == courseCode && inv.Year == year {
			invoices = append(invoices, *inv)
		}
	}
	return invoices, nil
}

func (r *invoiceRepository) NextID(ctx context.Context) (string, error) {
	return utils.NextCounterID("INV", r.snap.Keys()), nil
}

type paymentRepository struct {
	snap *Snapshot[*entity.Payment]
}

// NewPaymentRepository opens the payment ledger snapshot under dir
func NewPaymentRepository(dir string) (domainRepo.PaymentRepository, error) {
	snap, err := OpenSnapshot[*entity.Payment](dir, "payments.json")
	if err != nil {
		return nil, err
	}
	return &paymentRepository{snap: snap}, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.snap.Put(payment.ID, payment)
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	p, ok := r.snap.Get(id)
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]entity.Payment, error) {
	payments := make([]entity.Payment, 0, r.snap.Len())
	for _, p := range r.snap.Values() {
		payments = append(payments, *p)
	}
	return payments, nil
}

func (r *paymentRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]entity.Payment, error) {
	var payments []entity.Payment
	for _, p := range r.snap.Values() {
		if p.InvoiceID == invoiceID {
			payments = append(payments, *p)
		}
	}
	return payments, nil
}

func (r *paymentRepository) NextID(ctx context.Context) (string, error) {
	return utils.NextCounterID("PAY", r.snap.Keys()), nil
}
