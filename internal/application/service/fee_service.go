package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/registrarhq/registrar/internal/application/calc"
	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/internal/domain/enum"
	"github.com/registrarhq/registrar/internal/domain/repository"
	"github.com/registrarhq/registrar/pkg/apperror"
)

// FeeService manages the fee catalog, per-course fee structures, and the
// invoice/payment ledger
type FeeService struct {
	particularRepo repository.ParticularRepository
	structureRepo  repository.FeeStructureRepository
	invoiceRepo    repository.InvoiceRepository
	paymentRepo    repository.PaymentRepository
	studentRepo    repository.StudentRepository
	payrollRepo    repository.PayrollRepository
}

// NewFeeService creates a new fee service
func NewFeeService(
	particularRepo repository.ParticularRepository,
	structureRepo repository.FeeStructureRepository,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	studentRepo repository.StudentRepository,
	payrollRepo repository.PayrollRepository,
) *FeeService {
	return &FeeService{
		particularRepo: particularRepo,
		structureRepo:  structureRepo,
		invoiceRepo:    invoiceRepo,
		paymentRepo:    paymentRepo,
		studentRepo:    studentRepo,
		payrollRepo:    payrollRepo,
	}
}

// CreateParticularInput represents the create particular input
type CreateParticularInput struct {
	Name        string  `validate:"required,min=2"`
	Amount      float64 `validate:"required,gt=0"`
	Description string
}

// CreateParticular adds a named fee to the catalog
func (s *FeeService) CreateParticular(ctx context.Context, input *CreateParticularInput) (*entity.Particular, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.particularRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Particular with this name already exists")
	}

	particular := &entity.Particular{
		Name:        input.Name,
		Amount:      input.Amount,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}
	if err := s.particularRepo.Create(ctx, particular); err != nil {
		return nil, err
	}
	return particular, nil
}

// UpdateParticular changes a catalog fee's amount or description. Amount
// changes affect future invoices only.
func (s *FeeService) UpdateParticular(ctx context.Context, name string, amount float64, description string) (*entity.Particular, error) {
	particular, err := s.particularRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if particular == nil {
		return nil, apperror.NewNotFoundError("Particular")
	}

	if amount > 0 {
		particular.Amount = amount
	}
	if description != "" {
		particular.Description = description
	}
	if err := s.particularRepo.Update(ctx, particular); err != nil {
		return nil, err
	}
	return particular, nil
}

// DeleteParticular removes a catalog fee. Structures still selecting the name
// simply stop collecting it.
func (s *FeeService) DeleteParticular(ctx context.Context, name string) error {
	particular, err := s.particularRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if particular == nil {
		return apperror.NewNotFoundError("Particular")
	}
	return s.particularRepo.Delete(ctx, name)
}

// ListParticulars returns the catalog
func (s *FeeService) ListParticulars(ctx context.Context) ([]entity.Particular, error) {
	return s.particularRepo.List(ctx)
}

// GetFeeStructure returns the structure for one COURSE-YEAR combination
func (s *FeeService) GetFeeStructure(ctx context.Context, courseCode string, year int) (*entity.FeeStructure, error) {
	structure, err := s.structureRepo.GetByKey(ctx, entity.SectionKey(strings.ToUpper(courseCode), year))
	if err != nil {
		return nil, err
	}
	if structure == nil {
		return nil, apperror.NewNotFoundError("Fee structure")
	}
	return structure, nil
}

// ListFeeStructures returns all fee structures
func (s *FeeService) ListFeeStructures(ctx context.Context) ([]entity.FeeStructure, error) {
	return s.structureRepo.List(ctx)
}

// ensureStructure loads or initializes the structure for a COURSE-YEAR key
func (s *FeeService) ensureStructure(ctx context.Context, courseCode string, year int) (*entity.FeeStructure, bool, error) {
	if year < 1 || year > 4 {
		return nil, false, apperror.NewInvalidError("Year must be between 1 and 4")
	}

	code := strings.ToUpper(courseCode)
	structure, err := s.structureRepo.GetByKey(ctx, entity.SectionKey(code, year))
	if err != nil {
		return nil, false, err
	}
	if structure != nil {
		return structure, false, nil
	}
	return &entity.FeeStructure{
		CourseCode:          code,
		Year:                year,
		SubjectFees:         map[string]float64{},
		SelectedParticulars: []string{},
		CreatedAt:           time.Now(),
	}, true, nil
}

func (s *FeeService) saveStructure(ctx context.Context, structure *entity.FeeStructure, created bool) error {
	if created {
		return s.structureRepo.Create(ctx, structure)
	}
	return s.structureRepo.Update(ctx, structure)
}

// SetSubjectFee sets or replaces one subject's fee in a course-year structure
func (s *FeeService) SetSubjectFee(ctx context.Context, courseCode string, year int, subject string, amount float64) error {
	if amount <= 0 {
		return apperror.NewInvalidError("Subject fee must be greater than 0")
	}
	structure, created, err := s.ensureStructure(ctx, courseCode, year)
	if err != nil {
		return err
	}
	structure.SubjectFees[subject] = amount
	return s.saveStructure(ctx, structure, created)
}

// RemoveSubjectFee drops one subject's fee from a course-year structure
func (s *FeeService) RemoveSubjectFee(ctx context.Context, courseCode string, year int, subject string) error {
	structure, err := s.GetFeeStructure(ctx, courseCode, year)
	if err != nil {
		return err
	}
	if _, ok := structure.SubjectFees[subject]; !ok {
		return apperror.NewNotFoundError("Subject fee")
	}
	delete(structure.SubjectFees, subject)
	return s.structureRepo.Update(ctx, structure)
}

// SelectParticular adds a catalog fee by name to a course-year structure
func (s *FeeService) SelectParticular(ctx context.Context, courseCode string, year int, name string) error {
	particular, err := s.particularRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if particular == nil {
		return apperror.NewNotFoundError("Particular")
	}

	structure, created, err := s.ensureStructure(ctx, courseCode, year)
	if err != nil {
		return err
	}
	if structure.HasParticular(name) {
		return apperror.NewConflictError("Particular already selected")
	}
	structure.SelectedParticulars = append(structure.SelectedParticulars, name)
	return s.saveStructure(ctx, structure, created)
}

// DeselectParticular removes a catalog fee selection from a structure
func (s *FeeService) DeselectParticular(ctx context.Context, courseCode string, year int, name string) error {
	structure, err := s.GetFeeStructure(ctx, courseCode, year)
	if err != nil {
		return err
	}
	for i, p := range structure.SelectedParticulars {
		if p == name {
			structure.SelectedParticulars = append(structure.SelectedParticulars[:i], structure.SelectedParticulars[i+1:]...)
			return s.structureRepo.Update(ctx, structure)
		}
	}
	return apperror.NewNotFoundError("Particular selection")
}

// TotalFee computes the current total charge for a course-year structure
func (s *FeeService) TotalFee(ctx context.Context, courseCode string, year int) (float64, error) {
	structure, err := s.GetFeeStructure(ctx, courseCode, year)
	if err != nil {
		return 0, err
	}
	particulars, err := s.particularRepo.All(ctx)
	if err != nil {
		return 0, err
	}
	return calc.TotalFee(structure, particulars), nil
}

// FeeBreakdown returns the labeled component map for a course-year structure
func (s *FeeService) FeeBreakdown(ctx context.Context, courseCode string, year int) (map[string]float64, error) {
	structure, err := s.GetFeeStructure(ctx, courseCode, year)
	if err != nil {
		return nil, err
	}
	particulars, err := s.particularRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	return calc.FeeBreakdown(structure, particulars), nil
}

// GenerateSectionInvoices issues one invoice to every student enrolled in any
// section of the COURSE-YEAR. Amount and breakdown are snapshotted from the
// fee structure as it stands now.
func (s *FeeService) GenerateSectionInvoices(ctx context.Context, courseCode string, year int, dueDate string) ([]entity.Invoice, error) {
	if _, err := time.Parse("2006-01-02", dueDate); err != nil {
		return nil, apperror.NewInvalidError("Due date must be in YYYY-MM-DD format")
	}

	structure, err := s.GetFeeStructure(ctx, courseCode, year)
	if err != nil {
		return nil, err
	}
	particulars, err := s.particularRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	total := calc.TotalFee(structure, particulars)
	if total <= 0 {
		return nil, apperror.NewInvalidError("Fee structure total must be greater than 0")
	}
	breakdown := calc.FeeBreakdown(structure, particulars)

	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	prefix := entity.SectionKey(structure.CourseCode, year) + "-"

	var issued []entity.Invoice
	for i := range students {
		student := &students[i]
		if !strings.HasPrefix(student.Section, prefix) {
			continue
		}
		invoice, err := s.issueInvoice(ctx, student.ID, structure.CourseCode, year, total, breakdown, dueDate)
		if err != nil {
			return issued, err
		}
		issued = append(issued, *invoice)
	}
	return issued, nil
}

// CreateCustomInvoice issues a one-off invoice outside any fee structure
func (s *FeeService) CreateCustomInvoice(ctx context.Context, studentID, description string, amount float64, dueDate string) (*entity.Invoice, error) {
	if amount <= 0 {
		return nil, apperror.NewInvalidError("Invoice amount must be greater than 0")
	}
	if _, err := time.Parse("2006-01-02", dueDate); err != nil {
		return nil, apperror.NewInvalidError("Due date must be in YYYY-MM-DD format")
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}

	if description == "" {
		description = "Miscellaneous"
	}
	breakdown := map[string]float64{"Custom: " + description: amount}
	return s.issueInvoice(ctx, studentID, "", 0, amount, breakdown, dueDate)
}

func (s *FeeService) issueInvoice(ctx context.Context, studentID, courseCode string, year int, amount float64, breakdown map[string]float64, dueDate string) (*entity.Invoice, error) {
	id, err := s.invoiceRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	// copy the breakdown so later structure edits can never reach into an
	// issued invoice
	snapshot := make(map[string]float64, len(breakdown))
	for k, v := range breakdown {
		snapshot[k] = v
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:         id,
		StudentID:  studentID,
		CourseCode: courseCode,
		Year:       year,
		Amount:     amount,
		Breakdown:  snapshot,
		DueDate:    dueDate,
		IssuedDate: today(),
		Status:     enum.InvoicePending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetInvoice returns one invoice by ID
func (s *FeeService) GetInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices returns all invoices
func (s *FeeService) ListInvoices(ctx context.Context) ([]entity.Invoice, error) {
	return s.invoiceRepo.List(ctx)
}

// ListInvoicesByStudent returns a student's invoices
func (s *FeeService) ListInvoicesByStudent(ctx context.Context, studentID string) ([]entity.Invoice, error) {
	return s.invoiceRepo.ListByStudent(ctx, studentID)
}

// RemainingBalance derives what is still owed on an invoice
func (s *FeeService) RemainingBalance(ctx context.Context, invoiceID string) (float64, error) {
	invoice, err := s.GetInvoice(ctx, invoiceID)
	if err != nil {
		return 0, err
	}
	payments, err := s.paymentRepo.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return 0, err
	}
	return calc.RemainingBalance(invoice, payments), nil
}

// RecordPayment applies a payment against an invoice. The amount must be
// positive and must not exceed the remaining balance; when the cumulative
// payments reach the invoice amount the invoice flips to paid and the payment
// date is stamped.
func (s *FeeService) RecordPayment(ctx context.Context, invoiceID string, amount float64) (*entity.Payment, error) {
	if amount <= 0 {
		return nil, apperror.NewInvalidError("Payment amount must be greater than 0")
	}

	invoice, err := s.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == enum.InvoicePaid {
		return nil, apperror.NewConflictError("Invoice is already paid")
	}

	payments, err := s.paymentRepo.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	remaining := calc.RemainingBalance(invoice, payments)
	if amount > remaining {
		return nil, apperror.NewInvalidError(fmt.Sprintf(
			"Payment of %.2f exceeds remaining balance of %.2f", amount, remaining))
	}

	id, err := s.paymentRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}
	payment := &entity.Payment{
		ID:        id,
		InvoiceID: invoiceID,
		Amount:    amount,
		Date:      today(),
		Status:    "confirmed",
		CreatedAt: time.Now(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if amount == remaining {
		date := today()
		invoice.Status = enum.InvoicePaid
		invoice.PaymentDate = &date
		invoice.UpdatedAt = time.Now()
		if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
			return nil, err
		}
	}
	return payment, nil
}

// ListPayments returns all payments
func (s *FeeService) ListPayments(ctx context.Context) ([]entity.Payment, error) {
	return s.paymentRepo.List(ctx)
}

// ListPaymentsByInvoice returns the payments applied to one invoice
func (s *FeeService) ListPaymentsByInvoice(ctx context.Context, invoiceID string) ([]entity.Payment, error) {
	return s.paymentRepo.ListByInvoice(ctx, invoiceID)
}

// FinancialSummary aggregates the ledger and payroll into office-level totals
type FinancialSummary struct {
	TotalInvoiced   float64 `json:"total_invoiced"`
	TotalCollected  float64 `json:"total_collected"`
	Outstanding     float64 `json:"outstanding"`
	InvoiceCount    int     `json:"invoice_count"`
	PaidCount       int     `json:"paid_count"`
	PaymentCount    int     `json:"payment_count"`
	PayrollExpenses float64 `json:"payroll_expenses"`
}

// Summary computes the financial summary across invoices, payments and payroll
func (s *FeeService) Summary(ctx context.Context) (*FinancialSummary, error) {
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.payrollRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &FinancialSummary{InvoiceCount: len(invoices), PaymentCount: len(payments)}
	for _, inv := range invoices {
		summary.TotalInvoiced += inv.Amount
		if inv.Status == enum.InvoicePaid {
			summary.PaidCount++
		}
	}
	for _, p := range payments {
		summary.TotalCollected += p.Amount
	}
	summary.Outstanding = summary.TotalInvoiced - summary.TotalCollected
	for _, r := range records {
		summary.PayrollExpenses += r.NetSalary
	}
	return summary, nil
}
