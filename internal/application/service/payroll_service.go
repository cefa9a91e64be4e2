package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/registrarhq/registrar/internal/application/calc"
	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/internal/domain/repository"
	"github.com/registrarhq/registrar/pkg/apperror"
	"github.com/registrarhq/registrar/pkg/utils"
)

const bonusIDPrefix = "BONUS-"

// PayrollService manages payroll configuration and per-period pay records
type PayrollService struct {
	payrollRepo repository.PayrollRepository
	configRepo  repository.PayrollConfigRepository
	teacherRepo repository.TeacherRepository
}

// NewPayrollService creates a new payroll service
func NewPayrollService(
	payrollRepo repository.PayrollRepository,
	configRepo repository.PayrollConfigRepository,
	teacherRepo repository.TeacherRepository,
) *PayrollService {
	return &PayrollService{
		payrollRepo: payrollRepo,
		configRepo:  configRepo,
		teacherRepo: teacherRepo,
	}
}

// SetWorkloadRate sets or replaces the per-day rate for a subject
func (s *PayrollService) SetWorkloadRate(ctx context.Context, subject string, ratePerDay float64) error {
	if subject == "" {
		return apperror.NewInvalidError("Subject is required")
	}
	if ratePerDay <= 0 {
		return apperror.NewInvalidError("Workload rate must be greater than 0")
	}
	return s.configRepo.SetWorkloadRate(ctx, entity.WorkloadRate{Subject: subject, RatePerDay: ratePerDay})
}

// GetWorkloadRate returns the configured rate for a subject
func (s *PayrollService) GetWorkloadRate(ctx context.Context, subject string) (*entity.WorkloadRate, error) {
	rate, err := s.configRepo.GetWorkloadRate(ctx, subject)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, apperror.NewNotFoundError("Workload rate")
	}
	return rate, nil
}

// ListWorkloadRates returns all configured subject rates
func (s *PayrollService) ListWorkloadRates(ctx context.Context) ([]entity.WorkloadRate, error) {
	return s.configRepo.ListWorkloadRates(ctx)
}

// SetBaseSalary sets the fortnightly base salary
func (s *PayrollService) SetBaseSalary(ctx context.Context, amount float64) error {
	if amount < 0 {
		return apperror.NewInvalidError("Base salary cannot be negative")
	}
	cfg, err := s.configRepo.GetEarningsConfig(ctx)
	if err != nil {
		return err
	}
	cfg.BaseSalary = amount
	return s.configRepo.SaveEarningsConfig(ctx, cfg)
}

// SetOvertimeRate sets the overtime multiplier over the hourly base rate
func (s *PayrollService) SetOvertimeRate(ctx context.Context, multiplier float64) error {
	if multiplier <= 0 {
		return apperror.NewInvalidError("Overtime rate must be greater than 0")
	}
	cfg, err := s.configRepo.GetEarningsConfig(ctx)
	if err != nil {
		return err
	}
	cfg.OvertimeRate = multiplier
	return s.configRepo.SaveEarningsConfig(ctx, cfg)
}

// EarningsConfig returns the current earnings configuration
func (s *PayrollService) EarningsConfig(ctx context.Context) (entity.EarningsConfig, error) {
	return s.configRepo.GetEarningsConfig(ctx)
}

// AddBonus adds a named amount to the bonus catalog
func (s *PayrollService) AddBonus(ctx context.Context, name string, amount float64) (*entity.Bonus, error) {
	if name == "" {
		return nil, apperror.NewInvalidError("Bonus name is required")
	}
	if amount <= 0 {
		return nil, apperror.NewInvalidError("Bonus amount must be greater than 0")
	}

	cfg, err := s.configRepo.GetEarningsConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.Bonuses == nil {
		cfg.Bonuses = map[string]entity.Bonus{}
	}

	max := 0
	for id := range cfg.Bonuses {
		n, err := strconv.Atoi(strings.TrimPrefix(id, bonusIDPrefix))
		if err == nil && n > max {
			max = n
		}
	}
	bonus := entity.Bonus{
		ID:     fmt.Sprintf("%s%d", bonusIDPrefix, max+1),
		Name:   name,
		Amount: amount,
	}
	cfg.Bonuses[bonus.ID] = bonus
	if err := s.configRepo.SaveEarningsConfig(ctx, cfg); err != nil {
		return nil, err
	}
	return &bonus, nil
}

// RemoveBonus deletes a bonus from the catalog. Records that already included
// it keep their snapshotted amounts.
func (s *PayrollService) RemoveBonus(ctx context.Context, bonusID string) error {
	cfg, err := s.configRepo.GetEarningsConfig(ctx)
	if err != nil {
		return err
	}
	if _, ok := cfg.Bonuses[bonusID]; !ok {
		return apperror.NewNotFoundError("Bonus")
	}
	delete(cfg.Bonuses, bonusID)
	return s.configRepo.SaveEarningsConfig(ctx, cfg)
}

// ListBonuses returns the bonus catalog sorted by ID
func (s *PayrollService) ListBonuses(ctx context.Context) ([]entity.Bonus, error) {
	cfg, err := s.configRepo.GetEarningsConfig(ctx)
	if err != nil {
		return nil, err
	}
	bonuses := make([]entity.Bonus, 0, len(cfg.Bonuses))
	for _, b := range cfg.Bonuses {
		bonuses = append(bonuses, b)
	}
	sort.Slice(bonuses, func(i, j int) bool { return bonuses[i].ID < bonuses[j].ID })
	return bonuses, nil
}

// SetDeductionConfig replaces the deduction configuration
func (s *PayrollService) SetDeductionConfig(ctx context.Context, taxRate, sssRate, absenceRatePerDay float64) error {
	if taxRate < 0 || sssRate < 0 || absenceRatePerDay < 0 {
		return apperror.NewInvalidError("Deduction rates cannot be negative")
	}
	return s.configRepo.SaveDeductionConfig(ctx, entity.DeductionConfig{
		TaxRate:           taxRate,
		SSSRate:           sssRate,
		AbsenceRatePerDay: absenceRatePerDay,
	})
}

// DeductionConfig returns the current deduction configuration
func (s *PayrollService) DeductionConfig(ctx context.Context) (entity.DeductionConfig, error) {
	return s.configRepo.GetDeductionConfig(ctx)
}

// CreatePayrollInput represents one payroll run for a teacher and period
type CreatePayrollInput struct {
	TeacherID        string
	PayoutPeriod     string
	DaysPresent      int
	SelectedBonusIDs []string
	OvertimeHours    float64
}

// CreatePayroll calculates and stores one teacher's pay for a payout period.
// The stored record is a snapshot; later configuration changes never touch it.
func (s *PayrollService) CreatePayroll(ctx context.Context, input *CreatePayrollInput) (*entity.PayrollRecord, error) {
	if !utils.ValidPayoutPeriod(input.PayoutPeriod) {
		return nil, apperror.NewInvalidError("Payout period must be in YYYY-MM-A or YYYY-MM-B format")
	}
	if input.DaysPresent < 0 || input.DaysPresent > calc.FortnightDays {
		return nil, apperror.NewInvalidError(fmt.Sprintf("Days present must be between 0 and %d", calc.FortnightDays))
	}
	if input.OvertimeHours < 0 {
		return nil, apperror.NewInvalidError("Overtime hours cannot be negative")
	}

	teacher, err := s.teacherRepo.GetByID(ctx, input.TeacherID)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, apperror.NewNotFoundError("Teacher")
	}

	existing, err := s.payrollRepo.GetByTeacherPeriod(ctx, input.TeacherID, input.PayoutPeriod)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Payroll already exists for this teacher and period")
	}

	rates, err := s.configRepo.AllWorkloadRates(ctx)
	if err != nil {
		return nil, err
	}
	earnings, err := s.configRepo.GetEarningsConfig(ctx)
	if err != nil {
		return nil, err
	}
	deductions, err := s.configRepo.GetDeductionConfig(ctx)
	if err != nil {
		return nil, err
	}

	result, err := calc.Payroll(calc.PayrollInput{
		DaysPresent:      input.DaysPresent,
		Subjects:         teacher.SubjectsTaught,
		SelectedBonusIDs: input.SelectedBonusIDs,
		OvertimeHours:    input.OvertimeHours,
	}, rates, earnings, deductions)
	if err != nil {
		return nil, err
	}

	id, err := s.payrollRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}
	record := &entity.PayrollRecord{
		ID:           id,
		TeacherID:    input.TeacherID,
		PayoutPeriod: input.PayoutPeriod,

		DaysPresent:      input.DaysPresent,
		WorkloadEarnings: result.WorkloadEarnings,
		SelectedBonusIDs: append([]string{}, input.SelectedBonusIDs...),
		BonusAmount:      result.BonusAmount,
		OvertimeHours:    input.OvertimeHours,
		OvertimeEarnings: result.OvertimeEarnings,

		BaseSalary:  earnings.BaseSalary,
		GrossSalary: result.GrossSalary,

		TaxDeduction:     result.TaxDeduction,
		SSSDeduction:     result.SSSDeduction,
		AbsenceDeduction: result.AbsenceDeduction,
		TotalDeductions:  result.TotalDeductions,

		NetSalary: result.NetSalary,

		PaymentStatus: "pending",
		CreatedAt:     time.Now(),
	}
	if err := s.payrollRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetPayroll returns one payroll record by ID
func (s *PayrollService) GetPayroll(ctx context.Context, id string) (*entity.PayrollRecord, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Payroll record")
	}
	return record, nil
}

// ListPayrolls returns all payroll records
func (s *PayrollService) ListPayrolls(ctx context.Context) ([]entity.PayrollRecord, error) {
	return s.payrollRepo.List(ctx)
}

// ListPayrollsByTeacher returns one teacher's payroll history
func (s *PayrollService) ListPayrollsByTeacher(ctx context.Context, teacherID string) ([]entity.PayrollRecord, error) {
	return s.payrollRepo.ListByTeacher(ctx, teacherID)
}

// FinalizePayroll marks a record paid and stamps the payout date. The stored
// figures are never recomputed.
func (s *PayrollService) FinalizePayroll(ctx context.Context, id string) (*entity.PayrollRecord, error) {
	record, err := s.GetPayroll(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.PaymentStatus == "paid" {
		return nil, apperror.NewConflictError("Payroll record is already paid")
	}

	record.PaymentStatus = "paid"
	record.PayoutDate = today()
	if err := s.payrollRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// PayrollBreakdown is the itemized view of one stored payroll record
type PayrollBreakdown struct {
	Earnings   map[string]float64 `json:"earnings"`
	Deductions map[string]float64 `json:"deductions"`
	Gross      float64            `json:"gross"`
	Net        float64            `json:"net"`
}

// Breakdown itemizes an existing record from its snapshotted figures
func (s *PayrollService) Breakdown(ctx context.Context, id string) (*PayrollBreakdown, error) {
	record, err := s.GetPayroll(ctx, id)
	if err != nil {
		return nil, err
	}

	return &PayrollBreakdown{
		Earnings: map[string]float64{
			"Base Salary":       record.BaseSalary,
			"Workload Earnings": record.WorkloadEarnings,
			"Bonuses":           record.BonusAmount,
			"Overtime":          record.OvertimeEarnings,
		},
		Deductions: map[string]float64{
			"Tax":     record.TaxDeduction,
			"SSS":     record.SSSDeduction,
			"Absence": record.AbsenceDeduction,
		},
		Gross: record.GrossSalary,
		Net:   record.NetSalary,
	}, nil
}

// TotalExpenses sums net salaries across all payroll records
func (s *PayrollService) TotalExpenses(ctx context.Context) (float64, error) {
	records, err := s.payrollRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, r := range records {
		total += r.NetSalary
	}
	return total, nil
}
