package entity

import "time"

// WorkloadRate is the configured per-day teaching rate for one subject
type WorkloadRate struct {
	Subject    string  `json:"subject"`
	RatePerDay float64 `json:"rate_per_day"`
}

// Bonus is a named one-off amount a payroll run can include by ID
type Bonus struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// EarningsConfig holds the earnings side of the payroll configuration
type EarningsConfig struct {
	BaseSalary   float64          `json:"base_salary"`
	OvertimeRate float64          `json:"overtime_rate"` // multiplier over the hourly base rate
	Bonuses      map[string]Bonus `json:"bonuses"`
}

// DeductionConfig holds the deduction side of the payroll configuration
type DeductionConfig struct {
	TaxRate            float64 `json:"tax_rate"` // percent of gross
	SSSRate            float64 `json:"sss_rate"` // percent of gross
	AbsenceRatePerDay  float64 `json:"absence_rate_per_day"`
}

// DefaultEarningsConfig returns the initial earnings configuration
func DefaultEarningsConfig() EarningsConfig {
	return EarningsConfig{
		OvertimeRate: 1.5,
		Bonuses:      map[string]Bonus{},
	}
}

// PayrollRecord is one teacher's pay for one fortnightly payout period.
// All derived fields are a snapshot of the configuration at calculation time;
// config changes afterwards never alter an already-calculated record.
type PayrollRecord struct {
	ID           string `json:"id"`
	TeacherID    string `json:"teacher_id"`
	PayoutPeriod string `json:"payout_period"` // YYYY-MM-A or YYYY-MM-B

	DaysPresent      int      `json:"days_present"`
	WorkloadEarnings float64  `json:"workload_earnings"`
	SelectedBonusIDs []string `json:"selected_bonus_ids"`
	BonusAmount      float64  `json:"bonus_amount"`
	OvertimeHours    float64  `json:"overtime_hours"`
	OvertimeEarnings float64  `json:"overtime_earnings"`

	BaseSalary  float64 `json:"base_salary"`
	GrossSalary float64 `json:"gross_salary"`

	TaxDeduction     float64 `json:"tax_deduction"`
	SSSDeduction     float64 `json:"sss_deduction"`
	AbsenceDeduction float64 `json:"absence_deduction"`
	TotalDeductions  float64 `json:"total_deductions"`

	NetSalary float64 `json:"net_salary"`

	PaymentStatus string    `json:"payment_status"`
	PayoutDate    string    `json:"payout_date"`
	CreatedAt     time.Time `json:"created_at"`
}
