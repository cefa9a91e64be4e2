package calc

import (
	"fmt"

	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/pkg/apperror"
)

// Payroll runs on a fixed fortnight: 14 calendar days, 8 working hours a day.
// The absence deduction and the overtime hourly base both derive from these
// constants, not from attendance records or actual working days.
const (
	FortnightDays   = 14
	WorkHoursPerDay = 8
)

// PayrollInput is one teacher's attendance and selections for a payout period
type PayrollInput struct {
	DaysPresent      int
	Subjects         []string
	SelectedBonusIDs []string
	OvertimeHours    float64
}

// PayrollResult holds every derived pay figure for one payout period
type PayrollResult struct {
	WorkloadEarnings float64
	OvertimeEarnings float64
	BonusAmount      float64
	GrossSalary      float64

	TaxDeduction     float64
	SSSDeduction     float64
	AbsenceDeduction float64
	TotalDeductions  float64

	NetSalary float64
}

// Payroll computes a teacher's pay for one fortnight from a snapshot of the
// earnings and deduction configuration. The function is pure: identical
// inputs and config always produce identical results, and a failure leaves
// nothing partially computed.
//
// Net salary is deliberately not clamped at zero; deductions exceeding gross
// yield a negative net, as the payroll office expects to see the shortfall.
func Payroll(in PayrollInput, rates map[string]entity.WorkloadRate, earnings entity.EarningsConfig, deductions entity.DeductionConfig) (PayrollResult, error) {
	var res PayrollResult

	if in.DaysPresent < 0 {
		return res, apperror.NewInvalidError("Days present cannot be negative")
	}

	// Each subject pays its own daily rate for every day present. Resolve all
	// rates up front so a missing one fails before anything is accumulated.
	for _, subject := range in.Subjects {
		rate, ok := rates[subject]
		if !ok {
			return PayrollResult{}, apperror.NewInvalidError(fmt.Sprintf("No workload rate set for %s", subject))
		}
		res.WorkloadEarnings += float64(in.DaysPresent) * rate.RatePerDay
	}

	if in.OvertimeHours > 0 {
		hourlyBase := earnings.BaseSalary / (WorkHoursPerDay * FortnightDays)
		res.OvertimeEarnings = in.OvertimeHours * hourlyBase * earnings.OvertimeRate
	}

	for _, id := range in.SelectedBonusIDs {
		if bonus, ok := earnings.Bonuses[id]; ok {
			res.BonusAmount += bonus.Amount
		}
	}

	res.GrossSalary = earnings.BaseSalary + res.WorkloadEarnings + res.BonusAmount + res.OvertimeEarnings

	res.TaxDeduction = res.GrossSalary * deductions.TaxRate / 100
	res.SSSDeduction = res.GrossSalary * deductions.SSSRate / 100
	res.AbsenceDeduction = float64(FortnightDays-in.DaysPresent) * deductions.AbsenceRatePerDay
	res.TotalDeductions = res.TaxDeduction + res.SSSDeduction + res.AbsenceDeduction

	res.NetSalary = res.GrossSalary - res.TotalDeductions
	return res, nil
}
