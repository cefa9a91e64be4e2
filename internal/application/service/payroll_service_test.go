package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/internal/infrastructure/store"
)

type payrollFixture struct {
	payroll  *PayrollService
	teachers *TeacherService
}

func newPayrollFixture(t *testing.T) *payrollFixture {
	t.Helper()
	dir := t.TempDir()

	payrollRepo, err := store.NewPayrollRepository(dir)
	require.NoError(t, err)
	configRepo, err := store.NewPayrollConfigRepository(dir)
	require.NoError(t, err)
	teacherRepo, err := store.NewTeacherRepository(dir)
	require.NoError(t, err)

	return &payrollFixture{
		payroll:  NewPayrollService(payrollRepo, configRepo, teacherRepo),
		teachers: NewTeacherService(teacherRepo),
	}
}

// seedTeacher creates a teacher assigned to Math and configures rates so one
// 10-day fortnight nets exactly 12350:
// gross 10000 + 10*500 = 15000, deductions 1500 + 750 + 4*100 = 2650
func (f *payrollFixture) seedTeacher(t *testing.T, ctx context.Context) *entity.Teacher {
	t.Helper()
	teacher, err := f.teachers.CreateTeacher(ctx, &CreateTeacherInput{Name: "Liza Moreno", Email: "liza@college.edu", Phone: "0917"})
	require.NoError(t, err)
	require.NoError(t, f.teachers.AddSubject(ctx, teacher.ID, "Math"))

	require.NoError(t, f.payroll.SetWorkloadRate(ctx, "Math", 500))
	require.NoError(t, f.payroll.SetBaseSalary(ctx, 10000))
	require.NoError(t, f.payroll.SetDeductionConfig(ctx, 10, 5, 100))
	return teacher
}

func TestCreatePayrollWorkedExample(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()
	teacher := f.seedTeacher(t, ctx)

	record, err := f.payroll.CreatePayroll(ctx, &CreatePayrollInput{
		TeacherID:    teacher.ID,
		PayoutPeriod: "2026-08-A",
		DaysPresent:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, "PAYROLL-000001", record.ID)
	assert.Equal(t, 5000.0, record.WorkloadEarnings)
	assert.Equal(t, 15000.0, record.GrossSalary)
	assert.Equal(t, 1500.0, record.TaxDeduction)
	assert.Equal(t, 750.0, record.SSSDeduction)
	assert.Equal(t, 400.0, record.AbsenceDeduction)
	assert.Equal(t, 12350.0, record.NetSalary)
	assert.Equal(t, "pending", record.PaymentStatus)
	assert.Empty(t, record.PayoutDate)
}

func TestCreatePayrollValidation(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()
	teacher := f.seedTeacher(t, ctx)

	tests := []struct {
		name  string
		input CreatePayrollInput
	}{
		{"bad period", CreatePayrollInput{TeacherID: teacher.ID, PayoutPeriod: "2026-08-C", DaysPresent: 10}},
		{"period missing half", CreatePayrollInput{TeacherID: teacher.ID, PayoutPeriod: "2026-08", DaysPresent: 10}},
		{"negative days", CreatePayrollInput{TeacherID: teacher.ID, PayoutPeriod: "2026-08-A", DaysPresent: -1}},
		{"too many days", CreatePayrollInput{TeacherID: teacher.ID, PayoutPeriod: "2026-08-A", DaysPresent: 15}},
		{"negative overtime", CreatePayrollInput{TeacherID: teacher.ID, PayoutPeriod: "2026-08-A", DaysPresent: 10, OvertimeHours: -2}},
		{"unknown teacher", CreatePayrollInput{TeacherID: "0119999999", PayoutPeriod: "2026-08-A", DaysPresent: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.payroll.CreatePayroll(ctx, &tt.input)
			assert.Error(t, err)
		})
	}
}

func TestCreatePayrollRejectsDuplicatePeriod(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()
	teacher := f.seedTeacher(t, ctx)

	_, err := f.payroll.CreatePayroll(ctx, &CreatePayrollInput{TeacherID: teacher.ID, PayoutPeriod: "2026-08-A", DaysPresent: 10})
	require.NoError(t, err)

	_, err = f.payroll.CreatePayroll(ctx, &CreatePayrollInput{TeacherID: teacher.ID, PayoutPeriod: "2026-08-A", DaysPresent: 12})
	assert.Error(t, err)

	// the other fortnight of the month is a separate period
	_, err = f.payroll.CreatePayroll(ctx, &CreatePayrollInput{TeacherID: teacher.ID, PayoutPeriod: "2026-08-B", DaysPresent: 12})
	assert.NoError(t, err)
}

func TestCreatePayrollFailsWithoutRate(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()
	teacher := f.seedTeacher(t, ctx)
	require.NoError(t, f.teachers.AddSubject(ctx, teacher.ID, "Physics"))

	_, err := f.payroll.CreatePayroll(ctx, &CreatePayrollInput{TeacherID: teacher.ID, PayoutPeriod: "2026-08-A", DaysPresent: 10})
	assert.EqualError(t, err, "No workload rate set for Physics")

	records, listErr := f.payroll.ListPayrollsByTeacher(ctx, teacher.ID)
	require.NoError(t, listErr)
	assert.Empty(t, records, "failed calculation stores nothing")
}

func TestStoredPayrollSurvivesConfigChanges(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()
	teacher := f.seedTeacher(t, ctx)

	record, err := f.payroll.CreatePayroll(ctx, &CreatePayrollInput{TeacherID: teacher.ID, PayoutPeriod: "2026-08-A", DaysPresent: 10})
	require.NoError(t, err)

	require.NoError(t, f.payroll.SetBaseSalary(ctx, 99999))
	require.NoError(t, f.payroll.SetWorkloadRate(ctx, "Math", 9000))
	require.NoError(t, f.payroll.SetDeductionConfig(ctx, 50, 50, 5000))

	stored, err := f.payroll.GetPayroll(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, 10000.0, stored.BaseSalary)
	assert.Equal(t, 12350.0, stored.NetSalary)
}

func TestBonusesAndOvertime(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()
	teacher := f.seedTeacher(t, ctx)

	bonus, err := f.payroll.AddBonus(ctx, "Perfect Attendance", 1000)
	require.NoError(t, err)
	assert.Equal(t, "BONUS-1", bonus.ID)

	record, err := f.payroll.CreatePayroll(ctx, &CreatePayrollInput{
		TeacherID:        teacher.ID,
		PayoutPeriod:     "2026-08-A",
		DaysPresent:      14,
		SelectedBonusIDs: []string{bonus.ID, "BONUS-99"},
		OvertimeHours:    4,
	})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, record.BonusAmount, "unknown bonus IDs contribute nothing")
	// 4h * (10000 / 112) * 1.5
	assert.InDelta(t, 535.71, record.OvertimeEarnings, 0.01)
	assert.Equal(t, 0.0, record.AbsenceDeduction)
}

func TestFinalizePayroll(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()
	teacher := f.seedTeacher(t, ctx)

	record, err := f.payroll.CreatePayroll(ctx, &CreatePayrollInput{TeacherID: teacher.ID, PayoutPeriod: "2026-08-A", DaysPresent: 10})
	require.NoError(t, err)

	// config drifts between calculation and payout; finalize must not recompute
	require.NoError(t, f.payroll.SetBaseSalary(ctx, 0))

	finalized, err := f.payroll.FinalizePayroll(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", finalized.PaymentStatus)
	assert.NotEmpty(t, finalized.PayoutDate)
	assert.Equal(t, 12350.0, finalized.NetSalary)

	_, err = f.payroll.FinalizePayroll(ctx, record.ID)
	assert.Error(t, err)
}

func TestPayrollBreakdownAndExpenses(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()
	teacher := f.seedTeacher(t, ctx)

	record, err := f.payroll.CreatePayroll(ctx, &CreatePayrollInput{TeacherID: teacher.ID, PayoutPeriod: "2026-08-A", DaysPresent: 10})
	require.NoError(t, err)

	breakdown, err := f.payroll.Breakdown(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, 10000.0, breakdown.Earnings["Base Salary"])
	assert.Equal(t, 5000.0, breakdown.Earnings["Workload Earnings"])
	assert.Equal(t, 400.0, breakdown.Deductions["Absence"])
	assert.Equal(t, 12350.0, breakdown.Net)

	total, err := f.payroll.TotalExpenses(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12350.0, total)
}

func TestWorkloadRateValidation(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()

	assert.Error(t, f.payroll.SetWorkloadRate(ctx, "", 500))
	assert.Error(t, f.payroll.SetWorkloadRate(ctx, "Math", 0))
	assert.Error(t, f.payroll.SetBaseSalary(ctx, -1))
	assert.Error(t, f.payroll.SetOvertimeRate(ctx, 0))
	assert.Error(t, f.payroll.SetDeductionConfig(ctx, -1, 0, 0))
}
