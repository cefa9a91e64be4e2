package store

import (
	"context"

	"github.com/registrarhq/registrar/internal/domain/entity"
	domainRepo "github.com/registrarhq/registrar/internal/domain/repository"
	"github.com/registrarhq/registrar/pkg/utils"
)

type payrollRepository struct {
	snap *Snapshot[*entity.PayrollRecord]
}

// NewPayrollRepository opens the payroll record snapshot under dir
func NewPayrollRepository(dir string) (domainRepo.PayrollRepository, error) {
	snap, err := OpenSnapshot[*entity.PayrollRecord](dir, "payroll.json")
	if err != nil {
		return nil, err
	}
	return &payrollRepository{snap: snap}, nil
}

func (r *payrollRepository) Create(ctx context.Context, record *entity.PayrollRecord) error {
	return r.snap.Put(record.ID, record)
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (*entity.PayrollRecord, error) {
	rec, ok := r.snap.Get(id)
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (r *payrollRepository) GetByTeacherPeriod(ctx context.Context, teacherID, period string) (*entity.PayrollRecord, error) {
	for _, rec := range r.snap.Values() {
		if rec.TeacherID == teacherID && rec.PayoutPeriod == period {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *payrollRepository) Update(ctx context.Context, record *entity.PayrollRecord) error {
	return r.snap.Put(record.ID, record)
}

func (r *payrollRepository) List(ctx context.Context) ([]entity.PayrollRecord, error) {
	records := make([]entity.PayrollRecord, 0, r.snap.Len())
	for _, rec := range r.snap.Values() {
		records = append(records, *rec)
	}
	return records, nil
}

func (r *payrollRepository) ListByTeacher(ctx context.Context, teacherID string) ([]entity.PayrollRecord, error) {
	var records []entity.PayrollRecord
	for _, rec := range r.snap.Values() {
		if rec.TeacherID == teacherID {
			records = append(records, *rec)
		}
	}
	return records, nil
}

func (r *payrollRepository) NextID(ctx context.Context) (string, error) {
	return utils.NextCounterID("PAYROLL-", r.snap.Keys()), nil
}

// payrollConfigFile is the persisted shape of the payroll configuration
type payrollConfigFile struct {
	WorkloadRates   map[string]entity.WorkloadRate `json:"workload_rates"`
	EarningsConfig  entity.EarningsConfig          `json:"earnings_config"`
	DeductionConfig entity.DeductionConfig         `json:"deduction_config"`
}

type payrollConfigRepository struct {
	doc *Document[payrollConfigFile]
	cfg payrollConfigFile
}

// NewPayrollConfigRepository opens the payroll configuration document under dir
func NewPayrollConfigRepository(dir string) (domainRepo.PayrollConfigRepository, error) {
	doc, err := OpenDocument[payrollConfigFile](dir, "payroll_config.json")
	if err != nil {
		return nil, err
	}

	cfg, err := doc.Load(payrollConfigFile{
		WorkloadRates:  map[string]entity.WorkloadRate{},
		EarningsConfig: entity.DefaultEarningsConfig(),
	})
	if err != nil {
		return nil, err
	}
	if cfg.WorkloadRates == nil {
		cfg.WorkloadRates = map[string]entity.WorkloadRate{}
	}
	if cfg.EarningsConfig.Bonuses == nil {
		cfg.EarningsConfig.Bonuses = map[string]entity.Bonus{}
	}

	return &payrollConfigRepository{doc: doc, cfg: cfg}, nil
}

func (r *payrollConfigRepository) SetWorkloadRate(ctx context.Context, rate entity.WorkloadRate) error {
	r.cfg.WorkloadRates[rate.Subject] = rate
	return r.doc.Save(r.cfg)
}

func (r *payrollConfigRepository) GetWorkloadRate(ctx context.Context, subject string) (*entity.WorkloadRate, error) {
	rate, ok := r.cfg.WorkloadRates[subject]
	if !ok {
		return nil, nil
	}
	return &rate, nil
}

func (r *payrollConfigRepository) ListWorkloadRates(ctx context.Context) ([]entity.WorkloadRate, error) {
	rates := make([]entity.WorkloadRate, 0, len(r.cfg.WorkloadRates))
	for _, rate := range r.cfg.WorkloadRates {
		rates = append(rates, rate)
	}
	return rates, nil
}

func (r *payrollConfigRepository) AllWorkloadRates(ctx context.Context) (map[string]entity.WorkloadRate, error) {
	all := make(map[string]entity.WorkloadRate, len(r.cfg.WorkloadRates))
	for k, v := range r.cfg.WorkloadRates {
		all[k] = v
	}
	return all, nil
}

func (r *payrollConfigRepository) GetEarningsConfig(ctx context.Context) (entity.EarningsConfig, error) {
	return r.cfg.EarningsConfig, nil
}

func (r *payrollConfigRepository) SaveEarningsConfig(ctx context.Context, cfg entity.EarningsConfig) error {
	r.cfg.EarningsConfig = cfg
	return r.doc.Save(r.cfg)
}

func (r *payrollConfigRepository) GetDeductionConfig(ctx context.Context) (entity.DeductionConfig, error) {
	return r.cfg.DeductionConfig, nil
}

func (r *payrollConfigRepository) SaveDeductionConfig(ctx context.Context, cfg entity.DeductionConfig) error {
	r.cfg.DeductionConfig = cfg
	return r.doc.Save(r.cfg)
}
