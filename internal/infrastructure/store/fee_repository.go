package store

import (
	"context"

	"github.com/registrarhq/registrar/internal/domain/entity"
	domainRepo "github.com/registrarhq/registrar/internal/domain/repository"
)

type particularRepository struct {
	snap *Snapshot[*entity.Particular]
}

// NewParticularRepository opens the particular catalog snapshot under dir
func NewParticularRepository(dir string) (domainRepo.ParticularRepository, error) {
	snap, err := OpenSnapshot[*entity.Particular](dir, "particulars.json")
	if err != nil {
		return nil, err
	}
	return &particularRepository{snap: snap}, nil
}

func (r *particularRepository) Create(ctx context.Context, particular *entity.Particular) error {
	return r.snap.Put(particular.Name, particular)
}

func (r *particularRepository) GetByName(ctx context.Context, name string) (*entity.Particular, error) {
	p, ok := r.snap.Get(name)
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *particularRepository) Update(ctx context.Context, particular *entity.Particular) error {
	return r.snap.Put(particular.Name, particular)
}

func (r *particularRepository) Delete(ctx context.Context, name string) error {
	return r.snap.Delete(name)
}

func (r *particularRepository) List(ctx context.Context) ([]entity.Particular, error) {
	particulars := make([]entity.Particular, 0, r.snap.Len())
	for _, p := range r.snap.Values() {
		particulars = append(particulars, *p)
	}
	return particulars, nil
}

func (r *particularRepository) All(ctx context.Context) (map[string]entity.Particular, error) {
	all := make(map[string]entity.Particular, r.snap.Len())
	for _, p := range r.snap.Values() {
		all[p.Name] = *p
	}
	return all, nil
}

type feeStructureRepository struct {
	snap *Snapshot[*entity.FeeStructure]
}

// NewFeeStructureRepository opens the fee structure snapshot under dir
func NewFeeStructureRepository(dir string) (domainRepo.FeeStructureRepository, error) {
	snap, err := OpenSnapshot[*entity.FeeStructure](dir, "fee_structures.json")
	if err != nil {
		return nil, err
	}
	return &feeStructureRepository{snap: snap}, nil
}

func (r *feeStructureRepository) Create(ctx context.Context, structure *entity.FeeStructure) error {
	return r.snap.Put(structure.SectionKey(), structure)
}

func (r *feeStructureRepository) GetByKey(ctx context.Context, sectionKey string) (*entity.FeeStructure, error) {
	s, ok := r.snap.Get(sectionKey)
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *feeStructureRepository) Update(ctx context.Context, structure *entity.FeeStructure) error {
	return r.snap.Put(structure.SectionKey(), structure)
}

func (r *feeStructureRepository) Delete(ctx context.Context, sectionKey string) error {
	return r.snap.Delete(sectionKey)
}

func (r *feeStructureRepository) List(ctx context.Context) ([]entity.FeeStructure, error) {
	structures := make([]entity.FeeStructure, 0, r.snap.Len())
	for _, s := range r.snap.Values() {
		structures = append(structures, *s)
	}
	return structures, nil
}
