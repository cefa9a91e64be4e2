package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/registrarhq/registrar/internal/domain/entity"
)

func catalog() map[string]entity.Particular {
	return map[string]entity.Particular{
		"Library Fee": {Name: "Library Fee", Amount: 500},
		"Lab Fee":     {Name: "Lab Fee", Amount: 1200},
	}
}

func TestTotalFee(t *testing.T) {
	structure := &entity.FeeStructure{
		CourseCode: "BSIT",
		Year:       3,
		SubjectFees: map[string]float64{
			"Programming": 2500,
			"Networking":  2000,
		},
		SelectedParticulars: []string{"Library Fee"},
	}

	assert.Equal(t, 5000.0, TotalFee(structure, catalog()))
}

func TestTotalFeeEmptyOrAbsent(t *testing.T) {
	assert.Equal(t, 0.0, TotalFee(nil, catalog()))
	assert.Equal(t, 0.0, TotalFee(&entity.FeeStructure{}, catalog()))
}

func TestTotalFeeUnknownParticularIgnored(t *testing.T) {
	structure := &entity.FeeStructure{
		SubjectFees:         map[string]float64{"Math": 1000},
		SelectedParticulars: []string{"Deleted Fee"},
	}
	assert.Equal(t, 1000.0, TotalFee(structure, catalog()))
}

func TestTotalFeeMonotonic(t *testing.T) {
	structure := &entity.FeeStructure{
		SubjectFees:         map[string]float64{"Math": 1000},
		SelectedParticulars: []string{},
	}
	particulars := catalog()

	before := TotalFee(structure, particulars)

	structure.SubjectFees["Science"] = 750
	afterSubject := TotalFee(structure, particulars)
	assert.Greater(t, afterSubject, before, "adding a subject fee must never decrease the total")

	structure.SelectedParticulars = append(structure.SelectedParticulars, "Lab Fee")
	afterParticular := TotalFee(structure, particulars)
	assert.Greater(t, afterParticular, afterSubject, "adding a particular must never decrease the total")
}

func TestFeeBreakdown(t *testing.T) {
	structure := &entity.FeeStructure{
		SubjectFees:         map[string]float64{"Programming": 2500},
		SelectedParticulars: []string{"Library Fee", "Unknown"},
	}

	breakdown := FeeBreakdown(structure, catalog())

	assert.Equal(t, map[string]float64{
		"Subject: Programming":    2500,
		"Particular: Library Fee": 500,
	}, breakdown)

	// breakdown components sum to the total
	sum := 0.0
	for _, v := range breakdown {
		sum += v
	}
	assert.Equal(t, TotalFee(structure, catalog()), sum)
}

func TestRemainingBalance(t *testing.T) {
	invoice := &entity.Invoice{ID: "INV000001", Amount: 5000}

	assert.Equal(t, 5000.0, RemainingBalance(invoice, nil))

	payments := []entity.Payment{{Amount: 2500}, {Amount: 1000}}
	assert.Equal(t, 1500.0, RemainingBalance(invoice, payments))
}
