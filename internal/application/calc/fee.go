package calc

import "github.com/registrarhq/registrar/internal/domain/entity"

// TotalFee sums a fee structure: every subject fee plus every selected
// particular resolved against the catalog. Particular names with no catalog
// entry contribute nothing. A nil or empty structure totals 0; callers must
// refuse to issue invoices when the total is not positive.
func TotalFee(structure *entity.FeeStructure, particulars map[string]entity.Particular) float64 {
	if structure == nil {
		return 0
	}

	total := 0.0
	for _, amount := range structure.SubjectFees {
		total += amount
	}
	for _, name := range structure.SelectedParticulars {
		if p, ok := particulars[name]; ok {
			total += p.Amount
		}
	}
	return total
}

// FeeBreakdown mirrors TotalFee but keeps every component separately labeled
// for display and audit: "Subject: X" and "Particular: Y".
func FeeBreakdown(structure *entity.FeeStructure, particulars map[string]entity.Particular) map[string]float64 {
	breakdown := make(map[string]float64)
	if structure == nil {
		return breakdown
	}

	for subject, amount := range structure.SubjectFees {
		breakdown["Subject: "+subject] = amount
	}
	for _, name := range structure.SelectedParticulars {
		if p, ok := particulars[name]; ok {
			breakdown["Particular: "+name] = p.Amount
		}
	}
	return breakdown
}

// RemainingBalance derives what is still owed on an invoice given the
// payments recorded against it
func RemainingBalance(invoice *entity.Invoice, payments []entity.Payment) float64 {
	paid := 0.0
	for _, p := range payments {
		paid += p.Amount
	}
	return invoice.Amount - paid
}
