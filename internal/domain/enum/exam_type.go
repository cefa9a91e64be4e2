package enum

// ExamType identifies one of the three term examinations
type ExamType string

const (
	ExamPrelim  ExamType = "prelim"
	ExamMidterm ExamType = "midterm"
	ExamFinals  ExamType = "finals"
)

// ExamTypes lists all exam types in term order
func ExamTypes() []ExamType {
	return []ExamType{ExamPrelim, ExamMidterm, ExamFinals}
}

// Valid reports whether the exam type is recognized
func (t ExamType) Valid() bool {
	switch t {
	case ExamPrelim, ExamMidterm, ExamFinals:
		return true
	}
	return false
}
