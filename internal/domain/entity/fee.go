package entity

import "time"

// Particular is a named flat fee component (e.g. "Library Fee") that any fee
// structure can include by name
type Particular struct {
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// FeeStructure defines the total charge for one COURSE-YEAR combination:
// per-subject fees plus a selection of named particulars
type FeeStructure struct {
	CourseCode          string             `json:"course_code"`
	Year                int                `json:"year"`
	SubjectFees         map[string]float64 `json:"subject_fees"`
	SelectedParticulars []string           `json:"selected_particulars"`
	CreatedAt           time.Time          `json:"created_at"`
}

// SectionKey returns the COURSE-YEAR key the structure is stored under
func (f *FeeStructure) SectionKey() string {
	return SectionKey(f.CourseCode, f.Year)
}

// HasParticular reports whether the named particular is already selected
func (f *FeeStructure) HasParticular(name string) bool {
	for _, p := range f.SelectedParticulars {
		if p == name {
			return true
		}
	}
	return false
}
