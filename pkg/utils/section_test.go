package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSection(t *testing.T) {
	tests := []struct {
		section string
		valid   bool
	}{
		{"BSIT-3-1", true},
		{"bscs-1-12", true},
		{"BSIT-5-1", false},
		{"BSIT-0-1", false},
		{"BSIT-3", false},
		{"BSIT-3-1-1", false},
		{"BS IT-3-1", false},
		{"-3-1", false},
		{"BSIT-three-1", false},
		{"BSIT-3-one", false},
	}
	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidSection(tt.section))
		})
	}
}

func TestSectionCourseYear(t *testing.T) {
	course, year, ok := SectionCourseYear("BSIT-3-1")
	assert.True(t, ok)
	assert.Equal(t, "BSIT", course)
	assert.Equal(t, 3, year)

	_, _, ok = SectionCourseYear("nope")
	assert.False(t, ok)
}

func TestValidPayoutPeriod(t *testing.T) {
	assert.True(t, ValidPayoutPeriod("2026-08-A"))
	assert.True(t, ValidPayoutPeriod("2026-08-B"))
	assert.False(t, ValidPayoutPeriod("2026-08-C"))
	assert.False(t, ValidPayoutPeriod("2026-8-A"))
	assert.False(t, ValidPayoutPeriod("2026-08"))
	assert.False(t, ValidPayoutPeriod("2026-08-a"))
	// format only: an impossible month still passes
	assert.True(t, ValidPayoutPeriod("2026-13-A"))
}

func TestYearName(t *testing.T) {
	assert.Equal(t, "Freshman", YearName(1))
	assert.Equal(t, "Senior", YearName(4))
	assert.Equal(t, "Year 7", YearName(7))
}
