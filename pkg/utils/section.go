package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var payoutPeriodRe = regexp.MustCompile(`^\d{4}-\d{2}-[AB]$`)

// ValidSection reports whether a section identifier is in COURSE-YEAR-SECTION
// form with an alphanumeric course code, year 1-4, and a numeric section.
func ValidSection(section string) bool {
	parts := strings.Split(section, "-")
	if len(parts) != 3 {
		return false
	}

	course, yearStr, num := parts[0], parts[1], parts[2]
	if course == "" || !isAlnum(course) {
		return false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 || year > 4 {
		return false
	}

	if _, err := strconv.Atoi(num); err != nil {
		return false
	}
	return true
}

// SectionCourseYear splits COURSE-YEAR-SECTION into its course code and year
func SectionCourseYear(section string) (string, int, bool) {
	if !ValidSection(section) {
		return "", 0, false
	}
	parts := strings.Split(section, "-")
	year, _ := strconv.Atoi(parts[1])
	return parts[0], year, true
}

// ValidPayoutPeriod reports whether a payout period is in YYYY-MM-A or
// YYYY-MM-B form. Only the format is checked, not calendar correctness.
func ValidPayoutPeriod(period string) bool {
	return payoutPeriodRe.MatchString(period)
}

// YearName returns the display name of a course year
func YearName(year int) string {
	switch year {
	case 1:
		return "Freshman"
	case 2:
		return "Sophomore"
	case 3:
		return "Junior"
	case 4:
		return "Senior"
	}
	return fmt.Sprintf("Year %d", year)
}

func isAlnum(s string) bool {
	for _, c := range s {
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
