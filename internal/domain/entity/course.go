package entity

import "strconv"

// Course is a degree program offering year-level sections
type Course struct {
	Code        string                      `json:"code"`
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Years       map[string]map[string]*Section `json:"years"` // year -> section number -> section
}

// Section is one class section within a course year: its curriculum subjects,
// enrolled student IDs, and weekly room schedules
type Section struct {
	Subjects  []string   `json:"subjects"`
	Students  []string   `json:"students"`
	Schedules []Schedule `json:"schedules"`
}

// SectionKey formats the COURSE-YEAR identifier used by fee structures
func SectionKey(courseCode string, year int) string {
	return courseCode + "-" + strconv.Itoa(year)
}

// Section returns the section for the given year and number, or nil
func (c *Course) Section(year, sectionNum int) *Section {
	sections, ok := c.Years[strconv.Itoa(year)]
	if !ok {
		return nil
	}
	return sections[strconv.Itoa(sectionNum)]
}

// HasSubject reports whether the subject is already in the section curriculum
func (s *Section) HasSubject(subject string) bool {
	for _, sub := range s.Subjects {
		if sub == subject {
			return true
		}
	}
	return false
}
