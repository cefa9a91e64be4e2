package entity

import (
	"time"

	"github.com/registrarhq/registrar/internal/domain/enum"
)

// Teacher represents a faculty member, their assignments and weekly schedules
type Teacher struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Email          string                `json:"email"`
	Phone          string                `json:"phone"`
	Qualifications []string              `json:"qualifications"`
	SubjectsTaught []string              `json:"subjects_taught"`
	Sections       []string              `json:"sections"` // COURSE-YEAR-SECTION assignments
	Schedules      map[string][]Schedule `json:"schedules"` // section -> schedule entries
	LeaveRequests  []LeaveRequest        `json:"leave_requests"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// Schedule is one weekly class slot. Times are HH:MM in 24-hour format.
type Schedule struct {
	Subject   string `json:"subject"`
	Day       string `json:"day"` // Monday through Saturday
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Room      string `json:"room"`
}

// LeaveRequest is a teacher's request for leave over a date range
type LeaveRequest struct {
	DateFrom string           `json:"date_from"`
	DateTo   string           `json:"date_to"`
	Reason   string           `json:"reason"`
	Status   enum.LeaveStatus `json:"status"`
}

// OverlapsWith reports whether two schedule slots collide on the same day
func (s Schedule) OverlapsWith(other Schedule) bool {
	if s.Day != other.Day {
		return false
	}
	selfStart, ok1 := parseMinutes(s.StartTime)
	selfEnd, ok2 := parseMinutes(s.EndTime)
	otherStart, ok3 := parseMinutes(other.StartTime)
	otherEnd, ok4 := parseMinutes(other.EndTime)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return !(selfEnd <= otherStart || selfStart >= otherEnd)
}

func parseMinutes(hhmm string) (int, bool) {
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return 0, false
	}
	h := int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	m := int(hhmm[3]-'0')*10 + int(hhmm[4]-'0')
	for _, c := range hhmm {
		if c != ':' && (c < '0' || c > '9') {
			return 0, false
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// HasSubject reports whether the teacher already teaches the subject
func (t *Teacher) HasSubject(subject string) bool {
	for _, s := range t.SubjectsTaught {
		if s == subject {
			return true
		}
	}
	return false
}

// HasSection reports whether the teacher is assigned to the section
func (t *Teacher) HasSection(section string) bool {
	for _, s := range t.Sections {
		if s == section {
			return true
		}
	}
	return false
}
