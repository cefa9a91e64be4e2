package enum

// AttendanceStatus represents a single attendance mark for a class day
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceTardy   AttendanceStatus = "tardy"
)

// Valid reports whether the status is one of the recognized marks
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceTardy:
		return true
	}
	return false
}

// Score converts the mark to its grading weight: present=100, tardy=50, absent=0
func (s AttendanceStatus) Score() float64 {
	switch s {
	case AttendancePresent:
		return 100
	case AttendanceTardy:
		return 50
	default:
		return 0
	}
}
