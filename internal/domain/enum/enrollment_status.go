package enum

// EnrollmentStatus represents a student's standing with the college
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentInactive  EnrollmentStatus = "inactive"
	EnrollmentGraduated EnrollmentStatus = "graduated"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)

// Valid reports whether the status is recognized
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentActive, EnrollmentInactive, EnrollmentGraduated, EnrollmentDropped:
		return true
	}
	return false
}

// LeaveStatus represents the state of a teacher leave request
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// Role identifies which portal an account belongs to
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
)

// Valid reports whether the role is recognized
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleTeacher, RoleParent:
		return true
	}
	return false
}
