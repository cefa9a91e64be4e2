package entity

import (
	"time"

	"github.com/registrarhq/registrar/internal/domain/enum"
)

// Admin is an operator account for the administrative portal. Recovery runs
// through three security questions answered case-insensitively.
type Admin struct {
	ID                string            `json:"id"`
	Username          string            `json:"username"`
	PasswordHash      string            `json:"password_hash"`
	SecurityQuestions map[string]string `json:"security_questions"` // question -> expected answer
	CreatedAt         time.Time         `json:"created_at"`
}

// UserAccount is a portal login for a student, teacher, or parent, keyed by
// the profile ID it wraps
type UserAccount struct {
	UserID       string    `json:"user_id"`
	Role         enum.Role `json:"role"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Evaluation is a student's anonymous rating of a teacher
type Evaluation struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	TeacherID string    `json:"teacher_id"`
	Rating    int       `json:"rating"` // 1 to 5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
