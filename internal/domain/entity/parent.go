package entity

import "time"

// Parent is a guardian account linked to one or more students
type Parent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	StudentIDs   []string  `json:"student_ids"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasStudent reports whether the student is already linked to this parent
func (p *Parent) HasStudent(studentID string) bool {
	for _, id := range p.StudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// Notification is a message delivered to a parent's inbox
type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Category    string    `json:"category"` // grades, attendance, fees, event, holiday, general
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}
