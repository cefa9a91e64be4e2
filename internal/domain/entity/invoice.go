package entity

import (
	"time"

	"github.com/registrarhq/registrar/internal/domain/enum"
)

// Invoice is a fee charge issued to a student. Amount and breakdown are fixed
// at creation from the fee structure in force at that moment; later structure
// edits never touch an already-issued invoice.
type Invoice struct {
	ID          string             `gorm:"size:32;primary_key" json:"id"`
	StudentID   string             `gorm:"size:32;not null;index" json:"student_id"`
	CourseCode  string             `gorm:"size:16;index" json:"course_code"`
	Year        int                `gorm:"index" json:"year"`
	Amount      float64            `gorm:"not null" json:"amount"`
	Breakdown   map[string]float64 `gorm:"serializer:json" json:"breakdown"`
	DueDate     string             `gorm:"size:16" json:"due_date"`
	IssuedDate  string             `gorm:"size:16" json:"issued_date"`
	Status      enum.InvoiceStatus `gorm:"size:16;default:pending" json:"status"`
	PaymentDate *string            `gorm:"size:16" json:"payment_date,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// Payment is a confirmed payment applied against an invoice
type Payment struct {
	ID        string    `gorm:"size:32;primary_key" json:"id"`
	InvoiceID string    `gorm:"size:32;not null;index" json:"invoice_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Date      string    `gorm:"size:16" json:"date"`
	Status    string    `gorm:"size:16;default:confirmed" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
