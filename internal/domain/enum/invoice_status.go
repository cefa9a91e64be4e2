package enum

// InvoiceStatus represents the lifecycle state of an issued invoice.
// There is no partially-paid state; a partial payment leaves the invoice
// pending and the remaining balance is derived from recorded payments.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// Valid reports whether the status is recognized
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoicePending, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}
