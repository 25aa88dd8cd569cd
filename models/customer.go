// models/customer.go
package models

// Customer is one active stay, owned exclusively by the occupied room.
// It is created at check-in and discarded at check-out. The date fields
// are kept as free text, matching the form input they come from.
type Customer struct {
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Phone          string  `json:"phone"`
	FromDate       string  `json:"from_date"`
	ToDate         string  `json:"to_date"`
	PaymentAdvance float64 `json:"payment_advance"`
	BookingID      int64   `json:"booking_id"`
}

