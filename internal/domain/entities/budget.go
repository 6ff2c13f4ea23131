package entities

// Budget is a generated quote tied to one appointment.
//
// Invariants:
//   - Total equals BudgetTotal(Items) at the moment of creation.
//   - Budgets are immutable once appended; Total is frozen and never
//     recomputed afterwards.
//   - AppointmentID is a soft reference; the appointment is validated at
//     creation time only.
//
// ClientName is denormalized from the appointment at creation and is not
// kept in sync afterwards.
type Budget struct {
	ID            string       `json:"id"`
	AppointmentID string       `json:"appointmentId"`
	ClientName    string       `json:"clientName"`
	Items         []BudgetItem `json:"items"`
	Total         float64      `json:"total"`
	Date          string       `json:"date"`
	Terms         string       `json:"terms"`
}

// BudgetItem is one line within a Budget. It has no existence outside its
// parent; its ID is unique within the parent only.
type BudgetItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// BudgetTotal computes the quote total as the sum of quantity x unit price
// over the line items. Plain float64 summation; an empty sequence yields 0.
func BudgetTotal(items []BudgetItem) float64 {
	total := 0.0
	for _, it := range items {
		total += float64(it.Quantity) * it.UnitPrice
	}
	return total
}
