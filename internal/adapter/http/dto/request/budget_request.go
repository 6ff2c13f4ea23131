package request

import (
	"delta33_backoffice/internal/domain/entities"
)

type BudgetItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	UnitPrice   float64 `json:"unitPrice" binding:"gte=0"`
}

// CreateBudgetRequest is the quote-creation payload. The same shape backs
// the preview endpoint, which only computes the total without persisting
// anything.
type CreateBudgetRequest struct {
	AppointmentID string              `json:"appointmentId" binding:"required"`
	Items         []BudgetItemRequest `json:"items" binding:"required,dive"`
	Terms         string              `json:"terms"`
}

func (r CreateBudgetRequest) ToItems() []entities.BudgetItem {
	items := make([]entities.BudgetItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.BudgetItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return items
}

// ResolveTotal computes the live total for the request's line items.
func (r CreateBudgetRequest) ResolveTotal() float64 {
	return entities.BudgetTotal(r.ToItems())
}
