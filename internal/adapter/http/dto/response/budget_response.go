package response

import (
	"delta33_backoffice/internal/domain/entities"
)

type BudgetItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

type BudgetResponse struct {
	ID            string               `json:"id"`
	AppointmentID string               `json:"appointmentId"`
	ClientName    string               `json:"clientName"`
	Items         []BudgetItemResponse `json:"items"`
	Total         float64              `json:"total"`
	Date          string               `json:"date"`
	Terms         string               `json:"terms"`
}

// BudgetPreviewResponse carries the live total for an unsaved quote form.
type BudgetPreviewResponse struct {
	Total float64 `json:"total"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BudgetItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return BudgetResponse{
		ID:            b.ID,
		AppointmentID: b.AppointmentID,
		ClientName:    b.ClientName,
		Items:         items,
		Total:         b.Total,
		Date:          b.Date,
		Terms:         b.Terms,
	}
}

func FromBudgets(list []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBudget(b))
	}
	return out
}
