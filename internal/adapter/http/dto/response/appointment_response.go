package response

import (
	"delta33_backoffice/internal/domain/entities"
)

type AppointmentResponse struct {
	ID          string `json:"id"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ServiceType string `json:"serviceType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	CreatedAt   int64  `json:"createdAt"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ClientEmail: a.ClientEmail,
		ServiceType: a.ServiceType,
		Date:        a.Date,
		Time:        a.Time,
		Status:      string(a.Status),
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
	}
}

func FromAppointments(list []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAppointment(a))
	}
	return out
}
