package request

// ScheduleAppointmentRequest is the payload for both staff scheduling and
// guest submissions. Status is optional; new appointments default to
// pending, and guest submissions always start pending regardless of what
// the payload says.
type ScheduleAppointmentRequest struct {
	ClientName  string `json:"clientName" binding:"required"`
	ClientEmail string `json:"clientEmail" binding:"omitempty,email"`
	ServiceType string `json:"serviceType" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
	Status      string `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
}
