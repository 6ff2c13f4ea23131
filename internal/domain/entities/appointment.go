package entities

// AppointmentStatus represents the lifecycle of a scheduled engagement.
//
// Domain notes:
//   - Transitions are externally triggered (staff decisions); the service
//     defines no automatic state machine over these values.
//   - Appointments are append-only: never updated in place, never deleted.

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is a scheduled service engagement.
//
// Storage model (archive):
//   - persisted as one JSON array under the "appointments" key.
//   - JSON field names are the archive's externally observable format
//     (camelCase), shared by the export document.
//
// CreatedAt is epoch milliseconds.
type Appointment struct {
	ID          string            `json:"id"`
	ClientName  string            `json:"clientName"`
	ClientEmail string            `json:"clientEmail"`
	ServiceType string            `json:"serviceType"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes"`
	CreatedAt   int64             `json:"createdAt"`
}
