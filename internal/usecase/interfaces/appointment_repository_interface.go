package interfaces

import (
	"context"

	"delta33_backoffice/internal/domain/entities"
)

//go:generate mockgen -source=appointment_repository_interface.go -destination=mocks/mock_appointment_repository.go -package=mock_interfaces

// IAppointmentRepository is the append-only record store for appointments.
//
// Contract:
//   - Append preserves insertion order and never fails on domain grounds;
//     record shape validation is the caller's responsibility.
//   - GetByID returns the zero value (ID == "") when nothing matches.
//   - ReplaceAll exists only for archive restore.
type IAppointmentRepository interface {
	Append(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	List(ctx context.Context) ([]entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	ReplaceAll(ctx context.Context, records []entities.Appointment) error
}
