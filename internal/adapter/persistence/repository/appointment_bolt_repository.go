package repository

import (
	"context"

	"delta33_backoffice/internal/domain/entities"
	"delta33_backoffice/internal/usecase/interfaces"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// AppointmentBoltRepository persists the appointment book in the local
// archive: the full sequence serialized as one JSON array under the
// "appointments" key. Append-only, insertion order preserved.

type AppointmentBoltRepository struct {
	db  *bolt.DB
	log *zap.Logger
}

var _ interfaces.IAppointmentRepository = (*AppointmentBoltRepository)(nil)

func NewAppointmentBoltRepository(db *bolt.DB, log *zap.Logger) *AppointmentBoltRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &AppointmentBoltRepository{db: db, log: log}
}

func (r *AppointmentBoltRepository) Append(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
	if err := appendRecord(r.db, keyAppointments, a, r.log); err != nil {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentBoltRepository) List(_ context.Context) ([]entities.Appointment, error) {
	return loadList[entities.Appointment](r.db, keyAppointments, r.log)
}

func (r *AppointmentBoltRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	list, err := r.List(ctx)
	if err != nil {
		return entities.Appointment{}, err
	}
	for _, a := range list {
		if a.ID == id {
			return a, nil
		}
	}
	return entities.Appointment{}, nil
}

func (r *AppointmentBoltRepository) ReplaceAll(_ context.Context, records []entities.Appointment) error {
	return storeList(r.db, keyAppointments, records)
}
