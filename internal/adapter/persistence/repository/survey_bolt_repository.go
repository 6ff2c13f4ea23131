package repository

import (
	"context"

	"delta33_backoffice/internal/domain/entities"
	"delta33_backoffice/internal/usecase/interfaces"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// SurveyBoltRepository persists survey responses under the "surveys" key.

type SurveyBoltRepository struct {
	db  *bolt.DB
	log *zap.Logger
}

var _ interfaces.ISurveyRepository = (*SurveyBoltRepository)(nil)

func NewSurveyBoltRepository(db *bolt.DB, log *zap.Logger) *SurveyBoltRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &SurveyBoltRepository{db: db, log: log}
}

func (r *SurveyBoltRepository) Append(_ context.Context, s entities.SurveyResponse) (entities.SurveyResponse, error) {
	if err := appendRecord(r.db, keySurveys, s, r.log); err != nil {
		return entities.SurveyResponse{}, err
	}
	return s, nil
}

func (r *SurveyBoltRepository) List(_ context.Context) ([]entities.SurveyResponse, error) {
	return loadList[entities.SurveyResponse](r.db, keySurveys, r.log)
}

func (r *SurveyBoltRepository) GetByAppointmentID(ctx context.Context, appointmentID string) (entities.SurveyResponse, error) {
	list, err := r.List(ctx)
	if err != nil {
		return entities.SurveyResponse{}, err
	}
	for _, s := range list {
		if s.AppointmentID == appointmentID {
			return s, nil
		}
	}
	return entities.SurveyResponse{}, nil
}

func (r *SurveyBoltRepository) ReplaceAll(_ context.Context, records []entities.SurveyResponse) error {
	return storeList(r.db, keySurveys, records)
}
