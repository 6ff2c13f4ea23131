package repository

import (
	"context"

	"delta33_backoffice/internal/domain/entities"
	"delta33_backoffice/internal/usecase/interfaces"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// TraceBoltRepository persists agreement traces under the "traces" key.

type TraceBoltRepository struct {
	db  *bolt.DB
	log *zap.Logger
}

var _ interfaces.ITraceRepository = (*TraceBoltRepository)(nil)

func NewTraceBoltRepository(db *bolt.DB, log *zap.Logger) *TraceBoltRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &TraceBoltRepository{db: db, log: log}
}

func (r *TraceBoltRepository) Append(_ context.Context, t entities.AgreementTrace) (entities.AgreementTrace, error) {
	if err := appendRecord(r.db, keyTraces, t, r.log); err != nil {
		return entities.AgreementTrace{}, err
	}
	return t, nil
}

func (r *TraceBoltRepository) List(_ context.Context) ([]entities.AgreementTrace, error) {
	return loadList[entities.AgreementTrace](r.db, keyTraces, r.log)
}

func (r *TraceBoltRepository) ReplaceAll(_ context.Context, records []entities.AgreementTrace) error {
	return storeList(r.db, keyTraces, records)
}
