package repository

import (
	"context"

	"delta33_backoffice/internal/domain/entities"
	"delta33_backoffice/internal/usecase/interfaces"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// BudgetBoltRepository persists generated quotes under the "budgets" key.

type BudgetBoltRepository struct {
	db  *bolt.DB
	log *zap.Logger
}

var _ interfaces.IBudgetRepository = (*BudgetBoltRepository)(nil)

func NewBudgetBoltRepository(db *bolt.DB, log *zap.Logger) *BudgetBoltRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &BudgetBoltRepository{db: db, log: log}
}

func (r *BudgetBoltRepository) Append(_ context.Context, b entities.Budget) (entities.Budget, error) {
	if err := appendRecord(r.db, keyBudgets, b, r.log); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetBoltRepository) List(_ context.Context) ([]entities.Budget, error) {
	return loadList[entities.Budget](r.db, keyBudgets, r.log)
}

func (r *BudgetBoltRepository) ReplaceAll(_ context.Context, records []entities.Budget) error {
	return storeList(r.db, keyBudgets, records)
}
