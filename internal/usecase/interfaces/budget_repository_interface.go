package interfaces

import (
	"context"

	"delta33_backoffice/internal/domain/entities"
)

//go:generate mockgen -source=budget_repository_interface.go -destination=mocks/mock_budget_repository.go -package=mock_interfaces

// IBudgetRepository is the append-only record store for budgets.
type IBudgetRepository interface {
	Append(ctx context.Context, b entities.Budget) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
	ReplaceAll(ctx context.Context, records []entities.Budget) error
}
