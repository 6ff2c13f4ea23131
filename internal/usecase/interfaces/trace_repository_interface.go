package interfaces

import (
	"context"

	"delta33_backoffice/internal/domain/entities"
)

//go:generate mockgen -source=trace_repository_interface.go -destination=mocks/mock_trace_repository.go -package=mock_interfaces

// ITraceRepository is the append-only record store for agreement traces.
type ITraceRepository interface {
	Append(ctx context.Context, t entities.AgreementTrace) (entities.AgreementTrace, error)
	List(ctx context.Context) ([]entities.AgreementTrace, error)
	ReplaceAll(ctx context.Context, records []entities.AgreementTrace) error
}
