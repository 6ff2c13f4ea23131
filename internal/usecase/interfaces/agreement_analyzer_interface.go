package interfaces

import (
	"context"

	"delta33_backoffice/internal/domain/entities"
)

//go:generate mockgen -source=agreement_analyzer_interface.go -destination=mocks/mock_agreement_analyzer.go -package=mock_interfaces

// IAgreementAnalyzer is the external AI collaborator.
//
// Implementations report failures as errors; substituting the fixed fallback
// values is the use cases' job, so the core never branches on
// network-specific conditions. No call is ever retried.
type IAgreementAnalyzer interface {
	AnalyzeAgreement(ctx context.Context, notes string) (entities.AgreementAnalysis, error)
	FetchDailyInfo(ctx context.Context) (entities.DailyInfo, error)
}
