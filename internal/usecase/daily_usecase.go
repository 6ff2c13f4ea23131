package usecase

import (
	"context"

	"delta33_backoffice/internal/domain/entities"
	"delta33_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// fallbackDailyInfo is served whenever the collaborator fails, so the daily
// view never hangs on a loading state.
func fallbackDailyInfo() entities.DailyInfo {
	return entities.DailyInfo{
		Evangelio:  "Cargando sabiduría...",
		Efemerides: []string{"Hoy es un gran día para servir."},
		Santoral:   "Varios",
	}
}

// IDailyUseCase serves the daily informational payload. It never fails:
// collaborator errors degrade to the static fallback.

type IDailyUseCase interface {
	Today(ctx context.Context) entities.DailyInfo
}

type DailyUseCase struct {
	analyzer interfaces.IAgreementAnalyzer
	log      *zap.Logger
}

var _ IDailyUseCase = (*DailyUseCase)(nil)

func NewDailyUseCase(analyzer interfaces.IAgreementAnalyzer, log *zap.Logger) *DailyUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DailyUseCase{analyzer: analyzer, log: log}
}

func (u *DailyUseCase) Today(ctx context.Context) entities.DailyInfo {
	if u.analyzer == nil {
		u.log.Warn("daily info collaborator not configured, using fallback")
		return fallbackDailyInfo()
	}

	info, err := u.analyzer.FetchDailyInfo(ctx)
	if err != nil {
		u.log.Warn("daily info fetch failed, using fallback", zap.Error(err))
		return fallbackDailyInfo()
	}
	return info
}
