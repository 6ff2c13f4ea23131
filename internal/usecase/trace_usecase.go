package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"delta33_backoffice/internal/domain/entities"
	"delta33_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyTraceContent  = errors.New("empty trace content")
	ErrInvalidTraceSource = errors.New("invalid trace source")
)

// fallbackSummary is the fixed placeholder substituted when the analyzer is
// unavailable or returns something unusable. Traces never carry an empty
// summary.
const fallbackSummary = "Error al procesar"

func fallbackAnalysis() entities.AgreementAnalysis {
	return entities.AgreementAnalysis{Summary: fallbackSummary, KeyPoints: []string{}}
}

// ITraceUseCase logs client agreements with best-effort AI enrichment.
//
// The analyzer is awaited synchronously, but its failure never blocks the
// action: the trace is appended with the fallback summary and the raw
// content untouched. Failed calls are not retried.

type ITraceUseCase interface {
	Log(ctx context.Context, clientID, content string, source entities.TraceSource) (entities.AgreementTrace, error)
	List(ctx context.Context) ([]entities.AgreementTrace, error)
}

type TraceUseCase struct {
	repo     interfaces.ITraceRepository
	analyzer interfaces.IAgreementAnalyzer
	log      *zap.Logger
}

var _ ITraceUseCase = (*TraceUseCase)(nil)

func NewTraceUseCase(repo interfaces.ITraceRepository, analyzer interfaces.IAgreementAnalyzer, log *zap.Logger) *TraceUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &TraceUseCase{repo: repo, analyzer: analyzer, log: log}
}

func (u *TraceUseCase) Log(ctx context.Context, clientID, content string, source entities.TraceSource) (entities.AgreementTrace, error) {
	if strings.TrimSpace(content) == "" {
		return entities.AgreementTrace{}, ErrEmptyTraceContent
	}
	if !source.Valid() {
		return entities.AgreementTrace{}, ErrInvalidTraceSource
	}

	analysis := u.analyze(ctx, content)

	t := entities.AgreementTrace{
		ID:       uuid.NewString(),
		ClientID: strings.TrimSpace(clientID),
		Date:     time.Now().Format("2006-01-02"),
		Content:  content,
		Source:   source,
		Summary:  analysis.Summary,
	}
	return u.repo.Append(ctx, t)
}

func (u *TraceUseCase) List(ctx context.Context) ([]entities.AgreementTrace, error) {
	return u.repo.List(ctx)
}

func (u *TraceUseCase) analyze(ctx context.Context, content string) entities.AgreementAnalysis {
	if u.analyzer == nil {
		u.log.Warn("agreement analyzer not configured, using fallback summary")
		return fallbackAnalysis()
	}

	analysis, err := u.analyzer.AnalyzeAgreement(ctx, content)
	if err != nil {
		u.log.Warn("agreement analysis failed, using fallback summary", zap.Error(err))
		return fallbackAnalysis()
	}
	if strings.TrimSpace(analysis.Summary) == "" {
		u.log.Warn("agreement analysis returned empty summary, using fallback")
		return fallbackAnalysis()
	}
	return analysis
}
