package usecase

import (
	"context"
	"errors"
	"testing"

	"delta33_backoffice/internal/domain/entities"
	mock_interfaces "delta33_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTraceUseCase_Log(t *testing.T) {
	t.Run("empty content", func(t *testing.T) {
		uc := NewTraceUseCase(nil, nil, nil)
		_, err := uc.Log(context.Background(), "cli-1", "   ", entities.TraceSourceMeeting)
		if !errors.Is(err, ErrEmptyTraceContent) {
			t.Fatalf("expected ErrEmptyTraceContent, got %v", err)
		}
	})

	t.Run("invalid source", func(t *testing.T) {
		uc := NewTraceUseCase(nil, nil, nil)
		_, err := uc.Log(context.Background(), "cli-1", "acordamos el precio", "fax")
		if !errors.Is(err, ErrInvalidTraceSource) {
			t.Fatalf("expected ErrInvalidTraceSource, got %v", err)
		}
	})

	t.Run("analyzer success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITraceRepository(ctrl)
		analyzer := mock_interfaces.NewMockIAgreementAnalyzer(ctrl)
		uc := NewTraceUseCase(repo, analyzer, nil)

		analyzer.EXPECT().AnalyzeAgreement(gomock.Any(), "acordamos dos visitas").
			Return(entities.AgreementAnalysis{Summary: "Dos visitas acordadas"}, nil)
		repo.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.AgreementTrace{})).DoAndReturn(
			func(_ context.Context, tr entities.AgreementTrace) (entities.AgreementTrace, error) {
				if tr.Summary != "Dos visitas acordadas" {
					t.Fatalf("unexpected summary: %q", tr.Summary)
				}
				if tr.Content != "acordamos dos visitas" {
					t.Fatalf("content must stay verbatim, got %q", tr.Content)
				}
				if tr.ID == "" || tr.Date == "" {
					t.Fatalf("expected id and date, got %+v", tr)
				}
				return tr, nil
			},
		)

		tr, err := uc.Log(context.Background(), "cli-1", "acordamos dos visitas", entities.TraceSourceMeeting)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tr.Source != entities.TraceSourceMeeting {
			t.Fatalf("unexpected source: %q", tr.Source)
		}
	})

	t.Run("analyzer failure falls back, trace still lands", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITraceRepository(ctrl)
		analyzer := mock_interfaces.NewMockIAgreementAnalyzer(ctrl)
		uc := NewTraceUseCase(repo, analyzer, nil)

		analyzer.EXPECT().AnalyzeAgreement(gomock.Any(), gomock.Any()).
			Return(entities.AgreementAnalysis{}, errors.New("quota exceeded"))
		repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.AgreementTrace) (entities.AgreementTrace, error) {
				return tr, nil
			},
		)

		tr, err := uc.Log(context.Background(), "cli-1", "se firmó el contrato", entities.TraceSourceEmail)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tr.Summary != fallbackSummary {
			t.Fatalf("expected fallback summary %q, got %q", fallbackSummary, tr.Summary)
		}
		if tr.Content != "se firmó el contrato" {
			t.Fatalf("content must stay verbatim, got %q", tr.Content)
		}
	})

	t.Run("empty analyzer summary falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITraceRepository(ctrl)
		analyzer := mock_interfaces.NewMockIAgreementAnalyzer(ctrl)
		uc := NewTraceUseCase(repo, analyzer, nil)

		analyzer.EXPECT().AnalyzeAgreement(gomock.Any(), gomock.Any()).
			Return(entities.AgreementAnalysis{Summary: "  "}, nil)
		repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.AgreementTrace) (entities.AgreementTrace, error) {
				return tr, nil
			},
		)

		tr, err := uc.Log(context.Background(), "", "llamada de seguimiento", entities.TraceSourceCall)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tr.Summary != fallbackSummary {
			t.Fatalf("expected fallback summary, got %q", tr.Summary)
		}
	})

	t.Run("nil analyzer falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITraceRepository(ctrl)
		uc := NewTraceUseCase(repo, nil, nil)

		repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.AgreementTrace) (entities.AgreementTrace, error) {
				return tr, nil
			},
		)

		tr, err := uc.Log(context.Background(), "cli-2", "presupuesto aceptado", entities.TraceSourceMeeting)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tr.Summary != fallbackSummary {
			t.Fatalf("expected fallback summary, got %q", tr.Summary)
		}
	})
}
