package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"delta33_backoffice/internal/domain/entities"
	mock_interfaces "delta33_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestArchiveUseCase_Export(t *testing.T) {
	t.Run("empty stores export as empty arrays", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		appointmentRepo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		traceRepo := mock_interfaces.NewMockITraceRepository(ctrl)
		surveyRepo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := NewArchiveUseCase(appointmentRepo, budgetRepo, traceRepo, surveyRepo)

		appointmentRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
		budgetRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
		traceRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
		surveyRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

		archive, err := uc.Export(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		raw, err := json.Marshal(archive)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		want := `{"appointments":[],"budgets":[],"traces":[],"surveys":[]}`
		if string(raw) != want {
			t.Fatalf("expected %s, got %s", want, raw)
		}
	})

	t.Run("records come out in store order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		appointmentRepo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		traceRepo := mock_interfaces.NewMockITraceRepository(ctrl)
		surveyRepo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := NewArchiveUseCase(appointmentRepo, budgetRepo, traceRepo, surveyRepo)

		appointmentRepo.EXPECT().List(gomock.Any()).Return([]entities.Appointment{{ID: "a1"}, {ID: "a2"}}, nil)
		budgetRepo.EXPECT().List(gomock.Any()).Return([]entities.Budget{{ID: "PRE-AAAAAA"}}, nil)
		traceRepo.EXPECT().List(gomock.Any()).Return([]entities.AgreementTrace{{ID: "t1"}}, nil)
		surveyRepo.EXPECT().List(gomock.Any()).Return([]entities.SurveyResponse{{ID: "s1"}}, nil)

		archive, err := uc.Export(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(archive.Appointments) != 2 || archive.Appointments[0].ID != "a1" || archive.Appointments[1].ID != "a2" {
			t.Fatalf("unexpected appointments: %+v", archive.Appointments)
		}
		if len(archive.Budgets) != 1 || len(archive.Traces) != 1 || len(archive.Surveys) != 1 {
			t.Fatalf("unexpected archive: %+v", archive)
		}
	})
}

func TestArchiveUseCase_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	appointmentRepo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
	traceRepo := mock_interfaces.NewMockITraceRepository(ctrl)
	surveyRepo := mock_interfaces.NewMockISurveyRepository(ctrl)
	uc := NewArchiveUseCase(appointmentRepo, budgetRepo, traceRepo, surveyRepo)

	archive := entities.Archive{
		Appointments: []entities.Appointment{{ID: "a1"}},
		Budgets:      []entities.Budget{{ID: "PRE-AAAAAA"}},
		Traces:       []entities.AgreementTrace{{ID: "t1"}},
		Surveys:      []entities.SurveyResponse{{ID: "s1"}},
	}

	appointmentRepo.EXPECT().ReplaceAll(gomock.Any(), archive.Appointments).Return(nil)
	budgetRepo.EXPECT().ReplaceAll(gomock.Any(), archive.Budgets).Return(nil)
	traceRepo.EXPECT().ReplaceAll(gomock.Any(), archive.Traces).Return(nil)
	surveyRepo.EXPECT().ReplaceAll(gomock.Any(), archive.Surveys).Return(nil)

	if err := uc.Restore(context.Background(), archive); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestArchiveUseCase_FileName(t *testing.T) {
	uc := NewArchiveUseCase(nil, nil, nil, nil)
	now := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	if got := uc.FileName(now); got != "delta33_archive_2026-08-31.json" {
		t.Fatalf("unexpected file name: %q", got)
	}
}
