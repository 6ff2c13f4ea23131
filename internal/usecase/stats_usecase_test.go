package usecase

import (
	"context"
	"testing"
	"time"

	"delta33_backoffice/internal/domain/entities"
	mock_interfaces "delta33_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTotalRevenue(t *testing.T) {
	if got := TotalRevenue(nil); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}

	budgets := []entities.Budget{
		{Total: 1500},
		{Total: 2500.5},
	}
	if got := TotalRevenue(budgets); got != 4000.5 {
		t.Fatalf("expected 4000.5, got %v", got)
	}
}

func TestAverageRating(t *testing.T) {
	t.Run("no surveys means not applicable", func(t *testing.T) {
		avg, ok := AverageRating(nil)
		if ok {
			t.Fatal("expected not applicable")
		}
		if avg != 0 {
			t.Fatalf("expected 0, got %v", avg)
		}
	})

	t.Run("mean of ratings", func(t *testing.T) {
		surveys := []entities.SurveyResponse{
			{Rating: 5},
			{Rating: 4},
			{Rating: 3},
		}
		avg, ok := AverageRating(surveys)
		if !ok {
			t.Fatal("expected applicable")
		}
		if avg != 4 {
			t.Fatalf("expected 4, got %v", avg)
		}
	})
}

func TestStatusHistogram(t *testing.T) {
	appointments := []entities.Appointment{
		{Status: entities.AppointmentStatusPending},
		{Status: entities.AppointmentStatusPending},
		{Status: entities.AppointmentStatusPending},
		{Status: entities.AppointmentStatusConfirmed},
		{Status: entities.AppointmentStatusConfirmed},
		{Status: entities.AppointmentStatusCompleted},
		{Status: entities.AppointmentStatusCancelled},
	}

	hist := StatusHistogram(appointments)

	if hist[entities.AppointmentStatusPending] != 3 {
		t.Fatalf("expected 3 pending, got %d", hist[entities.AppointmentStatusPending])
	}
	if hist[entities.AppointmentStatusConfirmed] != 2 {
		t.Fatalf("expected 2 confirmed, got %d", hist[entities.AppointmentStatusConfirmed])
	}
	if hist[entities.AppointmentStatusCompleted] != 1 {
		t.Fatalf("expected 1 completed, got %d", hist[entities.AppointmentStatusCompleted])
	}
	if _, ok := hist[entities.AppointmentStatusCancelled]; ok {
		t.Fatal("cancelled must not appear in the breakdown")
	}
}

func TestStatusHistogram_EmptyKeepsBuckets(t *testing.T) {
	hist := StatusHistogram(nil)
	if len(hist) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(hist))
	}
	for status, count := range hist {
		if count != 0 {
			t.Fatalf("expected 0 for %q, got %d", status, count)
		}
	}
}

func TestDoomsday(t *testing.T) {
	now := time.Date(2026, 8, 31, 21, 30, 15, 0, time.UTC)
	d := Doomsday(now)
	if d.Hours != 2 || d.Mins != 29 || d.Secs != 45 {
		t.Fatalf("expected 2h29m45s, got %+v", d)
	}

	almostMidnight := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	d = Doomsday(almostMidnight)
	if d.Hours != 0 || d.Mins != 0 || d.Secs != 1 {
		t.Fatalf("expected 0h0m1s, got %+v", d)
	}
}

func TestStatsUseCase_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	appointmentRepo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
	surveyRepo := mock_interfaces.NewMockISurveyRepository(ctrl)
	uc := NewStatsUseCase(appointmentRepo, budgetRepo, surveyRepo)

	appointmentRepo.EXPECT().List(gomock.Any()).Return([]entities.Appointment{
		{Status: entities.AppointmentStatusPending},
		{Status: entities.AppointmentStatusCompleted},
	}, nil)
	budgetRepo.EXPECT().List(gomock.Any()).Return([]entities.Budget{{Total: 3000}}, nil)
	surveyRepo.EXPECT().List(gomock.Any()).Return([]entities.SurveyResponse{{Rating: 4}, {Rating: 5}}, nil)

	stats, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalRevenue != 3000 {
		t.Fatalf("expected revenue 3000, got %v", stats.TotalRevenue)
	}
	if stats.AppointmentCount != 2 || stats.SurveyCount != 2 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if !stats.RatingApplicable || stats.AverageRating != 4.5 {
		t.Fatalf("expected average 4.5, got %+v", stats)
	}
	if stats.StatusBreakdown[entities.AppointmentStatusPending] != 1 {
		t.Fatalf("unexpected breakdown: %+v", stats.StatusBreakdown)
	}
}

func TestStatsUseCase_Dashboard_NoSurveys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	appointmentRepo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
	surveyRepo := mock_interfaces.NewMockISurveyRepository(ctrl)
	uc := NewStatsUseCase(appointmentRepo, budgetRepo, surveyRepo)

	appointmentRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
	budgetRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
	surveyRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

	stats, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.RatingApplicable {
		t.Fatal("expected rating not applicable with no surveys")
	}
}
