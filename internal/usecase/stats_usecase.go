package usecase

import (
	"context"
	"time"

	"delta33_backoffice/internal/domain/entities"
	"delta33_backoffice/internal/usecase/interfaces"
)

// DashboardStats is the derived dashboard aggregate, recomputed from the
// current store contents on every request. AverageRating is only meaningful
// when RatingApplicable is true (no surveys means "not applicable", not 0).
type DashboardStats struct {
	TotalRevenue     float64
	AppointmentCount int
	SurveyCount      int
	AverageRating    float64
	RatingApplicable bool
	StatusBreakdown  map[entities.AppointmentStatus]int
	Doomsday         DoomsdayCountdown
}

// DoomsdayCountdown is the remaining time to local midnight. Display-only;
// it carries no business meaning.
type DoomsdayCountdown struct {
	Hours int
	Mins  int
	Secs  int
}

type IStatsUseCase interface {
	Dashboard(ctx context.Context) (DashboardStats, error)
}

type StatsUseCase struct {
	appointmentRepo interfaces.IAppointmentRepository
	budgetRepo      interfaces.IBudgetRepository
	surveyRepo      interfaces.ISurveyRepository
}

var _ IStatsUseCase = (*StatsUseCase)(nil)

func NewStatsUseCase(
	appointmentRepo interfaces.IAppointmentRepository,
	budgetRepo interfaces.IBudgetRepository,
	surveyRepo interfaces.ISurveyRepository,
) *StatsUseCase {
	return &StatsUseCase{
		appointmentRepo: appointmentRepo,
		budgetRepo:      budgetRepo,
		surveyRepo:      surveyRepo,
	}
}

func (u *StatsUseCase) Dashboard(ctx context.Context) (DashboardStats, error) {
	appointments, err := u.appointmentRepo.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	budgets, err := u.budgetRepo.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	surveys, err := u.surveyRepo.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	avg, ok := AverageRating(surveys)
	return DashboardStats{
		TotalRevenue:     TotalRevenue(budgets),
		AppointmentCount: len(appointments),
		SurveyCount:      len(surveys),
		AverageRating:    avg,
		RatingApplicable: ok,
		StatusBreakdown:  StatusHistogram(appointments),
		Doomsday:         Doomsday(time.Now()),
	}, nil
}

// TotalRevenue sums the frozen totals across all budgets.
func TotalRevenue(budgets []entities.Budget) float64 {
	total := 0.0
	for _, b := range budgets {
		total += b.Total
	}
	return total
}

// AverageRating returns the arithmetic mean of the survey ratings. The
// second result is false for an empty sequence: "not applicable" rather than
// a divide-by-zero artifact.
func AverageRating(surveys []entities.SurveyResponse) (float64, bool) {
	if len(surveys) == 0 {
		return 0, false
	}
	sum := 0
	for _, s := range surveys {
		sum += s.Rating
	}
	return float64(sum) / float64(len(surveys)), true
}

// StatusHistogram counts appointments per status over {pending, confirmed,
// completed}. Cancelled appointments are excluded from this breakdown on
// purpose; they are never folded into another bucket.
func StatusHistogram(appointments []entities.Appointment) map[entities.AppointmentStatus]int {
	hist := map[entities.AppointmentStatus]int{
		entities.AppointmentStatusPending:   0,
		entities.AppointmentStatusConfirmed: 0,
		entities.AppointmentStatusCompleted: 0,
	}
	for _, a := range appointments {
		if _, ok := hist[a.Status]; ok {
			hist[a.Status]++
		}
	}
	return hist
}

// Doomsday computes the countdown to the next local midnight.
func Doomsday(now time.Time) DoomsdayCountdown {
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	diff := midnight.Sub(now)
	return DoomsdayCountdown{
		Hours: int(diff.Hours()),
		Mins:  int(diff.Minutes()) % 60,
		Secs:  int(diff.Seconds()) % 60,
	}
}
