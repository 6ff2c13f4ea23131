package response

import (
	"delta33_backoffice/internal/usecase"
)

type DoomsdayResponse struct {
	Hours int `json:"hours"`
	Mins  int `json:"mins"`
	Secs  int `json:"secs"`
}

// DashboardStatsResponse mirrors usecase.DashboardStats. AverageRating is
// null when no surveys exist ("not applicable"), never zero-by-division.
type DashboardStatsResponse struct {
	TotalRevenue     float64          `json:"totalRevenue"`
	AppointmentCount int              `json:"appointmentCount"`
	SurveyCount      int              `json:"surveyCount"`
	AverageRating    *float64         `json:"averageRating"`
	StatusBreakdown  map[string]int   `json:"statusBreakdown"`
	Doomsday         DoomsdayResponse `json:"doomsday"`
}

func FromDashboardStats(s usecase.DashboardStats) DashboardStatsResponse {
	var avg *float64
	if s.RatingApplicable {
		v := s.AverageRating
		avg = &v
	}

	breakdown := make(map[string]int, len(s.StatusBreakdown))
	for status, count := range s.StatusBreakdown {
		breakdown[string(status)] = count
	}

	return DashboardStatsResponse{
		TotalRevenue:     s.TotalRevenue,
		AppointmentCount: s.AppointmentCount,
		SurveyCount:      s.SurveyCount,
		AverageRating:    avg,
		StatusBreakdown:  breakdown,
		Doomsday: DoomsdayResponse{
			Hours: s.Doomsday.Hours,
			Mins:  s.Doomsday.Mins,
			Secs:  s.Doomsday.Secs,
		},
	}
}
