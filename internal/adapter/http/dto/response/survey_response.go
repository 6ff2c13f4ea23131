package response

import (
	"delta33_backoffice/internal/domain/entities"
)

type SurveyResponseBody struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointmentId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	Date          string `json:"date"`
}

func FromSurvey(s entities.SurveyResponse) SurveyResponseBody {
	return SurveyResponseBody{
		ID:            s.ID,
		AppointmentID: s.AppointmentID,
		Rating:        s.Rating,
		Comment:       s.Comment,
		Date:          s.Date,
	}
}

func FromSurveys(list []entities.SurveyResponse) []SurveyResponseBody {
	out := make([]SurveyResponseBody, 0, len(list))
	for _, s := range list {
		out = append(out, FromSurvey(s))
	}
	return out
}
