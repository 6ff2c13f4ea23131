package interfaces

import (
	"context"

	"delta33_backoffice/internal/domain/entities"
)

//go:generate mockgen -source=survey_repository_interface.go -destination=mocks/mock_survey_repository.go -package=mock_interfaces

// ISurveyRepository is the append-only record store for survey responses.
//
// GetByAppointmentID returns the zero value (ID == "") when the appointment
// has no survey yet; it backs the one-survey-per-appointment rule.
type ISurveyRepository interface {
	Append(ctx context.Context, s entities.SurveyResponse) (entities.SurveyResponse, error)
	List(ctx context.Context) ([]entities.SurveyResponse, error)
	GetByAppointmentID(ctx context.Context, appointmentID string) (entities.SurveyResponse, error)
	ReplaceAll(ctx context.Context, records []entities.SurveyResponse) error
}
