package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"delta33_backoffice/internal/domain/entities"
	"delta33_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSurveyAppointmentID = errors.New("invalid survey appointment id")
	ErrInvalidSurveyRating        = errors.New("invalid survey rating")
	ErrSurveyAlreadyExists        = errors.New("survey already exists for this appointment")
)

// ISurveyUseCase exposes survey collection.
//
// Enforced here, uniformly for all callers: the appointment must exist, and
// at most one survey may be submitted per appointment.

type ISurveyUseCase interface {
	Submit(ctx context.Context, appointmentID string, rating int, comment string) (entities.SurveyResponse, error)
	List(ctx context.Context) ([]entities.SurveyResponse, error)
}

type SurveyUseCase struct {
	repo            interfaces.ISurveyRepository
	appointmentRepo interfaces.IAppointmentRepository
}

var _ ISurveyUseCase = (*SurveyUseCase)(nil)

func NewSurveyUseCase(repo interfaces.ISurveyRepository, appointmentRepo interfaces.IAppointmentRepository) *SurveyUseCase {
	return &SurveyUseCase{repo: repo, appointmentRepo: appointmentRepo}
}

func (u *SurveyUseCase) Submit(ctx context.Context, appointmentID string, rating int, comment string) (entities.SurveyResponse, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return entities.SurveyResponse{}, ErrInvalidSurveyAppointmentID
	}
	if rating < 1 || rating > 5 {
		return entities.SurveyResponse{}, ErrInvalidSurveyRating
	}

	app, err := u.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return entities.SurveyResponse{}, err
	}
	if app.ID == "" {
		return entities.SurveyResponse{}, ErrAppointmentNotFound
	}

	// One survey per appointment.
	if existing, err := u.repo.GetByAppointmentID(ctx, appointmentID); err != nil {
		return entities.SurveyResponse{}, err
	} else if existing.ID != "" {
		return entities.SurveyResponse{}, ErrSurveyAlreadyExists
	}

	s := entities.SurveyResponse{
		ID:            uuid.NewString(),
		AppointmentID: appointmentID,
		Rating:        rating,
		Comment:       comment,
		Date:          time.Now().Format("2006-01-02"),
	}
	return u.repo.Append(ctx, s)
}

func (u *SurveyUseCase) List(ctx context.Context) ([]entities.SurveyResponse, error) {
	return u.repo.List(ctx)
}
