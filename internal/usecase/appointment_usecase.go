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
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrInvalidAppointmentID     = errors.New("invalid appointment id")
	ErrInvalidClientName        = errors.New("invalid client name")
	ErrInvalidAppointmentDate   = errors.New("invalid appointment date")
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
)

// ScheduleAppointmentInput carries the fields of a scheduling action. Status
// may be left empty; new appointments default to pending. Guest submissions
// always come in as pending.
type ScheduleAppointmentInput struct {
	ClientName  string
	ClientEmail string
	ServiceType string
	Date        string
	Time        string
	Notes       string
	Status      entities.AppointmentStatus
}

// IAppointmentUseCase exposes the appointment book operations.
//
// Appointments are append-only: there is no update or delete, and status
// transitions are not enforced by this service.

type IAppointmentUseCase interface {
	Schedule(ctx context.Context, in ScheduleAppointmentInput) (entities.Appointment, error)
	List(ctx context.Context) ([]entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
}

type AppointmentUseCase struct {
	repo interfaces.IAppointmentRepository
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(repo interfaces.IAppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo}
}

func (u *AppointmentUseCase) Schedule(ctx context.Context, in ScheduleAppointmentInput) (entities.Appointment, error) {
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return entities.Appointment{}, ErrInvalidClientName
	}
	if strings.TrimSpace(in.Date) == "" {
		return entities.Appointment{}, ErrInvalidAppointmentDate
	}

	status := in.Status
	if status == "" {
		status = entities.AppointmentStatusPending
	}
	if !status.Valid() {
		return entities.Appointment{}, ErrInvalidAppointmentStatus
	}

	a := entities.Appointment{
		ID:          uuid.NewString(),
		ClientName:  name,
		ClientEmail: strings.TrimSpace(in.ClientEmail),
		ServiceType: strings.TrimSpace(in.ServiceType),
		Date:        strings.TrimSpace(in.Date),
		Time:        strings.TrimSpace(in.Time),
		Status:      status,
		Notes:       in.Notes,
		CreatedAt:   time.Now().UnixMilli(),
	}
	return u.repo.Append(ctx, a)
}

func (u *AppointmentUseCase) List(ctx context.Context) ([]entities.Appointment, error) {
	return u.repo.List(ctx)
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}
