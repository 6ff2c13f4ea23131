package usecase

import (
	"context"
	"fmt"
	"time"

	"delta33_backoffice/internal/domain/entities"
	"delta33_backoffice/internal/usecase/interfaces"
)

// IArchiveUseCase exports the four record stores as one JSON document and
// restores them from a previously exported one. Export always emits arrays
// (never null) so an export/restore round trip reproduces equal sequences.

type IArchiveUseCase interface {
	Export(ctx context.Context) (entities.Archive, error)
	Restore(ctx context.Context, archive entities.Archive) error
	FileName(now time.Time) string
}

type ArchiveUseCase struct {
	appointmentRepo interfaces.IAppointmentRepository
	budgetRepo      interfaces.IBudgetRepository
	traceRepo       interfaces.ITraceRepository
	surveyRepo      interfaces.ISurveyRepository
}

var _ IArchiveUseCase = (*ArchiveUseCase)(nil)

func NewArchiveUseCase(
	appointmentRepo interfaces.IAppointmentRepository,
	budgetRepo interfaces.IBudgetRepository,
	traceRepo interfaces.ITraceRepository,
	surveyRepo interfaces.ISurveyRepository,
) *ArchiveUseCase {
	return &ArchiveUseCase{
		appointmentRepo: appointmentRepo,
		budgetRepo:      budgetRepo,
		traceRepo:       traceRepo,
		surveyRepo:      surveyRepo,
	}
}

func (u *ArchiveUseCase) Export(ctx context.Context) (entities.Archive, error) {
	appointments, err := u.appointmentRepo.List(ctx)
	if err != nil {
		return entities.Archive{}, err
	}
	budgets, err := u.budgetRepo.List(ctx)
	if err != nil {
		return entities.Archive{}, err
	}
	traces, err := u.traceRepo.List(ctx)
	if err != nil {
		return entities.Archive{}, err
	}
	surveys, err := u.surveyRepo.List(ctx)
	if err != nil {
		return entities.Archive{}, err
	}

	if appointments == nil {
		appointments = []entities.Appointment{}
	}
	if budgets == nil {
		budgets = []entities.Budget{}
	}
	if traces == nil {
		traces = []entities.AgreementTrace{}
	}
	if surveys == nil {
		surveys = []entities.SurveyResponse{}
	}

	return entities.Archive{
		Appointments: appointments,
		Budgets:      budgets,
		Traces:       traces,
		Surveys:      surveys,
	}, nil
}

func (u *ArchiveUseCase) Restore(ctx context.Context, archive entities.Archive) error {
	if err := u.appointmentRepo.ReplaceAll(ctx, archive.Appointments); err != nil {
		return err
	}
	if err := u.budgetRepo.ReplaceAll(ctx, archive.Budgets); err != nil {
		return err
	}
	if err := u.traceRepo.ReplaceAll(ctx, archive.Traces); err != nil {
		return err
	}
	return u.surveyRepo.ReplaceAll(ctx, archive.Surveys)
}

func (u *ArchiveUseCase) FileName(now time.Time) string {
	return fmt.Sprintf("delta33_archive_%s.json", now.Format("2006-01-02"))
}
