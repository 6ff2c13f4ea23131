package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"delta33_backoffice/internal/domain/entities"
	"delta33_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidBudgetAppointmentID = errors.New("invalid budget appointment id")
	ErrInvalidBudgetItem          = errors.New("invalid budget item")
)

const (
	budgetIDPrefix = "PRE-"
	budgetIDLength = 6

	defaultBudgetTerms = "Pago 50% anticipado, 50% contra entrega."
)

// IBudgetUseCase exposes quote generation over the budget store.
//
// Creation requires the linked appointment to exist; when resolution fails
// the action is rejected without touching the store. Budgets are immutable
// after the append, so Total is frozen at creation.

type IBudgetUseCase interface {
	Create(ctx context.Context, appointmentID string, items []entities.BudgetItem, terms string) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
}

type BudgetUseCase struct {
	repo            interfaces.IBudgetRepository
	appointmentRepo interfaces.IAppointmentRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, appointmentRepo interfaces.IAppointmentRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, appointmentRepo: appointmentRepo}
}

func (u *BudgetUseCase) Create(ctx context.Context, appointmentID string, items []entities.BudgetItem, terms string) (entities.Budget, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return entities.Budget{}, ErrInvalidBudgetAppointmentID
	}
	for _, it := range items {
		if it.Quantity < 0 || it.UnitPrice < 0 {
			return entities.Budget{}, ErrInvalidBudgetItem
		}
	}

	app, err := u.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return entities.Budget{}, err
	}
	if app.ID == "" {
		return entities.Budget{}, ErrAppointmentNotFound
	}

	terms = strings.TrimSpace(terms)
	if terms == "" {
		terms = defaultBudgetTerms
	}

	b := entities.Budget{
		ID:            newBudgetID(),
		AppointmentID: appointmentID,
		ClientName:    app.ClientName,
		Items:         withItemIDs(items),
		Total:         entities.BudgetTotal(items),
		Date:          time.Now().Format("2006-01-02"),
		Terms:         terms,
	}
	return u.repo.Append(ctx, b)
}

func (u *BudgetUseCase) List(ctx context.Context) ([]entities.Budget, error) {
	return u.repo.List(ctx)
}

// newBudgetID builds the human-readable quote reference: a fixed prefix plus
// a short upper-case suffix drawn from a fresh uuid. Collisions are not
// checked; acceptable for a single-tenant, low-volume archive.
func newBudgetID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return budgetIDPrefix + suffix[:budgetIDLength]
}

// withItemIDs assigns positional line IDs where the caller left them blank.
// Line IDs only need to be unique within the parent budget.
func withItemIDs(items []entities.BudgetItem) []entities.BudgetItem {
	out := make([]entities.BudgetItem, len(items))
	copy(out, items)
	for i := range out {
		if strings.TrimSpace(out[i].ID) == "" {
			out[i].ID = strconv.Itoa(i + 1)
		}
	}
	return out
}
