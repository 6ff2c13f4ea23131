package usecase

import (
	"context"

	"delta33_backoffice/internal/usecase/interfaces"
)

// ISettingsUseCase covers the small persistent flags that survive restarts
// but are not business records, like the one-time install hint marker.

type ISettingsUseCase interface {
	InstallHintShown(ctx context.Context) (bool, error)
	MarkInstallHintShown(ctx context.Context) error
}

type SettingsUseCase struct {
	flagRepo interfaces.IFlagRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(flagRepo interfaces.IFlagRepository) *SettingsUseCase {
	return &SettingsUseCase{flagRepo: flagRepo}
}

func (u *SettingsUseCase) InstallHintShown(ctx context.Context) (bool, error) {
	return u.flagRepo.InstallHintShown(ctx)
}

func (u *SettingsUseCase) MarkInstallHintShown(ctx context.Context) error {
	return u.flagRepo.MarkInstallHintShown(ctx)
}
