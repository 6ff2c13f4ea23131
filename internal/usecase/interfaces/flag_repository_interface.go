package interfaces

import "context"

// IFlagRepository stores the long-lived one-time flags that live alongside
// the record stores (currently only the "install hint shown" marker).
type IFlagRepository interface {
	InstallHintShown(ctx context.Context) (bool, error)
	MarkInstallHintShown(ctx context.Context) error
}
