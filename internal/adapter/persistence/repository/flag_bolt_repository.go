package repository

import (
	"context"

	"delta33_backoffice/internal/infrastructure/database"
	"delta33_backoffice/internal/usecase/interfaces"

	bolt "go.etcd.io/bbolt"
)

const keyInstallHintShown = "install_hint_shown"

// FlagBoltRepository stores the one-time markers that share the record
// stores' long-lived persistence, in a bucket of their own.

type FlagBoltRepository struct {
	db *bolt.DB
}

var _ interfaces.IFlagRepository = (*FlagBoltRepository)(nil)

func NewFlagBoltRepository(db *bolt.DB) *FlagBoltRepository {
	return &FlagBoltRepository{db: db}
}

func (r *FlagBoltRepository) InstallHintShown(_ context.Context) (bool, error) {
	var shown bool
	err := r.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(database.FlagsBucket)).Get([]byte(keyInstallHintShown))
		shown = string(raw) == "true"
		return nil
	})
	return shown, err
}

func (r *FlagBoltRepository) MarkInstallHintShown(_ context.Context) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(database.FlagsBucket)).Put([]byte(keyInstallHintShown), []byte("true"))
	})
}
