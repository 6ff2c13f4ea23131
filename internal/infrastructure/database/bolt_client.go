package database

import (
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket layout of the archive file:
//   - records: one JSON-serialized array per record type, keyed by the
//     logical record-type name.
//   - flags:   long-lived one-time markers (install hint).
const (
	RecordsBucket = "records"
	FlagsBucket   = "flags"
)

// Connect opens (or creates) the local archive file and ensures the buckets
// exist. The archive is the Go-native analog of the original tool's
// browser-local storage: a single embedded key-value file, no server.
func Connect(path string) (*bolt.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{RecordsBucket, FlagsBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
