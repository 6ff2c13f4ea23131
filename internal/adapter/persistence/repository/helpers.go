package repository

import (
	"encoding/json"

	"delta33_backoffice/internal/infrastructure/database"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// Record-type keys inside the records bucket. Each key holds the full
// JSON-serialized array for its store, mirroring the persisted-state layout
// of the original archive.
const (
	keyAppointments = "appointments"
	keyBudgets      = "budgets"
	keyTraces       = "traces"
	keySurveys      = "surveys"
)

// decodeList unmarshals a stored array. Missing value means an empty store;
// so does an unparsable one: corrupt persisted state degrades to an empty
// sequence instead of crashing at startup.
func decodeList[T any](raw []byte, key string, log *zap.Logger) []T {
	if len(raw) == 0 {
		return nil
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Warn("corrupt archive entry, treating store as empty",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	return list
}

// loadList reads the full record sequence stored under key.
func loadList[T any](db *bolt.DB, key string, log *zap.Logger) ([]T, error) {
	var list []T
	err := db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(database.RecordsBucket)).Get([]byte(key))
		list = decodeList[T](raw, key, log)
		return nil
	})
	return list, err
}

// appendRecord appends rec to the sequence under key and writes the whole
// serialized array back, all within one write transaction so the persisted
// state always reflects a prefix of the append order.
func appendRecord[T any](db *bolt.DB, key string, rec T, log *zap.Logger) error {
	return db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(database.RecordsBucket))
		list := decodeList[T](bucket.Get([]byte(key)), key, log)
		list = append(list, rec)

		raw, err := json.Marshal(list)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), raw)
	})
}

// storeList overwrites the sequence under key. Only archive restore uses it.
func storeList[T any](db *bolt.DB, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(database.RecordsBucket)).Put([]byte(key), raw)
	})
}
