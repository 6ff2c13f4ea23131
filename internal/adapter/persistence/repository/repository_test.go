package repository

import (
	"context"
	"path/filepath"
	"testing"

	"delta33_backoffice/internal/domain/entities"
	"delta33_backoffice/internal/infrastructure/database"

	bolt "go.etcd.io/bbolt"
)

func openTestDB(t *testing.T) *bolt.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAppointmentBoltRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewAppointmentBoltRepository(db, nil)
	ctx := context.Background()

	t.Run("empty store lists nothing", func(t *testing.T) {
		list, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 0 {
			t.Fatalf("expected empty store, got %d records", len(list))
		}
	})

	t.Run("append preserves insertion order", func(t *testing.T) {
		for _, id := range []string{"a1", "a2", "a3"} {
			if _, err := repo.Append(ctx, entities.Appointment{ID: id, ClientName: "Ana"}); err != nil {
				t.Fatalf("append %s: %v", id, err)
			}
		}

		list, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 3 {
			t.Fatalf("expected 3 records, got %d", len(list))
		}
		for i, id := range []string{"a1", "a2", "a3"} {
			if list[i].ID != id {
				t.Fatalf("position %d: expected %s, got %s", i, id, list[i].ID)
			}
		}
	})

	t.Run("get by id", func(t *testing.T) {
		a, err := repo.GetByID(ctx, "a2")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if a.ID != "a2" {
			t.Fatalf("expected a2, got %+v", a)
		}

		missing, err := repo.GetByID(ctx, "ghost")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if missing.ID != "" {
			t.Fatalf("expected zero value for missing id, got %+v", missing)
		}
	})

	t.Run("replace all", func(t *testing.T) {
		if err := repo.ReplaceAll(ctx, []entities.Appointment{{ID: "b1"}}); err != nil {
			t.Fatalf("replace: %v", err)
		}
		list, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 1 || list[0].ID != "b1" {
			t.Fatalf("unexpected records: %+v", list)
		}
	})
}

func TestCorruptEntryTreatedAsEmpty(t *testing.T) {
	db := openTestDB(t)
	repo := NewBudgetBoltRepository(db, nil)
	ctx := context.Background()

	err := db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(database.RecordsBucket)).Put([]byte(keyBudgets), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("seed corrupt entry: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected corrupt store to read as empty, got %+v", list)
	}

	// Appending over the corrupt entry starts a fresh sequence.
	if _, err := repo.Append(ctx, entities.Budget{ID: "PRE-AAAAAA", Total: 100}); err != nil {
		t.Fatalf("append: %v", err)
	}
	list, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != "PRE-AAAAAA" {
		t.Fatalf("unexpected records: %+v", list)
	}
}

func TestSurveyBoltRepository_GetByAppointmentID(t *testing.T) {
	db := openTestDB(t)
	repo := NewSurveyBoltRepository(db, nil)
	ctx := context.Background()

	if _, err := repo.Append(ctx, entities.SurveyResponse{ID: "s1", AppointmentID: "apt-1", Rating: 5}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := repo.Append(ctx, entities.SurveyResponse{ID: "s2", AppointmentID: "apt-2", Rating: 3}); err != nil {
		t.Fatalf("append: %v", err)
	}

	s, err := repo.GetByAppointmentID(ctx, "apt-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s.ID != "s2" {
		t.Fatalf("expected s2, got %+v", s)
	}

	missing, err := repo.GetByAppointmentID(ctx, "apt-9")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if missing.ID != "" {
		t.Fatalf("expected zero value, got %+v", missing)
	}
}

func TestTraceBoltRepository_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewTraceBoltRepository(db, nil)
	ctx := context.Background()

	in := entities.AgreementTrace{
		ID:      "t1",
		Date:    "2026-08-31",
		Content: "acordamos el plazo de entrega",
		Source:  entities.TraceSourceMeeting,
		Summary: "Plazo acordado",
	}
	if _, err := repo.Append(ctx, in); err != nil {
		t.Fatalf("append: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0] != in {
		t.Fatalf("expected %+v, got %+v", in, list)
	}
}

func TestFlagBoltRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewFlagBoltRepository(db)
	ctx := context.Background()

	shown, err := repo.InstallHintShown(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if shown {
		t.Fatal("expected flag to start unset")
	}

	if err := repo.MarkInstallHintShown(ctx); err != nil {
		t.Fatalf("mark: %v", err)
	}
	// Marking twice is fine.
	if err := repo.MarkInstallHintShown(ctx); err != nil {
		t.Fatalf("mark again: %v", err)
	}

	shown, err = repo.InstallHintShown(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !shown {
		t.Fatal("expected flag to be set")
	}
}
