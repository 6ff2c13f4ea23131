package session

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create and validate", func(t *testing.T) {
		s := NewMemoryStore(time.Hour)
		token, err := s.Create(ctx)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if token == "" {
			t.Fatal("expected a token")
		}
		if !s.Validate(ctx, token) {
			t.Fatal("expected fresh token to validate")
		}
		if s.Validate(ctx, "never-issued") {
			t.Fatal("unknown token must not validate")
		}
	})

	t.Run("delete", func(t *testing.T) {
		s := NewMemoryStore(time.Hour)
		token, _ := s.Create(ctx)
		s.Delete(ctx, token)
		if s.Validate(ctx, token) {
			t.Fatal("deleted token must not validate")
		}
	})

	t.Run("expiry prunes the session", func(t *testing.T) {
		s := NewMemoryStore(time.Hour)
		current := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return current }

		token, _ := s.Create(ctx)
		if !s.Validate(ctx, token) {
			t.Fatal("expected token to validate before expiry")
		}

		current = current.Add(2 * time.Hour)
		if s.Validate(ctx, token) {
			t.Fatal("expected token to expire")
		}
		// Expired session is pruned, not just hidden.
		if _, ok := s.sessions[token]; ok {
			t.Fatal("expected expired session to be removed")
		}
	})

	t.Run("zero ttl falls back to default", func(t *testing.T) {
		s := NewMemoryStore(0)
		if s.ttl != 12*time.Hour {
			t.Fatalf("expected 12h default ttl, got %v", s.ttl)
		}
	})
}
