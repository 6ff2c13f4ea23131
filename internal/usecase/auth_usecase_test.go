package usecase

import (
	"context"
	"errors"
	"testing"
)

// fakeSessionStore is a minimal in-test session store.
type fakeSessionStore struct {
	tokens map[string]bool
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{tokens: map[string]bool{}}
}

func (f *fakeSessionStore) Create(context.Context) (string, error) {
	token := "tok-1"
	f.tokens[token] = true
	return token, nil
}

func (f *fakeSessionStore) Validate(_ context.Context, token string) bool {
	return f.tokens[token]
}

func (f *fakeSessionStore) Delete(_ context.Context, token string) {
	delete(f.tokens, token)
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("wrong credentials rejected flat", func(t *testing.T) {
		uc := NewAuthUseCase("admin", "1234", newFakeSessionStore())

		for _, cred := range [][2]string{
			{"admin", "wrong"},
			{"nobody", "1234"},
			{"", ""},
		} {
			_, err := uc.Login(context.Background(), cred[0], cred[1])
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("%v: expected ErrInvalidCredentials, got %v", cred, err)
			}
		}
	})

	t.Run("valid credentials issue a session", func(t *testing.T) {
		store := newFakeSessionStore()
		uc := NewAuthUseCase("admin", "1234", store)

		token, err := uc.Login(context.Background(), "admin", "1234")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Fatal("expected a token")
		}
		if !uc.Validate(context.Background(), token) {
			t.Fatal("expected the issued token to validate")
		}
	})
}

func TestAuthUseCase_LogoutAndValidate(t *testing.T) {
	store := newFakeSessionStore()
	uc := NewAuthUseCase("admin", "1234", store)

	token, err := uc.Login(context.Background(), "admin", "1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc.Logout(context.Background(), token)
	if uc.Validate(context.Background(), token) {
		t.Fatal("expected token to be invalid after logout")
	}

	if uc.Validate(context.Background(), "") {
		t.Fatal("empty token must never validate")
	}
	// Logging out a never-issued token is a no-op.
	uc.Logout(context.Background(), "ghost")
}
