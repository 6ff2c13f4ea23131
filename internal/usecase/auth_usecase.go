package usecase

import (
	"context"
	"errors"

	"delta33_backoffice/internal/usecase/interfaces"
)

// ErrInvalidCredentials is the flat rejection for any failed login; it does
// not distinguish unknown user from wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// IAuthUseCase is the placeholder trust boundary: one hardcoded credential
// pair gating the management views. Not a security mechanism; any real
// deployment must replace it with actual authentication.

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string)
	Validate(ctx context.Context, token string) bool
}

type AuthUseCase struct {
	username string
	password string
	sessions interfaces.ISessionStore
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(username, password string, sessions interfaces.ISessionStore) *AuthUseCase {
	return &AuthUseCase{username: username, password: password, sessions: sessions}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (string, error) {
	if username != u.username || password != u.password {
		return "", ErrInvalidCredentials
	}
	return u.sessions.Create(ctx)
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) {
	u.sessions.Delete(ctx, token)
}

func (u *AuthUseCase) Validate(ctx context.Context, token string) bool {
	return token != "" && u.sessions.Validate(ctx, token)
}
