package interfaces

import "context"

// ISessionStore holds ephemeral login sessions. Sessions are never
// persisted; they disappear with the process, mirroring a
// browsing-session lifetime.
type ISessionStore interface {
	Create(ctx context.Context) (string, error)
	Validate(ctx context.Context, token string) bool
	Delete(ctx context.Context, token string)
}
