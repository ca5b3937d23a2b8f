package domain

import "context"

// SessionStore holds the current-session marker: at most one logged-in user
// id. Get returns "" when no session is active.
type SessionStore interface {
	Put(ctx context.Context, userID string) error
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
